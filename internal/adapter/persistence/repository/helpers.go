package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary amounts are stored as strings to avoid DynamoDB number-precision
// surprises on round trips.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
