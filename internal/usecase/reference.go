package usecase

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenerateReferenceNo produces a human-facing quotation/order reference in
// the portal's RR-prefixed six digit format, e.g. "RR000123".
func GenerateReferenceNo() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Reads from crypto/rand do not fail on supported platforms.
		panic(err)
	}
	return fmt.Sprintf("RR%06d", binary.BigEndian.Uint32(b[:])%1000000)
}
