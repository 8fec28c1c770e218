package entities

import "strings"

// CustomerSnapshot is the denormalized customer copy stored with a quotation
// at creation time. It stays authoritative for display and checkout prefill
// even if the signed-in user's profile changes afterwards.

type CustomerSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// NormalizeCustomer collapses the snake_case/camelCase field variants seen at
// the ingestion boundary into the one canonical snapshot. Each argument list
// is ordered by preference; the first non-empty value wins.
func NormalizeCustomer(nameVariants, emailVariants, phoneVariants, companyVariants []string) CustomerSnapshot {
	return CustomerSnapshot{
		Name:    firstNonEmpty(nameVariants),
		Email:   firstNonEmpty(emailVariants),
		Phone:   firstNonEmpty(phoneVariants),
		Company: firstNonEmpty(companyVariants),
	}
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
