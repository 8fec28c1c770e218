package entities

import "strings"

// QuotationStatus is the lifecycle state of a quotation as persisted.
//
// Quotation statuses are authoritative in storage; this layer only maps them
// to display labels. Order display states are derived instead (see order.go).

type QuotationStatus string

const (
	QuotationStatusValid   QuotationStatus = "valid"
	QuotationStatusExpired QuotationStatus = "expired"
	QuotationStatusCart    QuotationStatus = "cart"
	QuotationStatusPending QuotationStatus = "pending"
)

// DisplayLabel returns the customer-facing label for a quotation status.
func (s QuotationStatus) DisplayLabel() string {
	switch s {
	case QuotationStatusPending:
		return "Requested"
	case QuotationStatusValid:
		return "Valid"
	case QuotationStatusExpired:
		return "Expired"
	case QuotationStatusCart:
		return "In Cart"
	default:
		return string(s)
	}
}

// Study type classifications used by the pricing breakdown.
const (
	StudyTypeToxicity     = "Toxicity Study"
	StudyTypeInvitro      = "Invitro Study"
	StudyTypeMicrobiology = "Microbiology & Virology Study"
)

// Quotation is one purchasable study/test line item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//   - GSI2 (quotation_no-index): quotation_no
//
// CreatedOn/ValidTill are kept as the strings received at creation time
// (DD/MM/YYYY or ISO); ParsePortalDate normalizes them for comparison.

type Quotation struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	SessionID       string           `json:"session_id,omitempty"`
	QuotationNo     string           `json:"quotation_no"`
	StudyType       string           `json:"study_type"`
	Category        string           `json:"category,omitempty"`
	Guidelines      []string         `json:"selected_guidelines,omitempty"`
	Studies         []string         `json:"selected_studies,omitempty"`
	Amount          float64          `json:"amount"`
	NumberOfSamples int              `json:"number_of_samples"`
	Status          QuotationStatus  `json:"status"`
	CreatedOn       string           `json:"created_on"`
	ValidTill       string           `json:"valid_till"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
	Customer        CustomerSnapshot `json:"customer"`
}

// NormalizeQuotationNo strips the optional display prefix ("#RR000123") so the
// value can be used as a storage/gateway key. Idempotent.
func NormalizeQuotationNo(no string) string {
	return strings.TrimPrefix(strings.TrimSpace(no), "#")
}
