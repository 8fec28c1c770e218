package entities

import "time"

// Raw backend order statuses. Anything else falls through to the expiry check.
const (
	OrderRawStatusInProgress = "in_progress"
	OrderRawStatusDelivered  = "delivered"
)

// OrderDisplayStatus is the derived state shown to customers.

type OrderDisplayStatus string

const (
	OrderDisplayPending OrderDisplayStatus = "pending"
	OrderDisplayValid   OrderDisplayStatus = "valid"
	OrderDisplayExpired OrderDisplayStatus = "expired"
)

// Order is a quotation line item that completed payment and was converted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type Order struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	SessionID       string           `json:"session_id,omitempty"`
	OrderNo         string           `json:"order_no"`
	QuotationNo     string           `json:"quotation_no"`
	StudyType       string           `json:"study_type"`
	Category        string           `json:"category,omitempty"`
	Guidelines      []string         `json:"selected_guidelines,omitempty"`
	Studies         []string         `json:"selected_studies,omitempty"`
	Amount          float64          `json:"amount"`
	NumberOfSamples int              `json:"number_of_samples"`
	RawStatus       string           `json:"status"`
	CreatedOn       string           `json:"created_on"`
	ValidTill       string           `json:"valid_till"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
	Customer        CustomerSnapshot `json:"customer"`
}

// DeriveOrderStatus maps a raw backend status plus the validity date onto the
// fixed display set. Delivered orders stay valid regardless of the date; an
// order past its validity day is expired even while the lab still reports
// in_progress; everything else is pending. Total over all inputs.
func DeriveOrderStatus(rawStatus, validTill string, today time.Time) OrderDisplayStatus {
	if rawStatus == OrderRawStatusDelivered {
		return OrderDisplayValid
	}
	if t, ok := ParsePortalDate(validTill); ok && BeforeDay(t, today) {
		return OrderDisplayExpired
	}
	return OrderDisplayPending
}

// DisplayStatus derives the customer-facing status as of now.
func (o Order) DisplayStatus() OrderDisplayStatus {
	return DeriveOrderStatus(o.RawStatus, o.ValidTill, time.Now().UTC())
}
