package entities

import "time"

// PaymentStatus is the persisted state of one gateway payment attempt.

type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Payment records a gateway order created for a quotation group and, once the
// checkout succeeds, the captured payment and the order number the quotation
// was converted into.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_no-index): quotation_no
//
// GatewayPayloadRaw keeps the gateway's original order response (JSON) for
// traceability, since provider schemas vary between API versions.

type Payment struct {
	ID               string        `json:"id"`
	QuotationNo      string        `json:"quotation_no"`
	GatewayOrderID   string        `json:"gateway_order_id"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	Amount           float64       `json:"amount"`
	Currency         string        `json:"currency"`
	Receipt          string        `json:"receipt"`
	ConvertedOrderNo string        `json:"converted_order_no,omitempty"`
	Status           PaymentStatus `json:"status"`
	Date             time.Time     `json:"date"`

	GatewayPayloadRaw string `json:"gateway_payload_raw,omitempty"`
}
