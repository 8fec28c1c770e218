package request

import "strings"

// PaymentOrderRequest asks for a gateway order covering one quotation group.
// Clients historically sent only {amount, currency, receipt}, encoding the
// quotation number inside the receipt ("receipt_<no>_<ts>"); quotation_no is
// the explicit form newer clients send.

type PaymentOrderRequest struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Receipt     string  `json:"receipt"`
	QuotationNo string  `json:"quotation_no"`
}

// ResolveQuotationNo prefers the explicit field, falling back to the
// receipt-embedded reference.
func (r PaymentOrderRequest) ResolveQuotationNo() string {
	if v := strings.TrimSpace(r.QuotationNo); v != "" {
		return v
	}
	receipt := strings.TrimSpace(r.Receipt)
	if !strings.HasPrefix(receipt, "receipt_") {
		return ""
	}
	rest := strings.TrimPrefix(receipt, "receipt_")
	if i := strings.LastIndex(rest, "_"); i > 0 {
		return rest[:i]
	}
	return rest
}

// ConvertQuotationRequest converts a paid quotation group into an order.
type ConvertQuotationRequest struct {
	QuotationNo string `json:"quotation_no" binding:"required"`
	PaymentID   string `json:"payment_id" binding:"required"`
}

// CancelCheckoutRequest reports a dismissed gateway checkout.
type CancelCheckoutRequest struct {
	QuotationNo string `json:"quotation_no" binding:"required"`
}
