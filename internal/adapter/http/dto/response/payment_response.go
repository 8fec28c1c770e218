package response

import "rrportal/internal/domain/entities"

// PaymentOrderResponse mirrors the gateway-order contract the checkout
// client depends on: {success, order: {id, amount}}.

type PaymentOrderData struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

type PaymentOrderResponse struct {
	Success bool             `json:"success"`
	Order   PaymentOrderData `json:"order"`
}

func FromPayment(p entities.Payment) PaymentOrderResponse {
	return PaymentOrderResponse{
		Success: true,
		Order: PaymentOrderData{
			ID:       p.GatewayOrderID,
			Amount:   p.Amount,
			Currency: p.Currency,
			Receipt:  p.Receipt,
		},
	}
}

type ConvertQuotationData struct {
	ConvertedOrderNo string `json:"convertedOrderNo"`
}

type ConvertQuotationResponse struct {
	Success bool                 `json:"success"`
	Data    ConvertQuotationData `json:"data"`
}

func FromConvertedOrderNo(orderNo string) ConvertQuotationResponse {
	return ConvertQuotationResponse{Success: true, Data: ConvertQuotationData{ConvertedOrderNo: orderNo}}
}

type CancelCheckoutResponse struct {
	Success bool   `json:"success"`
	State   string `json:"state"`
}
