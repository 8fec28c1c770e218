package interfaces

import (
	"context"
	"encoding/json"
)

// GatewayOrder is the provider-side order opened for one checkout attempt.
// Raw keeps the provider's original response for traceability.

type GatewayOrder struct {
	ID       string
	Amount   float64
	Currency string
	Receipt  string
	Raw      json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Razorpay).
//
// The portal uses it to open the gateway order the hosted checkout is driven
// from; capture happens provider-side and is reported back by the client
// through the conversion endpoint.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (GatewayOrder, error)
}
