package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"rrportal/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

// RazorpayGateway opens Razorpay orders for the hosted checkout flow.
//
// Amounts cross this boundary in rupees and are converted to paise, the
// smallest currency unit Razorpay's Orders API expects.

type RazorpayGateway struct {
	client   *razorpay.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[payment][gateway] Razorpay client initialized")
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}, nil
}

// CreateOrder opens a gateway order for the given amount. The Razorpay SDK
// does not accept a context; ctx is honored only for the mock path.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (interfaces.GatewayOrder, error) {
	amountPaise := int64(math.Round(amount * 100))

	if g != nil && g.mockMode {
		if err := ctx.Err(); err != nil {
			return interfaces.GatewayOrder{}, err
		}
		id := "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, err := json.Marshal(map[string]any{
			"id":       id,
			"entity":   "order",
			"amount":   amountPaise,
			"currency": currency,
			"receipt":  receipt,
			"status":   "created",
		})
		if err != nil {
			return interfaces.GatewayOrder{}, err
		}
		log.Printf("[payment][gateway] mock order created id=%s amount_paise=%d", id, amountPaise)
		return interfaces.GatewayOrder{ID: id, Amount: amount, Currency: currency, Receipt: receipt, Raw: raw}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayOrder{}, ErrRazorpayGatewayNotConfigured
	}

	log.Printf("[payment][gateway] order create start amount_paise=%d currency=%s receipt=%s", amountPaise, currency, receipt)
	resp, err := g.client.Order.Create(map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		log.Printf("[payment][gateway] order create failed err=%v", err)
		return interfaces.GatewayOrder{}, err
	}

	id, _ := resp["id"].(string)
	if id == "" {
		log.Printf("[payment][gateway] order response missing id")
		return interfaces.GatewayOrder{}, errors.New("razorpay order response missing id")
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.GatewayOrder{}, err
	}
	log.Printf("[payment][gateway] order create success id=%s amount_paise=%d", id, amountPaise)

	return interfaces.GatewayOrder{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Raw:      raw,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
