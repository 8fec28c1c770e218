package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"rrportal/internal/domain/entities"
	"rrportal/internal/domain/pricing"
	"rrportal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentAmount    = errors.New("invalid payment amount")
	ErrPaymentInFlight         = errors.New("payment already in flight for this quotation")
	ErrGatewayOrderFailed      = errors.New("payment gateway order creation failed")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrConversionAfterCapture  = errors.New("payment captured but order conversion failed")
	ErrPaymentRecordNotFound   = errors.New("payment record not found")
	ErrInvalidGatewayPaymentID = errors.New("invalid gateway payment id")
)

// PaymentState tracks where one quotation group currently sits in the
// checkout flow. States are per group; distinct groups proceed independently.

type PaymentState string

const (
	PaymentStateIdle                 PaymentState = "idle"
	PaymentStateCreatingOrder        PaymentState = "creating_order"
	PaymentStateAwaitingGateway      PaymentState = "awaiting_gateway"
	PaymentStateConfirmingConversion PaymentState = "confirming_conversion"
	PaymentStateDone                 PaymentState = "done"
	PaymentStateFailed               PaymentState = "failed"
	PaymentStateCancelled            PaymentState = "cancelled"
)

func (s PaymentState) inFlight() bool {
	switch s {
	case PaymentStateCreatingOrder, PaymentStateAwaitingGateway, PaymentStateConfirmingConversion:
		return true
	}
	return false
}

// IPaymentUseCase drives a quotation group through gateway checkout and
// post-payment conversion into an order.

type IPaymentUseCase interface {
	CreateGatewayOrder(ctx context.Context, quotationNo string, amount float64, currency, receipt string) (entities.Payment, error)
	ConfirmConversion(ctx context.Context, quotationNo, gatewayPaymentID string) (string, error)
	CancelCheckout(quotationNo string)
	GroupState(quotationNo string) PaymentState
}

// PaymentUseCase holds the explicit per-group state map. A second attempt on
// an in-flight group is rejected here rather than relying on a disabled
// client-side button.
type PaymentUseCase struct {
	quotationRepo interfaces.IQuotationRepository
	orderRepo     interfaces.IOrderRepository
	paymentRepo   interfaces.IPaymentRepository
	gateway       interfaces.IPaymentGateway

	mu     sync.Mutex
	states map[string]PaymentState
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	quotationRepo interfaces.IQuotationRepository,
	orderRepo interfaces.IOrderRepository,
	paymentRepo interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{
		quotationRepo: quotationRepo,
		orderRepo:     orderRepo,
		paymentRepo:   paymentRepo,
		gateway:       gateway,
		states:        make(map[string]PaymentState),
	}
}

func groupStateKey(quotationNo string) string {
	return "group-" + quotationNo
}

// GroupState reports the last recorded checkout state for one group.
func (u *PaymentUseCase) GroupState(quotationNo string) PaymentState {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.states[groupStateKey(entities.NormalizeQuotationNo(quotationNo))]; ok {
		return s
	}
	return PaymentStateIdle
}

func (u *PaymentUseCase) setState(quotationNo string, s PaymentState) {
	u.mu.Lock()
	u.states[groupStateKey(quotationNo)] = s
	u.mu.Unlock()
}

// beginAttempt transitions the group into CREATING_ORDER unless another
// attempt is already in flight.
func (u *PaymentUseCase) beginAttempt(quotationNo string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	key := groupStateKey(quotationNo)
	if u.states[key].inFlight() {
		return ErrPaymentInFlight
	}
	u.states[key] = PaymentStateCreatingOrder
	return nil
}

// beginConversion transitions the group into CONFIRMING_CONVERSION. The
// expected prior state is AWAITING_GATEWAY; an attempt still creating its
// gateway order or a conversion already running is rejected, so one captured
// payment can never produce two order sets.
func (u *PaymentUseCase) beginConversion(quotationNo string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	key := groupStateKey(quotationNo)
	switch u.states[key] {
	case PaymentStateCreatingOrder, PaymentStateConfirmingConversion:
		return ErrPaymentInFlight
	}
	u.states[key] = PaymentStateConfirmingConversion
	return nil
}

// CreateGatewayOrder validates the group, opens a provider order for its
// grand total and persists the attempt. The stored group is the source of
// truth for the amount; the caller-supplied amount only serves groups the
// portal does not hold (and is cross-checked otherwise).
func (u *PaymentUseCase) CreateGatewayOrder(ctx context.Context, quotationNo string, amount float64, currency, receipt string) (entities.Payment, error) {
	quotationNo = entities.NormalizeQuotationNo(quotationNo)
	log.Printf("[payment][usecase] gateway order start quotation_no=%s amount=%.2f", quotationNo, amount)
	if quotationNo == "" {
		return entities.Payment{}, ErrInvalidQuotationNo
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}

	items, err := u.quotationRepo.ListByQuotationNo(ctx, quotationNo)
	if err != nil {
		log.Printf("[payment][usecase] loading quotation failed quotation_no=%s err=%v", quotationNo, err)
		return entities.Payment{}, err
	}
	if len(items) > 0 {
		breakdown := pricing.GroupTotal(items)
		if breakdown.GrandTotal != amount {
			log.Printf("[payment][usecase] amount overridden from stored group quotation_no=%s requested=%.2f computed=%.2f", quotationNo, amount, breakdown.GrandTotal)
		}
		amount = breakdown.GrandTotal
	}
	if amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	// Preconditions hold; only now does the attempt claim the group.
	if err := u.beginAttempt(quotationNo); err != nil {
		log.Printf("[payment][usecase] attempt rejected quotation_no=%s err=%v", quotationNo, err)
		return entities.Payment{}, err
	}

	if currency == "" {
		currency = "INR"
	}
	if strings.TrimSpace(receipt) == "" {
		receipt = fmt.Sprintf("receipt_%s_%d", quotationNo, time.Now().Unix())
	}

	gwOrder, err := u.gateway.CreateOrder(ctx, amount, currency, receipt)
	if err != nil || gwOrder.ID == "" {
		if err == nil {
			err = errors.New("gateway response missing order id")
		}
		u.setState(quotationNo, PaymentStateFailed)
		log.Printf("[payment][usecase] gateway order failed quotation_no=%s err=%v", quotationNo, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrGatewayOrderFailed, err)
	}

	p := entities.Payment{
		ID:                uuid.NewString(),
		QuotationNo:       quotationNo,
		GatewayOrderID:    gwOrder.ID,
		Amount:            amount,
		Currency:          currency,
		Receipt:           receipt,
		Status:            entities.PaymentStatusCreated,
		Date:              time.Now().UTC(),
		GatewayPayloadRaw: string(gwOrder.Raw),
	}
	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		u.setState(quotationNo, PaymentStateFailed)
		log.Printf("[payment][usecase] payment record create failed quotation_no=%s err=%v", quotationNo, err)
		return entities.Payment{}, err
	}

	u.setState(quotationNo, PaymentStateAwaitingGateway)
	log.Printf("[payment][usecase] gateway order success quotation_no=%s gateway_order_id=%s amount=%.2f", quotationNo, gwOrder.ID, amount)
	return created, nil
}

// ConfirmConversion runs after the hosted checkout reports success: the
// quotation group becomes an order, the payment record is marked captured and
// the new order number is returned. Failures past this point are
// partial successes: the payment is already captured and reconciliation is
// manual, so they carry ErrConversionAfterCapture.
func (u *PaymentUseCase) ConfirmConversion(ctx context.Context, quotationNo, gatewayPaymentID string) (string, error) {
	quotationNo = entities.NormalizeQuotationNo(quotationNo)
	log.Printf("[payment][usecase] conversion start quotation_no=%s gateway_payment_id=%s", quotationNo, gatewayPaymentID)
	if quotationNo == "" {
		return "", ErrInvalidQuotationNo
	}
	if strings.TrimSpace(gatewayPaymentID) == "" {
		return "", ErrInvalidGatewayPaymentID
	}

	if err := u.beginConversion(quotationNo); err != nil {
		log.Printf("[payment][usecase] conversion rejected quotation_no=%s err=%v", quotationNo, err)
		return "", err
	}
	fail := func(cause error) (string, error) {
		u.setState(quotationNo, PaymentStateFailed)
		log.Printf("[payment][usecase] conversion failed after capture quotation_no=%s err=%v", quotationNo, cause)
		return "", fmt.Errorf("%w: %v", ErrConversionAfterCapture, cause)
	}

	items, err := u.quotationRepo.ListByQuotationNo(ctx, quotationNo)
	if err != nil {
		return fail(err)
	}
	if len(items) == 0 {
		return fail(ErrQuotationNotFound)
	}

	orderNo := GenerateReferenceNo()
	now := time.Now().UTC()
	orders := make([]entities.Order, len(items))
	for i, it := range items {
		orders[i] = entities.Order{
			ID:              uuid.NewString(),
			UserID:          it.UserID,
			SessionID:       it.SessionID,
			OrderNo:         orderNo,
			QuotationNo:     it.QuotationNo,
			StudyType:       it.StudyType,
			Category:        it.Category,
			Guidelines:      it.Guidelines,
			Studies:         it.Studies,
			Amount:          it.Amount,
			NumberOfSamples: it.NumberOfSamples,
			RawStatus:       entities.OrderRawStatusInProgress,
			CreatedOn:       now.Format("2006-01-02"),
			ValidTill:       it.ValidTill,
			Customer:        it.Customer,
		}
	}
	if _, err := u.orderRepo.CreateMany(ctx, orders); err != nil {
		return fail(err)
	}

	// The group has become an order; its quotation rows leave the list.
	if _, err := u.quotationRepo.DeleteByQuotationNo(ctx, quotationNo); err != nil {
		log.Printf("[payment][usecase] quotation cleanup failed quotation_no=%s err=%v", quotationNo, err)
	}

	if err := u.markLatestPaymentCaptured(ctx, quotationNo, gatewayPaymentID, orderNo); err != nil {
		log.Printf("[payment][usecase] payment capture update failed quotation_no=%s err=%v", quotationNo, err)
	}

	u.setState(quotationNo, PaymentStateDone)
	log.Printf("[payment][usecase] conversion success quotation_no=%s order_no=%s", quotationNo, orderNo)
	return orderNo, nil
}

func (u *PaymentUseCase) markLatestPaymentCaptured(ctx context.Context, quotationNo, gatewayPaymentID, orderNo string) error {
	payments, err := u.paymentRepo.ListByQuotationNo(ctx, quotationNo)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		return ErrPaymentRecordNotFound
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	_, err = u.paymentRepo.MarkCaptured(ctx, latest.ID, gatewayPaymentID, orderNo)
	return err
}

// CancelCheckout records a user-dismissed checkout. Not an error; the group
// returns to a retryable state and the in-flight flag is cleared.
func (u *PaymentUseCase) CancelCheckout(quotationNo string) {
	quotationNo = entities.NormalizeQuotationNo(quotationNo)
	if quotationNo == "" {
		return
	}
	u.setState(quotationNo, PaymentStateCancelled)
	log.Printf("[payment][usecase] checkout cancelled quotation_no=%s", quotationNo)
}
