package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rrportal/internal/domain/entities"
	"rrportal/internal/usecase/interfaces"
	mock_interfaces "rrportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func paymentDeps(ctrl *gomock.Controller) (*mock_interfaces.MockIQuotationRepository, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIPaymentGateway) {
	return mock_interfaces.NewMockIQuotationRepository(ctrl),
		mock_interfaces.NewMockIOrderRepository(ctrl),
		mock_interfaces.NewMockIPaymentRepository(ctrl),
		mock_interfaces.NewMockIPaymentGateway(ctrl)
}

func TestPaymentUseCase_CreateGatewayOrder_Validations(t *testing.T) {
	t.Run("empty quotation no", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateGatewayOrder(context.Background(), "  #  ", 100, "INR", "")
		if !errors.Is(err, ErrInvalidQuotationNo) {
			t.Fatalf("expected ErrInvalidQuotationNo, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateGatewayOrder(context.Background(), "RR100", 100, "INR", "")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("non-positive amount with no stored group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR100").Return(nil, nil)

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		_, err := uc.CreateGatewayOrder(context.Background(), "RR100", 0, "INR", "")
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
		if got := uc.GroupState("RR100"); got != PaymentStateIdle {
			t.Fatalf("state = %s, want idle (attempt never claimed)", got)
		}
	})
}

func TestPaymentUseCase_CreateGatewayOrder(t *testing.T) {
	t.Run("stored group total overrides client amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR100").Return([]entities.Quotation{
			{QuotationNo: "#RR100", Amount: 10000},
			{QuotationNo: "#RR100", Amount: 20000},
			{QuotationNo: "#RR100", Amount: 5000},
		}, nil)
		// 35000 subtotal + 18% GST, regardless of what the client sent.
		gateway.EXPECT().CreateOrder(gomock.Any(), 41300.0, "INR", gomock.Any()).
			Return(interfaces.GatewayOrder{ID: "order_abc", Amount: 41300, Currency: "INR"}, nil)
		pRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Amount != 41300 {
					t.Fatalf("persisted amount = %v, want 41300", p.Amount)
				}
				if p.GatewayOrderID != "order_abc" {
					t.Fatalf("gateway order id = %q", p.GatewayOrderID)
				}
				if p.Status != entities.PaymentStatusCreated {
					t.Fatalf("status = %q, want created", p.Status)
				}
				return p, nil
			})

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		created, err := uc.CreateGatewayOrder(context.Background(), "#RR100", 1, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Currency != "INR" {
			t.Fatalf("currency = %q, want INR default", created.Currency)
		}
		if !strings.HasPrefix(created.Receipt, "receipt_RR100_") {
			t.Fatalf("receipt = %q, want receipt_RR100_<ts>", created.Receipt)
		}
		if got := uc.GroupState("RR100"); got != PaymentStateAwaitingGateway {
			t.Fatalf("state = %s, want awaiting_gateway", got)
		}
	})

	t.Run("gateway error fails the attempt without conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR200").Return(nil, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), 500.0, "INR", "r1").
			Return(interfaces.GatewayOrder{}, errors.New("provider down"))
		// No payment row, no order rows: oRepo and pRepo expect nothing.

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		_, err := uc.CreateGatewayOrder(context.Background(), "RR200", 500, "INR", "r1")
		if !errors.Is(err, ErrGatewayOrderFailed) {
			t.Fatalf("expected ErrGatewayOrderFailed, got %v", err)
		}
		if got := uc.GroupState("RR200"); got != PaymentStateFailed {
			t.Fatalf("state = %s, want failed", got)
		}
	})

	t.Run("gateway response without order id fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR201").Return(nil, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), 500.0, "INR", "r1").
			Return(interfaces.GatewayOrder{Amount: 500}, nil)

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		_, err := uc.CreateGatewayOrder(context.Background(), "RR201", 500, "INR", "r1")
		if !errors.Is(err, ErrGatewayOrderFailed) {
			t.Fatalf("expected ErrGatewayOrderFailed, got %v", err)
		}
	})

	t.Run("second attempt on in-flight group is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR300").Return(nil, nil).Times(2)
		gateway.EXPECT().CreateOrder(gomock.Any(), 700.0, "INR", "r1").
			Return(interfaces.GatewayOrder{ID: "order_x"}, nil)
		pRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		if _, err := uc.CreateGatewayOrder(context.Background(), "RR300", 700, "INR", "r1"); err != nil {
			t.Fatalf("first attempt: %v", err)
		}
		_, err := uc.CreateGatewayOrder(context.Background(), "RR300", 700, "INR", "r2")
		if !errors.Is(err, ErrPaymentInFlight) {
			t.Fatalf("expected ErrPaymentInFlight, got %v", err)
		}
	})

	t.Run("failed group can retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR400").Return(nil, nil).Times(2)
		gomock.InOrder(
			gateway.EXPECT().CreateOrder(gomock.Any(), 900.0, "INR", "r1").
				Return(interfaces.GatewayOrder{}, errors.New("timeout")),
			gateway.EXPECT().CreateOrder(gomock.Any(), 900.0, "INR", "r1").
				Return(interfaces.GatewayOrder{ID: "order_y"}, nil),
		)
		pRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		if _, err := uc.CreateGatewayOrder(context.Background(), "RR400", 900, "INR", "r1"); !errors.Is(err, ErrGatewayOrderFailed) {
			t.Fatalf("expected first attempt failure, got %v", err)
		}
		if _, err := uc.CreateGatewayOrder(context.Background(), "RR400", 900, "INR", "r1"); err != nil {
			t.Fatalf("retry after failure: %v", err)
		}
		if got := uc.GroupState("RR400"); got != PaymentStateAwaitingGateway {
			t.Fatalf("state = %s, want awaiting_gateway", got)
		}
	})
}

func TestPaymentUseCase_ConfirmConversion(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		if _, err := uc.ConfirmConversion(context.Background(), "", "pay_1"); !errors.Is(err, ErrInvalidQuotationNo) {
			t.Fatalf("expected ErrInvalidQuotationNo, got %v", err)
		}
		if _, err := uc.ConfirmConversion(context.Background(), "RR100", "  "); !errors.Is(err, ErrInvalidGatewayPaymentID) {
			t.Fatalf("expected ErrInvalidGatewayPaymentID, got %v", err)
		}
	})

	t.Run("success converts group and captures latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		items := []entities.Quotation{
			{ID: "q1", UserID: "u1", QuotationNo: "#RR500", StudyType: entities.StudyTypeToxicity, Amount: 10000, ValidTill: "2026-12-31"},
			{ID: "q2", UserID: "u1", QuotationNo: "#RR500", StudyType: entities.StudyTypeInvitro, Amount: 5000, ValidTill: "2026-12-31"},
		}
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR500").Return(items, nil)

		var capturedOrderNo string
		oRepo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, orders []entities.Order) ([]entities.Order, error) {
				if len(orders) != 2 {
					t.Fatalf("len(orders) = %d, want 2", len(orders))
				}
				capturedOrderNo = orders[0].OrderNo
				for _, o := range orders {
					if o.OrderNo != capturedOrderNo {
						t.Fatal("order no differs across lines of one group")
					}
					if o.RawStatus != entities.OrderRawStatusInProgress {
						t.Fatalf("raw status = %q, want in_progress", o.RawStatus)
					}
					if o.ID == "" || o.ID == "q1" || o.ID == "q2" {
						t.Fatalf("order id %q not freshly assigned", o.ID)
					}
				}
				return orders, nil
			})
		qRepo.EXPECT().DeleteByQuotationNo(gomock.Any(), "RR500").Return(2, nil)

		older := entities.Payment{ID: "p-old", Date: time.Now().Add(-time.Hour)}
		newer := entities.Payment{ID: "p-new", Date: time.Now()}
		pRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR500").Return([]entities.Payment{older, newer}, nil)
		pRepo.EXPECT().MarkCaptured(gomock.Any(), "p-new", "pay_123", gomock.Any()).
			Return(entities.Payment{}, nil)

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		orderNo, err := uc.ConfirmConversion(context.Background(), "#RR500", "pay_123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderNo != capturedOrderNo {
			t.Fatalf("returned order no %q != persisted %q", orderNo, capturedOrderNo)
		}
		if !strings.HasPrefix(orderNo, "RR") || len(orderNo) != 8 {
			t.Fatalf("order no = %q, want RR plus six digits", orderNo)
		}
		if got := uc.GroupState("RR500"); got != PaymentStateDone {
			t.Fatalf("state = %s, want done", got)
		}
	})

	t.Run("missing group wraps conversion-after-capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR600").Return(nil, nil)

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		_, err := uc.ConfirmConversion(context.Background(), "RR600", "pay_1")
		if !errors.Is(err, ErrConversionAfterCapture) {
			t.Fatalf("expected ErrConversionAfterCapture, got %v", err)
		}
		if got := uc.GroupState("RR600"); got != PaymentStateFailed {
			t.Fatalf("state = %s, want failed", got)
		}
	})

	t.Run("order persistence failure wraps conversion-after-capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR700").
			Return([]entities.Quotation{{ID: "q1", QuotationNo: "#RR700"}}, nil)
		oRepo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("table offline"))

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		_, err := uc.ConfirmConversion(context.Background(), "RR700", "pay_1")
		if !errors.Is(err, ErrConversionAfterCapture) {
			t.Fatalf("expected ErrConversionAfterCapture, got %v", err)
		}
	})

	t.Run("cleanup failures do not fail the conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR800").
			Return([]entities.Quotation{{ID: "q1", QuotationNo: "#RR800"}}, nil)
		oRepo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, orders []entities.Order) ([]entities.Order, error) { return orders, nil })
		qRepo.EXPECT().DeleteByQuotationNo(gomock.Any(), "RR800").Return(0, errors.New("delete failed"))
		pRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR800").Return(nil, errors.New("lookup failed"))

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		orderNo, err := uc.ConfirmConversion(context.Background(), "RR800", "pay_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if orderNo == "" {
			t.Fatal("expected order no despite cleanup failures")
		}
		if got := uc.GroupState("RR800"); got != PaymentStateDone {
			t.Fatalf("state = %s, want done", got)
		}
	})

	t.Run("overlapping conversion is rejected and one order set is created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		qRepo, oRepo, pRepo, gateway := paymentDeps(ctrl)

		entered := make(chan struct{})
		release := make(chan struct{})
		qRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR950").
			DoAndReturn(func(_ context.Context, _ string) ([]entities.Quotation, error) {
				close(entered)
				<-release
				return []entities.Quotation{{ID: "q1", QuotationNo: "#RR950"}}, nil
			})
		oRepo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Times(1).
			DoAndReturn(func(_ context.Context, orders []entities.Order) ([]entities.Order, error) { return orders, nil })
		qRepo.EXPECT().DeleteByQuotationNo(gomock.Any(), "RR950").Return(1, nil)
		pRepo.EXPECT().ListByQuotationNo(gomock.Any(), "RR950").
			Return([]entities.Payment{{ID: "p1", Date: time.Now()}}, nil)
		pRepo.EXPECT().MarkCaptured(gomock.Any(), "p1", "pay_1", gomock.Any()).
			Return(entities.Payment{}, nil)

		uc := NewPaymentUseCase(qRepo, oRepo, pRepo, gateway)
		uc.setState("RR950", PaymentStateAwaitingGateway)

		firstErr := make(chan error, 1)
		go func() {
			_, err := uc.ConfirmConversion(context.Background(), "RR950", "pay_1")
			firstErr <- err
		}()
		<-entered

		_, err := uc.ConfirmConversion(context.Background(), "RR950", "pay_1")
		if !errors.Is(err, ErrPaymentInFlight) {
			t.Fatalf("expected ErrPaymentInFlight for the overlapping call, got %v", err)
		}

		close(release)
		if err := <-firstErr; err != nil {
			t.Fatalf("first conversion failed: %v", err)
		}
		if got := uc.GroupState("RR950"); got != PaymentStateDone {
			t.Fatalf("state = %s, want done", got)
		}
	})

	t.Run("conversion rejected while gateway order is being created", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		uc.setState("RR960", PaymentStateCreatingOrder)
		_, err := uc.ConfirmConversion(context.Background(), "RR960", "pay_1")
		if !errors.Is(err, ErrPaymentInFlight) {
			t.Fatalf("expected ErrPaymentInFlight, got %v", err)
		}
	})
}

func TestPaymentUseCase_CancelCheckout(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil, nil, nil)

	uc.CancelCheckout("#RR900")
	if got := uc.GroupState("RR900"); got != PaymentStateCancelled {
		t.Fatalf("state = %s, want cancelled", got)
	}

	// Cancelled is not in flight.
	if PaymentStateCancelled.inFlight() {
		t.Fatal("cancelled must be retryable")
	}

	// Blank numbers are ignored.
	uc.CancelCheckout("  ")
	if got := uc.GroupState(""); got != PaymentStateIdle {
		t.Fatalf("state for blank group = %s, want idle", got)
	}
}

func TestGenerateReferenceNo(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := GenerateReferenceNo()
		if len(ref) != 8 || !strings.HasPrefix(ref, "RR") {
			t.Fatalf("reference %q, want RR plus six digits", ref)
		}
		for _, c := range ref[2:] {
			if c < '0' || c > '9' {
				t.Fatalf("reference %q has non-digit suffix", ref)
			}
		}
		seen[ref] = true
	}
	if len(seen) < 2 {
		t.Fatal("references never vary")
	}
}
