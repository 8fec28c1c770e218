package usecase

import (
	"context"
	"strings"
	"time"

	"rrportal/internal/domain/entities"
	"rrportal/internal/usecase/interfaces"
)

// OrderView is an order plus its derived display status.

type OrderView struct {
	entities.Order
	DisplayStatus entities.OrderDisplayStatus `json:"display_status"`
}

// IOrderUseCase exposes order listing with status derivation and filtering.

type IOrderUseCase interface {
	ListByUser(ctx context.Context, userID, status, sessionID string) ([]OrderView, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// ListByUser returns the user's orders with display statuses derived as of
// today. The optional status filter matches the derived status, not the raw
// backend one; the optional sessionID filter narrows to one checkout session.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID, status, sessionID string) ([]OrderView, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	orders, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		if sessionID != "" && o.SessionID != sessionID {
			continue
		}
		derived := entities.DeriveOrderStatus(o.RawStatus, o.ValidTill, today)
		if status != "" && string(derived) != status {
			continue
		}
		views = append(views, OrderView{Order: o, DisplayStatus: derived})
	}
	return views, nil
}
