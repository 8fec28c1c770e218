package interfaces

import (
	"context"

	"rrportal/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for converted orders.

type IOrderRepository interface {
	CreateMany(ctx context.Context, orders []entities.Order) ([]entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
}
