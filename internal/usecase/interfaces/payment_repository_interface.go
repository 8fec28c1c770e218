package interfaces

import (
	"context"

	"rrportal/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for gateway payments.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByQuotationNo(ctx context.Context, quotationNo string) ([]entities.Payment, error)
	MarkCaptured(ctx context.Context, id, gatewayPaymentID, convertedOrderNo string) (entities.Payment, error)
}
