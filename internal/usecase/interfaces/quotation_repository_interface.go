package interfaces

import (
	"context"

	"rrportal/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for quotation line items.
//
// The portal must be able to:
//   - persist the line items created by the quotation flow (with customer snapshot)
//   - list a user's items for grouped display
//   - resolve a whole group by quotation number (PDF, payment, conversion)
//   - delete a whole group by quotation number

type IQuotationRepository interface {
	CreateMany(ctx context.Context, items []entities.Quotation) ([]entities.Quotation, error)
	ListByUserID(ctx context.Context, userID string, status entities.QuotationStatus) ([]entities.Quotation, error)
	ListByQuotationNo(ctx context.Context, quotationNo string) ([]entities.Quotation, error)
	DeleteByQuotationNo(ctx context.Context, quotationNo string) (int, error)
}
