package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"rrportal/internal/domain/entities"
	"rrportal/internal/domain/grouping"
	"rrportal/internal/domain/pricing"
	"rrportal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound     = errors.New("quotation not found")
	ErrInvalidQuotationNo    = errors.New("invalid quotation number")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrEmptyQuotation        = errors.New("quotation has no line items")
	ErrRendererNotConfigured = errors.New("document renderer not configured")
)

// QuotationGroup is one display/operation unit: the items sharing a grouping
// key plus the totals derived from them.

type QuotationGroup struct {
	Key         string               `json:"key"`
	QuotationNo string               `json:"quotation_no"`
	Items       []entities.Quotation `json:"items"`
	Summary     pricing.Breakdown    `json:"summary"`
}

// IQuotationUseCase exposes quotation operations: creation with customer
// snapshot, grouped listing, group deletion and PDF generation.

type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, items []entities.Quotation) ([]entities.Quotation, error)
	ListGroupedByUser(ctx context.Context, userID string, status entities.QuotationStatus) ([]QuotationGroup, error)
	DeleteByQuotationNo(ctx context.Context, quotationNo string) (int, error)
	GenerateQuotationPDF(ctx context.Context, quotationNo string) ([]byte, error)
}

type QuotationUseCase struct {
	repo     interfaces.IQuotationRepository
	renderer interfaces.IDocumentRenderer
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, renderer interfaces.IDocumentRenderer) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, renderer: renderer}
}

func (u *QuotationUseCase) CreateQuotation(ctx context.Context, items []entities.Quotation) ([]entities.Quotation, error) {
	if len(items) == 0 {
		return nil, ErrEmptyQuotation
	}

	quotationNo := entities.NormalizeQuotationNo(items[0].QuotationNo)
	if quotationNo == "" {
		quotationNo = GenerateReferenceNo()
	}

	now := time.Now().UTC()
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		items[i].QuotationNo = quotationNo
		if items[i].Status == "" {
			items[i].Status = entities.QuotationStatusPending
		}
		if strings.TrimSpace(items[i].CreatedOn) == "" {
			items[i].CreatedOn = now.Format("2006-01-02")
		}
	}

	created, err := u.repo.CreateMany(ctx, items)
	if err != nil {
		log.Printf("[quotation][usecase] create failed quotation_no=%s err=%v", quotationNo, err)
		return nil, err
	}
	log.Printf("[quotation][usecase] create success quotation_no=%s items=%d", quotationNo, len(created))
	return created, nil
}

func (u *QuotationUseCase) ListGroupedByUser(ctx context.Context, userID string, status entities.QuotationStatus) ([]QuotationGroup, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	items, err := u.repo.ListByUserID(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	groups := grouping.GroupBy(items)
	result := make([]QuotationGroup, len(groups))
	for i, g := range groups {
		result[i] = QuotationGroup{
			Key:         g.Key,
			QuotationNo: g.PaymentReference(),
			Items:       g.Items,
			Summary:     pricing.GroupTotal(g.Items),
		}
	}
	return result, nil
}

func (u *QuotationUseCase) DeleteByQuotationNo(ctx context.Context, quotationNo string) (int, error) {
	quotationNo = entities.NormalizeQuotationNo(quotationNo)
	if quotationNo == "" {
		return 0, ErrInvalidQuotationNo
	}

	deleted, err := u.repo.DeleteByQuotationNo(ctx, quotationNo)
	if err != nil {
		log.Printf("[quotation][usecase] delete failed quotation_no=%s err=%v", quotationNo, err)
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrQuotationNotFound
	}
	log.Printf("[quotation][usecase] delete success quotation_no=%s items=%d", quotationNo, deleted)
	return deleted, nil
}

func (u *QuotationUseCase) GenerateQuotationPDF(ctx context.Context, quotationNo string) ([]byte, error) {
	quotationNo = entities.NormalizeQuotationNo(quotationNo)
	if quotationNo == "" {
		return nil, ErrInvalidQuotationNo
	}
	if u.renderer == nil {
		return nil, ErrRendererNotConfigured
	}

	items, err := u.repo.ListByQuotationNo(ctx, quotationNo)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrQuotationNotFound
	}

	doc := BuildQuotationDocument(quotationNo, items)
	log.Printf("[quotation][usecase] pdf render start quotation_no=%s products=%d", quotationNo, len(doc.Products))
	blob, err := u.renderer.RenderQuotationPDF(ctx, doc)
	if err != nil {
		log.Printf("[quotation][usecase] pdf render failed quotation_no=%s err=%v", quotationNo, err)
		return nil, err
	}
	return blob, nil
}

// Standard commercial terms printed on every quotation PDF.
var quotationTerms = []string{
	"Prices are exclusive of GST; GST at 18% is applied on the subtotal.",
	"This quotation is valid until the date stated above.",
	"Sample shipping and customs clearance are the sponsor's responsibility.",
	"Study initiation follows receipt of samples and advance payment.",
}

// BuildQuotationDocument assembles the renderer payload for one group: one
// product per line item with its per-guideline price rows, the customer
// snapshot of the first item, and the group totals.
func BuildQuotationDocument(quotationNo string, items []entities.Quotation) interfaces.QuotationDocument {
	products := make([]interfaces.DocumentProduct, len(items))
	for i, it := range items {
		lines, strategy := pricing.ItemBreakdown(it)
		name := it.Category
		if name == "" {
			name = it.StudyType
		}
		products[i] = interfaces.DocumentProduct{
			Name:       name,
			StudyType:  it.StudyType,
			Samples:    it.NumberOfSamples,
			Guidelines: lines,
		}
		log.Printf("[quotation][usecase] breakdown quotation_no=%s item=%s strategy=%s lines=%d", quotationNo, it.ID, strategy, len(lines))
	}

	first := items[0]
	return interfaces.QuotationDocument{
		Quotation: interfaces.DocumentQuotation{
			QuotationNo: quotationNo,
			CreatedOn:   first.CreatedOn,
			ValidTill:   first.ValidTill,
		},
		Customer:  first.Customer,
		Products:  products,
		Documents: interfaces.DocumentFlags{ShowTerms: true, ShowBankInfo: true, ShowSignature: true},
		Terms:     quotationTerms,
		Summary:   pricing.GroupTotal(items),
	}
}
