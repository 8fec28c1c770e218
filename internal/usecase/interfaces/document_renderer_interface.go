package interfaces

import (
	"context"

	"rrportal/internal/domain/entities"
	"rrportal/internal/domain/pricing"
)

// QuotationDocument is the payload handed to the external PDF renderer.
// Shape matches the renderer's contract:
// {quotation, customer, products[], documents, terms[], summary}.

type QuotationDocument struct {
	Quotation DocumentQuotation         `json:"quotation"`
	Customer  entities.CustomerSnapshot `json:"customer"`
	Products  []DocumentProduct         `json:"products"`
	Documents DocumentFlags             `json:"documents"`
	Terms     []string                  `json:"terms"`
	Summary   pricing.Breakdown         `json:"summary"`
}

type DocumentQuotation struct {
	QuotationNo string `json:"quotation_no"`
	CreatedOn   string `json:"created_on"`
	ValidTill   string `json:"valid_till"`
}

type DocumentProduct struct {
	Name       string                  `json:"name"`
	StudyType  string                  `json:"study_type"`
	Samples    int                     `json:"samples"`
	Guidelines []pricing.GuidelineLine `json:"guidelines"`
}

// DocumentFlags toggles the auxiliary sections rendered into the PDF.
type DocumentFlags struct {
	ShowTerms     bool `json:"show_terms"`
	ShowBankInfo  bool `json:"show_bank_info"`
	ShowSignature bool `json:"show_signature"`
}

// IDocumentRenderer abstracts the external PDF rendering service. Rendering
// mechanics live outside this repo; the portal only assembles the payload and
// streams back the binary result.
type IDocumentRenderer interface {
	RenderQuotationPDF(ctx context.Context, doc QuotationDocument) ([]byte, error)
}
