package request

import (
	"rrportal/internal/domain/entities"
	"rrportal/internal/domain/pricing"
)

// CustomerPayload tolerates both the snake_case and camelCase field variants
// produced by older portal clients. Normalize collapses them once, here at
// the ingestion boundary; nothing past the DTO layer sees the dual shape.

type CustomerPayload struct {
	CustomerName    string `json:"customer_name"`
	CustomerNameAlt string `json:"customerName"`
	Name            string `json:"name"`

	CustomerEmail    string `json:"customer_email"`
	CustomerEmailAlt string `json:"customerEmail"`
	Email            string `json:"email"`

	CustomerPhone    string `json:"customer_phone"`
	CustomerPhoneAlt string `json:"customerPhone"`
	Phone            string `json:"phone"`

	CustomerCompany    string `json:"customer_company"`
	CustomerCompanyAlt string `json:"customerCompany"`
	Company            string `json:"company"`
}

func (p CustomerPayload) Normalize() entities.CustomerSnapshot {
	return entities.NormalizeCustomer(
		[]string{p.CustomerName, p.CustomerNameAlt, p.Name},
		[]string{p.CustomerEmail, p.CustomerEmailAlt, p.Email},
		[]string{p.CustomerPhone, p.CustomerPhoneAlt, p.Phone},
		[]string{p.CustomerCompany, p.CustomerCompanyAlt, p.Company},
	)
}

// QuotationItemRequest is one line item of a quotation creation request.
// Amount arrives untyped because clients send both numbers and numeric
// strings; malformed values price as zero rather than failing the request.

type QuotationItemRequest struct {
	SessionID          string      `json:"session_id"`
	QuotationNo        string      `json:"quotation_no"`
	StudyType          string      `json:"study_type" binding:"required"`
	Category           string      `json:"category"`
	SelectedGuidelines []string    `json:"selected_guidelines"`
	SelectedStudies    []string    `json:"selected_studies"`
	Amount             interface{} `json:"amount"`
	NumberOfSamples    int         `json:"number_of_samples"`
	Status             string      `json:"status"`
	CreatedOn          string      `json:"created_on"`
	ValidTill          string      `json:"valid_till"`
}

type CreateQuotationRequest struct {
	UserID   string                 `json:"user_id" binding:"required"`
	Customer CustomerPayload        `json:"customer"`
	Items    []QuotationItemRequest `json:"items" binding:"required"`
}

// ToEntities converts the request into domain line items, applying customer
// normalization and loose amount parsing exactly once.
func (r CreateQuotationRequest) ToEntities() []entities.Quotation {
	customer := r.Customer.Normalize()
	items := make([]entities.Quotation, len(r.Items))
	for i, it := range r.Items {
		items[i] = entities.Quotation{
			UserID:          r.UserID,
			SessionID:       it.SessionID,
			QuotationNo:     it.QuotationNo,
			StudyType:       it.StudyType,
			Category:        it.Category,
			Guidelines:      it.SelectedGuidelines,
			Studies:         it.SelectedStudies,
			Amount:          pricing.ParseAmount(it.Amount),
			NumberOfSamples: it.NumberOfSamples,
			Status:          entities.QuotationStatus(it.Status),
			CreatedOn:       it.CreatedOn,
			ValidTill:       it.ValidTill,
			Customer:        customer,
		}
	}
	return items
}

// DeleteQuotationRequest removes a whole group by quotation number.
type DeleteQuotationRequest struct {
	QuotationNo string `json:"quotation_no" binding:"required"`
}

// GenerateQuotationPDFRequest identifies the group whose PDF is assembled.
type GenerateQuotationPDFRequest struct {
	QuotationNo string `json:"quotation_no" binding:"required"`
}
