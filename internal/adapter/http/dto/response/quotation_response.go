package response

import (
	"rrportal/internal/domain/entities"
	"rrportal/internal/domain/pricing"
	"rrportal/internal/usecase"
)

type QuotationItemResponse struct {
	ID              string   `json:"id"`
	SessionID       string   `json:"session_id,omitempty"`
	QuotationNo     string   `json:"quotation_no"`
	StudyType       string   `json:"study_type"`
	Category        string   `json:"category,omitempty"`
	Guidelines      []string `json:"selected_guidelines,omitempty"`
	Studies         []string `json:"selected_studies,omitempty"`
	Amount          float64  `json:"amount"`
	NumberOfSamples int      `json:"number_of_samples"`
	Status          string   `json:"status"`
	StatusLabel     string   `json:"status_label"`
	CreatedOn       string   `json:"created_on"`
	ValidTill       string   `json:"valid_till,omitempty"`
}

type QuotationGroupResponse struct {
	Key         string                    `json:"key"`
	QuotationNo string                    `json:"quotation_no"`
	Customer    entities.CustomerSnapshot `json:"customer"`
	Items       []QuotationItemResponse   `json:"items"`
	Summary     pricing.Breakdown         `json:"summary"`
}

type QuotationListResponse struct {
	Success bool                     `json:"success"`
	Data    []QuotationGroupResponse `json:"data"`
}

func FromQuotationGroups(groups []usecase.QuotationGroup) QuotationListResponse {
	data := make([]QuotationGroupResponse, len(groups))
	for i, g := range groups {
		items := make([]QuotationItemResponse, len(g.Items))
		for j, it := range g.Items {
			items[j] = fromQuotationItem(it)
		}
		var customer entities.CustomerSnapshot
		if len(g.Items) > 0 {
			customer = g.Items[0].Customer
		}
		data[i] = QuotationGroupResponse{
			Key:         g.Key,
			QuotationNo: g.QuotationNo,
			Customer:    customer,
			Items:       items,
			Summary:     g.Summary,
		}
	}
	return QuotationListResponse{Success: true, Data: data}
}

func fromQuotationItem(q entities.Quotation) QuotationItemResponse {
	return QuotationItemResponse{
		ID:              q.ID,
		SessionID:       q.SessionID,
		QuotationNo:     q.QuotationNo,
		StudyType:       q.StudyType,
		Category:        q.Category,
		Guidelines:      q.Guidelines,
		Studies:         q.Studies,
		Amount:          q.Amount,
		NumberOfSamples: q.NumberOfSamples,
		Status:          string(q.Status),
		StatusLabel:     q.Status.DisplayLabel(),
		CreatedOn:       q.CreatedOn,
		ValidTill:       q.ValidTill,
	}
}

type CreateQuotationResponse struct {
	Success     bool                    `json:"success"`
	QuotationNo string                  `json:"quotation_no"`
	Data        []QuotationItemResponse `json:"data"`
}

func FromCreatedQuotations(items []entities.Quotation) CreateQuotationResponse {
	data := make([]QuotationItemResponse, len(items))
	for i, it := range items {
		data[i] = fromQuotationItem(it)
	}
	quotationNo := ""
	if len(items) > 0 {
		quotationNo = items[0].QuotationNo
	}
	return CreateQuotationResponse{Success: true, QuotationNo: quotationNo, Data: data}
}

// Empty is the body of a successful deletion.
type Empty struct{}
