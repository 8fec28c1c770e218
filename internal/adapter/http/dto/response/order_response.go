package response

import "rrportal/internal/usecase"

type OrderResponse struct {
	ID              string   `json:"id"`
	SessionID       string   `json:"session_id,omitempty"`
	OrderNo         string   `json:"order_no"`
	QuotationNo     string   `json:"quotation_no"`
	StudyType       string   `json:"study_type"`
	Category        string   `json:"category,omitempty"`
	Guidelines      []string `json:"selected_guidelines,omitempty"`
	Studies         []string `json:"selected_studies,omitempty"`
	Amount          float64  `json:"amount"`
	NumberOfSamples int      `json:"number_of_samples"`
	RawStatus       string   `json:"raw_status"`
	Status          string   `json:"status"`
	CreatedOn       string   `json:"created_on"`
	ValidTill       string   `json:"valid_till,omitempty"`
}

type OrderListResponse struct {
	Success bool            `json:"success"`
	Data    []OrderResponse `json:"data"`
}

func FromOrderViews(views []usecase.OrderView) OrderListResponse {
	data := make([]OrderResponse, len(views))
	for i, v := range views {
		data[i] = OrderResponse{
			ID:              v.ID,
			SessionID:       v.SessionID,
			OrderNo:         v.OrderNo,
			QuotationNo:     v.QuotationNo,
			StudyType:       v.StudyType,
			Category:        v.Category,
			Guidelines:      v.Guidelines,
			Studies:         v.Studies,
			Amount:          v.Amount,
			NumberOfSamples: v.NumberOfSamples,
			RawStatus:       v.RawStatus,
			Status:          string(v.DisplayStatus),
			CreatedOn:       v.CreatedOn,
			ValidTill:       v.ValidTill,
		}
	}
	return OrderListResponse{Success: true, Data: data}
}
