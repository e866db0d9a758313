package dto

import "time"

type InspectionItemResponse struct {
	ID         int64     `json:"id"`
	Category   string    `json:"category"`
	Element    string    `json:"element"`
	OK         bool      `json:"ok"`
	Notes      string    `json:"notes"`
	ModifiedAt time.Time `json:"modified_at"`
}

type ListInspectionItemsResponse struct {
	Items []InspectionItemResponse `json:"items"`
}

type InitChecklistResponse struct {
	Added int `json:"added"`
}

// Absent fields keep their stored value.
type InspectionItemPatchRequest struct {
	OK    *bool   `json:"ok"`
	Notes *string `json:"notes"`
}

type UnitInfoRequest struct {
	Unit     *string `json:"unit"`
	Model    *string `json:"model"`
	Operator *string `json:"operator"`
}

type UnitInfoResponse struct {
	Unit       string     `json:"unit"`
	Model      string     `json:"model"`
	Operator   string     `json:"operator"`
	ModifiedAt *time.Time `json:"modified_at"`
}
