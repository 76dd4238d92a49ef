package dto

import "time"

// CreateSalesRequest input for creating a sale.
type CreateSalesRequest struct {
	CompanyID string `json:"companyId"`
	ItemID    string `json:"itemId"`
	Unit      string `json:"unit"`
}

// UpdateSalesRequest input for updating a sale. Absent fields keep the
// current row values.
type UpdateSalesRequest struct {
	CompanyID *string `json:"companyId"`
	ItemID    *string `json:"itemId"`
	Unit      *string `json:"unit"`
}

// SalesResponse output for a sale, enriched with company and item fields
// from the left joins. Enrichment fields are null when the counterpart
// row is missing.
type SalesResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	ItemID       string    `json:"itemId"`
	Unit         string    `json:"unit"`
	CompanyName  *string   `json:"companyName"`
	CompanyGstNo *string   `json:"companyGstNo"`
	ItemName     *string   `json:"itemName"`
	ItemHsnCode  *string   `json:"itemHsnCode"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
