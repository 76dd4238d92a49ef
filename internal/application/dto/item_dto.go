package dto

import "time"

// CreateItemRequest input for creating an item.
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	HsnCode     string  `json:"hsnCode"`
	Status      string  `json:"status"`
}

// UpdateItemRequest input for updating an item. Fields other than name
// are optional; absent values keep the current row values.
type UpdateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	HsnCode     *string `json:"hsnCode"`
	Status      *string `json:"status"`
}

// ItemResponse output for an item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	HsnCode     string    `json:"hsnCode"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
