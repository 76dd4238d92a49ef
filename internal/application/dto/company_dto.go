package dto

import "time"

// CreateCompanyRequest input for creating a company. Optional fields are
// pointers so that null and "" can be treated as absent.
type CreateCompanyRequest struct {
	Name    string  `json:"name"`
	GstNo   string  `json:"gstNo"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Pincode string  `json:"pincode"`
	Status  string  `json:"status"`
}

// UpdateCompanyRequest input for updating a company.
type UpdateCompanyRequest struct {
	Name    string  `json:"name"`
	GstNo   string  `json:"gstNo"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Pincode string  `json:"pincode"`
	Status  string  `json:"status"`
}

// CompanyResponse output for a company.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GstNo     string    `json:"gstNo"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
