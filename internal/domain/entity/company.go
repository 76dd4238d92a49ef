package entity

import "time"

// Company represents a registered business. GstNo is unique across all
// companies; deletion is blocked while any sale references the company.
type Company struct {
	ID        string
	Name      string
	GstNo     string  // Indian GST registration number, pattern-validated
	Email     *string // nil when not provided
	Phone     *string // normalized to +91 prefix when given as 10 digits
	Address   string
	City      string
	State     string
	Pincode   string // 6-digit Indian postal code
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
