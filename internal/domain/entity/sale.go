package entity

import "time"

// Units of measure accepted for a sale.
var Units = []string{"PCS", "NOS", "KGS", "GMS", "LTR", "MTR", "BOX", "SET", "DOZ", "BAG"}

// Sale links a company and an item with a unit of measure. Both foreign
// keys must reference existing rows; the database enforces this.
type Sale struct {
	ID        string
	CompanyID string
	ItemID    string
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Enrichment from the left joins against company and item. Nil when
	// the counterpart row is missing.
	CompanyName  *string
	CompanyGstNo *string
	ItemName     *string
	ItemHsnCode  *string
}
