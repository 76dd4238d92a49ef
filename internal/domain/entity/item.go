package entity

import "time"

// Item represents a sellable good identified for tax purposes by its HSN
// classification code. HSN uniqueness is checked by the item use case
// before insert, not by a database constraint.
type Item struct {
	ID          string
	Name        string
	Description *string
	HsnCode     string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
