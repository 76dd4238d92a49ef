package dto

// Response is the uniform envelope for every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

// Count builds the count pointer for list responses (present even at zero).
func Count(n int) *int {
	return &n
}

// DeletedResponse is the payload returned by single-resource deletes.
type DeletedResponse struct {
	ID        string `json:"id"`
	DeletedAt string `json:"deletedAt"`
}

// BulkDeleteRequest carries the ordered identifier list for bulk deletes.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteResult reports a bulk delete: partial failure is a normal,
// reported outcome.
type BulkDeleteResult struct {
	DeletedCount int      `json:"deletedCount"`
	FailedIDs    []string `json:"failedIds"`
}
