package leadapi

// PageResponse is the body of GET /leads/getleads.
type PageResponse struct {
	Success    bool       `json:"success"`
	Data       []LeadJSON `json:"data"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
}

// SearchResponse is the body of GET /leads/search.
type SearchResponse struct {
	Success bool       `json:"success"`
	Leads   []LeadJSON `json:"leads"`
}

// LeadResponse is the body of the add and edit endpoints.
type LeadResponse struct {
	Success bool      `json:"success"`
	Lead    *LeadJSON `json:"lead"`
}

// AckResponse is the body of the delete endpoint. Success is a pointer
// because an empty body is a valid acknowledgement.
type AckResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Errors  []FieldErrorJSON `json:"errors,omitempty"`
}

// FieldErrorJSON is one field-level validation failure.
type FieldErrorJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
