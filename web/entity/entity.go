// Package entity defines the response envelope and pagination structures
// shared by the web layer.
package entity

// Meta carries the status block every API response starts with.
type Meta struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Response is the success envelope: {meta, data}.
type Response struct {
	Meta Meta `json:"meta"`
	Data any  `json:"data"`
}

// ValidationResponse is the 422 envelope carrying field-keyed messages.
type ValidationResponse struct {
	Meta   Meta                `json:"meta"`
	Errors map[string][]string `json:"errors"`
}

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
}

// Page bundles listing items with their pagination block.
type Page struct {
	Items      any        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
