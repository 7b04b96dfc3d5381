package models

// PageLink points at the next page of a paginated response. Query is the
// reconstructed query string for that page, preserving the original filter
// parameters.
type PageLink struct {
	Page  int    `json:"page"`
	Query string `json:"query"`
}

// Page is the envelope for paginated collection responses.
type Page struct {
	TotalItems   int       `json:"totalItems"`
	TotalPages   int       `json:"totalPages"`
	CurrentPage  int       `json:"currentPage"`
	ItemsPerPage int       `json:"itemsPerPage"`
	NextPage     *PageLink `json:"nextPage,omitempty"`
	Data         any       `json:"data"`
}
