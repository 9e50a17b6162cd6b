package api

import "encoding/json"

// envelope is the wrapper every endpoint answers with.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors,omitempty"`
}

// PagedResponse is the data of every list endpoint.
type PagedResponse[T any] struct {
	Data            []T  `json:"data"`
	PageNumber      int  `json:"pageNumber"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	TotalRecords    int  `json:"totalRecords"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// Clone copies the page so callers can't alias slice state.
func (p *PagedResponse[T]) Clone() *PagedResponse[T] {
	if p == nil {
		return nil
	}
	out := *p
	out.Data = append([]T(nil), p.Data...)
	return &out
}
