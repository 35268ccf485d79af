package dto

// ListQuery holds the fixed list screen parameters; per-field filters are
// read from the remaining query keys.
type ListQuery struct {
	Search    string `query:"search" validate:"max=200"`
	Sort      string `query:"sort"`
	Direction string `query:"direction" validate:"sort_direction"`
	Page      int    `query:"page" validate:"gte=0"`
	PageSize  int    `query:"pageSize" validate:"gte=0,lte=500"`
}

// ReservedListKeys are the query keys that are never treated as filters
var ReservedListKeys = map[string]bool{
	"search":    true,
	"sort":      true,
	"direction": true,
	"page":      true,
	"pageSize":  true,
}

// ListState echoes the view state the page was derived from
type ListState struct {
	Search    string            `json:"search"`
	Filters   map[string]string `json:"filters"`
	Sort      string            `json:"sort"`
	Direction string            `json:"direction"`
}

type ListPagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

type ListResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination ListPagination `json:"pagination"`
	State      ListState      `json:"state"`
}
