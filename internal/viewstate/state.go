package viewstate

import (
	"fmt"
	"maps"
	"strings"
)

// State is the complete user-controlled view state of one list screen
type State struct {
	SearchTerm    string            `json:"search_term"`
	Filters       map[string]string `json:"filters"`
	SortKey       string            `json:"sort_key,omitempty"`
	SortDirection Direction         `json:"sort_direction"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
}

func (s State) clone() State {
	next := s
	next.Filters = maps.Clone(s.Filters)
	if next.Filters == nil {
		next.Filters = map[string]string{}
	}
	return next
}

// Action is a single state transition
type Action interface {
	action()
}

type SetSearchTerm struct{ Term string }

type SetFilter struct {
	Field string
	Value string
}

// SetSort toggles direction when Key is already the sort key, otherwise
// sorts ascending by Key
type SetSort struct{ Key string }

type SetSortDirection struct{ Direction Direction }

type SetPage struct{ Page int }

type SetPageSize struct{ Size int }

func (SetSearchTerm) action()    {}
func (SetFilter) action()        {}
func (SetSort) action()          {}
func (SetSortDirection) action() {}
func (SetPage) action()          {}
func (SetPageSize) action()      {}

// Reduce applies an action to a state. Search, filter and page size changes
// return to page 1; page requests are clamped to the pages the filtered
// source actually has. On error the input state is returned unchanged.
func Reduce[T any](cfg Config[T], source []T, state State, action Action) (State, error) {
	next := state.clone()

	switch a := action.(type) {
	case SetSearchTerm:
		next.SearchTerm = a.Term
		next.Page = 1

	case SetFilter:
		if !cfg.isFilterable(a.Field) {
			return state, fmt.Errorf("%w: %q is not filterable", ErrUnknownField, a.Field)
		}
		value := strings.TrimSpace(a.Value)
		if value == "" || value == FilterAll {
			delete(next.Filters, a.Field)
		} else {
			next.Filters[a.Field] = value
		}
		next.Page = 1

	case SetSort:
		if _, ok := cfg.field(a.Key); !ok {
			return state, fmt.Errorf("%w: %q is not sortable", ErrUnknownField, a.Key)
		}
		if next.SortKey == a.Key {
			next.SortDirection = toggle(next.SortDirection)
		} else {
			next.SortKey = a.Key
			next.SortDirection = Asc
		}

	case SetSortDirection:
		if a.Direction != Asc && a.Direction != Desc {
			return state, fmt.Errorf("%w: %q", ErrInvalidDirection, a.Direction)
		}
		next.SortDirection = a.Direction

	case SetPage:
		next.Page = clampPage(a.Page, TotalPages(len(Filtered(cfg, source, next)), next.PageSize))

	case SetPageSize:
		if a.Size < 1 {
			return state, fmt.Errorf("%w: got %d", ErrInvalidPageSize, a.Size)
		}
		next.PageSize = a.Size
		next.Page = 1

	default:
		return state, fmt.Errorf("unsupported action %T", action)
	}

	return next, nil
}

func toggle(d Direction) Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// TotalPages is ceil(n/pageSize), never less than 1
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
