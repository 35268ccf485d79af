package viewstate

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// View is the derived, visible slice of a list screen
type View[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Filtered runs search, field filters and the stable sort, returning a new
// slice. The source is never modified.
func Filtered[T any](cfg Config[T], source []T, state State) []T {
	term := strings.ToLower(strings.TrimSpace(state.SearchTerm))

	type predicate struct {
		field Field[T]
		value string
	}
	filters := make([]predicate, 0, len(state.Filters))
	for name, value := range state.Filters {
		if value == "" || value == FilterAll {
			continue
		}
		if f, ok := cfg.field(name); ok {
			filters = append(filters, predicate{field: f, value: value})
		}
	}

	result := make([]T, 0, len(source))
	for _, item := range source {
		if term != "" && !matchesSearch(cfg, item, term) {
			continue
		}
		keep := true
		for _, p := range filters {
			if Format(p.field.Value(item)) != p.value {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, item)
		}
	}

	if f, ok := cfg.field(state.SortKey); ok {
		desc := state.SortDirection == Desc
		slices.SortStableFunc(result, func(a, b T) int {
			c := Compare(f.Value(a), f.Value(b))
			if desc {
				return -c
			}
			return c
		})
	}

	return result
}

// Derive computes the visible page for a state
func Derive[T any](cfg Config[T], source []T, state State) View[T] {
	rows := Filtered(cfg, source, state)

	pageSize := state.PageSize
	if pageSize < 1 {
		pageSize = cfg.PageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := TotalPages(len(rows), pageSize)
	page := clampPage(state.Page, totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(rows))
	items := []T{}
	if start < end {
		items = rows[start:end]
	}

	return View[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: len(rows),
	}
}

func matchesSearch[T any](cfg Config[T], item T, term string) bool {
	for _, name := range cfg.SearchableFields {
		f, ok := cfg.field(name)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(Format(f.Value(item))), term) {
			return true
		}
	}
	return false
}

// Format renders a field value as text for search and filter matching
func Format(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case decimal.Decimal:
		return value.String()
	case time.Time:
		return value.Format("2006-01-02")
	case bool:
		return strconv.FormatBool(value)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// Compare orders two field values by their natural ordering: strings
// lexicographically, numbers and decimals numerically, times chronologically.
// nil sorts first; values of mismatched kinds fall back to their text.
func Compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case decimal.Decimal:
		if y, ok := b.(decimal.Decimal); ok {
			return x.Cmp(y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}

	if x, ok := asFloat(a); ok {
		if y, ok := asFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}

	return strings.Compare(Format(a), Format(b))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
