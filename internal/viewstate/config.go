// Package viewstate implements the search, filter, sort and paginate pipeline
// shared by every list screen. All transitions are pure: Reduce takes the
// current state and an action and returns the next state, and Derive computes
// the visible page from a state. Nothing derived is ever stored.
package viewstate

import (
	"errors"
	"fmt"
	"strings"
)

// FilterAll disables a filter for its field
const FilterAll = "All"

// Direction is the sort order
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

var (
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidPageSize  = errors.New("page size must be at least 1")
	ErrInvalidDirection = errors.New("sort direction must be asc or desc")
	ErrInvalidConfig    = errors.New("invalid view configuration")
)

// ParseDirection normalises user input; empty input means ascending
func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(value))) {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, value)
	}
}

// Field exposes one column of T to the pipeline. Value should return a
// string, an integer or float, a decimal.Decimal, a time.Time or a bool;
// other kinds compare by their formatted text.
type Field[T any] struct {
	Name  string
	Value func(T) any
}

// Config describes a list screen
type Config[T any] struct {
	Fields           []Field[T]
	SearchableFields []string
	FilterableFields []string
	DefaultSort      string
	DefaultDirection Direction
	PageSize         int
}

// Validate checks that every referenced field is declared
func (c Config[T]) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidPageSize)
	}

	declared := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if f.Name == "" || f.Value == nil {
			return fmt.Errorf("%w: field %q has no name or accessor", ErrInvalidConfig, f.Name)
		}
		declared[f.Name] = true
	}

	check := func(kind string, names ...string) error {
		for _, name := range names {
			if !declared[name] {
				return fmt.Errorf("%w: %s field %q is not declared", ErrInvalidConfig, kind, name)
			}
		}
		return nil
	}

	if err := check("searchable", c.SearchableFields...); err != nil {
		return err
	}
	if err := check("filterable", c.FilterableFields...); err != nil {
		return err
	}
	if c.DefaultSort != "" {
		if err := check("sort", c.DefaultSort); err != nil {
			return err
		}
	}
	if c.DefaultDirection != "" && c.DefaultDirection != Asc && c.DefaultDirection != Desc {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidDirection)
	}
	return nil
}

// InitialState is the state a freshly opened screen starts in
func (c Config[T]) InitialState() State {
	direction := c.DefaultDirection
	if direction == "" {
		direction = Asc
	}
	return State{
		Filters:       map[string]string{},
		SortKey:       c.DefaultSort,
		SortDirection: direction,
		Page:          1,
		PageSize:      c.PageSize,
	}
}

// FieldNames lists the declared fields in declaration order
func (c Config[T]) FieldNames() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}
	return names
}

func (c Config[T]) field(name string) (Field[T], bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (c Config[T]) isFilterable(name string) bool {
	for _, f := range c.FilterableFields {
		if f == name {
			return true
		}
	}
	return false
}
