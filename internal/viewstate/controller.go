package viewstate

import (
	"slices"
	"sort"
	"strings"
)

// Controller owns the state of one list screen over a source snapshot.
// It is not safe for concurrent use; each screen instance gets its own.
type Controller[T any] struct {
	cfg    Config[T]
	source []T
	state  State
}

// New validates the config and starts a controller in its initial state
func New[T any](source []T, cfg Config[T]) (*Controller[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller[T]{
		cfg:    cfg,
		source: slices.Clone(source),
		state:  cfg.InitialState(),
	}, nil
}

// Dispatch applies an action; on error the state is left unchanged
func (c *Controller[T]) Dispatch(action Action) error {
	next, err := Reduce(c.cfg, c.source, c.state, action)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

func (c *Controller[T]) SetSearchTerm(term string) {
	_ = c.Dispatch(SetSearchTerm{Term: term})
}

func (c *Controller[T]) SetFilter(field, value string) error {
	return c.Dispatch(SetFilter{Field: field, Value: value})
}

func (c *Controller[T]) SetSort(key string) error {
	return c.Dispatch(SetSort{Key: key})
}

func (c *Controller[T]) SetSortDirection(direction Direction) error {
	return c.Dispatch(SetSortDirection{Direction: direction})
}

func (c *Controller[T]) SetPage(page int) {
	_ = c.Dispatch(SetPage{Page: page})
}

func (c *Controller[T]) SetPageSize(size int) error {
	return c.Dispatch(SetPageSize{Size: size})
}

// ReplaceSource swaps in a refreshed snapshot and keeps the view state;
// the page is re-clamped against the new data
func (c *Controller[T]) ReplaceSource(source []T) {
	c.source = slices.Clone(source)
	c.state.Page = clampPage(c.state.Page, TotalPages(len(Filtered(c.cfg, c.source, c.state)), c.state.PageSize))
}

// State returns a copy of the current view state
func (c *Controller[T]) State() State {
	return c.state.clone()
}

// View derives the visible page
func (c *Controller[T]) View() View[T] {
	return Derive(c.cfg, c.source, c.state)
}

// Query is a complete view state request, as sent by a list screen URL.
// Zero values leave the corresponding state untouched.
type Query struct {
	Search    string
	Filters   map[string]string
	Sort      string
	Direction string
	Page      int
	PageSize  int
}

// Apply replays a query as actions: page size, search, filters, sort,
// direction, then page, so the requested page survives the resets the
// earlier actions cause
func (c *Controller[T]) Apply(q Query) error {
	if q.PageSize != 0 {
		if err := c.SetPageSize(q.PageSize); err != nil {
			return err
		}
	}

	if q.Search != "" {
		c.SetSearchTerm(q.Search)
	}

	fields := make([]string, 0, len(q.Filters))
	for field := range q.Filters {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if err := c.SetFilter(field, q.Filters[field]); err != nil {
			return err
		}
	}

	if q.Sort != "" && q.Sort != c.state.SortKey {
		if err := c.SetSort(q.Sort); err != nil {
			return err
		}
	}

	if strings.TrimSpace(q.Direction) != "" {
		direction, err := ParseDirection(q.Direction)
		if err != nil {
			return err
		}
		if err := c.SetSortDirection(direction); err != nil {
			return err
		}
	}

	if q.Page != 0 {
		c.SetPage(q.Page)
	}

	return nil
}
