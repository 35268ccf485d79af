package handlers

import (
	"strings"

	"construction-dashboard/internal/dto"
	"construction-dashboard/internal/errors"
	"construction-dashboard/internal/services"
	"construction-dashboard/internal/viewstate"

	"github.com/labstack/echo/v4"
)

// ListHandler serves the searchable, filterable list screens. The view state
// travels in the URL: search, sort, direction, page, pageSize, and any other
// key is a field filter.
type ListHandler struct {
	listService services.ListServiceInterface
}

func NewListHandler(listService services.ListServiceInterface) *ListHandler {
	return &ListHandler{listService: listService}
}

// ListEmployees
// @Summary List employees
// @Tags Lists
// @Produce json
// @Param search query string false "Case-insensitive search over name, email and position"
// @Param position query string false "Filter by position"
// @Param status query string false "Filter by status"
// @Param sort query string false "Sort field"
// @Param direction query string false "asc or desc"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} SuccessResponse{data=dto.ListResponse[models.Employee]}
// @Failure 400 {object} errors.ErrorResponse "VIEW_001 - Unknown field"
// @Router /employees [get]
func (h *ListHandler) ListEmployees(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	result, err := h.listService.ListEmployees(c.Request().Context(), query)
	if err != nil {
		return handleServiceError(c, err)
	}
	return sendList(c, result)
}

// ListProjects
// @Summary List projects
// @Tags Lists
// @Produce json
// @Router /projects [get]
func (h *ListHandler) ListProjects(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	result, err := h.listService.ListProjects(c.Request().Context(), query)
	if err != nil {
		return handleServiceError(c, err)
	}
	return sendList(c, result)
}

// ListUsers
// @Summary List users
// @Tags Lists
// @Produce json
// @Router /users [get]
func (h *ListHandler) ListUsers(c echo.Context) error {
	query, err := bindListQuery(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	result, err := h.listService.ListUsers(c.Request().Context(), query)
	if err != nil {
		return handleServiceError(c, err)
	}
	return sendList(c, result)
}

func bindListQuery(c echo.Context) (viewstate.Query, error) {
	var q dto.ListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return viewstate.Query{}, err
	}
	if err := c.Validate(q); err != nil {
		return viewstate.Query{}, err
	}

	filters := map[string]string{}
	for key, values := range c.QueryParams() {
		if dto.ReservedListKeys[key] || len(values) == 0 {
			continue
		}
		filters[key] = strings.TrimSpace(values[0])
	}

	return viewstate.Query{
		Search:    strings.TrimSpace(q.Search),
		Filters:   filters,
		Sort:      q.Sort,
		Direction: q.Direction,
		Page:      q.Page,
		PageSize:  q.PageSize,
	}, nil
}

func sendList[T any](c echo.Context, result *services.ListResult[T]) error {
	return sendData(c, newListResponse(result), result.Snapshot)
}

func newListResponse[T any](result *services.ListResult[T]) dto.ListResponse[T] {
	return dto.ListResponse[T]{
		Items: result.View.Items,
		Pagination: dto.ListPagination{
			Page:       result.View.Page,
			PageSize:   result.View.PageSize,
			TotalPages: result.View.TotalPages,
			TotalItems: result.View.TotalItems,
		},
		State: dto.ListState{
			Search:    result.State.SearchTerm,
			Filters:   result.State.Filters,
			Sort:      result.State.SortKey,
			Direction: string(result.State.SortDirection),
		},
	}
}
