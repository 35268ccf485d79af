package services

import (
	"context"
	"fmt"

	"construction-dashboard/internal/models"
	"construction-dashboard/internal/viewstate"
)

const (
	ScreenEmployees = "employees"
	ScreenProjects  = "projects"
	ScreenUsers     = "users"
)

// ListResult is one derived page of a list screen
type ListResult[T any] struct {
	View     viewstate.View[T]
	State    viewstate.State
	Snapshot models.SnapshotMeta
}

func EmployeeListConfig(pageSize int) viewstate.Config[models.Employee] {
	return viewstate.Config[models.Employee]{
		Fields: []viewstate.Field[models.Employee]{
			{Name: "name", Value: func(e models.Employee) any { return e.Name }},
			{Name: "email", Value: func(e models.Employee) any { return e.Email }},
			{Name: "phone", Value: func(e models.Employee) any { return e.Phone }},
			{Name: "position", Value: func(e models.Employee) any { return e.Position }},
			{Name: "status", Value: func(e models.Employee) any { return e.Status }},
			{Name: "salary", Value: func(e models.Employee) any { return e.Salary }},
			{Name: "joinedAt", Value: func(e models.Employee) any { return e.JoinedAt }},
		},
		SearchableFields: []string{"name", "email", "position"},
		FilterableFields: []string{"position", "status"},
		DefaultSort:      "name",
		PageSize:         pageSize,
	}
}

func ProjectListConfig(pageSize int) viewstate.Config[models.Project] {
	return viewstate.Config[models.Project]{
		Fields: []viewstate.Field[models.Project]{
			{Name: "code", Value: func(p models.Project) any { return p.Code }},
			{Name: "name", Value: func(p models.Project) any { return p.Name }},
			{Name: "client", Value: func(p models.Project) any { return p.ClientName }},
			{Name: "location", Value: func(p models.Project) any { return p.Location }},
			{Name: "status", Value: func(p models.Project) any { return p.Status }},
			{Name: "budget", Value: func(p models.Project) any { return p.Budget }},
			{Name: "startDate", Value: func(p models.Project) any { return p.StartDate }},
		},
		SearchableFields: []string{"code", "name", "client", "location"},
		FilterableFields: []string{"status", "location"},
		DefaultSort:      "startDate",
		DefaultDirection: viewstate.Desc,
		PageSize:         pageSize,
	}
}

func UserListConfig(pageSize int) viewstate.Config[models.User] {
	return viewstate.Config[models.User]{
		Fields: []viewstate.Field[models.User]{
			{Name: "name", Value: func(u models.User) any { return u.Name }},
			{Name: "email", Value: func(u models.User) any { return u.Email }},
			{Name: "userType", Value: func(u models.User) any { return string(u.UserType) }},
			{Name: "status", Value: func(u models.User) any { return u.Status }},
			{Name: "createdAt", Value: func(u models.User) any { return u.CreatedAt }},
		},
		SearchableFields: []string{"name", "email"},
		FilterableFields: []string{"userType", "status"},
		DefaultSort:      "name",
		PageSize:         pageSize,
	}
}

type listService struct {
	employees *SnapshotStore[models.Employee]
	projects  *SnapshotStore[models.Project]
	users     *SnapshotStore[models.User]
	metrics   MetricsRecorderInterface
	pageSize  int
}

func NewListService(
	employees *SnapshotStore[models.Employee],
	projects *SnapshotStore[models.Project],
	users *SnapshotStore[models.User],
	metrics MetricsRecorderInterface,
	pageSize int,
) ListServiceInterface {
	if pageSize < 1 {
		pageSize = 10
	}
	return &listService{
		employees: employees,
		projects:  projects,
		users:     users,
		metrics:   metrics,
		pageSize:  pageSize,
	}
}

func (s *listService) ListEmployees(ctx context.Context, query viewstate.Query) (*ListResult[models.Employee], error) {
	return listScreen(ctx, ScreenEmployees, s.employees, EmployeeListConfig(s.pageSize), query, s.metrics)
}

func (s *listService) ListProjects(ctx context.Context, query viewstate.Query) (*ListResult[models.Project], error) {
	return listScreen(ctx, ScreenProjects, s.projects, ProjectListConfig(s.pageSize), query, s.metrics)
}

func (s *listService) ListUsers(ctx context.Context, query viewstate.Query) (*ListResult[models.User], error) {
	return listScreen(ctx, ScreenUsers, s.users, UserListConfig(s.pageSize), query, s.metrics)
}

// listScreen loads the snapshot and replays the query on a fresh controller.
// The controller lives for one request only.
func listScreen[T any](
	ctx context.Context,
	screen string,
	store *SnapshotStore[T],
	cfg viewstate.Config[T],
	query viewstate.Query,
	metrics MetricsRecorderInterface,
) (*ListResult[T], error) {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	controller, err := viewstate.New(snapshot.Items, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s screen: %w", screen, err)
	}
	if err := controller.Apply(query); err != nil {
		return nil, err
	}

	if metrics != nil {
		metrics.IncrementCounter(MetricListViewRequest, map[string]string{"screen": screen})
	}

	return &ListResult[T]{
		View:     controller.View(),
		State:    controller.State(),
		Snapshot: snapshot.Meta(store.Name()),
	}, nil
}
