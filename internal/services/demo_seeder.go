package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"construction-dashboard/internal/repositories"
)

var ErrNoProjects = errors.New("no projects to attach transactions to")

// DemoSeedCounts sizes a demo data run. Months is the transaction history window.
type DemoSeedCounts struct {
	Projects     int
	Transactions int
	Employees    int
	Users        int
	Months       int
}

type DemoSeedResult struct {
	Projects     int `json:"projects"`
	Transactions int `json:"transactions"`
	Employees    int `json:"employees"`
	Users        int `json:"users"`
}

type demoSeeder struct {
	generator    DemoDataGeneratorInterface
	transactions repositories.TransactionRepositoryInterface
	projects     repositories.ProjectRepositoryInterface
	employees    repositories.EmployeeRepositoryInterface
	users        repositories.UserRepositoryInterface
	now          func() time.Time
}

func NewDemoSeeder(
	generator DemoDataGeneratorInterface,
	transactions repositories.TransactionRepositoryInterface,
	projects repositories.ProjectRepositoryInterface,
	employees repositories.EmployeeRepositoryInterface,
	users repositories.UserRepositoryInterface,
) DemoSeederInterface {
	return &demoSeeder{
		generator:    generator,
		transactions: transactions,
		projects:     projects,
		employees:    employees,
		users:        users,
		now:          time.Now,
	}
}

// SeedIfEmpty fills every empty table. Tables that already hold rows are left alone.
func (s *demoSeeder) SeedIfEmpty(ctx context.Context, counts DemoSeedCounts) (*DemoSeedResult, error) {
	result := &DemoSeedResult{}

	empty, err := isEmpty(ctx, s.projects.Count)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if empty && counts.Projects > 0 {
		projects := s.generator.Projects(counts.Projects)
		if err := s.projects.CreateBatch(ctx, projects); err != nil {
			return nil, fmt.Errorf("seed projects: %w", err)
		}
		result.Projects = len(projects)
	}

	empty, err = isEmpty(ctx, s.transactions.Count)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}
	if empty && counts.Transactions > 0 {
		created, err := s.GenerateTransactions(ctx, counts.Transactions, counts.Months)
		if err != nil && !errors.Is(err, ErrNoProjects) {
			return nil, err
		}
		result.Transactions = created
	}

	empty, err = isEmpty(ctx, s.employees.Count)
	if err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}
	if empty && counts.Employees > 0 {
		employees := s.generator.Employees(counts.Employees)
		if err := s.employees.CreateBatch(ctx, employees); err != nil {
			return nil, fmt.Errorf("seed employees: %w", err)
		}
		result.Employees = len(employees)
	}

	empty, err = isEmpty(ctx, s.users.Count)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if empty && counts.Users > 0 {
		users := s.generator.Users(counts.Users)
		if err := s.users.CreateBatch(ctx, users); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		result.Users = len(users)
	}

	slog.Info("Demo data seeded",
		"projects", result.Projects,
		"transactions", result.Transactions,
		"employees", result.Employees,
		"users", result.Users)

	return result, nil
}

// GenerateTransactions appends n transactions spread over the existing
// projects, dated from the start of the month months back until now.
func (s *demoSeeder) GenerateTransactions(ctx context.Context, n, months int) (int, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list projects: %w", err)
	}
	if len(projects) == 0 {
		return 0, ErrNoProjects
	}
	if months < 1 {
		months = 1
	}

	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	txns := s.generator.Transactions(projects, n, from, now)
	if err := s.transactions.CreateBatch(ctx, txns); err != nil {
		return 0, fmt.Errorf("seed transactions: %w", err)
	}
	return len(txns), nil
}

func isEmpty(ctx context.Context, count func(context.Context) (int64, error)) (bool, error) {
	n, err := count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
