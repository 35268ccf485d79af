package services

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"construction-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type demoDataGenerator struct {
	faker *gofakeit.Faker
}

type amountRange struct {
	min, max float64
}

var (
	projectKinds = []string{
		"Tower", "Residences", "Plaza", "Warehouse", "Bridge Retrofit",
		"School Annex", "Medical Center", "Parking Structure", "Office Park", "Villas",
	}

	employeePositions = []string{
		"Site Engineer", "Foreman", "Electrician", "Carpenter", "Mason",
		"Plumber", "Project Manager", "Safety Officer", "Surveyor", "Crane Operator",
	}

	projectStatuses = []string{
		models.ProjectStatusPlanning,
		models.ProjectStatusInProgress,
		models.ProjectStatusInProgress,
		models.ProjectStatusOnHold,
		models.ProjectStatusCompleted,
	}

	// Amount ranges per transaction type, in currency units
	transactionAmounts = map[models.TransactionType]amountRange{
		models.TransactionTypeClientPayment: {20000, 250000},
		models.TransactionTypePurchase:      {500, 60000},
		models.TransactionTypeLaborPayment:  {2000, 40000},
		models.TransactionTypePettyCash:     {20, 900},
	}
)

// NewDemoDataGenerator creates a generator. The same non-zero seed always
// produces the same data; zero picks a random seed.
func NewDemoDataGenerator(seed uint64) DemoDataGeneratorInterface {
	return &demoDataGenerator{faker: gofakeit.New(seed)}
}

func (g *demoDataGenerator) Projects(n int) []models.Project {
	now := time.Now().UTC()
	projects := make([]models.Project, 0, n)
	for i := 0; i < n; i++ {
		projects = append(projects, models.Project{
			ID:         uuid.New(),
			Code:       fmt.Sprintf("PRJ-%03d", i+1),
			Name:       g.faker.StreetName() + " " + g.faker.RandomString(projectKinds),
			ClientName: g.faker.Company(),
			Location:   g.faker.City(),
			Status:     g.faker.RandomString(projectStatuses),
			Budget:     decimal.NewFromInt(int64(g.faker.IntRange(250, 12000)) * 1000),
			StartDate:  truncateToDate(g.faker.DateRange(now.AddDate(-3, 0, 0), now)),
			CreatedAt:  now,
		})
	}
	return projects
}

// Transactions spreads n ledger entries over the projects between from and
// to, ordered by date. Client payments are the only income.
func (g *demoDataGenerator) Transactions(projects []models.Project, n int, from, to time.Time) []models.Transaction {
	if len(projects) == 0 || n <= 0 {
		return []models.Transaction{}
	}

	txns := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		project := projects[g.faker.IntRange(0, len(projects)-1)]
		txnType := g.transactionType()
		bounds := transactionAmounts[txnType]

		txns = append(txns, models.Transaction{
			ID:              uuid.New(),
			ProjectID:       project.Code,
			ProjectName:     project.Name,
			TransactionType: txnType,
			Amount:          decimal.NewFromFloat(g.faker.Float64Range(bounds.min, bounds.max)).Round(2),
			TransactionDate: truncateToDate(g.faker.DateRange(from, to)),
			CreatedAt:       time.Now().UTC(),
		})
	}

	slices.SortStableFunc(txns, func(a, b models.Transaction) int {
		return a.TransactionDate.Compare(b.TransactionDate)
	})
	return txns
}

func (g *demoDataGenerator) transactionType() models.TransactionType {
	roll := g.faker.IntRange(1, 100)
	switch {
	case roll <= 25:
		return models.TransactionTypeClientPayment
	case roll <= 55:
		return models.TransactionTypePurchase
	case roll <= 85:
		return models.TransactionTypeLaborPayment
	default:
		return models.TransactionTypePettyCash
	}
}

func (g *demoDataGenerator) Employees(n int) []models.Employee {
	now := time.Now().UTC()
	employees := make([]models.Employee, 0, n)
	for i := 0; i < n; i++ {
		first, last := g.faker.FirstName(), g.faker.LastName()

		status := models.EmployeeStatusActive
		switch roll := g.faker.IntRange(1, 10); {
		case roll == 10:
			status = models.EmployeeStatusInactive
		case roll == 9:
			status = models.EmployeeStatusOnLeave
		}

		employees = append(employees, models.Employee{
			ID:        uuid.New(),
			Name:      first + " " + last,
			Email:     demoEmail(first, last, i, "crew.example.com"),
			Phone:     g.faker.Phone(),
			Position:  g.faker.RandomString(employeePositions),
			Status:    status,
			Salary:    decimal.NewFromInt(int64(g.faker.IntRange(28, 140)) * 1000),
			JoinedAt:  truncateToDate(g.faker.DateRange(now.AddDate(-8, 0, 0), now)),
			CreatedAt: now,
		})
	}
	return employees
}

func (g *demoDataGenerator) Users(n int) []models.User {
	now := time.Now().UTC()
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		first, last := g.faker.FirstName(), g.faker.LastName()

		userType := models.UserTypeEmployee
		switch roll := g.faker.IntRange(1, 20); {
		case roll <= 2:
			userType = models.UserTypeAdmin
		case roll <= 6:
			userType = models.UserTypeDesigner
		case roll <= 10:
			userType = models.UserTypeProjectOwner
		}

		status := models.UserStatusActive
		if g.faker.IntRange(1, 8) == 1 {
			status = models.UserStatusInactive
		}

		created := g.faker.DateRange(now.AddDate(-2, 0, 0), now)
		users = append(users, models.User{
			ID:        uuid.New(),
			Name:      first + " " + last,
			Email:     demoEmail(first, last, i, "portal.example.com"),
			UserType:  userType,
			Status:    status,
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return users
}

// demoEmail builds a unique address; the index keeps repeated names apart
func demoEmail(first, last string, index int, domain string) string {
	local := lettersOnly(first) + "." + lettersOnly(last)
	return fmt.Sprintf("%s%d@%s", strings.ToLower(local), index+1, domain)
}

func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
