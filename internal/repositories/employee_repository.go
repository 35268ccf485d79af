package repositories

import (
	"context"

	"construction-dashboard/internal/models"

	"gorm.io/gorm"
)

const employeesTable = "employees"

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepositoryInterface {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	return listAll[models.Employee](ctx, r.db, employeesTable, "name ASC")
}

func (r *employeeRepository) CreateBatch(ctx context.Context, employees []models.Employee) error {
	return createBatch(ctx, r.db, employeesTable, employees)
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	return countAll[models.Employee](ctx, r.db, employeesTable)
}
