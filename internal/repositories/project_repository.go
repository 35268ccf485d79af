package repositories

import (
	"context"

	"construction-dashboard/internal/models"

	"gorm.io/gorm"
)

const projectsTable = "projects"

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepositoryInterface {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	return listAll[models.Project](ctx, r.db, projectsTable, "code ASC")
}

func (r *projectRepository) CreateBatch(ctx context.Context, projects []models.Project) error {
	return createBatch(ctx, r.db, projectsTable, projects)
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	return countAll[models.Project](ctx, r.db, projectsTable)
}
