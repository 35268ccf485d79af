package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProjectStatusPlanning   = "Planning"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusOnHold     = "On Hold"
	ProjectStatusCompleted  = "Completed"
)

// Project is a construction site tracked by the dashboard
type Project struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Code       string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	ClientName string          `gorm:"type:varchar(255);not null" json:"client_name"`
	Location   string          `gorm:"type:varchar(255)" json:"location"`
	Status     string          `gorm:"type:varchar(20);not null;default:'Planning';index" json:"status"`
	Budget     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"budget"`
	StartDate  time.Time       `gorm:"not null" json:"start_date"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Status == "" {
		p.Status = ProjectStatusPlanning
	}
	return nil
}
