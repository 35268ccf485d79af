package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EmployeeStatusActive   = "Active"
	EmployeeStatusInactive = "Inactive"
	EmployeeStatusOnLeave  = "On Leave"
)

// Employee is a member of the construction workforce
type Employee struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(200);not null" json:"name"`
	Email     string          `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string          `gorm:"type:varchar(40)" json:"phone"`
	Position  string          `gorm:"type:varchar(100);not null" json:"position"`
	Status    string          `gorm:"type:varchar(20);not null;default:'Active';index" json:"status"`
	Salary    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"salary"`
	JoinedAt  time.Time       `gorm:"not null" json:"joined_at"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.Status == "" {
		e.Status = EmployeeStatusActive
	}
	return nil
}
