package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserType is the portal a dashboard user signs in to
type UserType string

const (
	UserTypeAdmin        UserType = "Admin"
	UserTypeEmployee     UserType = "Employee"
	UserTypeDesigner     UserType = "Designer"
	UserTypeProjectOwner UserType = "Project Owner"

	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidUserType = errors.New("invalid user type")
)

// User is a dashboard account shown on the users screen and listing report
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	UserType  UserType  `gorm:"type:varchar(30);not null;index" json:"user_type"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	switch u.UserType {
	case UserTypeAdmin, UserTypeEmployee, UserTypeDesigner, UserTypeProjectOwner:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidUserType, u.UserType)
	}
}
