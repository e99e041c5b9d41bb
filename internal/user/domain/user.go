package domain

import (
	"time"

	"gorm.io/gorm"
)

// Roles
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// Account statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents an account with a role and status
type User struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Username    string         `json:"username" gorm:"uniqueIndex;not null"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"` // Never expose password in JSON
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Telephone   string         `json:"telephone"`
	Role        string         `json:"role" gorm:"not null;default:'operator'"`
	Status      string         `json:"status" gorm:"not null;default:'active'"`
	IsSuperuser bool           `json:"is_superuser" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user bypasses ownership filtering
func (u *User) IsAdmin() bool {
	return u.IsSuperuser || u.Role == RoleAdmin
}

// IsActive reports whether the account may log in
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleOperator:
		return true
	}
	return false
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	FindByRole(role string, limit, offset int) ([]User, error)
	Update(user *User) error
	Delete(id uint) error
	Count() (int64, error)
	CountByRole(role string) (int64, error)
	CountByStatus(status string) (int64, error)
}
