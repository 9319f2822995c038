package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a clinic staff account used to drive the workflow
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Role ID constants. The staff role set is fixed, so no roles table exists.
const (
	RoleIDAdmin        = 1
	RoleIDReceptionist = 2
)

// Role name constants
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
)

// RoleName maps a role ID to its name.
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDReceptionist:
		return RoleReceptionist
	default:
		return ""
	}
}
