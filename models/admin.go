package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/aartibhkm/admin2/utils"
)

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Admin represents a back-office administrator account
type Admin struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password  string     `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Email     string     `gorm:"type:varchar(100);unique;not null" json:"email"`
	Role      string     `gorm:"type:varchar(20);not null;default:admin" json:"role"`
	IsActive  bool       `gorm:"not null;default:true" json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// BeforeCreate hashes the password before the account is first saved.
// Plaintext never reaches the database.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	hashed, err := utils.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.Password = hashed
	return nil
}

// ComparePassword checks a plaintext password against the stored hash
func (a *Admin) ComparePassword(password string) bool {
	return utils.CheckPasswordHash(password, a.Password)
}
