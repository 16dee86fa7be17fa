package models

import (
	"time"
)

// AppUser is a marketplace customer account, managed read-only here
// apart from the active flag and deletion.
type AppUser struct {
	ID        string    `json:"user_id" gorm:"primaryKey"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone" gorm:"index"`
	NotActive bool      `json:"not_active"` // inverted flag kept from the upstream schema
	CreatedAt time.Time `json:"created_timestamp"`
}

// Admin is a console operator. The admin's id doubles as the branch
// scope for catalog and restaurant queries.
type Admin struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"default:'admin'"` // super_admin, admin
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AdminRole string

const (
	SuperAdmin  AdminRole = "super_admin"
	BranchAdmin AdminRole = "admin"
)
