package models

import "time"

// User roles known to the system.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents a staff or admin account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // '-' means don't send in JSON response
	FullName     *string   `json:"full_name,omitempty" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Credentials for login request
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
