package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Timezone     string     `json:"timezone"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID       uuid.UUID `json:"id"`
	Name     *string   `json:"name"`
	Lastname *string   `json:"lastname"`
	Email    *string   `json:"email"`
	Timezone *string   `json:"timezone"`
	Active   *bool     `json:"active"`
	RoleID   *int      `json:"role_id"`
	Deleted  *bool     `json:"deleted"`
}

type Claims struct {
	UserID       uuid.UUID
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	UserTimezone string
	jwt.RegisteredClaims
}
