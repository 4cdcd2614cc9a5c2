package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           string    `bun:"user_id,pk,nullzero" json:"user_id"`
	Username     string    `bun:"username,nullzero" json:"username"`
	Email        string    `bun:"email,nullzero" json:"email"`
	PasswordHash string    `bun:"password_hash" json:"-"` // Never expose password hash
	Role         string    `bun:"role,nullzero" json:"role"`
	IsActive     bool      `bun:"is_active" json:"is_active"`
	CreatedAt    time.Time `bun:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at" json:"updated_at"`
}
