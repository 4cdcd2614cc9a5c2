package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Topic struct {
	bun.BaseModel `bun:"table:topics,alias:t"`

	ID         int       `bun:"topic_id,pk,autoincrement" json:"topic_id"`
	Name       string    `bun:"topic_name,nullzero" json:"topic_name"`
	Normalised string    `bun:"topic_normalised,nullzero" json:"topic_normalised"`
	CreatedAt  time.Time `bun:"created_at" json:"created_at"`

	// Populated by list queries only.
	BookCount int `bun:"book_count,scanonly" json:"book_count"`
}
