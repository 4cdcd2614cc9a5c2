package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BookAdmin holds per-book import metadata. It is only included in responses
// for callers with the view_debug_info capability.
type BookAdmin struct {
	bun.BaseModel `bun:"table:book_admin,alias:ba"`

	BookID            int       `bun:"book_id,pk" json:"book_id"`
	OriginalEntry     string    `bun:"original_entry,nullzero" json:"original_entry"`
	ParsingConfidence *string   `bun:"parsing_confidence" json:"parsing_confidence"`
	NeedsReview       bool      `bun:"needs_review" json:"needs_review"`
	VerificationNotes *string   `bun:"verification_notes" json:"verification_notes"`
	TopicChanged      bool      `bun:"topic_changed" json:"topic_changed"`
	PriceChanged      bool      `bun:"price_changed" json:"price_changed"`
	BatchID           *string   `bun:"batch_id" json:"batch_id"`
	CreatedAt         time.Time `bun:"created_at" json:"created_at"`
}
