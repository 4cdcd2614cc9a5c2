package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Price is a point-in-time amount for a book. Rows are append-only:
// corrections add a new row instead of updating an existing one.
type Price struct {
	bun.BaseModel `bun:"table:prices,alias:pr"`

	ID            int       `bun:"price_id,pk,autoincrement" json:"price_id"`
	BookID        int       `bun:"book_id,nullzero" json:"book_id"`
	Amount        int       `bun:"amount" json:"amount"`
	ImportedPrice bool      `bun:"imported_price" json:"imported_price"`
	Source        *string   `bun:"source" json:"source"`
	DateAdded     time.Time `bun:"date_added" json:"date_added"`
}
