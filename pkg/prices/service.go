package prices

import (
	"context"
	"time"

	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreatePrice appends a price row for a book. Prices are never updated or
// deleted; a correction is another row.
func (svc *Service) CreatePrice(ctx context.Context, price *models.Price) error {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		Where("b.book_id = ?", price.BookID).
		Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		return errcodes.NotFound("Book")
	}

	if price.DateAdded.IsZero() {
		price.DateAdded = time.Now()
	}

	_, err = svc.db.
		NewInsert().
		Model(price).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ListPrices returns a book's price history, newest first.
func (svc *Service) ListPrices(ctx context.Context, bookID int) ([]*models.Price, error) {
	prices := []*models.Price{}

	err := svc.db.
		NewSelect().
		Model(&prices).
		Where("pr.book_id = ?", bookID).
		Order("pr.date_added DESC", "pr.price_id DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return prices, nil
}
