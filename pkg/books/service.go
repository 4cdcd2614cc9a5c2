package books

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveBookOptions struct {
	ID          *int
	CompositeID *string
}

// ListBooksOptions translate the list filters into a query. When Search is
// set it overrides Author, which overrides TopicSlug; the slug "all" means no
// topic restriction. Soft-deleted books are excluded unless OnlyRemoved asks
// for exactly those.
type ListBooksOptions struct {
	Page        int
	Limit       int
	TopicSlug   *string
	AuthorID    *int
	Search      *string
	OnlyRemoved bool
}

type UpdateBookOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

const topicSlugAll = "all"

func (svc *Service) CreateBook(ctx context.Context, book *models.Book) error {
	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = book.CreatedAt

	if book.CompositeID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return errors.WithStack(err)
		}
		book.CompositeID = id.String()
	}

	// Reject dangling topic references before opening the transaction.
	if book.TopicID != nil {
		exists, err := svc.db.
			NewSelect().
			Model((*models.Topic)(nil)).
			Where("t.topic_id = ?", *book.TopicID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Topic")
		}
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.
			NewInsert().
			Model(book).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		// Insert people links.
		for i, link := range book.People {
			link.BookID = book.ID
			if link.SortOrder == 0 {
				link.SortOrder = i + 1
			}
			link.CreatedAt = book.CreatedAt
			link.UpdatedAt = book.UpdatedAt
		}

		if len(book.People) > 0 {
			_, err := tx.
				NewInsert().
				Model(&book.People).
				Returning("*").
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}

		// Insert volumes.
		for _, vol := range book.Volumes {
			vol.BookID = book.ID
		}

		if len(book.Volumes) > 0 {
			_, err := tx.
				NewInsert().
				Model(&book.Volumes).
				Returning("*").
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}

		// Insert admin metadata.
		if book.AdminData != nil {
			book.AdminData.BookID = book.ID
			if book.AdminData.CreatedAt.IsZero() {
				book.AdminData.CreatedAt = book.CreatedAt
			}
			_, err := tx.
				NewInsert().
				Model(book.AdminData).
				Returning("*").
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// RetrieveBook fetches one book with all of its relations. Soft-deleted books
// are returned too; detail pages serve them for audit.
func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.Book, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book).
		Relation("Topic").
		Relation("People", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("b2p.sort_order ASC")
		}).
		Relation("People.Person").
		Relation("Prices", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("pr.date_added DESC", "pr.price_id DESC")
		}).
		Relation("Volumes", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("b2v.volume_number ASC")
		}).
		Relation("AdminData")

	if opts.ID != nil {
		q = q.Where("b.book_id = ?", *opts.ID)
	}
	if opts.CompositeID != nil {
		q = q.Where("b.composite_id = ?", *opts.CompositeID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// ListBooksWithTotal runs the list query and a window count in one pass.
func (svc *Service) ListBooksWithTotal(ctx context.Context, opts ListBooksOptions) ([]*models.Book, int, error) {
	books := []*models.Book{}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultPageLimit
	}
	offset := (opts.Page - 1) * opts.Limit

	q := svc.db.
		NewSelect().
		Model(&books).
		Relation("Topic").
		Relation("People", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("b2p.sort_order ASC")
		}).
		Relation("People.Person").
		Relation("Prices", func(sq *bun.SelectQuery) *bun.SelectQuery {
			return sq.Order("pr.date_added DESC", "pr.price_id DESC")
		}).
		Order("b.title ASC", "b.book_id ASC").
		Limit(opts.Limit).
		Offset(offset)

	q = q.Where("b.is_removed = ?", opts.OnlyRemoved)

	switch {
	case opts.Search != nil && *opts.Search != "":
		pattern := "%" + strings.ToLower(*opts.Search) + "%"
		q = q.Where(`(
			LOWER(b.title) LIKE ? OR
			LOWER(b.subtitle) LIKE ? OR
			EXISTS (
				SELECT 1
				FROM books2people sl
				JOIN people sp ON sp.person_id = sl.person_id
				WHERE sl.book_id = b.book_id AND (
					LOWER(sp.family_name) LIKE ? OR
					LOWER(sp.given_names) LIKE ? OR
					LOWER(sp.single_name) LIKE ?
				)
			)
		)`, pattern, pattern, pattern, pattern, pattern)
	case opts.AuthorID != nil:
		q = q.Where(`EXISTS (
			SELECT 1 FROM books2people al
			WHERE al.book_id = b.book_id AND al.person_id = ? AND al.is_author = ?
		)`, *opts.AuthorID, true)
	case opts.TopicSlug != nil && *opts.TopicSlug != topicSlugAll:
		q = q.Where(`b.topic_id IN (SELECT topic_id FROM topics WHERE topic_normalised = ?)`, *opts.TopicSlug)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return books, total, nil
}

func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, opts UpdateBookOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	// Update updated_at.
	now := time.Now()
	book.UpdatedAt = now
	columns := append(opts.Columns, "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(book).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return errcodes.NotFound("Book")
	}

	return nil
}

// SoftDeleteBook marks the book removed so it drops out of default listings
// while the row stays behind for audit.
func (svc *Service) SoftDeleteBook(ctx context.Context, id int) error {
	res, err := svc.db.
		NewUpdate().
		Model((*models.Book)(nil)).
		Set("is_removed = ?", true).
		Set("updated_at = ?", time.Now()).
		Where("b.book_id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return errcodes.NotFound("Book")
	}

	return nil
}

// DeleteBook removes the row entirely. The schema cascades to people links,
// prices, volumes, and admin metadata.
func (svc *Service) DeleteBook(ctx context.Context, id int) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Book)(nil)).
		Where("b.book_id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return errcodes.NotFound("Book")
	}

	return nil
}
