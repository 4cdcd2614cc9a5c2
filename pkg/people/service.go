package people

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/models"
	"github.com/hausbib/hausbib/pkg/unifiedname"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// DefaultPageLimit is the page size used when the caller doesn't give one.
const DefaultPageLimit = 100

type RetrievePersonOptions struct {
	ID        *int
	UnifiedID *string
}

type ListPeopleOptions struct {
	Page   int
	Limit  int
	Search *string
	Role   *string
}

type UpdatePersonOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

var roleColumns = map[string]string{
	"author":      "is_author",
	"editor":      "is_editor",
	"contributor": "is_contributor",
	"translator":  "is_translator",
}

// FindOrCreatePerson dedups on the unified id derived from the name parts.
// When a person with the same key already exists it is returned as-is; the
// created return value tells the caller which case happened.
func (svc *Service) FindOrCreatePerson(ctx context.Context, person *models.Person) (created bool, err error) {
	if person.UnifiedID == "" {
		var family, given, single string
		if person.FamilyName != nil {
			family = *person.FamilyName
		}
		if person.GivenNames != nil {
			given = *person.GivenNames
		}
		if person.SingleName != nil {
			single = *person.SingleName
		}
		person.UnifiedID = unifiedname.Derive(family, given, single)
	}

	err = svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		existing := &models.Person{}
		err := tx.
			NewSelect().
			Model(existing).
			Where("p.unified_id = ?", person.UnifiedID).
			Scan(ctx)
		if err == nil {
			*person = *existing
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return errors.WithStack(err)
		}

		now := time.Now()
		person.CreatedAt = now
		person.UpdatedAt = now
		_, err = tx.
			NewInsert().
			Model(person).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		created = true
		return nil
	})
	if err != nil {
		return false, errors.WithStack(err)
	}

	return created, nil
}

func (svc *Service) RetrievePerson(ctx context.Context, opts RetrievePersonOptions) (*models.Person, error) {
	person := &models.Person{}

	q := svc.db.
		NewSelect().
		Model(person).
		ColumnExpr("p.*").
		ColumnExpr("(SELECT COUNT(DISTINCT l.book_id) FROM books2people l JOIN books lb ON lb.book_id = l.book_id WHERE l.person_id = p.person_id AND lb.is_removed = ?) AS book_count", false)

	if opts.ID != nil {
		q = q.Where("p.person_id = ?", *opts.ID)
	}
	if opts.UnifiedID != nil {
		q = q.Where("p.unified_id = ?", *opts.UnifiedID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Person")
		}
		return nil, errors.WithStack(err)
	}

	return person, nil
}

// PersonBooks lists the person's non-removed books ordered by title.
func (svc *Service) PersonBooks(ctx context.Context, personID int) ([]*models.Book, error) {
	books := []*models.Book{}

	err := svc.db.
		NewSelect().
		Model(&books).
		Relation("Topic").
		Where("b.is_removed = ?", false).
		Where("EXISTS (SELECT 1 FROM books2people l WHERE l.book_id = b.book_id AND l.person_id = ?)", personID).
		Order("b.title ASC", "b.book_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}

// ListPeopleWithTotal pages through people with their book counts. The role
// filter restricts to people holding that role on at least one book.
func (svc *Service) ListPeopleWithTotal(ctx context.Context, opts ListPeopleOptions) ([]*models.Person, int, error) {
	people := []*models.Person{}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultPageLimit
	}
	offset := (opts.Page - 1) * opts.Limit

	q := svc.db.
		NewSelect().
		Model(&people).
		ColumnExpr("p.*").
		ColumnExpr("(SELECT COUNT(DISTINCT l.book_id) FROM books2people l JOIN books lb ON lb.book_id = l.book_id WHERE l.person_id = p.person_id AND lb.is_removed = ?) AS book_count", false).
		Order("p.family_name ASC", "p.given_names ASC").
		Limit(opts.Limit).
		Offset(offset)

	if opts.Search != nil && *opts.Search != "" {
		pattern := "%" + strings.ToLower(*opts.Search) + "%"
		q = q.Where(`(
			LOWER(p.family_name) LIKE ? OR
			LOWER(p.given_names) LIKE ? OR
			LOWER(p.single_name) LIKE ?
		)`, pattern, pattern, pattern)
	}

	if opts.Role != nil {
		column, ok := roleColumns[*opts.Role]
		if !ok {
			return nil, 0, errcodes.ValidationError("role must be one of author, editor, contributor, translator")
		}
		q = q.Where("EXISTS (SELECT 1 FROM books2people l WHERE l.person_id = p.person_id AND l."+column+" = ?)", true)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return people, total, nil
}

// ListAuthors returns every person flagged as author on at least one book.
func (svc *Service) ListAuthors(ctx context.Context) ([]*models.Person, error) {
	people := []*models.Person{}

	err := svc.db.
		NewSelect().
		Model(&people).
		Where("EXISTS (SELECT 1 FROM books2people l WHERE l.person_id = p.person_id AND l.is_author = ?)", true).
		OrderExpr("COALESCE(p.family_name, p.single_name) ASC, p.given_names ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return people, nil
}

func (svc *Service) UpdatePerson(ctx context.Context, person *models.Person, opts UpdatePersonOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	person.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	res, err := svc.db.
		NewUpdate().
		Model(person).
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
		return errcodes.NotFound("Person")
	}

	return nil
}
