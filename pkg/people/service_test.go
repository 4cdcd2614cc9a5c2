package people

import (
	"context"
	"database/sql"
	"testing"

	"github.com/hausbib/hausbib/pkg/migrations"
	"github.com/hausbib/hausbib/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func strPtr(s string) *string {
	return &s
}

func linkPerson(t *testing.T, db *bun.DB, bookID, personID int, author, editor bool) {
	t.Helper()

	link := &models.BookPerson{
		BookID:   bookID,
		PersonID: personID,
		IsAuthor: author,
		IsEditor: editor,
	}
	_, err := db.NewInsert().Model(link).Exec(context.Background())
	require.NoError(t, err)
}

func seedBook(t *testing.T, db *bun.DB, title string, removed bool) *models.Book {
	t.Helper()

	book := &models.Book{Title: title, CompositeID: title + "-cid", IsRemoved: removed}
	_, err := db.NewInsert().Model(book).Exec(context.Background())
	require.NoError(t, err)

	return book
}

func TestFindOrCreatePerson(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	t.Run("creates and derives the unified id", func(t *testing.T) {
		person := &models.Person{FamilyName: strPtr("Goethe"), GivenNames: strPtr("Johann Wolfgang")}
		created, err := svc.FindOrCreatePerson(ctx, person)
		require.NoError(t, err)

		assert.True(t, created)
		assert.NotZero(t, person.ID)
		assert.Equal(t, "goethe_johann", person.UnifiedID)
	})

	t.Run("posting the same name again returns the existing row", func(t *testing.T) {
		// Different spelling of the later given names collides on purpose.
		person := &models.Person{FamilyName: strPtr("Goethe"), GivenNames: strPtr("Johann")}
		created, err := svc.FindOrCreatePerson(ctx, person)
		require.NoError(t, err)

		assert.False(t, created)
		assert.Equal(t, "goethe_johann", person.UnifiedID)

		count, err := db.NewSelect().Model((*models.Person)(nil)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("single names get the single_ prefix", func(t *testing.T) {
		person := &models.Person{SingleName: strPtr("Homer")}
		created, err := svc.FindOrCreatePerson(ctx, person)
		require.NoError(t, err)

		assert.True(t, created)
		assert.Equal(t, "single_homer", person.UnifiedID)
	})
}

func TestListPeopleWithTotal(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	goethe := &models.Person{FamilyName: strPtr("Goethe"), GivenNames: strPtr("Johann Wolfgang")}
	_, err := svc.FindOrCreatePerson(ctx, goethe)
	require.NoError(t, err)
	mann := &models.Person{FamilyName: strPtr("Mann"), GivenNames: strPtr("Thomas")}
	_, err = svc.FindOrCreatePerson(ctx, mann)
	require.NoError(t, err)

	book := seedBook(t, db, "Faust", false)
	removedBook := seedBook(t, db, "Gone", true)
	linkPerson(t, db, book.ID, goethe.ID, true, false)
	linkPerson(t, db, removedBook.ID, goethe.ID, true, false)
	linkPerson(t, db, book.ID, mann.ID, false, true)

	t.Run("orders by family then given names with book counts", func(t *testing.T) {
		people, total, err := svc.ListPeopleWithTotal(ctx, ListPeopleOptions{})
		require.NoError(t, err)

		assert.Equal(t, 2, total)
		require.Len(t, people, 2)
		assert.Equal(t, "goethe_johann", people[0].UnifiedID)
		// Removed books don't count.
		assert.Equal(t, 1, people[0].BookCount)
		assert.Equal(t, 1, people[1].BookCount)
	})

	t.Run("search matches name fields case-insensitively", func(t *testing.T) {
		people, total, err := svc.ListPeopleWithTotal(ctx, ListPeopleOptions{Search: strPtr("goe")})
		require.NoError(t, err)

		assert.Equal(t, 1, total)
		require.Len(t, people, 1)
		assert.Equal(t, "goethe_johann", people[0].UnifiedID)
	})

	t.Run("role filter restricts to that role", func(t *testing.T) {
		people, total, err := svc.ListPeopleWithTotal(ctx, ListPeopleOptions{Role: strPtr("editor")})
		require.NoError(t, err)

		assert.Equal(t, 1, total)
		require.Len(t, people, 1)
		assert.Equal(t, "mann_thomas", people[0].UnifiedID)
	})

	t.Run("pagination applies limit and offset", func(t *testing.T) {
		people, total, err := svc.ListPeopleWithTotal(ctx, ListPeopleOptions{Page: 2, Limit: 1})
		require.NoError(t, err)

		assert.Equal(t, 2, total)
		require.Len(t, people, 1)
		assert.Equal(t, "mann_thomas", people[0].UnifiedID)
	})
}

func TestListAuthors(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	homer := &models.Person{SingleName: strPtr("Homer")}
	_, err := svc.FindOrCreatePerson(ctx, homer)
	require.NoError(t, err)
	goethe := &models.Person{FamilyName: strPtr("Goethe"), GivenNames: strPtr("Johann Wolfgang")}
	_, err = svc.FindOrCreatePerson(ctx, goethe)
	require.NoError(t, err)
	editorOnly := &models.Person{FamilyName: strPtr("Arnim"), GivenNames: strPtr("Achim")}
	_, err = svc.FindOrCreatePerson(ctx, editorOnly)
	require.NoError(t, err)

	book := seedBook(t, db, "Iliad", false)
	linkPerson(t, db, book.ID, homer.ID, true, false)
	other := seedBook(t, db, "Faust", false)
	linkPerson(t, db, other.ID, goethe.ID, true, false)
	linkPerson(t, db, other.ID, editorOnly.ID, false, true)

	authors, err := svc.ListAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)

	// COALESCE(family_name, single_name) ordering puts Goethe before Homer,
	// and people who are only editors stay out of the list.
	assert.Equal(t, "goethe_johann", authors[0].UnifiedID)
	assert.Equal(t, "single_homer", authors[1].UnifiedID)
}

func TestUpdatePerson(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	person := &models.Person{FamilyName: strPtr("Goethe"), GivenNames: strPtr("Johann Wolfgang")}
	_, err := svc.FindOrCreatePerson(ctx, person)
	require.NoError(t, err)

	update := &models.Person{ID: person.ID, GivenNames: strPtr("Johann Wolfgang von")}
	err = svc.UpdatePerson(ctx, update, UpdatePersonOptions{Columns: []string{"given_names"}})
	require.NoError(t, err)

	got, err := svc.RetrievePerson(ctx, RetrievePersonOptions{ID: &person.ID})
	require.NoError(t, err)
	assert.Equal(t, "Johann Wolfgang von", *got.GivenNames)
	// The dedup key stays fixed at creation.
	assert.Equal(t, "goethe_johann", got.UnifiedID)

	t.Run("missing person is a 404", func(t *testing.T) {
		err := svc.UpdatePerson(ctx, &models.Person{ID: 9999, FamilyName: strPtr("X")}, UpdatePersonOptions{Columns: []string{"family_name"}})
		assert.Error(t, err)
	})
}
