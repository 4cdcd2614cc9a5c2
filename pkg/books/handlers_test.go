package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/hausbib/hausbib/pkg/binder"
	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/models"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func setupTestHandler(t *testing.T) (*handler, *echo.Echo, *bun.DB) {
	t.Helper()

	db := setupTestDB(t)
	h := &handler{
		bookService: NewService(db),
		resolver:    permissions.NewResolver(false),
	}

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b

	return h, e, db
}

func setRole(c echo.Context, role permissions.Role) {
	c.Set("role", role)
}

func seedBookWithExtras(t *testing.T, db *bun.DB, svc *Service) *models.Book {
	t.Helper()
	ctx := context.Background()

	book := &models.Book{
		Title:     "Faust",
		AdminData: &models.BookAdmin{OriginalEntry: "Faust. Bd. 1-2."},
	}
	require.NoError(t, svc.CreateBook(ctx, book))

	price := &models.Price{BookID: book.ID, Amount: 1200, DateAdded: time.Now()}
	_, err := db.NewInsert().Model(price).Exec(ctx)
	require.NoError(t, err)

	return book
}

func TestHandlerRetrievePayloadShaping(t *testing.T) {
	t.Parallel()
	h, e, db := setupTestHandler(t)

	book := seedBookWithExtras(t, db, h.bookService)

	get := func(role *permissions.Role) map[string]any {
		req := httptest.NewRequest(http.MethodGet, "/books/"+strconv.Itoa(book.ID), nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(book.ID))
		if role != nil {
			setRole(c, *role)
		}

		require.NoError(t, h.retrieve(c))
		require.Equal(t, http.StatusOK, rec.Code)

		body := map[string]any{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("guests see neither prices nor admin data", func(t *testing.T) {
		body := get(nil)

		assert.Equal(t, "Faust", body["title"])
		assert.NotContains(t, body, "prices")
		assert.NotContains(t, body, "admin_data")
		// Role-split lists are always present.
		assert.Contains(t, body, "authors")
		assert.Contains(t, body, "editors")
	})

	t.Run("researchers see prices but not admin data", func(t *testing.T) {
		role := permissions.RoleResearcher
		body := get(&role)

		assert.Contains(t, body, "prices")
		assert.NotContains(t, body, "admin_data")
	})

	t.Run("admins see everything", func(t *testing.T) {
		role := permissions.RoleAdmin
		body := get(&role)

		require.Contains(t, body, "prices")
		prices := body["prices"].([]any)
		require.Len(t, prices, 1)

		require.Contains(t, body, "admin_data")
		adminData := body["admin_data"].(map[string]any)
		assert.Equal(t, "Faust. Bd. 1-2.", adminData["original_entry"])
	})
}

func TestHandlerList(t *testing.T) {
	t.Parallel()
	h, e, db := setupTestHandler(t)
	ctx := context.Background()

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		require.NoError(t, h.bookService.CreateBook(ctx, &models.Book{Title: title}))
	}
	price := &models.Price{BookID: 1, Amount: 500, DateAdded: time.Now()}
	_, err := db.NewInsert().Model(price).Exec(ctx)
	require.NoError(t, err)

	list := func(target string, role *permissions.Role) (listResponse, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			setRole(c, *role)
		}
		require.NoError(t, h.list(c))

		body := listResponse{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body, rec
	}

	t.Run("defaults and pagination block", func(t *testing.T) {
		body, rec := list("/books", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, body.Data, 3)
		assert.Equal(t, 1, body.Pagination.Page)
		assert.Equal(t, DefaultPageLimit, body.Pagination.Limit)
		assert.Equal(t, 3, body.Pagination.Total)
		assert.Equal(t, 1, body.Pagination.TotalPages)
		assert.False(t, body.Permissions.CanViewPrices)
	})

	t.Run("total_pages rounds up", func(t *testing.T) {
		body, _ := list("/books?page=1&limit=2", nil)

		assert.Len(t, body.Data, 2)
		assert.Equal(t, 2, body.Pagination.TotalPages)
	})

	t.Run("guests get books without prices", func(t *testing.T) {
		body, _ := list("/books", nil)

		for _, book := range body.Data {
			assert.Empty(t, book.Prices)
		}
	})

	t.Run("family members get prices inline", func(t *testing.T) {
		role := permissions.RoleFamily
		body, _ := list("/books", &role)

		assert.True(t, body.Permissions.CanViewPrices)
		assert.NotEmpty(t, body.Data[0].Prices)
	})

	t.Run("limit above the cap is a validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/books?limit=10000", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.list(c)
		require.Error(t, err)

		appErr := &errcodes.Error{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})
}

func TestHandlerCreateRequiresTitle(t *testing.T) {
	t.Parallel()
	h, e, _ := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"publisher":"Insel"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setRole(c, permissions.RoleAdmin)

	err := h.create(c)
	require.Error(t, err)

	appErr := &errcodes.Error{}
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "title")
}

func TestHandlerSoftDelete(t *testing.T) {
	t.Parallel()
	h, e, _ := setupTestHandler(t)
	ctx := context.Background()

	book := &models.Book{Title: "Removable"}
	require.NoError(t, h.bookService.CreateBook(ctx, book))

	patch := func(target, body string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		setRole(c, permissions.RoleAdmin)
		return rec, h.softDelete(c)
	}

	t.Run("missing id is a validation error", func(t *testing.T) {
		_, err := patch("/books", `{"is_removed":true}`)
		require.Error(t, err)

		appErr := &errcodes.Error{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})

	t.Run("any body other than is_removed true is rejected", func(t *testing.T) {
		_, err := patch("/books?id="+strconv.Itoa(book.ID), `{"is_removed":false}`)
		require.Error(t, err)

		appErr := &errcodes.Error{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})

	t.Run("marks the book removed", func(t *testing.T) {
		rec, err := patch("/books?id="+strconv.Itoa(book.ID), `{"is_removed":true}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		got, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
		require.NoError(t, err)
		assert.True(t, got.IsRemoved)

		// Gone from the default listing.
		_, total, err := h.bookService.ListBooksWithTotal(ctx, ListBooksOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}
