package prices

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/hausbib/hausbib/pkg/binder"
	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCreate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	h := &handler{priceService: NewService(db)}

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b

	post := func(body string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPost, "/prices", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return rec, h.create(e.NewContext(req, rec))
	}

	book := seedBook(t, db, "Faust")

	t.Run("creates a price", func(t *testing.T) {
		rec, err := post(`{"book_id":` + strconv.Itoa(book.ID) + `,"amount":1200,"source":"estate valuation"}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := map[string]any{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1200), body["amount"])
		assert.Equal(t, false, body["imported_price"])
	})

	t.Run("missing book_id is a validation error", func(t *testing.T) {
		_, err := post(`{"amount":1200}`)
		require.Error(t, err)

		appErr := &errcodes.Error{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})

	t.Run("non-positive amount is a validation error", func(t *testing.T) {
		_, err := post(`{"book_id":` + strconv.Itoa(book.ID) + `,"amount":0}`)
		require.Error(t, err)

		appErr := &errcodes.Error{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})

	t.Run("unknown book is a 404", func(t *testing.T) {
		_, err := post(`{"book_id":9999,"amount":100}`)
		require.Error(t, err)

		appErr := &errcodes.Error{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	})
}

