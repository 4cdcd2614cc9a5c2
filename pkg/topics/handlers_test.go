package topics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hausbib/hausbib/pkg/binder"
	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func setupTestHandler(t *testing.T) (*handler, *echo.Echo, *bun.DB) {
	t.Helper()

	db := newTestDB(t)
	h := &handler{topicService: NewService(db)}

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b

	return h, e, db
}

func TestHandlerCreate(t *testing.T) {
	t.Parallel()
	h, e, _ := setupTestHandler(t)

	t.Run("creates a topic", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/topics", strings.NewReader(`{"topic_name":"Philosophy"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.create(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		body := map[string]any{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Philosophy", body["topic_name"])
		assert.Equal(t, "philosophy", body["topic_normalised"])
	})

	t.Run("missing name is a validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/topics", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.create(c)
		require.Error(t, err)

		appErr := &errcodes.Error{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/topics", strings.NewReader(`{"topic_name":"philosophy"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.create(c)
		require.Error(t, err)

		appErr := &errcodes.Error{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	})
}
