package errcodes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHandler().Handle(err, c)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)

	return rec.Code, errBody
}

func TestHandle(t *testing.T) {
	t.Parallel()

	t.Run("taxonomy errors map to their codes", func(t *testing.T) {
		code, body := handle(t, NotFound("Book"))
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "not_found", body["code"])
		assert.Equal(t, "Book not found.", body["message"])
		assert.Equal(t, float64(http.StatusNotFound), body["status_code"])
	})

	t.Run("wrapped taxonomy errors still map", func(t *testing.T) {
		code, body := handle(t, errors.WithStack(Conflict("A topic with this name already exists")))
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "conflict", body["code"])
	})

	t.Run("validation errors are bad requests", func(t *testing.T) {
		code, _ := handle(t, ValidationError(`"title" is required`))
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("unknown errors become opaque 500s", func(t *testing.T) {
		code, body := handle(t, errors.New("sqlite exploded: secret details"))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal_server_error", body["code"])
		assert.Equal(t, "Internal Server Error", body["message"])
	})
}
