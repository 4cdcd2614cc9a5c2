package prices

import (
	"net/http"

	"github.com/hausbib/hausbib/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	priceService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreatePricePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	price := &models.Price{
		BookID:        params.BookID,
		Amount:        params.Amount,
		Source:        params.Source,
		ImportedPrice: false,
	}
	if err := h.priceService.CreatePrice(ctx, price); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, price))
}
