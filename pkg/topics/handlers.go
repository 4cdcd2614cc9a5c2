package topics

import (
	"net/http"

	"github.com/hausbib/hausbib/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	topicService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	topics, err := h.topicService.ListTopics(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"data": topics}))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateTopicPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	topic := &models.Topic{Name: params.TopicName}
	if err := h.topicService.CreateTopic(ctx, topic); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, topic))
}
