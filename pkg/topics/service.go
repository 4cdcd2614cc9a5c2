package topics

import (
	"context"
	"database/sql"
	"strings"
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

// Normalise turns a topic name into its slug: lowercase with spaces replaced
// by hyphens.
func Normalise(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// CreateTopic inserts a topic, deriving the slug from the name. An existing
// topic with the same name (case-insensitive) is a conflict.
func (svc *Service) CreateTopic(ctx context.Context, topic *models.Topic) error {
	if topic.Normalised == "" {
		topic.Normalised = Normalise(topic.Name)
	}
	if topic.CreatedAt.IsZero() {
		topic.CreatedAt = time.Now()
	}

	exists, err := svc.db.
		NewSelect().
		Model((*models.Topic)(nil)).
		Where("t.topic_name = ? COLLATE NOCASE", topic.Name).
		Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return errcodes.Conflict("A topic with this name already exists")
	}

	_, err = svc.db.
		NewInsert().
		Model(topic).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveTopic(ctx context.Context, id int) (*models.Topic, error) {
	topic := &models.Topic{}

	err := svc.db.
		NewSelect().
		Model(topic).
		Where("t.topic_id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Topic")
		}
		return nil, errors.WithStack(err)
	}

	return topic, nil
}

// ListTopics returns every topic with its count of non-removed books.
func (svc *Service) ListTopics(ctx context.Context) ([]*models.Topic, error) {
	topics := []*models.Topic{}

	err := svc.db.
		NewSelect().
		Model(&topics).
		ColumnExpr("t.*").
		ColumnExpr("(SELECT COUNT(*) FROM books tb WHERE tb.topic_id = t.topic_id AND tb.is_removed = ?) AS book_count", false).
		Order("t.topic_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return topics, nil
}
