package repository

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bakery-web/internal/db"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"github.com/nikolayk812/bakery-web/internal/port"
)

type feedbackRepository struct {
	q *db.Queries
}

func NewFeedback(pool *pgxpool.Pool) port.FeedbackRepository {
	return &feedbackRepository{
		q: db.New(pool),
	}
}

func (r *feedbackRepository) SaveFeedback(ctx context.Context, feedback domain.Feedback) (int64, error) {
	row, err := r.q.CreateFeedback(ctx, db.CreateFeedbackParams{
		Name:    feedback.Name,
		Email:   feedback.Email,
		Message: feedback.Message,
	})
	if err != nil {
		return 0, fmt.Errorf("q.CreateFeedback: %w", err)
	}

	return row.ID, nil
}
