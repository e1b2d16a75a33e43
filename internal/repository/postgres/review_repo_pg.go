package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO reviews (user_id, place_id, rating, comment)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, place_id, rating, comment, created_at
		)
		SELECT i.id, i.user_id, i.place_id, i.rating, i.comment, i.created_at, u.name AS reviewer_name
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`

	var stored domain.Review
	if err := r.db.GetContext(ctx, &stored, query, review.UserID, review.PlaceID, review.Rating, review.Comment); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]domain.Review, error) {
	const query = `
		SELECT
			r.id,
			r.user_id,
			r.place_id,
			r.rating,
			r.comment,
			r.created_at,
			u.name AS reviewer_name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.place_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`
	reviews := make([]domain.Review, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, placeID, limit, offset); err != nil {
		return nil, err
	}
	return reviews, nil
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
