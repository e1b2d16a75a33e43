package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, placeID int64, award int64) (*domain.Favorite, *domain.User, error) {
	const query = `
		INSERT INTO favorites (user_id, place_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, place_id) DO NOTHING
		RETURNING id, user_id, place_id, created_at
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var favorite domain.Favorite
	if err := tx.GetContext(ctx, &favorite, query, userID, placeID); err != nil {
		return nil, nil, err
	}

	user, err := awardPointsTx(ctx, tx, userID, award)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return &favorite, user, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, placeID int64) error {
	const query = `
		DELETE FROM favorites
		WHERE user_id = $1 AND place_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *FavoriteRepository) ListPlaceIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	const query = `
		SELECT place_id
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	ids := make([]int64, 0)
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
