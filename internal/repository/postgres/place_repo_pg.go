package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

const placeColumns = `id, name, category, region, price, rating, views, image, description, features, created_at`

type PlaceRepository struct {
	db *sqlx.DB
}

func NewPlaceRepo(db *sqlx.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) Create(ctx context.Context, input domain.PlaceInput) (*domain.Place, error) {
	const query = `
		INSERT INTO places (name, category, region, price, rating, views, image, description, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + placeColumns

	features := input.Features
	if features == nil {
		features = []string{}
	}

	var place domain.Place
	row := r.db.QueryRowxContext(ctx, query,
		input.Name, string(input.Category), input.Region, input.Price, input.Rating, input.Views,
		input.Image, input.Description, pq.Array(features),
	)
	if err := row.StructScan(&place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`
	var place domain.Place
	if err := r.db.GetContext(ctx, &place, query, id); err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Place, error) {
	if len(ids) == 0 {
		return []domain.Place{}, nil
	}
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = ANY($1) ORDER BY id`
	places := make([]domain.Place, 0, len(ids))
	if err := r.db.SelectContext(ctx, &places, query, pq.Array(ids)); err != nil {
		return nil, err
	}
	return places, nil
}

func (r *PlaceRepository) List(ctx context.Context) ([]domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places ORDER BY id`
	places := make([]domain.Place, 0)
	if err := r.db.SelectContext(ctx, &places, query); err != nil {
		return nil, err
	}
	return places, nil
}

func (r *PlaceRepository) ListTopRated(ctx context.Context, limit int) ([]domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places ORDER BY rating DESC, id ASC LIMIT $1`
	places := make([]domain.Place, 0, limit)
	if err := r.db.SelectContext(ctx, &places, query, limit); err != nil {
		return nil, err
	}
	return places, nil
}

func (r *PlaceRepository) Filter(ctx context.Context, filter domain.PlaceFilter) ([]domain.Place, error) {
	clauses := []string{"price >= ?", "price <= ?"}
	args := []any{filter.PriceMin, filter.PriceMax}

	if len(filter.Categories) > 0 {
		categories := make([]string, 0, len(filter.Categories))
		for _, c := range filter.Categories {
			categories = append(categories, string(c))
		}
		clauses = append(clauses, "category = ANY(?)")
		args = append(args, pq.Array(categories))
	}
	if min, ok := filter.MinRating(); ok {
		clauses = append(clauses, "rating >= ?")
		args = append(args, min)
	}

	query := r.db.Rebind(`SELECT ` + placeColumns + ` FROM places WHERE ` + strings.Join(clauses, " AND ") + ` ORDER BY id`)
	places := make([]domain.Place, 0)
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		return nil, err
	}
	return places, nil
}

func (r *PlaceRepository) SearchRegion(ctx context.Context, q domain.RegionQuery) ([]domain.Place, error) {
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 2)
	for _, term := range q.Terms() {
		clauses = append(clauses, `region ILIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(term)+"%")
	}

	query := `SELECT ` + placeColumns + ` FROM places`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query = r.db.Rebind(query + ` ORDER BY id`)

	places := make([]domain.Place, 0)
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		return nil, err
	}
	return places, nil
}

func (r *PlaceRepository) IncrementViews(ctx context.Context, id int64) (*domain.Place, error) {
	query := `UPDATE places SET views = views + 1 WHERE id = $1 RETURNING ` + placeColumns
	var place domain.Place
	if err := r.db.GetContext(ctx, &place, query, id); err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepository) UpdateImage(ctx context.Context, id int64, imageURL string) (*domain.Place, error) {
	query := `UPDATE places SET image = $2 WHERE id = $1 RETURNING ` + placeColumns
	var place domain.Place
	if err := r.db.GetContext(ctx, &place, query, id, imageURL); err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM places`); err != nil {
		return 0, err
	}
	return count, nil
}

func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

var _ ports.PlaceRepository = (*PlaceRepository)(nil)
