package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

const userColumns = `id, name, email, password_hash, password_salt, phone, gender, age, family, region,
        trips_per_year, avg_budget_per_year, favorite_destination, vacation_type, travel_interest,
        avatar, bio, points, level, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	const query = `
        INSERT INTO users (
            name, email, password_hash, password_salt, phone, gender, age, family, region,
            trips_per_year, avg_budget_per_year, favorite_destination, vacation_type, travel_interest,
            avatar, points, level
        ) VALUES (
            :name, :email, :password_hash, :password_salt, :phone, :gender, :age, :family, :region,
            :trips_per_year, :avg_budget_per_year, :favorite_destination, :vacation_type, :travel_interest,
            :avatar, :points, :level
        )
        RETURNING ` + userColumns

	args := map[string]any{
		"name":                 user.Name,
		"email":                user.Email,
		"password_hash":        user.PasswordHash,
		"password_salt":        user.PasswordSalt,
		"phone":                user.Phone,
		"gender":               user.Gender,
		"age":                  user.Age,
		"family":               user.Family,
		"region":               user.Region,
		"trips_per_year":       user.TripsPerYear,
		"avg_budget_per_year":  user.AvgBudgetPerYear,
		"favorite_destination": user.FavoriteDestination,
		"vacation_type":        user.VacationType,
		"travel_interest":      user.TravelInterest,
		"avatar":               user.Avatar,
		"points":               user.Points,
		"level":                string(domain.TierFor(user.Points)),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var created domain.User
		if err := rows.StructScan(&created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nil, sql.ErrNoRows
}

func (r *UserRepository) UpsertGoogleUser(ctx context.Context, email, name string, avatar *string) (*domain.User, error) {
	const query = `
        INSERT INTO users (name, email, avatar, points, level)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (email) DO UPDATE
        SET avatar = COALESCE(EXCLUDED.avatar, users.avatar),
            updated_at = NOW()
        RETURNING ` + userColumns

	points := int64(domain.RegistrationPoints)
	var user domain.User
	row := r.db.QueryRowxContext(ctx, query, name, email, avatar, points, string(domain.TierFor(points)))
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// awardPointsTx adds delta to the user's points under a row lock and stores the matching level.
func awardPointsTx(ctx context.Context, tx *sqlx.Tx, userID, delta int64) (*domain.User, error) {
	var points int64
	if err := tx.GetContext(ctx, &points, `SELECT points FROM users WHERE id = $1 FOR UPDATE`, userID); err != nil {
		return nil, err
	}
	points += delta

	query := `
        UPDATE users
        SET points = $2, level = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + userColumns
	var user domain.User
	if err := tx.GetContext(ctx, &user, query, userID, points, string(domain.TierFor(points))); err != nil {
		return nil, err
	}
	return &user, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
