package service

import (
	"context"
	"math"
	"strings"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

const maxReviewCommentLength = 2000

type ReviewCreateInput struct {
	Rating  float64
	Comment string
}

type ReviewListResult struct {
	Items  []domain.Review
	Limit  int
	Offset int
}

// ReviewService records reviews. A user may review the same place more than once.
type ReviewService struct {
	reviews ports.ReviewRepository
	places  ports.PlaceRepository
}

func NewReviewService(reviews ports.ReviewRepository, places ports.PlaceRepository) *ReviewService {
	return &ReviewService{reviews: reviews, places: places}
}

func (s *ReviewService) CreateReview(ctx context.Context, userID, placeID int64, input ReviewCreateInput) (*domain.Review, error) {
	if userID <= 0 {
		return nil, ErrAuthRequired
	}
	if math.IsNaN(input.Rating) || input.Rating < domain.MinPlaceRating || input.Rating > domain.MaxPlaceRating {
		return nil, validationError("rating", "must be between 0 and 5")
	}
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, missingField("comment")
	}
	if len([]rune(comment)) > maxReviewCommentLength {
		return nil, validationError("comment", "is too long")
	}
	if err := s.ensurePlaceExists(ctx, placeID); err != nil {
		return nil, err
	}

	return s.reviews.Create(ctx, &domain.Review{
		UserID:  userID,
		PlaceID: placeID,
		Rating:  input.Rating,
		Comment: comment,
	})
}

func (s *ReviewService) ListReviews(ctx context.Context, placeID int64, limit, offset int) (*ReviewListResult, error) {
	if err := s.ensurePlaceExists(ctx, placeID); err != nil {
		return nil, err
	}
	limit, offset = normalizeReviewPagination(limit, offset)
	items, err := s.reviews.ListByPlace(ctx, placeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ReviewListResult{Items: items, Limit: limit, Offset: offset}, nil
}

func (s *ReviewService) ensurePlaceExists(ctx context.Context, placeID int64) error {
	if placeID <= 0 {
		return missingField("place_id")
	}
	if _, err := s.places.FindByID(ctx, placeID); err != nil {
		if isNotFound(err) {
			return ErrPlaceNotFound
		}
		return err
	}
	return nil
}

func normalizeReviewPagination(limit, offset int) (int, int) {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
