package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/media"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

const (
	DefaultTopPlaces = 12
	MaxTopPlaces     = 50
)

// FilterInput is the wire form of a filter request. Nil bounds take the defaults.
type FilterInput struct {
	Categories []string
	PriceMin   *float64
	PriceMax   *float64
	Ratings    []float64
}

type PlaceCreateInput struct {
	Name        string
	Category    string
	Region      *string
	Price       int64
	Rating      float64
	Image       *string
	Description *string
	Features    []string
}

type PlaceService struct {
	places    ports.PlaceRepository
	storage   ports.ObjectStorage
	processor media.Processor
}

// NewPlaceService builds the catalog service. storage may be nil, in which case
// image uploads fail with ErrImageUploadDisabled.
func NewPlaceService(places ports.PlaceRepository, storage ports.ObjectStorage, processor media.Processor) *PlaceService {
	if processor == nil {
		processor = media.NewInspector(media.DefaultMaxBytes, media.DefaultMaxDimension)
	}
	return &PlaceService{places: places, storage: storage, processor: processor}
}

func (s *PlaceService) List(ctx context.Context) ([]domain.Place, error) {
	return s.places.List(ctx)
}

func (s *PlaceService) Top(ctx context.Context, limit int) ([]domain.Place, error) {
	if limit <= 0 {
		limit = DefaultTopPlaces
	}
	if limit > MaxTopPlaces {
		limit = MaxTopPlaces
	}
	return s.places.ListTopRated(ctx, limit)
}

// Get returns a place without counting a view.
func (s *PlaceService) Get(ctx context.Context, id int64) (*domain.Place, error) {
	place, err := s.places.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return place, nil
}

// View returns a place and records one detail view.
func (s *PlaceService) View(ctx context.Context, id int64) (*domain.Place, error) {
	place, err := s.places.IncrementViews(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return place, nil
}

func (s *PlaceService) Filter(ctx context.Context, input FilterInput) ([]domain.Place, error) {
	filter, err := BuildPlaceFilter(input)
	if err != nil {
		return nil, err
	}
	return s.places.Filter(ctx, filter)
}

// BuildPlaceFilter validates a filter request and converts its bounds to the
// integer price domain: a place with integer price p satisfies p >= min iff
// p >= ceil(min), and p <= max iff p <= floor(max).
func BuildPlaceFilter(input FilterInput) (domain.PlaceFilter, error) {
	filter := domain.NewPlaceFilter()

	priceMin := float64(domain.DefaultFilterPriceMin)
	if input.PriceMin != nil {
		priceMin = *input.PriceMin
	}
	priceMax := float64(domain.DefaultFilterPriceMax)
	if input.PriceMax != nil {
		priceMax = *input.PriceMax
	}
	if math.IsNaN(priceMin) || priceMin < 0 {
		return filter, validationError("priceMin", "must be zero or greater")
	}
	if math.IsNaN(priceMax) || priceMax < priceMin {
		return filter, validationError("priceMax", "must not be less than priceMin")
	}
	// float64(math.MaxInt64) rounds up to 2^63, the first bound int64 cannot hold.
	if priceMin >= float64(math.MaxInt64) {
		return filter, validationError("priceMin", "is out of range")
	}
	filter.PriceMin = int64(math.Ceil(priceMin))
	if priceMax >= float64(math.MaxInt64) {
		filter.PriceMax = math.MaxInt64
	} else {
		filter.PriceMax = int64(math.Floor(priceMax))
	}

	for _, raw := range input.Categories {
		category := domain.PlaceCategory(strings.ToLower(strings.TrimSpace(raw)))
		if !category.Valid() {
			return filter, validationError("categories", fmt.Sprintf("contains unknown category %q", raw))
		}
		filter.Categories = append(filter.Categories, category)
	}

	for _, rating := range input.Ratings {
		if math.IsNaN(rating) || rating < domain.MinPlaceRating || rating > domain.MaxPlaceRating {
			return filter, validationError("ratings", "must be between 0 and 5")
		}
		filter.Ratings = append(filter.Ratings, rating)
	}
	return filter, nil
}

func (s *PlaceService) Search(ctx context.Context, from, to string) ([]domain.Place, error) {
	return s.places.SearchRegion(ctx, domain.RegionQuery{From: from, To: to})
}

func (s *PlaceService) Create(ctx context.Context, input PlaceCreateInput) (*domain.Place, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, missingField("name")
	}
	category := domain.PlaceCategory(strings.ToLower(strings.TrimSpace(input.Category)))
	if category == "" {
		return nil, missingField("category")
	}
	if !category.Valid() {
		return nil, validationError("category", fmt.Sprintf("%q is not a known category", input.Category))
	}
	if input.Price < 0 {
		return nil, validationError("price", "must be zero or greater")
	}
	if math.IsNaN(input.Rating) || input.Rating < domain.MinPlaceRating || input.Rating > domain.MaxPlaceRating {
		return nil, validationError("rating", "must be between 0 and 5")
	}

	features := make([]string, 0, len(input.Features))
	for _, f := range input.Features {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			features = append(features, trimmed)
		}
	}

	return s.places.Create(ctx, domain.PlaceInput{
		Name:        name,
		Category:    category,
		Region:      normalizeString(input.Region),
		Price:       input.Price,
		Rating:      input.Rating,
		Image:       normalizeString(input.Image),
		Description: normalizeString(input.Description),
		Features:    features,
	})
}

// UploadImage validates the upload by content, stores it and points the place at it.
func (s *PlaceService) UploadImage(ctx context.Context, placeID int64, upload media.Upload) (*domain.Place, error) {
	if s.storage == nil {
		return nil, ErrImageUploadDisabled
	}
	if _, err := s.Get(ctx, placeID); err != nil {
		return nil, err
	}

	result, err := s.processor.Process(ctx, upload)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrEmptyImage):
			return nil, missingField("image")
		case errors.Is(err, media.ErrImageTooLarge):
			return nil, validationError("image", "is too large")
		case errors.Is(err, media.ErrUnsupportedImage):
			return nil, validationError("image", "must be a JPEG, PNG, GIF or WebP file")
		default:
			return nil, err
		}
	}

	objectName := fmt.Sprintf("places/%d/%s%s", placeID, uuid.NewString(), result.Extension)
	url, err := s.storage.Upload(ctx, objectName, result.ContentType, bytes.NewReader(result.Bytes), int64(len(result.Bytes)))
	if err != nil {
		return nil, err
	}

	place, err := s.places.UpdateImage(ctx, placeID, url)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	return place, nil
}

func normalizeString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
