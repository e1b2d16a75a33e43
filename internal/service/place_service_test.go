package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/media"
)

type recordedUpload struct {
	objectName  string
	contentType string
	size        int64
	body        []byte
}

type fakeStorage struct {
	uploads []recordedUpload
	err     error
}

func (f *fakeStorage) Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	body, _ := io.ReadAll(reader)
	f.uploads = append(f.uploads, recordedUpload{objectName: objectName, contentType: contentType, size: size, body: body})
	return "https://cdn.example.com/places/" + objectName, nil
}

func floatPtr(v float64) *float64 { return &v }

func TestPlaceServiceFilterDefaultsReturnEverything(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)

	places, err := svc.Filter(context.Background(), FilterInput{})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if len(places) != 12 {
		t.Fatalf("expected all 12 places, got %d", len(places))
	}
}

func TestPlaceServiceFilterInclusiveBounds(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)

	places, err := svc.Filter(context.Background(), FilterInput{
		Categories: []string{"mountain"},
		PriceMin:   floatPtr(85),
		PriceMax:   floatPtr(95),
		Ratings:    []float64{4.9, 4.8},
	})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if got, want := placeIDs(places), []int64{2, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPlaceServiceFilterFractionalBounds(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)

	places, err := svc.Filter(context.Background(), FilterInput{
		Categories: []string{"Mountain"},
		PriceMin:   floatPtr(84.5),
		PriceMax:   floatPtr(94.9),
	})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if got, want := placeIDs(places), []int64{2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPlaceServiceFilterHugeMaxIsUnbounded(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)

	places, err := svc.Filter(context.Background(), FilterInput{
		PriceMin: floatPtr(100),
		PriceMax: floatPtr(1e300),
	})
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if got, want := placeIDs(places), []int64{4, 12}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	places, err = svc.Filter(context.Background(), FilterInput{
		PriceMin: floatPtr(1e19),
		PriceMax: floatPtr(2e19),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for an unrepresentable minimum, got %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("expected no places, got %v", placeIDs(places))
	}
}

func TestBuildPlaceFilterRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input FilterInput
		field string
	}{
		{"negative min", FilterInput{PriceMin: floatPtr(-1)}, "priceMin"},
		{"inverted range", FilterInput{PriceMin: floatPtr(100), PriceMax: floatPtr(50)}, "priceMax"},
		{"rating above five", FilterInput{Ratings: []float64{5.5}}, "ratings"},
		{"unknown category", FilterInput{Categories: []string{"desert"}}, "categories"},
		{"min beyond int64", FilterInput{PriceMin: floatPtr(1e19), PriceMax: floatPtr(2e19)}, "priceMin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildPlaceFilter(tc.input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("expected error to name %s, got %v", tc.field, err)
			}
		})
	}
}

func TestPlaceServiceSearchRegion(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)
	ctx := context.Background()

	places, err := svc.Search(ctx, "bakı", "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if got, want := placeIDs(places), []int64{7}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	places, err = svc.Search(ctx, "Qəbələ", "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if got, want := placeIDs(places), []int64{4, 12}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	places, err = svc.Search(ctx, "Qəbələ", "Quba")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("expected both terms to narrow to nothing, got %v", placeIDs(places))
	}
}

func TestPlaceServiceTopClampsLimit(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)
	ctx := context.Background()

	top, err := svc.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top returned error: %v", err)
	}
	if got, want := placeIDs(top), []int64{2, 4, 7}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	all, err := svc.Top(ctx, 500)
	if err != nil {
		t.Fatalf("Top returned error: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("expected 12 places, got %d", len(all))
	}
}

func TestPlaceServiceViewIncrementsViews(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)
	ctx := context.Background()

	place, err := svc.View(ctx, 1)
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if place.Views != 2568 {
		t.Fatalf("expected views 2568, got %d", place.Views)
	}

	if _, err := svc.View(ctx, 999); !errors.Is(err, ErrPlaceNotFound) {
		t.Fatalf("expected ErrPlaceNotFound, got %v", err)
	}
}

func TestPlaceServiceCreateValidates(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, PlaceCreateInput{Name: "Dune", Category: "desert", Price: 10, Rating: 4}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown category, got %v", err)
	}
	if _, err := svc.Create(ctx, PlaceCreateInput{Name: "Cheap", Category: "sea", Price: -5, Rating: 4}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative price, got %v", err)
	}

	place, err := svc.Create(ctx, PlaceCreateInput{
		Name:     "  Naftalan  ",
		Category: "Adventure",
		Region:   strPtr("Goranboy"),
		Price:    65,
		Rating:   4.2,
		Features: []string{"Spa", " ", "Hotel"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if place.ID != 13 || place.Name != "Naftalan" || place.Category != domain.PlaceCategoryAdventure {
		t.Fatalf("unexpected place: %+v", place)
	}
	if len(place.Features) != 2 {
		t.Fatalf("expected blank features to be dropped, got %v", place.Features)
	}
}

func TestPlaceServiceUploadImage(t *testing.T) {
	store := newSeededStore(t)
	storage := &fakeStorage{}
	svc := NewPlaceService(store.Places(), storage, media.NewInspector(1<<20, 0))

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	data := buf.Bytes()

	place, err := svc.UploadImage(context.Background(), 3, media.Upload{Reader: bytes.NewReader(data), Size: int64(len(data)), FileName: "x.jpg"})
	if err != nil {
		t.Fatalf("UploadImage returned error: %v", err)
	}
	if len(storage.uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(storage.uploads))
	}
	up := storage.uploads[0]
	if up.contentType != "image/png" {
		t.Fatalf("expected sniffed content type image/png, got %s", up.contentType)
	}
	if !strings.HasPrefix(up.objectName, "places/3/") || !strings.HasSuffix(up.objectName, ".png") {
		t.Fatalf("unexpected object name %s", up.objectName)
	}
	if up.size != int64(len(data)) || !bytes.Equal(up.body, data) {
		t.Fatalf("uploaded body does not match input")
	}
	if place.Image == nil || *place.Image != "https://cdn.example.com/places/"+up.objectName {
		t.Fatalf("expected place image to point at upload, got %v", place.Image)
	}
}

func TestPlaceServiceUploadImageRejectsNonImage(t *testing.T) {
	store := newSeededStore(t)
	storage := &fakeStorage{}
	svc := NewPlaceService(store.Places(), storage, nil)

	_, err := svc.UploadImage(context.Background(), 3, media.Upload{Reader: strings.NewReader("<html></html>")})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(storage.uploads) != 0 {
		t.Fatalf("expected nothing to be stored")
	}
}

func TestPlaceServiceUploadImageDisabled(t *testing.T) {
	store := newSeededStore(t)
	svc := NewPlaceService(store.Places(), nil, nil)

	_, err := svc.UploadImage(context.Background(), 3, media.Upload{Reader: strings.NewReader("x")})
	if !errors.Is(err, ErrImageUploadDisabled) {
		t.Fatalf("expected ErrImageUploadDisabled, got %v", err)
	}
}
