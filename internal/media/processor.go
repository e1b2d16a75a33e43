package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxBytes     int64 = 5 << 20
	DefaultMaxDimension       = 6000
)

var (
	ErrEmptyImage       = errors.New("media: empty image data")
	ErrImageTooLarge    = errors.New("media: image exceeds size limit")
	ErrUnsupportedImage = errors.New("media: unsupported image format")
)

// formats maps image.DecodeConfig format names to content type and object extension.
var formats = map[string]struct {
	contentType string
	ext         string
}{
	"jpeg": {"image/jpeg", ".jpg"},
	"png":  {"image/png", ".png"},
	"gif":  {"image/gif", ".gif"},
	"webp": {"image/webp", ".webp"},
}

type Upload struct {
	Reader   io.Reader
	Size     int64
	FileName string
}

type Result struct {
	Bytes       []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

type Processor interface {
	Process(ctx context.Context, upload Upload) (*Result, error)
}

// Inspector accepts an upload only if its bytes decode as a supported image
// within the configured byte and pixel limits. The declared content type is ignored.
type Inspector struct {
	maxBytes     int64
	maxDimension int
}

func NewInspector(maxBytes int64, maxDimension int) *Inspector {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &Inspector{maxBytes: maxBytes, maxDimension: maxDimension}
}

func (p *Inspector) Process(ctx context.Context, upload Upload) (*Result, error) {
	if upload.Reader == nil {
		return nil, ErrEmptyImage
	}
	if upload.Size > p.maxBytes {
		return nil, ErrImageTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(upload.Reader, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if int64(len(data)) > p.maxBytes {
		return nil, ErrImageTooLarge
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	info, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrUnsupportedImage, cfg.Width, cfg.Height)
	}
	if cfg.Width > p.maxDimension || cfg.Height > p.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, p.maxDimension)
	}

	return &Result{
		Bytes:       data,
		ContentType: info.contentType,
		Extension:   info.ext,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

var _ Processor = (*Inspector)(nil)
