package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestInspectorAcceptsPNG(t *testing.T) {
	data := encodePNG(t, 4, 3)
	p := NewInspector(0, 0)

	res, err := p.Process(context.Background(), Upload{Reader: bytes.NewReader(data), Size: int64(len(data)), FileName: "photo.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, ".png", res.Extension)
	assert.Equal(t, 4, res.Width)
	assert.Equal(t, 3, res.Height)
	assert.Equal(t, data, res.Bytes)
}

func TestInspectorRejectsNonImage(t *testing.T) {
	p := NewInspector(0, 0)
	_, err := p.Process(context.Background(), Upload{Reader: strings.NewReader("not an image at all")})
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestInspectorRejectsOversized(t *testing.T) {
	data := encodePNG(t, 8, 8)

	_, err := NewInspector(int64(len(data)-1), 0).Process(context.Background(), Upload{Reader: bytes.NewReader(data)})
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = NewInspector(0, 4).Process(context.Background(), Upload{Reader: bytes.NewReader(data)})
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestInspectorRejectsEmpty(t *testing.T) {
	_, err := NewInspector(0, 0).Process(context.Background(), Upload{Reader: bytes.NewReader(nil)})
	assert.ErrorIs(t, err, ErrEmptyImage)
}
