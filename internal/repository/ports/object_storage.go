package ports

import (
	"context"
	"io"
)

type ObjectStorage interface {
	// Upload stores the object under objectName and returns the URL it is served from.
	Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) (string, error)
}
