package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// Storage writes place images into a single bucket. Returned URLs are rooted at
// publicBase when set, otherwise at the client endpoint.
type Storage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

func NewStorage(client *minio.Client, bucket, publicBase string) *Storage {
	return &Storage{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("minio: check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("minio: create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *Storage) Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio: put %s/%s: %w", s.bucket, objectName, err)
	}
	return s.objectURL(objectName), nil
}

func (s *Storage) objectURL(objectName string) string {
	name := strings.TrimLeft(objectName, "/")
	if s.publicBase != "" {
		return s.publicBase + "/" + s.bucket + "/" + name
	}
	return s.client.EndpointURL().String() + "/" + s.bucket + "/" + name
}

var _ ports.ObjectStorage = (*Storage)(nil)
