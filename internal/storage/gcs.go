package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	gcs "cloud.google.com/go/storage"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/logger"
)

type implStore struct {
	client *gcs.Client
	logger logger.Logger
}

// New creates a Store backed by Google Cloud Storage
func New(ctx context.Context, log logger.Logger) (Store, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &implStore{client: client, logger: log}, nil
}

// Exists checks whether an object is present
func (s *implStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.Bucket(bucket).Object(key).Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat gs://%s/%s: %v: %w", bucket, key, err, apperrors.ErrStorage)
}

// ReadText downloads an object as a string
func (s *implStore) ReadText(ctx context.Context, bucket, key string) (string, error) {
	r, err := s.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("open gs://%s/%s: %v: %w", bucket, key, err, apperrors.ErrStorage)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read gs://%s/%s: %v: %w", bucket, key, err, apperrors.ErrStorage)
	}
	return string(data), nil
}

// WriteText uploads a string as an object
func (s *implStore) WriteText(ctx context.Context, bucket, key, text string) error {
	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	if _, err := io.WriteString(w, text); err != nil {
		w.Close()
		return fmt.Errorf("write gs://%s/%s: %v: %w", bucket, key, err, apperrors.ErrStorage)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close gs://%s/%s: %v: %w", bucket, key, err, apperrors.ErrStorage)
	}
	return nil
}

// Download copies an object to a local file
func (s *implStore) Download(ctx context.Context, bucket, key, localPath string) error {
	r, err := s.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("open gs://%s/%s: %v: %w", bucket, key, err, apperrors.ErrStorage)
	}
	defer r.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create %s: %v: %w", localPath, err, apperrors.ErrStorage)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("download gs://%s/%s: %v: %w", bucket, key, err, apperrors.ErrStorage)
	}

	s.logger.Debug(ctx, "Downloaded gs://%s/%s -> %s", bucket, key, localPath)
	return nil
}

// Upload copies a local file into the bucket and returns its gs:// URI
func (s *implStore) Upload(ctx context.Context, localPath, bucket, key string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %v: %w", localPath, err, apperrors.ErrInput)
	}
	defer f.Close()

	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return "", fmt.Errorf("upload %s: %v: %w", localPath, err, apperrors.ErrStorage)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close gs://%s/%s: %v: %w", bucket, key, err, apperrors.ErrStorage)
	}

	uri := Locator{Bucket: bucket, Key: key}.URI()
	s.logger.Debug(ctx, "Uploaded %s -> %s", localPath, uri)
	return uri, nil
}
