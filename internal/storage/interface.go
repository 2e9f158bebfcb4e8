package storage

import "context"

// Store defines the object store operations the pipeline needs: existence
// checks, small text blobs, and file transfer for video and audio
type Store interface {
	Exists(ctx context.Context, bucket, key string) (bool, error)
	ReadText(ctx context.Context, bucket, key string) (string, error)
	WriteText(ctx context.Context, bucket, key, text string) error
	Download(ctx context.Context, bucket, key, localPath string) error
	Upload(ctx context.Context, localPath, bucket, key string) (string, error)
}
