package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/meetingmind/meetingmind/internal/apperrors"
)

// Locator addresses a source video in the object store
type Locator struct {
	Bucket string
	Key    string
}

// ParseLocator parses a gs://bucket/path/to/object URI
func ParseLocator(uri string) (Locator, error) {
	const scheme = "gs://"

	if !strings.HasPrefix(uri, scheme) {
		return Locator{}, fmt.Errorf("locator %q must start with gs://: %w", uri, apperrors.ErrInput)
	}

	rest := strings.TrimPrefix(uri, scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return Locator{}, fmt.Errorf("locator %q missing bucket or object key: %w", uri, apperrors.ErrInput)
	}

	return Locator{Bucket: bucket, Key: key}, nil
}

// URI renders the locator back to gs:// form
func (l Locator) URI() string {
	return fmt.Sprintf("gs://%s/%s", l.Bucket, l.Key)
}

// BaseName returns the object's file name with the extension stripped.
// Two videos sharing a base name share downstream cache entries.
func (l Locator) BaseName() string {
	base := path.Base(l.Key)
	return strings.TrimSuffix(base, path.Ext(base))
}
