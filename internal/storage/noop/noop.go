package noop

import (
	"context"
	"log"

	"superclaims/internal/port"
)

type noopStorage struct{}

// NewNoopStorage creates a no-op ObjectStorage that only logs uploads.
// Used when claim archival is disabled.
func NewNoopStorage() port.ObjectStorage {
	return &noopStorage{}
}

func (s *noopStorage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	log.Printf("[NOOP STORAGE] skipping archive of %s/%s", input.Bucket, input.Key)
	return &port.UploadOutput{Location: "noop://" + input.Key}, nil
}

func (s *noopStorage) Delete(_ context.Context, bucket, key string) error {
	log.Printf("[NOOP STORAGE] skipping delete of %s/%s", bucket, key)
	return nil
}
