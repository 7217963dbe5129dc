// Package file implements the upload gateway core: randomized storage-key
// generation and the upload/delete/presign operations against the object
// storage backend.
package file

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/filegate/service/internal/storage"
)

// Upload describes one incoming file: content plus the metadata declared
// by the client. It lives only for the duration of a request.
type Upload struct {
	Name        string // original filename as sent by the client
	Folder      string // optional key prefix, used verbatim
	ContentType string // declared MIME type, passed through unmodified
	Data        []byte
}

// UploadResult is returned to the caller after a successful upload. It is
// never persisted — the backend object store is the sole durable state.
type UploadResult struct {
	OriginalName string `json:"originalName"`
	FileName     string `json:"fileName"`
	FileURL      string `json:"fileUrl"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	RandomHash   string `json:"randomHash"`
}

// Service contains the gateway's business logic. The storage backend is
// injected so tests can substitute a fake.
type Service struct {
	store         storage.Storage
	presignExpiry time.Duration
}

// NewService creates a file Service. presignExpiry bounds the lifetime of
// URLs issued by PresignedUploadURL.
func NewService(store storage.Storage, presignExpiry time.Duration) *Service {
	return &Service{store: store, presignExpiry: presignExpiry}
}

// Upload stores up.Data in the backend under a freshly generated key and
// returns the resulting record. Two concurrent uploads of identically named
// files get distinct keys and both succeed. Backend errors are returned
// as received so the HTTP layer can surface their message verbatim.
func (s *Service) Upload(ctx context.Context, up Upload) (*UploadResult, error) {
	key, token, err := NewStorageKey(up.Name, up.Folder)
	if err != nil {
		return nil, fmt.Errorf("generate storage key: %w", err)
	}

	size := int64(len(up.Data))
	if err := s.store.Upload(ctx, key, bytes.NewReader(up.Data), size, up.ContentType); err != nil {
		return nil, err
	}

	return &UploadResult{
		OriginalName: up.Name,
		FileName:     key,
		FileURL:      s.store.PublicURL(key),
		Size:         size,
		Type:         up.ContentType,
		RandomHash:   token,
	}, nil
}

// Delete removes the object at key. Deleting a key that does not exist is
// backend-defined; most S3 stores treat it as an idempotent success.
func (s *Service) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}

// PresignedUploadURL asks the backend for a signed PUT URL for key and
// returns it together with the lifetime in seconds. The key does not need
// to reference an existing object.
func (s *Service) PresignedUploadURL(ctx context.Context, key string) (string, int, error) {
	u, err := s.store.PresignedPutURL(ctx, key, s.presignExpiry)
	if err != nil {
		return "", 0, err
	}
	return u, int(s.presignExpiry / time.Second), nil
}
