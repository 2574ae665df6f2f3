// Package blobstore archives the raw media evidence behind verified health
// events. Every hydration clip and sclera photo that reaches the analyzer is
// kept so a clinician can review what the model actually saw. It defines the
// MediaStore interface and an in-memory implementation suitable for testing
// and development.
package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMediaNotFound      = errors.New("media not found")
	ErrMediaTooLarge      = errors.New("media exceeds maximum allowed size")
	ErrInvalidContentType = errors.New("content type is not allowed")
)

// MaxMediaSize is the maximum allowed media size in bytes (100 MB).
const MaxMediaSize = 100 * 1024 * 1024

// AllowedContentTypes lists the media types evidence may arrive in.
var AllowedContentTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// MediaMetadata describes one stored piece of evidence.
type MediaMetadata struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Kind        string    `json:"kind"` // "hydration" or "jaundice"
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Hash        string    `json:"hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// MediaStore defines the contract for evidence storage backends.
type MediaStore interface {
	Save(ctx context.Context, meta MediaMetadata, content io.Reader) (*MediaMetadata, error)
	Open(ctx context.Context, id string) (io.ReadCloser, *MediaMetadata, error)
	ListByUser(ctx context.Context, userID string, kind string) ([]*MediaMetadata, error)
}

type storedMedia struct {
	metadata MediaMetadata
	content  []byte
}

// InMemoryMediaStore is a thread-safe, in-memory MediaStore for testing/dev.
type InMemoryMediaStore struct {
	mu    sync.RWMutex
	media map[string]*storedMedia
}

// NewInMemoryMediaStore returns a ready-to-use InMemoryMediaStore.
func NewInMemoryMediaStore() *InMemoryMediaStore {
	return &InMemoryMediaStore{
		media: make(map[string]*storedMedia),
	}
}

// Save validates the content type, reads the content, computes a SHA-256
// hash and stores the media in memory.
func (s *InMemoryMediaStore) Save(_ context.Context, meta MediaMetadata, content io.Reader) (*MediaMetadata, error) {
	if !AllowedContentTypes[meta.ContentType] {
		return nil, ErrInvalidContentType
	}

	data, err := io.ReadAll(io.LimitReader(content, MaxMediaSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	if int64(len(data)) > MaxMediaSize {
		return nil, ErrMediaTooLarge
	}

	h := sha256.Sum256(data)

	meta.ID = uuid.New().String()
	meta.Size = int64(len(data))
	meta.Hash = fmt.Sprintf("%x", h)
	meta.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.media[meta.ID] = &storedMedia{
		metadata: meta,
		content:  data,
	}
	s.mu.Unlock()

	out := meta // copy
	return &out, nil
}

// Open returns an io.ReadCloser over the media content and its metadata.
func (s *InMemoryMediaStore) Open(_ context.Context, id string) (io.ReadCloser, *MediaMetadata, error) {
	s.mu.RLock()
	m, ok := s.media[id]
	s.mu.RUnlock()

	if !ok {
		return nil, nil, ErrMediaNotFound
	}

	meta := m.metadata // copy
	return io.NopCloser(bytes.NewReader(m.content)), &meta, nil
}

// ListByUser returns a user's evidence, newest first, optionally filtered
// by kind.
func (s *InMemoryMediaStore) ListByUser(_ context.Context, userID, kind string) ([]*MediaMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*MediaMetadata
	for _, m := range s.media {
		if m.metadata.UserID != userID {
			continue
		}
		if kind != "" && m.metadata.Kind != kind {
			continue
		}
		meta := m.metadata // copy
		matched = append(matched, &meta)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}
