package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/aretw0/sboard/pkg/domain"
)

// Source implements ports.DocumentSource using an in-memory map.
// Safe for concurrent use.
type Source struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewSource creates a new Source with the provided raw documents.
func NewSource(data map[string]string) *Source {
	docs := make(map[string][]byte, len(data))
	for k, v := range data {
		docs[k] = []byte(v)
	}
	return &Source{docs: docs}
}

// Put stores a document under name, replacing any previous one.
func (s *Source) Put(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("document name cannot be empty")
	}
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = cp
	return nil
}

// Open returns a reader over a copy-free view of the stored bytes.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// List returns all document names.
func (s *Source) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
