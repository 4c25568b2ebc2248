package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/sboard/pkg/domain"
)

// Extension is the file extension of Storyboard project documents.
const Extension = ".sboard"

// Source implements ports.DocumentSource over a directory of .sboard files.
type Source struct {
	BasePath string
}

// New creates a new Source rooted at basePath.
// If basePath is empty, it defaults to the current directory.
func New(basePath string) *Source {
	if basePath == "" {
		basePath = "."
	}
	return &Source{BasePath: basePath}
}

// Open opens the named document. The name may omit the .sboard extension.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" {
		return nil, fmt.Errorf("document name cannot be empty")
	}
	if filepath.Ext(name) == "" {
		name += Extension
	}

	f, err := os.Open(filepath.Join(s.BasePath, filepath.Clean(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, name)
		}
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	return f, nil
}

// List returns the .sboard files found directly under BasePath.
func (s *Source) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), Extension) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
