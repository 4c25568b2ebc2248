package ports

import (
	"context"
	"io"
)

// Node is a read-only element of a parsed document tree.
// Implementations must be comparable: two Node values are equal when they
// wrap the same underlying element.
type Node interface {
	// Tag returns the element name.
	Tag() string

	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)

	// Child returns the first direct child element with the given tag, or nil.
	Child(tag string) Node

	// Children returns all direct child elements with the given tag in
	// document order. An empty tag matches every element child.
	Children(tag string) []Node

	// Query returns the first descendant matching the path expression, or nil.
	Query(path string) (Node, error)

	// QueryAll returns every descendant matching the path expression in
	// document order.
	QueryAll(path string) ([]Node, error)
}

// TreeLoader parses document bytes into a queryable tree and returns its root
// element.
type TreeLoader interface {
	Load(r io.Reader) (Node, error)
}

// DocumentSource retrieves serialized documents by name.
// This allows the storage layer (file system, memory, Redis) to be decoupled.
type DocumentSource interface {
	// Open returns a reader over the named document.
	// Returns domain.ErrDocumentNotFound if nothing is stored under name.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// List returns the names of all available documents in deterministic order.
	List(ctx context.Context) ([]string, error)
}
