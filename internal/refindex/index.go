// Package refindex builds id→node lookup tables scoped to one container of
// the document tree.
//
// An Index is populated lazily on the first lookup and is read-only
// afterwards, so a single Index may be shared across goroutines.
// When several candidates share an id, the first one in document order wins.
package refindex

import (
	"sync"

	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

// KeyFunc extracts the identifier of a candidate node.
// Candidates whose key is empty are not indexed.
type KeyFunc func(ports.Node) string

// ByAttr keys candidates by the value of the named attribute.
func ByAttr(name string) KeyFunc {
	return func(n ports.Node) string {
		v, _ := n.Attr(name)
		return v
	}
}

// CandidateFunc yields the container's relevant child set in document order.
type CandidateFunc func() ([]ports.Node, error)

// Index resolves identifiers within one container.
type Index struct {
	container  string
	candidates CandidateFunc
	key        KeyFunc

	once  sync.Once
	byID  map[string]ports.Node
	order []ports.Node
	err   error
}

// New creates an Index over the candidates of a container.
// container names the scope in ReferenceNotFound errors ("scenes",
// "track columns", "layer modules", ...).
func New(container string, candidates CandidateFunc, key KeyFunc) *Index {
	return &Index{
		container:  container,
		candidates: candidates,
		key:        key,
	}
}

// Of creates an Index over a fixed candidate list.
func Of(container string, nodes []ports.Node, key KeyFunc) *Index {
	return New(container, func() ([]ports.Node, error) { return nodes, nil }, key)
}

func (ix *Index) build() {
	nodes, err := ix.candidates()
	if err != nil {
		ix.err = err
		return
	}
	ix.order = nodes
	ix.byID = make(map[string]ports.Node, len(nodes))
	for _, n := range nodes {
		id := ix.key(n)
		if id == "" {
			continue
		}
		if _, dup := ix.byID[id]; dup {
			continue // first in document order wins
		}
		ix.byID[id] = n
	}
}

// Find returns the node whose key equals id.
// A miss is reported as a *domain.ReferenceError.
func (ix *Index) Find(id string) (ports.Node, error) {
	ix.once.Do(ix.build)
	if ix.err != nil {
		return nil, ix.err
	}
	n, ok := ix.byID[id]
	if !ok {
		return nil, &domain.ReferenceError{Container: ix.container, ID: id}
	}
	return n, nil
}

// Has reports whether id resolves, without building an error value.
func (ix *Index) Has(id string) bool {
	ix.once.Do(ix.build)
	if ix.err != nil {
		return false
	}
	_, ok := ix.byID[id]
	return ok
}

// All returns every candidate in document order, including duplicates.
func (ix *Index) All() ([]ports.Node, error) {
	ix.once.Do(ix.build)
	return ix.order, ix.err
}

// Container returns the scope name of the index.
func (ix *Index) Container() string {
	return ix.container
}
