package sboard

import (
	"iter"

	"github.com/aretw0/sboard/internal/layergraph"
	"github.com/aretw0/sboard/pkg/domain"
)

// Layer is a module of a panel's layer graph.
type Layer struct {
	panel Panel
	node  layergraph.Node
}

// Name returns the module name.
func (l Layer) Name() string { return l.node.Name }

// Kind returns the leaf, group or terminal classification.
func (l Layer) Kind() domain.LayerKind { return l.node.Kind }

// Type returns the raw module type.
func (l Layer) Type() string { return l.node.Type }

// IsGroup reports whether the layer aggregates other layers.
func (l Layer) IsGroup() bool { return l.node.Kind == domain.LayerGroup }

// Panel returns the owning panel.
func (l Layer) Panel() Panel { return l.panel }

// Equal reports whether both views wrap the same module of the same panel.
func (l Layer) Equal(o Layer) bool {
	return l.panel.Equal(o.panel) && l.node.Source == o.node.Source
}

// ElementRef returns the unresolved drawing reference; zero when the layer
// draws nothing.
func (l Layer) ElementRef() domain.ElementRef { return l.node.Element }

// Element resolves the layer's drawing in the project library. ok is false,
// with a nil error, when the layer draws no element.
func (l Layer) Element() (el LibraryElement, ok bool, err error) {
	ref := l.node.Element
	if ref.IsZero() {
		return LibraryElement{}, false, nil
	}
	el, err = l.panel.p.Library().Resolve(ref)
	if err != nil {
		return LibraryElement{}, false, err
	}
	return el, true, nil
}

// Layers yields the sub-layers of a group. Leaves and terminals have none.
func (l Layer) Layers(includeGroups, recursive bool) iter.Seq2[Layer, error] {
	if l.node.Kind != domain.LayerGroup {
		return func(func(Layer, error) bool) {}
	}
	return l.panel.layersFrom(l.node.Name, includeGroups, recursive)
}
