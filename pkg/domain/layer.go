package domain

// LayerKind classifies a node of a panel's layer graph.
type LayerKind string

const (
	// LayerLeaf yields a renderable unit and never has sub-layers.
	LayerLeaf LayerKind = "leaf"
	// LayerGroup aggregates other layers, resolved through the edge list only.
	LayerGroup LayerKind = "group"
	// LayerTerminal structurally cannot contain further edges.
	LayerTerminal LayerKind = "terminal"
)

// LayerEdge is a directed link of the layer graph, in document order.
type LayerEdge struct {
	Out string `json:"out"`
	In  string `json:"in"`
}

// ElementRef points to a library element by category id and element name.
// The referencing side holds only these identifiers until resolved.
type ElementRef struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// IsZero reports whether the reference is empty.
func (r ElementRef) IsZero() bool {
	return r.CategoryID == "" && r.Name == ""
}
