// Package layergraph models the compositing graph of a panel: typed modules
// listed under a rootgroup plus the directed links between them.
package layergraph

import (
	"iter"

	"github.com/aretw0/sboard/internal/refindex"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

// Document tags and attributes of the rootgroup subtree.
const (
	TagNodesList  = "nodeslist"
	TagModule     = "module"
	TagLinkedList = "linkedlist"
	TagLink       = "link"
	TagDrawing    = "drawing"
)

// Node is one module of the graph.
type Node struct {
	Name    string
	Kind    domain.LayerKind
	Type    string            // raw module type attribute
	Element domain.ElementRef // zero when the module draws nothing
	Source  ports.Node
}

// Graph is a read-only view over a rootgroup.
// A nil rootgroup yields an empty graph.
type Graph struct {
	root    string
	modules *refindex.Index
	edges   []domain.LayerEdge
}

// New builds the graph of a rootgroup node.
func New(rootgroup ports.Node) *Graph {
	g := &Graph{root: domain.DefaultRootGroup}
	if rootgroup == nil {
		g.modules = refindex.Of("layer modules", nil, refindex.ByAttr("name"))
		return g
	}

	if name, ok := rootgroup.Attr("name"); ok && name != "" {
		g.root = name
	}

	var modules []ports.Node
	if list := rootgroup.Child(TagNodesList); list != nil {
		modules = list.Children(TagModule)
	}
	g.modules = refindex.Of("layer modules", modules, refindex.ByAttr("name"))

	if list := rootgroup.Child(TagLinkedList); list != nil {
		for _, l := range list.Children(TagLink) {
			out, _ := l.Attr("out")
			in, _ := l.Attr("in")
			g.edges = append(g.edges, domain.LayerEdge{Out: out, In: in})
		}
	}
	return g
}

// Root returns the name of the root group, the implicit source of top-level links.
func (g *Graph) Root() string { return g.root }

// Edges returns the links in document order.
func (g *Graph) Edges() []domain.LayerEdge {
	out := make([]domain.LayerEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Nodes returns every module in document order.
func (g *Graph) Nodes() ([]Node, error) {
	mods, err := g.modules.All()
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(mods))
	for _, m := range mods {
		nodes = append(nodes, toNode(m))
	}
	return nodes, nil
}

// Node looks a module up by name.
func (g *Graph) Node(name string) (Node, error) {
	m, err := g.modules.Find(name)
	if err != nil {
		return Node{}, err
	}
	return toNode(m), nil
}

func toNode(m ports.Node) Node {
	name, _ := m.Attr("name")
	typ, _ := m.Attr("type")
	n := Node{
		Name:   name,
		Kind:   domain.KindOfModule(typ),
		Type:   typ,
		Source: m,
	}
	if d := m.Child(TagDrawing); d != nil {
		n.Element.CategoryID, _ = d.Attr("element")
		n.Element.Name, _ = d.Attr("name")
	}
	return n
}

// Walk yields the nodes reachable from the node named from, following links
// whose out end is the current node, in document order.
//
// Leaves are always yielded. Groups are yielded only when includeGroups is
// set, and descended into only when recursive is set. Terminal modules are
// neither yielded nor descended into. A link pointing at an unknown module
// yields a ReferenceNotFound error and ends the walk.
//
// Cyclic graphs are not detected.
func (g *Graph) Walk(from string, includeGroups, recursive bool) iter.Seq2[Node, error] {
	return func(yield func(Node, error) bool) {
		g.walk(from, includeGroups, recursive, yield)
	}
}

func (g *Graph) walk(from string, includeGroups, recursive bool, yield func(Node, error) bool) bool {
	for _, e := range g.edges {
		if e.Out != from {
			continue
		}
		n, err := g.Node(e.In)
		if err != nil {
			yield(Node{}, err)
			return false
		}

		switch n.Kind {
		case domain.LayerTerminal:
			continue
		case domain.LayerGroup:
			if includeGroups && !yield(n, nil) {
				return false
			}
			if recursive && !g.walk(n.Name, includeGroups, recursive, yield) {
				return false
			}
		default:
			if !yield(n, nil) {
				return false
			}
		}
	}
	return true
}
