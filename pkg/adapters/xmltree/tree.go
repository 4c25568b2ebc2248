// Package xmltree implements ports.Node and ports.TreeLoader on top of
// xmlquery, giving XPath queries over a fully materialized XML document.
package xmltree

import (
	"fmt"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/aretw0/sboard/pkg/ports"
)

// Node wraps an element of an xmlquery document.
// It is a small value type, so two Nodes compare equal with == exactly when
// they wrap the same element.
type Node struct {
	n *xmlquery.Node
}

var _ ports.Node = Node{}

// Wrap returns a Node for an xmlquery element. A nil element yields nil.
func Wrap(n *xmlquery.Node) ports.Node {
	if n == nil {
		return nil
	}
	return Node{n: n}
}

// Tag returns the local element name.
func (x Node) Tag() string {
	return x.n.Data
}

// Attr returns the named attribute (local name match).
func (x Node) Attr(name string) (string, bool) {
	for _, a := range x.n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct element child with the given tag.
func (x Node) Child(tag string) ports.Node {
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == tag {
			return Node{n: c}
		}
	}
	return nil
}

// Children returns the direct element children with the given tag, or all
// element children when tag is empty.
func (x Node) Children(tag string) []ports.Node {
	var out []ports.Node
	for c := x.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if tag == "" || c.Data == tag {
			out = append(out, Node{n: c})
		}
	}
	return out
}

// Query evaluates an XPath expression relative to this node.
func (x Node) Query(path string) (ports.Node, error) {
	n, err := xmlquery.Query(x.n, path)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}
	return Wrap(n), nil
}

// QueryAll evaluates an XPath expression relative to this node and returns
// every match in document order.
func (x Node) QueryAll(path string) ([]ports.Node, error) {
	nodes, err := xmlquery.QueryAll(x.n, path)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", path, err)
	}
	out := make([]ports.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Node{n: n})
	}
	return out, nil
}

// Loader implements ports.TreeLoader.
type Loader struct{}

// NewLoader creates a new XML tree loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the whole document and returns its root element.
func (l *Loader) Load(r io.Reader) (ports.Node, error) {
	return Parse(r)
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (ports.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	root := doc.SelectElement("*")
	if root == nil {
		return nil, fmt.Errorf("failed to parse document: no root element")
	}
	return Node{n: root}, nil
}

// ParseFile opens and parses the XML document at path.
func ParseFile(path string) (ports.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
