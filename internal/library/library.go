// Package library resolves element references against the project-wide asset
// library declared under /project/elements.
package library

import (
	"path"
	"strings"
	"sync"

	"github.com/aretw0/sboard/internal/refindex"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

// Document tags and attributes of the library subtree.
const (
	TagElement  = "element"
	TagDrawings = "drawings"
	TagDrawing  = "dwg"

	AttrID            = "id"
	AttrElementName   = "elementName"
	AttrElementFolder = "elementFolder"
	AttrRootFolder    = "rootFolder"
	AttrName          = "name"
)

// extensions maps a lower-cased category name to the file extension of its
// elements.
var extensions = map[string]string{
	"drawing": "tvg",
	"shared":  "tvg",
	"bitmap":  "png",
	"sound":   "wav",
}

// Extension returns the file extension for elements of a category.
// Categories outside the table use their own name as written ("mp4").
func Extension(categoryName string) string {
	if ext, ok := extensions[strings.ToLower(categoryName)]; ok {
		return ext
	}
	return categoryName
}

// Category is one <element> entry of the library.
type Category struct {
	UID        string
	Name       string
	Folder     string
	RootFolder string
	Source     ports.Node

	elements *refindex.Index
}

func newCategory(n ports.Node) *Category {
	c := &Category{Source: n}
	c.UID, _ = n.Attr(AttrID)
	c.Name, _ = n.Attr(AttrElementName)
	c.Folder, _ = n.Attr(AttrElementFolder)
	c.RootFolder, _ = n.Attr(AttrRootFolder)

	var dwgs []ports.Node
	if d := n.Child(TagDrawings); d != nil {
		dwgs = d.Children(TagDrawing)
	}
	c.elements = refindex.Of("category "+c.UID, dwgs, refindex.ByAttr(AttrName))
	return c
}

// Extension returns the file extension of the category's elements.
func (c *Category) Extension() string {
	return Extension(c.Name)
}

// Elements returns the category's elements in document order.
func (c *Category) Elements() ([]Element, error) {
	nodes, err := c.elements.All()
	if err != nil {
		return nil, err
	}
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		name, _ := n.Attr(AttrName)
		out = append(out, Element{Name: name, Category: c, Source: n})
	}
	return out, nil
}

// Element looks an element up by name.
func (c *Category) Element(name string) (Element, error) {
	n, err := c.elements.Find(name)
	if err != nil {
		return Element{}, &domain.AssetError{Ref: domain.ElementRef{CategoryID: c.UID, Name: name}}
	}
	return Element{Name: name, Category: c, Source: n}, nil
}

// Element is a single asset of a category.
type Element struct {
	Name     string
	Category *Category
	Source   ports.Node
}

// Ref returns the reference that resolves to this element.
func (e Element) Ref() domain.ElementRef {
	return domain.ElementRef{CategoryID: e.Category.UID, Name: e.Name}
}

// Path returns the project-relative file path of the element,
// "./<rootFolder>/<folder>/<name>.<ext>".
func (e Element) Path() string {
	return "./" + path.Join(e.Category.RootFolder, e.Category.Folder, e.Name+"."+e.Category.Extension())
}

// Resolver looks elements up by (category id, element name).
// It is safe for concurrent use.
type Resolver struct {
	root ports.Node

	once  sync.Once
	cats  []*Category
	byUID map[string]*Category
}

// New creates a Resolver over the <elements> node. A nil node yields an empty
// library.
func New(elements ports.Node) *Resolver {
	return &Resolver{root: elements}
}

func (r *Resolver) build() {
	r.byUID = make(map[string]*Category)
	if r.root == nil {
		return
	}
	for _, n := range r.root.Children(TagElement) {
		c := newCategory(n)
		r.cats = append(r.cats, c)
		if _, dup := r.byUID[c.UID]; !dup && c.UID != "" {
			r.byUID[c.UID] = c
		}
	}
}

// Categories returns every category in document order.
func (r *Resolver) Categories() []*Category {
	r.once.Do(r.build)
	return r.cats
}

// Category looks a category up by id.
func (r *Resolver) Category(id string) (*Category, error) {
	r.once.Do(r.build)
	c, ok := r.byUID[id]
	if !ok {
		return nil, &domain.AssetError{Ref: domain.ElementRef{CategoryID: id}}
	}
	return c, nil
}

// Resolve finds the element a reference points to.
// A miss on either the category or the element is an AssetNotFound error.
func (r *Resolver) Resolve(ref domain.ElementRef) (Element, error) {
	c, err := r.Category(ref.CategoryID)
	if err != nil {
		return Element{}, &domain.AssetError{Ref: ref}
	}
	return c.Element(ref.Name)
}
