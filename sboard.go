package sboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/sboard/internal/layergraph"
	"github.com/aretw0/sboard/internal/library"
	"github.com/aretw0/sboard/internal/refindex"
	"github.com/aretw0/sboard/pkg/adapters/xmltree"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

// Document tags shared by the entity views.
const (
	tagProject  = "project"
	tagScenes   = "scenes"
	tagScene    = "scene"
	tagElements = "elements"
	tagWarpSeq  = "warpSeq"
	tagRootGrp  = "rootgroup"
)

// Project is the root of the object model. It owns the parsed document and
// the lazily built reference indexes shared by every view derived from it.
// A Project is read-only and safe for concurrent use.
type Project struct {
	root   ports.Node
	loader ports.TreeLoader
	logger *slog.Logger
	Name   string

	scenesByID   *refindex.Index
	scenesByName *refindex.Index

	libOnce sync.Once
	lib     *library.Resolver

	placements sync.Map // ports.Node -> *refindex.Index
	graphs     sync.Map // ports.Node -> *layergraph.Graph
}

// Option defines a functional option for configuring how a Project is loaded.
type Option func(*Project)

// WithLogger sets a custom structured logger for load-time diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Project) {
		p.logger = logger
	}
}

// WithTreeLoader injects a custom document parser.
// The default parses XML through xmltree.
func WithTreeLoader(l ports.TreeLoader) Option {
	return func(p *Project) {
		p.loader = l
	}
}

// WithName sets a descriptive label for the project (defaults to the file name).
func WithName(name string) Option {
	return func(p *Project) {
		p.Name = name
	}
}

func newProject(opts ...Option) *Project {
	p := &Project{}
	for _, opt := range opts {
		opt(p)
	}
	if p.loader == nil {
		p.loader = xmltree.NewLoader()
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Open parses the project file at path.
func Open(path string, opts ...Option) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))

	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}
	defer f.Close()
	return Load(f, append([]Option{WithName(name)}, opts...)...)
}

// Load parses a project document from r.
func Load(r io.Reader, opts ...Option) (*Project, error) {
	p := newProject(opts...)
	root, err := p.loader.Load(r)
	if err != nil {
		return nil, err
	}
	return p.init(root)
}

// OpenSource fetches the named document from src and parses it.
func OpenSource(ctx context.Context, src ports.DocumentSource, name string, opts ...Option) (*Project, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", name, err)
	}
	defer rc.Close()
	return Load(rc, append([]Option{WithName(name)}, opts...)...)
}

// New wraps an already parsed document root.
func New(root ports.Node, opts ...Option) (*Project, error) {
	return newProject(opts...).init(root)
}

func (p *Project) init(root ports.Node) (*Project, error) {
	if root == nil || root.Tag() != tagProject {
		return nil, &domain.PreconditionError{Op: "load project", Reason: "document root is not <project>"}
	}
	p.root = root

	candidates := func() ([]ports.Node, error) {
		scenes := root.Child(tagScenes)
		if scenes == nil {
			return nil, nil
		}
		return scenes.Children(tagScene), nil
	}
	p.scenesByID = refindex.New("scenes", candidates, refindex.ByAttr("id"))
	p.scenesByName = refindex.New("scenes", candidates, refindex.ByAttr("name"))

	if p.Name != "" {
		p.logger = p.logger.With("project", p.Name)
	}
	p.logger.Debug("project loaded", "source", root.Tag())
	return p, nil
}

// Root returns the document root node.
func (p *Project) Root() ports.Node {
	return p.root
}

// placementsOf returns the index over a scene's type-0 column, keyed by the
// placed scene id and ordered as in the document.
func (p *Project) placementsOf(scene ports.Node) *refindex.Index {
	if ix, ok := p.placements.Load(scene); ok {
		return ix.(*refindex.Index)
	}
	ix := refindex.New("placements", func() ([]ports.Node, error) {
		col, err := scene.Query("columns/column[@type='" + domain.ColumnTimeline + "']")
		if err != nil || col == nil {
			return nil, err
		}
		return col.Children(tagWarpSeq), nil
	}, refindex.ByAttr("id"))
	actual, _ := p.placements.LoadOrStore(scene, ix)
	return actual.(*refindex.Index)
}

// graphOf returns the layer graph of a panel scene node.
func (p *Project) graphOf(panel ports.Node) *layergraph.Graph {
	if g, ok := p.graphs.Load(panel); ok {
		return g.(*layergraph.Graph)
	}
	g := layergraph.New(panel.Child(tagRootGrp))
	actual, _ := p.graphs.LoadOrStore(panel, g)
	return actual.(*layergraph.Graph)
}

func (p *Project) resolver() *library.Resolver {
	p.libOnce.Do(func() {
		p.lib = library.New(p.root.Child(tagElements))
	})
	return p.lib
}

// topNode locates the master timeline scene.
func (p *Project) topNode() (ports.Node, error) {
	return p.scenesByName.Find(domain.TimelineSceneName)
}

// metaInfo returns the payload element of a typed meta block, or nil.
func metaInfo(n ports.Node, metaType string) ports.Node {
	info, err := n.Query("metas/meta[@type='" + metaType + "']/" + metaType)
	if err != nil {
		return nil
	}
	return info
}

func attr(n ports.Node, name string) string {
	if n == nil {
		return ""
	}
	v, _ := n.Attr(name)
	return v
}
