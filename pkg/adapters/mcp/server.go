// Package mcp exposes a loaded project to AI agents as Model Context Protocol
// tools and resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/presentation/graph"
	"github.com/aretw0/sboard/internal/validator"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ProjectURI is the resource holding the project summary.
const ProjectURI = "sboard://project"

// SceneSummary is one row of list_scenes.
type SceneSummary struct {
	UID           string            `json:"uid"`
	Name          string            `json:"name"`
	Sequence      string            `json:"sequence" jsonschema_description:"Raw sequence tag, empty for the default sequence"`
	TimelineRange domain.FrameRange `json:"timeline_range"`
	Panels        []string          `json:"panels" jsonschema_description:"Panel ids in order"`
}

// ScenesResult is the output of list_scenes.
type ScenesResult struct {
	Scenes []SceneSummary `json:"scenes"`
}

// PanelRanges is the output of panel_ranges.
type PanelRanges struct {
	UID           string            `json:"uid"`
	Name          string            `json:"name"`
	Number        int               `json:"number" jsonschema_description:"1-based position inside the scene"`
	Scene         string            `json:"scene"`
	Length        int               `json:"length"`
	SceneRange    domain.FrameRange `json:"scene_range" jsonschema_description:"0-based, end-exclusive offset inside the scene"`
	TimelineRange domain.FrameRange `json:"timeline_range" jsonschema_description:"Global frames on the master timeline"`
}

// LayerSummary is one row of list_layers.
type LayerSummary struct {
	Name    string           `json:"name"`
	Kind    domain.LayerKind `json:"kind"`
	Element string           `json:"element,omitempty" jsonschema_description:"Resolved asset path, if the layer draws one"`
}

// LayersResult is the output of list_layers.
type LayersResult struct {
	Layers []LayerSummary `json:"layers"`
}

// AssetResult is the output of resolve_asset.
type AssetResult struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Path       string `json:"path"`
}

// Server wraps a project and exposes it as an MCP Server.
type Server struct {
	project   *sboard.Project
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures NewServer.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates a new MCP Server instance named name.
func NewServer(p *sboard.Project, name string, opts ...Option) *Server {
	if name == "" {
		name = "sboard-mcp"
	}
	s := &Server{
		project:   p,
		mcpServer: server.NewMCPServer(name, strings.TrimSpace(sboard.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	s.logger.Info("MCP Server listening (stdio)")
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Handle("/sse", sseServer.SSEHandler())
	r.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{Addr: addr, Handler: r}
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_scenes",
		mcp.WithDescription("List the shots of the master timeline with their global frame ranges and panel ids."),
		mcp.WithOutputSchema[ScenesResult](),
	), mcp.NewStructuredToolHandler(s.handleListScenes))

	s.mcpServer.AddTool(mcp.NewTool("panel_ranges",
		mcp.WithDescription("Get the scene-relative and global timeline frame ranges of a panel."),
		mcp.WithString("panel_id", mcp.Required(), mcp.Description("Panel id")),
		mcp.WithOutputSchema[PanelRanges](),
	), mcp.NewStructuredToolHandler(s.handlePanelRanges))

	s.mcpServer.AddTool(mcp.NewTool("list_layers",
		mcp.WithDescription("Walk the layer graph of a panel from its root group."),
		mcp.WithString("panel_id", mcp.Required(), mcp.Description("Panel id")),
		mcp.WithBoolean("include_groups", mcp.Description("Also return group layers (default false)")),
		mcp.WithBoolean("recursive", mcp.Description("Descend into groups (default true)")),
		mcp.WithOutputSchema[LayersResult](),
	), mcp.NewStructuredToolHandler(s.handleListLayers))

	s.mcpServer.AddTool(mcp.NewTool("resolve_asset",
		mcp.WithDescription("Resolve a (category id, element name) reference to its project-relative file path."),
		mcp.WithString("category_id", mcp.Required(), mcp.Description("Library category id")),
		mcp.WithString("element_name", mcp.Required(), mcp.Description("Element name inside the category")),
		mcp.WithOutputSchema[AssetResult](),
	), mcp.NewStructuredToolHandler(s.handleResolveAsset))

	s.mcpServer.AddTool(mcp.NewTool("layer_graph",
		mcp.WithDescription("Render the layer graph of a panel as a Mermaid flowchart."),
		mcp.WithString("panel_id", mcp.Required(), mcp.Description("Panel id")),
	), s.handleLayerGraph)

	s.mcpServer.AddTool(mcp.NewTool("validate_project",
		mcp.WithDescription("Check the project for broken references, malformed ranges and length mismatches."),
	), s.handleValidate)
}

func stringArg(args map[string]interface{}, name string) (string, error) {
	v, _ := args[name].(string)
	if v == "" {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	return v, nil
}

func boolArg(args map[string]interface{}, name string, def bool) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

func (s *Server) handleListScenes(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ScenesResult, error) {
	tl, err := s.project.Timeline()
	if err != nil {
		return ScenesResult{}, fmt.Errorf("list scenes: %w", err)
	}
	out := ScenesResult{Scenes: []SceneSummary{}}
	for sc, err := range tl.Scenes() {
		if err != nil {
			return ScenesResult{}, fmt.Errorf("list scenes: %w", err)
		}
		r, err := sc.TimelineRange()
		if err != nil {
			return ScenesResult{}, fmt.Errorf("scene %s: %w", sc.UID(), err)
		}
		sum := SceneSummary{UID: sc.UID(), Name: sc.Name(), Sequence: sc.SequenceName(), TimelineRange: r, Panels: []string{}}
		for pn, err := range sc.Panels() {
			if err != nil {
				return ScenesResult{}, fmt.Errorf("scene %s: %w", sc.UID(), err)
			}
			sum.Panels = append(sum.Panels, pn.UID())
		}
		out.Scenes = append(out.Scenes, sum)
	}
	return out, nil
}

func (s *Server) handlePanelRanges(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PanelRanges, error) {
	id, err := stringArg(args, "panel_id")
	if err != nil {
		return PanelRanges{}, err
	}
	pn, err := s.project.Panel(id)
	if err != nil {
		return PanelRanges{}, err
	}

	out := PanelRanges{UID: pn.UID(), Name: pn.Name(), Number: pn.Number(), Scene: pn.Scene().UID()}
	if out.Length, err = pn.Length(); err != nil {
		return PanelRanges{}, err
	}
	if out.SceneRange, err = pn.SceneRange(); err != nil {
		return PanelRanges{}, err
	}
	if out.TimelineRange, err = pn.TimelineRange(); err != nil {
		return PanelRanges{}, err
	}
	return out, nil
}

func (s *Server) handleListLayers(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (LayersResult, error) {
	id, err := stringArg(args, "panel_id")
	if err != nil {
		return LayersResult{}, err
	}
	pn, err := s.project.Panel(id)
	if err != nil {
		return LayersResult{}, err
	}

	out := LayersResult{Layers: []LayerSummary{}}
	for l, err := range pn.Layers(boolArg(args, "include_groups", false), boolArg(args, "recursive", true)) {
		if err != nil {
			return LayersResult{}, err
		}
		sum := LayerSummary{Name: l.Name(), Kind: l.Kind()}
		if el, ok, err := l.Element(); ok && err == nil {
			sum.Element = el.Path()
		}
		out.Layers = append(out.Layers, sum)
	}
	return out, nil
}

func (s *Server) handleResolveAsset(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AssetResult, error) {
	cat, err := stringArg(args, "category_id")
	if err != nil {
		return AssetResult{}, err
	}
	name, err := stringArg(args, "element_name")
	if err != nil {
		return AssetResult{}, err
	}

	el, err := s.project.Library().Resolve(domain.ElementRef{CategoryID: cat, Name: name})
	if err != nil {
		s.logger.Warn("MCP resolve_asset: miss", "category", cat, "element", name)
		return AssetResult{}, err
	}
	return AssetResult{CategoryID: cat, Name: name, Category: el.Category().Name(), Path: el.Path()}, nil
}

func (s *Server) handleLayerGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("panel_id", "")
	pn, err := s.project.Panel(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("panel lookup failed: %v", err)), nil
	}
	chart, err := graph.PanelChart(pn, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("layer graph failed: %v", err)), nil
	}
	return mcp.NewToolResultText(chart), nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := validator.ValidateProject(s.project); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("project is valid"), nil
}

// projectSummary is the body of the sboard://project resource.
type projectSummary struct {
	Name      string   `json:"name,omitempty"`
	Title     string   `json:"title"`
	FrameRate float64  `json:"frame_rate"`
	Source    string   `json:"source"`
	Scenes    int      `json:"scenes"`
	Panels    int      `json:"panels"`
	Sequences []string `json:"sequences"`
}

func (s *Server) summary() (projectSummary, error) {
	fps, err := s.project.FrameRate()
	if err != nil {
		return projectSummary{}, err
	}
	scenes, err := sboard.Collect(s.project.Scenes())
	if err != nil {
		return projectSummary{}, err
	}
	panels, err := sboard.Collect(s.project.Panels())
	if err != nil {
		return projectSummary{}, err
	}
	out := projectSummary{
		Name:      s.project.Name,
		Title:     s.project.Title(),
		FrameRate: fps,
		Source:    s.project.Source(),
		Scenes:    len(scenes),
		Panels:    len(panels),
		Sequences: []string{},
	}
	for q, err := range s.project.Sequences() {
		if err != nil {
			return projectSummary{}, err
		}
		out.Sequences = append(out.Sequences, q.Name())
	}
	return out, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(ProjectURI, "Project Summary",
		mcp.WithMIMEType("application/json"),
	), s.handleProjectResource)
}

func (s *Server) handleProjectResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sum, err := s.summary()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize project: %w", err)
	}
	jsonBytes, _ := json.Marshal(sum)

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ProjectURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
