// Package http serves a loaded project over a read-only JSON API described by
// the embedded openapi.yaml.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/presentation/graph"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// Server implements ServerInterface over one project.
type Server struct {
	Project *sboard.Project
	Logger  *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// HandlerOption configures NewHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	logger  *slog.Logger
	metrics *Metrics
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(c *handlerConfig) { c.logger = l }
}

// WithMetrics uses m instead of a fresh set of instruments.
func WithMetrics(m *Metrics) HandlerOption {
	return func(c *handlerConfig) { c.metrics = m }
}

// NewHandler creates a new HTTP handler for the project.
func NewHandler(p *sboard.Project, opts ...HandlerOption) http.Handler {
	cfg := &handlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.metrics == nil {
		cfg.metrics = NewMetrics()
	}

	server := &Server{Project: p, Logger: cfg.logger}
	r := chi.NewRouter()
	r.Use(cfg.metrics.Middleware)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			cfg.logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	r.Handle("/metrics", cfg.metrics.Handler())

	handler := HandlerFromMux(server, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>sboard API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// statusOf maps the domain error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrReferenceNotFound), errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStructuralPrecondition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrMalformedRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(Error{Error: err.Error()})
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.Logger.Error(op+" failed", "error", err)
	} else {
		s.Logger.Warn(op+" rejected", "error", err, "status", code)
	}
	writeError(w, code, err)
}

func (s *Server) writeJSON(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error(op+" response encode failed", "error", err)
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, "GetHealth", map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, "GetInfo", map[string]string{
		"app":         "sboard-http",
		"version":     strings.TrimSpace(sboard.Version),
		"api_version": apiVersion,
	})
}

// GetProject handles the GET /project request.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	dto, err := mapProject(s.Project)
	if err != nil {
		s.fail(w, "GetProject", err)
		return
	}
	s.writeJSON(w, "GetProject", dto)
}

// ListScenes handles the GET /scenes request.
func (s *Server) ListScenes(w http.ResponseWriter, r *http.Request) {
	tl, err := s.Project.Timeline()
	if err != nil {
		s.fail(w, "ListScenes", err)
		return
	}
	out := []Scene{}
	for sc, err := range tl.Scenes() {
		if err != nil {
			s.fail(w, "ListScenes", err)
			return
		}
		dto, err := mapScene(sc, false)
		if err != nil {
			s.fail(w, "ListScenes", err)
			return
		}
		out = append(out, dto)
	}
	s.writeJSON(w, "ListScenes", out)
}

// GetScene handles the GET /scenes/{sceneId} request.
func (s *Server) GetScene(w http.ResponseWriter, r *http.Request, sceneID string) {
	sc, err := s.Project.Scene(sceneID)
	if err != nil {
		s.fail(w, "GetScene", err)
		return
	}
	dto, err := mapScene(sc, true)
	if err != nil {
		s.fail(w, "GetScene", err)
		return
	}
	s.writeJSON(w, "GetScene", dto)
}

// GetPanel handles the GET /panels/{panelId} request.
func (s *Server) GetPanel(w http.ResponseWriter, r *http.Request, panelID string) {
	pn, err := s.Project.Panel(panelID)
	if err != nil {
		s.fail(w, "GetPanel", err)
		return
	}
	dto, err := mapPanel(pn)
	if err != nil {
		s.fail(w, "GetPanel", err)
		return
	}
	s.writeJSON(w, "GetPanel", dto)
}

// ListLayers handles the GET /panels/{panelId}/layers request.
func (s *Server) ListLayers(w http.ResponseWriter, r *http.Request, panelID string, params ListLayersParams) {
	pn, err := s.Project.Panel(panelID)
	if err != nil {
		s.fail(w, "ListLayers", err)
		return
	}

	groups, recursive := false, true
	if params.Groups != nil {
		groups = *params.Groups
	}
	if params.Recursive != nil {
		recursive = *params.Recursive
	}

	out := []Layer{}
	for l, err := range pn.Layers(groups, recursive) {
		if err != nil {
			s.fail(w, "ListLayers", err)
			return
		}
		out = append(out, mapLayer(l))
	}
	s.writeJSON(w, "ListLayers", out)
}

// GetPanelGraph handles the GET /panels/{panelId}/graph request.
func (s *Server) GetPanelGraph(w http.ResponseWriter, r *http.Request, panelID string) {
	pn, err := s.Project.Panel(panelID)
	if err != nil {
		s.fail(w, "GetPanelGraph", err)
		return
	}
	chart, err := graph.PanelChart(pn, false)
	if err != nil {
		s.fail(w, "GetPanelGraph", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	io.WriteString(w, chart)
}

// ListSequences handles the GET /sequences request.
func (s *Server) ListSequences(w http.ResponseWriter, r *http.Request) {
	out := []Sequence{}
	for q, err := range s.Project.Sequences() {
		if err != nil {
			s.fail(w, "ListSequences", err)
			return
		}
		dto := Sequence{Name: q.Name(), Default: q.IsDefault(), Scenes: []string{}}
		for sc, err := range q.Scenes() {
			if err != nil {
				s.fail(w, "ListSequences", err)
				return
			}
			dto.Scenes = append(dto.Scenes, sc.UID())
		}
		out = append(out, dto)
	}
	s.writeJSON(w, "ListSequences", out)
}

// ListTracks handles the GET /tracks request.
func (s *Server) ListTracks(w http.ResponseWriter, r *http.Request) {
	tl, err := s.Project.Timeline()
	if err != nil {
		s.fail(w, "ListTracks", err)
		return
	}

	out := Tracks{Video: []VideoTrack{}, Audio: []AudioTrack{}}
	for vt := range tl.VideoTracks() {
		track := VideoTrack{UID: vt.UID(), Name: vt.Name(), Enabled: vt.Enabled(), Clips: []VideoClip{}}
		for c := range vt.Clips() {
			clip := VideoClip{UID: c.UID()}
			if clip.TimelineRange, err = c.TimelineRange(); err != nil {
				s.fail(w, "ListTracks", err)
				return
			}
			if clip.ClipRange, err = c.ClipRange(); err != nil {
				s.fail(w, "ListTracks", err)
				return
			}
			// Unresolved assets are reported by the validator, not here.
			clip.Path, _ = c.Path()
			track.Clips = append(track.Clips, clip)
		}
		out.Video = append(out.Video, track)
	}
	for at := range tl.AudioTracks() {
		track := AudioTrack{Name: at.Name(), Enabled: at.Enabled(), Clips: []AudioClip{}}
		for c := range at.Clips() {
			clip := AudioClip{File: c.FileName(), Path: c.Path()}
			if clip.TimelineRange, err = c.TimelineRange(); err != nil {
				s.fail(w, "ListTracks", err)
				return
			}
			if clip.ClipRange, err = c.ClipRange(); err != nil {
				s.fail(w, "ListTracks", err)
				return
			}
			track.Clips = append(track.Clips, clip)
		}
		out.Audio = append(out.Audio, track)
	}
	s.writeJSON(w, "ListTracks", out)
}

// ListLibrary handles the GET /library request.
func (s *Server) ListLibrary(w http.ResponseWriter, r *http.Request) {
	out := []Category{}
	for c := range s.Project.Library().Categories() {
		dto := Category{
			UID:        c.UID(),
			Name:       c.Name(),
			Folder:     c.Folder(),
			RootFolder: c.RootFolder(),
			Extension:  c.Extension(),
			Elements:   []Element{},
		}
		for el, err := range c.Elements() {
			if err != nil {
				s.fail(w, "ListLibrary", err)
				return
			}
			dto.Elements = append(dto.Elements, mapElement(el))
		}
		out = append(out, dto)
	}
	s.writeJSON(w, "ListLibrary", out)
}

// ResolveAsset handles the GET /library/{categoryId}/{elementName} request.
func (s *Server) ResolveAsset(w http.ResponseWriter, r *http.Request, categoryID string, elementName string) {
	el, err := s.Project.Library().Resolve(domain.ElementRef{CategoryID: categoryID, Name: elementName})
	if err != nil {
		s.fail(w, "ResolveAsset", err)
		return
	}
	s.writeJSON(w, "ResolveAsset", mapElement(el))
}
