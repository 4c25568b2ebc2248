package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ListLayersParams are the query parameters of GET /panels/{panelId}/layers.
type ListLayersParams struct {
	Groups    *bool `form:"groups,omitempty" json:"groups,omitempty"`
	Recursive *bool `form:"recursive,omitempty" json:"recursive,omitempty"`
}

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	GetHealth(w http.ResponseWriter, r *http.Request)
	GetInfo(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	ListScenes(w http.ResponseWriter, r *http.Request)
	GetScene(w http.ResponseWriter, r *http.Request, sceneID string)
	GetPanel(w http.ResponseWriter, r *http.Request, panelID string)
	ListLayers(w http.ResponseWriter, r *http.Request, panelID string, params ListLayersParams)
	GetPanelGraph(w http.ResponseWriter, r *http.Request, panelID string)
	ListSequences(w http.ResponseWriter, r *http.Request)
	ListTracks(w http.ResponseWriter, r *http.Request)
	ListLibrary(w http.ResponseWriter, r *http.Request)
	ResolveAsset(w http.ResponseWriter, r *http.Request, categoryID string, elementName string)
}

// paramError reports a parameter that failed to bind.
type paramError struct {
	Name string
	Err  error
}

func (e *paramError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %v", e.Name, e.Err)
}

func (e *paramError) Unwrap() error { return e.Err }

func pathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", &paramError{Name: name, Err: err}
	}
	return v, nil
}

// HandlerFromMux registers every operation of si on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	w := &wrapper{handler: si}

	r.Get("/health", si.GetHealth)
	r.Get("/info", si.GetInfo)
	r.Get("/project", si.GetProject)
	r.Get("/scenes", si.ListScenes)
	r.Get("/scenes/{sceneId}", w.getScene)
	r.Get("/panels/{panelId}", w.getPanel)
	r.Get("/panels/{panelId}/layers", w.listLayers)
	r.Get("/panels/{panelId}/graph", w.getPanelGraph)
	r.Get("/sequences", si.ListSequences)
	r.Get("/tracks", si.ListTracks)
	r.Get("/library", si.ListLibrary)
	r.Get("/library/{categoryId}/{elementName}", w.resolveAsset)
	return r
}

// wrapper binds path and query parameters before calling the handler.
type wrapper struct {
	handler ServerInterface
}

func (w *wrapper) getScene(rw http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "sceneId")
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}
	w.handler.GetScene(rw, r, id)
}

func (w *wrapper) getPanel(rw http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "panelId")
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}
	w.handler.GetPanel(rw, r, id)
}

func (w *wrapper) getPanelGraph(rw http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "panelId")
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}
	w.handler.GetPanelGraph(rw, r, id)
}

func (w *wrapper) listLayers(rw http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "panelId")
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}

	var params ListLayersParams
	if err := runtime.BindQueryParameter("form", true, false, "groups", r.URL.Query(), &params.Groups); err != nil {
		writeError(rw, http.StatusBadRequest, &paramError{Name: "groups", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "recursive", r.URL.Query(), &params.Recursive); err != nil {
		writeError(rw, http.StatusBadRequest, &paramError{Name: "recursive", Err: err})
		return
	}
	w.handler.ListLayers(rw, r, id, params)
}

func (w *wrapper) resolveAsset(rw http.ResponseWriter, r *http.Request) {
	cat, err := pathParam(r, "categoryId")
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}
	name, err := pathParam(r, "elementName")
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}
	w.handler.ResolveAsset(rw, r, cat, name)
}
