package http

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var specYAML []byte

var (
	specOnce sync.Once
	specDoc  *openapi3.T
	specErr  error
)

// rawSpec returns the embedded OpenAPI document.
func rawSpec() ([]byte, error) {
	return specYAML, nil
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	specOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(specYAML)
		if err != nil {
			specErr = fmt.Errorf("failed to load openapi spec: %w", err)
			return
		}
		if err := doc.Validate(loader.Context); err != nil {
			specErr = fmt.Errorf("invalid openapi spec: %w", err)
			return
		}
		specDoc = doc
	})
	return specDoc, specErr
}

// -- Wire types --

// Error is the body of every non-2xx JSON response.
type Error struct {
	Error string `json:"error"`
}

// Project is the wire form of project metadata.
type Project struct {
	Name           string  `json:"name,omitempty"`
	Title          string  `json:"title"`
	FrameRate      float64 `json:"frame_rate"`
	Build          string  `json:"build"`
	Version        string  `json:"version"`
	Source         string  `json:"source"`
	TimelineUID    string  `json:"timeline_uid"`
	TimelineLength int     `json:"timeline_length"`
}

// Scene is the wire form of a shot.
type Scene struct {
	UID           string            `json:"uid"`
	Name          string            `json:"name"`
	Sequence      string            `json:"sequence"`
	Length        int               `json:"length"`
	TimelineRange domain.FrameRange `json:"timeline_range"`
	ClipRange     domain.FrameRange `json:"clip_range"`
	Panels        []Panel           `json:"panels,omitempty"`
}

// Panel is the wire form of a panel.
type Panel struct {
	UID           string            `json:"uid"`
	Name          string            `json:"name"`
	Number        int               `json:"number"`
	Scene         string            `json:"scene"`
	Length        int               `json:"length"`
	SceneRange    domain.FrameRange `json:"scene_range"`
	TimelineRange domain.FrameRange `json:"timeline_range"`
	ClipRange     domain.FrameRange `json:"clip_range"`
}

// Layer is the wire form of a layer-graph module.
type Layer struct {
	Name    string           `json:"name"`
	Kind    domain.LayerKind `json:"kind"`
	Element *Element         `json:"element,omitempty"`
}

// Sequence is the wire form of a sequence.
type Sequence struct {
	Name    string   `json:"name"`
	Default bool     `json:"default"`
	Scenes  []string `json:"scenes"`
}

// Tracks groups the timeline tracks.
type Tracks struct {
	Video []VideoTrack `json:"video"`
	Audio []AudioTrack `json:"audio"`
}

// VideoTrack is the wire form of a video track.
type VideoTrack struct {
	UID     string      `json:"uid"`
	Name    string      `json:"name"`
	Enabled bool        `json:"enabled"`
	Clips   []VideoClip `json:"clips"`
}

// VideoClip is the wire form of a video clip.
type VideoClip struct {
	UID           string            `json:"uid"`
	TimelineRange domain.FrameRange `json:"timeline_range"`
	ClipRange     domain.FrameRange `json:"clip_range"`
	Path          string            `json:"path,omitempty"`
}

// AudioTrack is the wire form of an audio track.
type AudioTrack struct {
	Name    string      `json:"name"`
	Enabled bool        `json:"enabled"`
	Clips   []AudioClip `json:"clips"`
}

// AudioClip is the wire form of a sound clip.
type AudioClip struct {
	File          string            `json:"file"`
	TimelineRange domain.FrameRange `json:"timeline_range"`
	ClipRange     domain.TimeRange  `json:"clip_range"`
	Path          string            `json:"path"`
}

// Category is the wire form of a library category.
type Category struct {
	UID        string    `json:"uid"`
	Name       string    `json:"name"`
	Folder     string    `json:"folder"`
	RootFolder string    `json:"root_folder"`
	Extension  string    `json:"extension"`
	Elements   []Element `json:"elements"`
}

// Element is the wire form of a library element.
type Element struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Path       string `json:"path"`
}

// -- Mapping --

func mapProject(p *sboard.Project) (Project, error) {
	fps, err := p.FrameRate()
	if err != nil {
		return Project{}, err
	}
	tl, err := p.Timeline()
	if err != nil {
		return Project{}, err
	}
	n, err := tl.Length()
	if err != nil {
		return Project{}, err
	}
	return Project{
		Name:           p.Name,
		Title:          p.Title(),
		FrameRate:      fps,
		Build:          p.Build(),
		Version:        p.Version(),
		Source:         p.Source(),
		TimelineUID:    tl.UID(),
		TimelineLength: n,
	}, nil
}

func mapScene(s sboard.Scene, withPanels bool) (Scene, error) {
	out := Scene{UID: s.UID(), Name: s.Name(), Sequence: s.SequenceName()}
	var err error
	if out.Length, err = s.Length(); err != nil {
		return Scene{}, err
	}
	if out.TimelineRange, err = s.TimelineRange(); err != nil {
		return Scene{}, err
	}
	if out.ClipRange, err = s.ClipRange(); err != nil {
		return Scene{}, err
	}
	if !withPanels {
		return out, nil
	}
	for pn, err := range s.Panels() {
		if err != nil {
			return Scene{}, err
		}
		dto, err := mapPanel(pn)
		if err != nil {
			return Scene{}, err
		}
		out.Panels = append(out.Panels, dto)
	}
	return out, nil
}

func mapPanel(pn sboard.Panel) (Panel, error) {
	out := Panel{UID: pn.UID(), Name: pn.Name(), Number: pn.Number(), Scene: pn.Scene().UID()}
	var err error
	if out.Length, err = pn.Length(); err != nil {
		return Panel{}, err
	}
	if out.SceneRange, err = pn.SceneRange(); err != nil {
		return Panel{}, err
	}
	if out.TimelineRange, err = pn.TimelineRange(); err != nil {
		return Panel{}, err
	}
	if out.ClipRange, err = pn.ClipRange(); err != nil {
		return Panel{}, err
	}
	return out, nil
}

func mapLayer(l sboard.Layer) Layer {
	out := Layer{Name: l.Name(), Kind: l.Kind()}
	if ref := l.ElementRef(); !ref.IsZero() {
		out.Element = &Element{CategoryID: ref.CategoryID, Name: ref.Name}
		if el, ok, err := l.Element(); ok && err == nil {
			out.Element.Path = el.Path()
		}
	}
	return out
}

func mapElement(el sboard.LibraryElement) Element {
	ref := el.Ref()
	return Element{CategoryID: ref.CategoryID, Name: ref.Name, Path: el.Path()}
}
