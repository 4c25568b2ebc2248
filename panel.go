package sboard

import (
	"iter"

	"github.com/aretw0/sboard/internal/coords"
	"github.com/aretw0/sboard/internal/layergraph"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

// Panel is a single storyboard drawing placed inside a scene.
type Panel struct {
	p      *Project
	node   ports.Node // the panel scene
	scene  ports.Node // the owning shot scene
	place  ports.Node // placement record inside the shot
	number int
}

// UID returns the panel id.
func (pn Panel) UID() string { return attr(pn.node, "id") }

// Name returns the panel name from panelInfo, or the raw scene name when the
// meta block is absent.
func (pn Panel) Name() string {
	if info := metaInfo(pn.node, domain.MetaPanelInfo); info != nil {
		if v, ok := info.Attr("name"); ok {
			return v
		}
	}
	return attr(pn.node, "name")
}

// Number is the 1-based position of the panel inside its scene.
func (pn Panel) Number() int { return pn.number }

// Project returns the owning project.
func (pn Panel) Project() *Project { return pn.p }

// Scene returns the owning scene.
func (pn Panel) Scene() Scene { return Scene{p: pn.p, node: pn.scene} }

// Equal reports whether both views wrap the same panel under the same scene.
func (pn Panel) Equal(o Panel) bool {
	return pn.p == o.p && pn.node == o.node && pn.scene == o.scene
}

func (pn Panel) exposure() (domain.FrameRange, error) {
	v, ok := pn.place.Attr(coords.AttrExposures)
	if !ok {
		return domain.FrameRange{}, &domain.RangeError{Text: "", Reason: "placement " + pn.UID() + " has no exposures"}
	}
	return coords.ParseExposure(v)
}

// Length returns the number of frames the panel is exposed for.
func (pn Panel) Length() (int, error) {
	exp, err := pn.exposure()
	if err != nil {
		return 0, err
	}
	return coords.ExposureLength(exp), nil
}

// ClipRange returns the trim of the panel, from the start and end attributes
// of its placement.
func (pn Panel) ClipRange() (domain.FrameRange, error) {
	return clipRange(pn.place)
}

// SceneRange returns the 0-based, end-exclusive offset of the panel inside
// its scene.
func (pn Panel) SceneRange() (domain.FrameRange, error) {
	exp, err := pn.exposure()
	if err != nil {
		return domain.FrameRange{}, err
	}
	return coords.SceneRelative(exp), nil
}

// TimelineRange returns the global frames of the panel: the scene's timeline
// start plus the panel's scene-relative offset.
func (pn Panel) TimelineRange() (domain.FrameRange, error) {
	sceneTL, err := pn.Scene().TimelineRange()
	if err != nil {
		return domain.FrameRange{}, err
	}
	sr, err := pn.SceneRange()
	if err != nil {
		return domain.FrameRange{}, err
	}
	return coords.ComposeGlobal(sceneTL, sr), nil
}

func (pn Panel) graph() *layergraph.Graph {
	return pn.p.graphOf(pn.node)
}

// Layers yields the layers reachable from the panel's root group.
// See layergraph.Graph.Walk for the meaning of includeGroups and recursive.
func (pn Panel) Layers(includeGroups, recursive bool) iter.Seq2[Layer, error] {
	g := pn.graph()
	return pn.layersFrom(g.Root(), includeGroups, recursive)
}

func (pn Panel) layersFrom(from string, includeGroups, recursive bool) iter.Seq2[Layer, error] {
	return func(yield func(Layer, error) bool) {
		for n, err := range pn.graph().Walk(from, includeGroups, recursive) {
			if err != nil {
				yield(Layer{}, err)
				return
			}
			if !yield(Layer{panel: pn, node: n}, nil) {
				return
			}
		}
	}
}

// Layer looks a layer up by module name.
func (pn Panel) Layer(name string) (Layer, error) {
	n, err := pn.graph().Node(name)
	if err != nil {
		return Layer{}, err
	}
	return Layer{panel: pn, node: n}, nil
}

// Edges returns the links of the panel's layer graph in document order.
func (pn Panel) Edges() []domain.LayerEdge {
	return pn.graph().Edges()
}

// RootGroup returns the name of the panel's root group.
func (pn Panel) RootGroup() string {
	return pn.graph().Root()
}

// AllLayers returns every module of the layer graph in document order,
// including terminals and unlinked modules.
func (pn Panel) AllLayers() ([]Layer, error) {
	nodes, err := pn.graph().Nodes()
	if err != nil {
		return nil, err
	}
	out := make([]Layer, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Layer{panel: pn, node: n})
	}
	return out, nil
}
