package sboard

import (
	"iter"
	"strings"

	"github.com/aretw0/sboard/internal/coords"
	"github.com/aretw0/sboard/pkg/domain"
)

// Title returns the project title from the projectInfo meta block.
func (p *Project) Title() string {
	return attr(metaInfo(p.root, domain.MetaProjectInfo), "title")
}

// FrameRate returns the frames-per-second declared under options.
func (p *Project) FrameRate() (float64, error) {
	fr, err := p.root.Query("options/framerate")
	if err != nil {
		return 0, err
	}
	if fr == nil {
		return coords.ParseFloatAttr("framerate", "", false)
	}
	v, ok := fr.Attr("val")
	return coords.ParseFloatAttr("framerate", v, ok)
}

// Build returns the build number of the authoring application.
func (p *Project) Build() string { return attr(p.root, "build") }

// Version returns the document format version.
func (p *Project) Version() string { return attr(p.root, "version") }

// Source returns the name of the application that wrote the document.
func (p *Project) Source() string { return attr(p.root, "source") }

// Timeline returns the master timeline.
func (p *Project) Timeline() (Timeline, error) {
	top, err := p.topNode()
	if err != nil {
		return Timeline{}, err
	}
	return Timeline{p: p, node: top}, nil
}

// Scenes yields every shot scene of the document, in document order, whether
// or not the master timeline places it. Use Timeline.Scenes for placement
// order.
func (p *Project) Scenes() iter.Seq2[Scene, error] {
	return func(yield func(Scene, error) bool) {
		nodes, err := p.scenesByID.All()
		if err != nil {
			yield(Scene{}, err)
			return
		}
		for _, n := range nodes {
			if !strings.Contains(attr(n, "name"), domain.ShotMarker) {
				continue
			}
			if !yield(Scene{p: p, node: n}, nil) {
				return
			}
		}
	}
}

// Panels yields every panel of every shot scene, in scene document order.
func (p *Project) Panels() iter.Seq2[Panel, error] {
	return func(yield func(Panel, error) bool) {
		for s, err := range p.Scenes() {
			if err != nil {
				yield(Panel{}, err)
				return
			}
			for pn, err := range s.Panels() {
				if !yield(pn, err) || err != nil {
					return
				}
			}
		}
	}
}

// Sequences yields the distinct sequences of the shot scenes, in order of
// first appearance. Scenes without a sequence tag share the default sequence.
func (p *Project) Sequences() iter.Seq2[Sequence, error] {
	return func(yield func(Sequence, error) bool) {
		seen := make(map[string]bool)
		for s, err := range p.Scenes() {
			if err != nil {
				yield(Sequence{}, err)
				return
			}
			name := s.SequenceName()
			if seen[name] {
				continue
			}
			seen[name] = true
			if !yield(Sequence{p: p, name: name}, nil) {
				return
			}
		}
	}
}

// Sequence returns the sequence with the given raw tag. The empty tag names
// the default sequence. It does not check that any scene carries the tag.
func (p *Project) Sequence(name string) Sequence {
	return Sequence{p: p, name: name}
}

// Scene looks a scene up by id. The master timeline itself can be looked up
// this way; panel scenes cannot.
func (p *Project) Scene(uid string) (Scene, error) {
	n, err := p.scenesByID.Find(uid)
	if err != nil {
		return Scene{}, err
	}
	name := attr(n, "name")
	if name != domain.TimelineSceneName && !strings.Contains(name, domain.ShotMarker) {
		return Scene{}, &domain.PreconditionError{Op: "scene " + uid, Reason: "not a shot scene"}
	}
	return Scene{p: p, node: n}, nil
}

// Panel looks a panel up by id. Its owning scene is the first timeline scene
// that places it.
func (p *Project) Panel(uid string) (Panel, error) {
	for s, err := range p.Scenes() {
		if err != nil {
			return Panel{}, err
		}
		if !p.placementsOf(s.node).Has(uid) {
			continue
		}
		return s.Panel(uid)
	}
	return Panel{}, &domain.ReferenceError{Container: "scene placements", ID: uid}
}

// Library returns the project-wide asset library.
func (p *Project) Library() Library {
	return Library{p: p, r: p.resolver()}
}

// Collect drains a sequence into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
