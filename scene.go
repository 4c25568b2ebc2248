package sboard

import (
	"iter"

	"github.com/aretw0/sboard/internal/coords"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

// Scene is a shot: a contiguous block of the master timeline made of panels.
type Scene struct {
	p    *Project
	node ports.Node
}

// UID returns the scene id.
func (s Scene) UID() string { return attr(s.node, "id") }

// Name returns the shot name from sceneInfo, or the raw scene name when the
// meta block is absent.
func (s Scene) Name() string {
	if info := metaInfo(s.node, domain.MetaSceneInfo); info != nil {
		if v, ok := info.Attr("name"); ok {
			return v
		}
	}
	return attr(s.node, "name")
}

// Length returns the frame count of the scene.
func (s Scene) Length() (int, error) {
	v, ok := s.node.Attr("nbframes")
	return coords.ParseFrameAttr("nbframes", v, ok)
}

// Project returns the owning project.
func (s Scene) Project() *Project { return s.p }

// Equal reports whether both views wrap the same scene of the same project.
func (s Scene) Equal(o Scene) bool {
	return s.p == o.p && s.node == o.node
}

func (s Scene) isTimeline() bool {
	return attr(s.node, "name") == domain.TimelineSceneName
}

var errTimelinePlacement = &domain.PreconditionError{Op: "scene range", Reason: "the master timeline is not placed on itself"}

// placement returns the record placing this scene on the master timeline.
func (s Scene) placement() (ports.Node, error) {
	if s.isTimeline() {
		return nil, errTimelinePlacement
	}
	top, err := s.p.topNode()
	if err != nil {
		return nil, err
	}
	return s.p.placementsOf(top).Find(s.UID())
}

// TimelineRange returns the global frames the scene occupies, as written in
// its timeline placement.
func (s Scene) TimelineRange() (domain.FrameRange, error) {
	if s.isTimeline() {
		return domain.FrameRange{}, errTimelinePlacement
	}
	top, err := s.p.topNode()
	if err != nil {
		return domain.FrameRange{}, err
	}
	return coords.TimelineOffset(s.p.placementsOf(top), s.UID())
}

// ClipRange returns the trim of the scene's source, from the start and end
// attributes of its timeline placement.
func (s Scene) ClipRange() (domain.FrameRange, error) {
	pl, err := s.placement()
	if err != nil {
		return domain.FrameRange{}, err
	}
	return clipRange(pl)
}

func clipRange(pl ports.Node) (domain.FrameRange, error) {
	sv, sok := pl.Attr("start")
	start, err := coords.ParseFrameAttr("start", sv, sok)
	if err != nil {
		return domain.FrameRange{}, err
	}
	ev, eok := pl.Attr("end")
	end, err := coords.ParseFrameAttr("end", ev, eok)
	if err != nil {
		return domain.FrameRange{}, err
	}
	return domain.FrameRange{Start: start, End: end}, nil
}

// SequenceName returns the raw sequence tag; empty for the default sequence.
func (s Scene) SequenceName() string {
	return attr(metaInfo(s.node, domain.MetaSceneInfo), "sequence")
}

// Sequence returns the virtual sequence grouping this scene.
func (s Scene) Sequence() Sequence {
	return Sequence{p: s.p, name: s.SequenceName()}
}

// Panels yields the scene's panels in placement order, numbered from 1.
func (s Scene) Panels() iter.Seq2[Panel, error] {
	return func(yield func(Panel, error) bool) {
		places, err := s.p.placementsOf(s.node).All()
		if err != nil {
			yield(Panel{}, err)
			return
		}
		for i, pl := range places {
			n, err := s.p.scenesByID.Find(attr(pl, "id"))
			if err != nil {
				yield(Panel{}, err)
				return
			}
			if !yield(Panel{p: s.p, node: n, scene: s.node, place: pl, number: i + 1}, nil) {
				return
			}
		}
	}
}

// Panel looks one of the scene's panels up by id.
func (s Scene) Panel(uid string) (Panel, error) {
	places, err := s.p.placementsOf(s.node).All()
	if err != nil {
		return Panel{}, err
	}
	for i, pl := range places {
		if attr(pl, "id") != uid {
			continue
		}
		n, err := s.p.scenesByID.Find(uid)
		if err != nil {
			return Panel{}, err
		}
		return Panel{p: s.p, node: n, scene: s.node, place: pl, number: i + 1}, nil
	}
	return Panel{}, &domain.ReferenceError{Container: "placements of scene " + s.UID(), ID: uid}
}
