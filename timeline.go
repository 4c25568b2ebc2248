package sboard

import (
	"iter"

	"github.com/aretw0/sboard/internal/coords"
	"github.com/aretw0/sboard/internal/refindex"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

const (
	tagColumn        = "column"
	tagColumns       = "columns"
	tagTransitionSeq = "transitionSeq"
)

// Timeline is the master timeline: the "Top" scene placing every shot.
type Timeline struct {
	p    *Project
	node ports.Node
}

// UID returns the id of the timeline scene.
func (t Timeline) UID() string { return attr(t.node, "id") }

// Length returns the frame count of the timeline.
func (t Timeline) Length() (int, error) {
	v, ok := t.node.Attr("nbframes")
	return coords.ParseFrameAttr("nbframes", v, ok)
}

// Project returns the owning project.
func (t Timeline) Project() *Project { return t.p }

// Equal reports whether both views wrap the same timeline.
func (t Timeline) Equal(o Timeline) bool {
	return t.p == o.p && t.node == o.node
}

// Scenes yields the placed scenes in placement order.
// A placement whose id matches no scene yields ReferenceNotFound.
func (t Timeline) Scenes() iter.Seq2[Scene, error] {
	return func(yield func(Scene, error) bool) {
		places, err := t.p.placementsOf(t.node).All()
		if err != nil {
			yield(Scene{}, err)
			return
		}
		for _, pl := range places {
			n, err := t.p.scenesByID.Find(attr(pl, "id"))
			if err != nil {
				yield(Scene{}, err)
				return
			}
			if !yield(Scene{p: t.p, node: n}, nil) {
				return
			}
		}
	}
}

// Panels yields every panel of every placed scene, in timeline order.
func (t Timeline) Panels() iter.Seq2[Panel, error] {
	return func(yield func(Panel, error) bool) {
		for s, err := range t.Scenes() {
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

func (t Timeline) columns(columnType string) []ports.Node {
	cols := t.node.Child(tagColumns)
	if cols == nil {
		return nil
	}
	var out []ports.Node
	for _, c := range cols.Children(tagColumn) {
		if attr(c, "type") == columnType {
			out = append(out, c)
		}
	}
	return out
}

// VideoTracks yields the video track columns in document order.
func (t Timeline) VideoTracks() iter.Seq2[VideoTrack, error] {
	return func(yield func(VideoTrack, error) bool) {
		for _, c := range t.columns(domain.ColumnVideo) {
			if !yield(VideoTrack{t: t, node: c}, nil) {
				return
			}
		}
	}
}

// VideoTrack looks a video track up by id.
func (t Timeline) VideoTrack(uid string) (VideoTrack, error) {
	ix := refindex.Of("track columns", t.columns(domain.ColumnVideo), refindex.ByAttr("id"))
	n, err := ix.Find(uid)
	if err != nil {
		return VideoTrack{}, err
	}
	return VideoTrack{t: t, node: n}, nil
}

// AudioTracks yields the audio track columns in document order.
func (t Timeline) AudioTracks() iter.Seq2[AudioTrack, error] {
	return func(yield func(AudioTrack, error) bool) {
		for _, c := range t.columns(domain.ColumnAudio) {
			if !yield(AudioTrack{t: t, node: c}, nil) {
				return
			}
		}
	}
}

// Transitions yields the transitions placed on the timeline.
func (t Timeline) Transitions() iter.Seq2[Transition, error] {
	return func(yield func(Transition, error) bool) {
		for _, c := range t.columns(domain.ColumnTimeline) {
			for _, n := range c.Children(tagTransitionSeq) {
				if !yield(Transition{t: t, node: n}, nil) {
					return
				}
			}
		}
	}
}
