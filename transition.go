package sboard

import (
	"github.com/aretw0/sboard/internal/coords"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

// Transition is an effect bridging two scenes on the master timeline.
type Transition struct {
	t    Timeline
	node ports.Node
}

// UID returns the transition id.
func (tr Transition) UID() string { return attr(tr.node, "id") }

// Type returns the transition kind, e.g. "dissolve".
func (tr Transition) Type() string { return attr(tr.node, "type") }

// Timeline returns the owning timeline.
func (tr Transition) Timeline() Timeline { return tr.t }

// Equal reports whether both views wrap the same transition.
func (tr Transition) Equal(o Transition) bool {
	return tr.t.Equal(o.t) && tr.node == o.node
}

// TimelineRange returns the global frames covered by the transition.
func (tr Transition) TimelineRange() (domain.FrameRange, error) {
	v, ok := tr.node.Attr(coords.AttrExposures)
	if !ok {
		return domain.FrameRange{}, &domain.RangeError{Text: "", Reason: "transition " + tr.UID() + " has no exposures"}
	}
	return coords.ParseExposure(v)
}
