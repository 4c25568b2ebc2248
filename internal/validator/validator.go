// Package validator audits a loaded project against the structural
// invariants of the object model. It only reports; nothing is repaired.
package validator

import (
	"fmt"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/pkg/domain"
)

// errLengthMismatch and errOutOfOrder wrap domain.ErrStructuralPrecondition so
// callers can match every invariant violation with one sentinel.
var (
	errLengthMismatch = fmt.Errorf("%w: scene length differs from the sum of its panels", domain.ErrStructuralPrecondition)
	errOutOfOrder     = fmt.Errorf("%w: starts before its predecessor", domain.ErrStructuralPrecondition)
)

// startOrder tracks the previous start of a run of timeline items.
type startOrder struct {
	prev  int
	first bool
}

func newStartOrder() *startOrder { return &startOrder{first: true} }

// next records start and reports whether it keeps the run non-decreasing.
func (o *startOrder) next(start int) bool {
	ok := o.first || start >= o.prev
	o.prev, o.first = start, false
	return ok
}

type collector struct {
	errs []error
}

func (c *collector) add(entity string, err error) {
	c.errs = append(c.errs, &Issue{Entity: entity, Err: err})
}

// ValidateProject checks the whole project and returns an *AggregateError
// listing every violation, or nil.
//
// It checks that every placement resolves and parses, that each scene length
// equals the sum of its panel lengths, that scene and panel timeline starts
// never decrease, that clip starts never decrease within a video track, that
// layer links point at declared modules, and that every clip and layer element
// resolves in the library.
func ValidateProject(p *sboard.Project) error {
	c := &collector{}

	tl, err := p.Timeline()
	if err != nil {
		c.add("timeline", err)
		return &AggregateError{Errors: c.errs}
	}

	scenes := newStartOrder()
	for s, err := range tl.Scenes() {
		if err != nil {
			c.add("timeline", err)
			break
		}
		entity := "scene " + s.UID()

		r, err := s.TimelineRange()
		if err != nil {
			c.add(entity, err)
		} else if !scenes.next(r.Start) {
			c.add(entity, errOutOfOrder)
		}

		validateScene(c, s)
	}

	// Range errors of panels were reported with their scene.
	panels := newStartOrder()
	for pn, err := range tl.Panels() {
		if err != nil {
			break
		}
		if r, err := pn.TimelineRange(); err == nil && !panels.next(r.Start) {
			c.add("panel "+pn.UID(), errOutOfOrder)
		}
	}

	for vt := range tl.VideoTracks() {
		clips := newStartOrder()
		for clip := range vt.Clips() {
			entity := fmt.Sprintf("track %s clip %s", vt.Name(), clip.UID())
			if r, err := clip.TimelineRange(); err != nil {
				c.add(entity, err)
			} else if !clips.next(r.Start) {
				c.add(entity, errOutOfOrder)
			}
			if _, err := clip.Element(); err != nil {
				c.add(entity, err)
			}
		}
	}

	for tr := range tl.Transitions() {
		if _, err := tr.TimelineRange(); err != nil {
			c.add("transition "+tr.UID(), err)
		}
	}

	if len(c.errs) > 0 {
		return &AggregateError{Errors: c.errs}
	}
	return nil
}

func validateScene(c *collector, s sboard.Scene) {
	entity := "scene " + s.UID()

	sum := 0
	sumOK := true
	for pn, err := range s.Panels() {
		if err != nil {
			c.add(entity, err)
			return
		}
		n, err := pn.Length()
		if err != nil {
			c.add("panel "+pn.UID(), err)
			sumOK = false
		} else {
			sum += n
		}
		validatePanel(c, pn)
	}

	length, err := s.Length()
	if err != nil {
		c.add(entity, err)
		return
	}
	if sumOK && length != sum {
		c.add(entity, fmt.Errorf("%w (nbframes %d, panels %d)", errLengthMismatch, length, sum))
	}
}

func validatePanel(c *collector, pn sboard.Panel) {
	entity := "panel " + pn.UID()

	for _, e := range pn.Edges() {
		if e.Out != pn.RootGroup() {
			if _, err := pn.Layer(e.Out); err != nil {
				c.add(fmt.Sprintf("%s link %s->%s", entity, e.Out, e.In), err)
			}
		}
		if _, err := pn.Layer(e.In); err != nil {
			c.add(fmt.Sprintf("%s link %s->%s", entity, e.Out, e.In), err)
		}
	}

	layers, err := pn.AllLayers()
	if err != nil {
		c.add(entity, err)
		return
	}
	for _, l := range layers {
		if _, _, err := l.Element(); err != nil {
			c.add(entity+" layer "+l.Name(), err)
		}
	}
}
