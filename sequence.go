package sboard

import "iter"

// Sequence groups the timeline scenes that share a sequence tag.
// It has no node of its own and is computed on demand.
type Sequence struct {
	p    *Project
	name string
}

// Name returns the raw sequence tag; empty for the default sequence.
func (q Sequence) Name() string { return q.name }

// IsDefault reports whether this is the sequence of untagged scenes.
func (q Sequence) IsDefault() bool { return q.name == "" }

// Project returns the owning project.
func (q Sequence) Project() *Project { return q.p }

// Equal reports whether both values name the same sequence of the same project.
func (q Sequence) Equal(o Sequence) bool {
	return q.p == o.p && q.name == o.name
}

// Scenes yields the member scenes in document order.
func (q Sequence) Scenes() iter.Seq2[Scene, error] {
	return func(yield func(Scene, error) bool) {
		for s, err := range q.p.Scenes() {
			if err != nil {
				yield(Scene{}, err)
				return
			}
			if s.SequenceName() != q.name {
				continue
			}
			if !yield(s, nil) {
				return
			}
		}
	}
}
