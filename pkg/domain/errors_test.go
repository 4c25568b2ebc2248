package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"range", &RangeError{Text: "1-2-3", Reason: "too many separators"}, ErrMalformedRange},
		{"reference", &ReferenceError{Container: "scenes", ID: "x"}, ErrReferenceNotFound},
		{"asset", &AssetError{Ref: ElementRef{CategoryID: "2", Name: "clipA"}}, ErrAssetNotFound},
		{"precondition", &PreconditionError{Op: "timeline range", Reason: "master timeline"}, ErrStructuralPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			for _, other := range []error{ErrMalformedRange, ErrReferenceNotFound, ErrAssetNotFound, ErrStructuralPrecondition} {
				if other != tt.sentinel {
					assert.False(t, errors.Is(tt.err, other), "%v should not match %v", tt.err, other)
				}
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `malformed range "a": not an integer`, (&RangeError{Text: "a", Reason: "not an integer"}).Error())
	assert.Equal(t, `reference "p9" not found in scenes`, (&ReferenceError{Container: "scenes", ID: "p9"}).Error())
	assert.Equal(t, `asset "clipA" not found in category "2"`, (&AssetError{Ref: ElementRef{CategoryID: "2", Name: "clipA"}}).Error())
}

func TestKindOfModule(t *testing.T) {
	assert.Equal(t, LayerGroup, KindOfModule("GROUP"))
	assert.Equal(t, LayerTerminal, KindOfModule("MULTIPORT_OUT"))
	assert.Equal(t, LayerTerminal, KindOfModule("DISPLAY"))
	assert.Equal(t, LayerLeaf, KindOfModule("READ"))
	assert.Equal(t, LayerLeaf, KindOfModule(""))
}

func TestFrameRangeString(t *testing.T) {
	assert.Equal(t, "10", FrameRange{Start: 10, End: 10}.String())
	assert.Equal(t, "10-20", FrameRange{Start: 10, End: 20}.String())
}
