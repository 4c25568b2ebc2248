package coords_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sboard/internal/coords"
	"github.com/aretw0/sboard/internal/refindex"
	"github.com/aretw0/sboard/pkg/adapters/xmltree"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExposure(t *testing.T) {
	tests := []struct {
		in   string
		want domain.FrameRange
	}{
		{"10", domain.FrameRange{Start: 10, End: 10}},
		{"10-20", domain.FrameRange{Start: 10, End: 20}},
		{"1-1045", domain.FrameRange{Start: 1, End: 1045}},
		{"20-10", domain.FrameRange{Start: 20, End: 10}}, // reversed ranges are taken as given
		{" 3 - 7 ", domain.FrameRange{Start: 3, End: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := coords.ParseExposure(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExposure_Malformed(t *testing.T) {
	for _, in := range []string{"10-20-30", "", "a", "1-", "-5", "1-b", "1--2"} {
		t.Run(in, func(t *testing.T) {
			_, err := coords.ParseExposure(in)
			assert.ErrorIs(t, err, domain.ErrMalformedRange)
		})
	}
}

func TestSceneRelativeAndCompose(t *testing.T) {
	scene := domain.FrameRange{Start: 100, End: 109}

	p1 := coords.SceneRelative(domain.FrameRange{Start: 1, End: 4})
	p2 := coords.SceneRelative(domain.FrameRange{Start: 5, End: 10})
	assert.Equal(t, domain.FrameRange{Start: 0, End: 4}, p1)
	assert.Equal(t, domain.FrameRange{Start: 4, End: 10}, p2)

	assert.Equal(t, domain.FrameRange{Start: 100, End: 104}, coords.ComposeGlobal(scene, p1))
	assert.Equal(t, domain.FrameRange{Start: 104, End: 110}, coords.ComposeGlobal(scene, p2))
}

func TestExposureLength(t *testing.T) {
	assert.Equal(t, 4, coords.ExposureLength(domain.FrameRange{Start: 1, End: 4}))
	assert.Equal(t, 1, coords.ExposureLength(domain.FrameRange{Start: 7, End: 7}))
	assert.Equal(t, -1, coords.ExposureLength(domain.FrameRange{Start: 5, End: 3}))
}

func TestParseAttrs(t *testing.T) {
	n, err := coords.ParseFrameAttr("nbframes", "12", true)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = coords.ParseFrameAttr("nbframes", "", false)
	assert.ErrorIs(t, err, domain.ErrMalformedRange)

	f, err := coords.ParseFloatAttr("startTime", "4.25", true)
	require.NoError(t, err)
	assert.InDelta(t, 4.25, f, 1e-9)

	_, err = coords.ParseFloatAttr("startTime", "x", true)
	assert.ErrorIs(t, err, domain.ErrMalformedRange)
}

func TestTimelineOffset(t *testing.T) {
	col, err := xmltree.Parse(strings.NewReader(`<column type="0">
  <warpSeq id="s1" exposures="100-109"/>
  <warpSeq id="s2" exposures="110"/>
  <warpSeq id="bad" exposures="1-2-3"/>
  <warpSeq id="none"/>
</column>`))
	require.NoError(t, err)
	ix := refindex.Of("placements", col.Children("warpSeq"), refindex.ByAttr("id"))

	r, err := coords.TimelineOffset(ix, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.FrameRange{Start: 100, End: 109}, r)

	r, err = coords.TimelineOffset(ix, "s2")
	require.NoError(t, err)
	assert.Equal(t, domain.FrameRange{Start: 110, End: 110}, r)

	_, err = coords.TimelineOffset(ix, "bad")
	assert.ErrorIs(t, err, domain.ErrMalformedRange)

	_, err = coords.TimelineOffset(ix, "none")
	assert.ErrorIs(t, err, domain.ErrMalformedRange)

	_, err = coords.TimelineOffset(ix, "missing")
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}
