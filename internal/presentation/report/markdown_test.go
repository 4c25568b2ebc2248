package report_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/presentation/report"
	"github.com/aretw0/sboard/internal/testutils"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *sboard.Project {
	t.Helper()
	p, err := sboard.Load(strings.NewReader(testutils.SampleProject))
	require.NoError(t, err)
	return p
}

func TestInfo(t *testing.T) {
	out, err := report.Info(sample(t))
	require.NoError(t, err)

	assert.Contains(t, out, "# Sample Board")
	assert.Contains(t, out, "| Frame rate | 24 |")
	assert.Contains(t, out, "| Timeline frames | 1500 |")
	assert.Contains(t, out, "| Scenes | 3 |")
	assert.Contains(t, out, "| Panels | 4 |")
	assert.Contains(t, out, "| Sequences | 2 |")
}

func TestScenes(t *testing.T) {
	out, err := report.Scenes(sample(t))
	require.NoError(t, err)

	assert.Contains(t, out, "| 1 | shot1 | seqA | 100-109 | 1-10 | 10 | 2 |")
	assert.Contains(t, out, "| 2 | shot2 | (default) | 110-117 | 1-8 | 8 | 1 |")
}

func TestPanels(t *testing.T) {
	p := sample(t)

	out, err := report.Panels(p, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "| shot1 | 1 | Establishing | 0-4 | 100-104 | 4 | 4 |")
	assert.Contains(t, out, "| shot3 | 1 | panel_p4 | 0-4 | 118-122 | 4 | 0 |")

	s, err := p.Scene("shot2")
	require.NoError(t, err)
	out, err = report.Panels(p, &s)
	require.NoError(t, err)
	assert.Contains(t, out, "panel_p3")
	assert.NotContains(t, out, "Establishing")
}

func TestLayers(t *testing.T) {
	pn, err := sample(t).Panel("p1")
	require.NoError(t, err)

	out, err := report.Layers(pn)
	require.NoError(t, err)
	assert.Contains(t, out, "- **BG**/\n  - Sky `./library/shared/bg_01.tvg`\n  - Ground\n")
	assert.Contains(t, out, "- Char `./elements/char/char_01.tvg`\n")
	assert.Contains(t, out, "- **FX**/\n  - Glow\n")
	assert.NotContains(t, out, "Out")
}

func TestLibrary(t *testing.T) {
	out, err := report.Library(sample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "| mp4 | 2 | clipA | `./library/clips/clipA.mp4` |")
	assert.Contains(t, out, "| Drawing | 4 | char_01 | `./elements/char/char_01.tvg` |")
}

func TestReportErrors(t *testing.T) {
	doc := testutils.Mutate(t, `exposures="100-109"`, `exposures="oops"`)
	p, err := sboard.Load(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = report.Scenes(p)
	assert.ErrorIs(t, err, domain.ErrMalformedRange)
}
