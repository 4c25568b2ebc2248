package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/presentation/graph"
	"github.com/aretw0/sboard/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelChart(t *testing.T) {
	p, err := sboard.Load(strings.NewReader(testutils.SampleProject))
	require.NoError(t, err)
	pn, err := p.Panel("p1")
	require.NoError(t, err)

	out, err := graph.PanelChart(pn, false)
	require.NoError(t, err)
	assert.Contains(t, out, "Top((\"Top\"))")
	assert.Contains(t, out, "BG[[\"BG\"]]")
	assert.Contains(t, out, "Sky[\"Sky <br/> ./library/shared/bg_01.tvg\"]")
	assert.Contains(t, out, "Top --> BG")
	assert.NotContains(t, out, "classDef")

	out, err = graph.PanelChart(pn, true)
	require.NoError(t, err)
	assert.Contains(t, out, "class Sky visited;")
	assert.Contains(t, out, "class Glow visited;")
	assert.NotContains(t, out, "class BG visited;")
}
