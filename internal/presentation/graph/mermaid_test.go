package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sboard/internal/presentation/graph"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	nodes := []graph.Node{
		{Name: "BG", Kind: domain.LayerGroup},
		{Name: "Sky", Kind: domain.LayerLeaf, Element: "./library/shared/bg_01.tvg"},
		{Name: "Out", Kind: domain.LayerTerminal},
		{Name: "color-card", Kind: domain.LayerLeaf},
	}
	edges := []domain.LayerEdge{
		{Out: "Top", In: "BG"},
		{Out: "BG", In: "Sky"},
		{Out: "Top", In: "Out"},
		{Out: "Top", In: "color-card"},
	}

	tests := []struct {
		name     string
		contains []string
	}{
		{"Header", []string{"graph TD\n"}},
		{"Root Shape", []string{`Top(("Top"))`}},
		{"Group Shape", []string{`BG[["BG"]]`}},
		{"Terminal Shape", []string{`Out[/"Out"/]`}},
		{"Leaf With Element", []string{`Sky["Sky <br/> ./library/shared/bg_01.tvg"]`}},
		{"ID Sanitization", []string{`color_card["color-card"]`, "Top --> color_card"}},
		{"Edges", []string{"Top --> BG", "BG --> Sky", "Top -.-> Out"}},
	}

	out := graph.GenerateMermaid("Top", nodes, edges, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	nodes := []graph.Node{{Name: "Sky", Kind: domain.LayerLeaf}}
	out := graph.GenerateMermaid("Top", nodes, nil, &graph.GraphOverlay{
		VisitedNodes: []string{"Sky", "Sky", ""},
		CurrentNode:  "Sky",
	})

	assert.Contains(t, out, "classDef visited")
	assert.Equal(t, 1, strings.Count(out, "class Sky visited;"))
	assert.Contains(t, out, "class Sky current;")
}
