// Package graph renders panel layer graphs as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sboard/pkg/domain"
)

// Node is a layer-graph module as seen by the renderer.
type Node struct {
	Name    string
	Kind    domain.LayerKind
	Element string // resolved asset path, empty when the layer draws nothing
}

// GraphOverlay marks layers to highlight on the chart.
type GraphOverlay struct {
	VisitedNodes []string // e.g. the result of a walk
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart syntax string for a layer graph.
// It applies semantic styling:
// - Root group: ((Circle))
// - Group: [[Subroutine]]
// - Terminal: [/Parallelogram/]
// - Leaf: [Rectangle]
// Links into a terminal are drawn dotted, since a walk never crosses them.
func GenerateMermaid(root string, nodes []Node, edges []domain.LayerEdge, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	kinds := make(map[string]domain.LayerKind, len(nodes))
	fmt.Fprintf(&sb, "    %s((\"%s\"))\n", sanitizeMermaidID(root), root)

	for _, node := range nodes {
		kinds[node.Name] = node.Kind
		safeID := sanitizeMermaidID(node.Name)

		opener, closer := "[", "]"
		switch node.Kind {
		case domain.LayerGroup:
			opener, closer = "[[", "]]"
		case domain.LayerTerminal:
			opener, closer = "[/", "/]"
		}

		label := node.Name
		if node.Element != "" {
			label = fmt.Sprintf("%s <br/> %s", node.Name, strings.ReplaceAll(node.Element, "\"", "'"))
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label, closer)
	}

	for _, e := range edges {
		arrow := "-->"
		if kinds[e.In] == domain.LayerTerminal || kinds[e.Out] == domain.LayerTerminal {
			arrow = "-.->"
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(e.Out), arrow, sanitizeMermaidID(e.In))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
