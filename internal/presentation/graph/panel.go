package graph

import "github.com/aretw0/sboard"

// PanelChart renders the full layer graph of a panel. When highlight is true
// the leaves of a default walk are marked as visited.
func PanelChart(pn sboard.Panel, highlight bool) (string, error) {
	layers, err := pn.AllLayers()
	if err != nil {
		return "", err
	}
	nodes := make([]Node, 0, len(layers))
	for _, l := range layers {
		n := Node{Name: l.Name(), Kind: l.Kind()}
		if el, ok, err := l.Element(); ok && err == nil {
			n.Element = el.Path()
		}
		nodes = append(nodes, n)
	}

	var overlay *GraphOverlay
	if highlight {
		overlay = &GraphOverlay{}
		for l, err := range pn.Layers(false, true) {
			if err != nil {
				return "", err
			}
			overlay.VisitedNodes = append(overlay.VisitedNodes, l.Name())
		}
	}
	return GenerateMermaid(pn.RootGroup(), nodes, pn.Edges(), overlay), nil
}
