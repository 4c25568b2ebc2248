// Package report formats project views as Markdown for the CLI.
package report

import (
	"fmt"
	"iter"
	"strings"

	"github.com/aretw0/sboard"
)

func row(sb *strings.Builder, cells ...any) {
	sb.WriteString("|")
	for _, c := range cells {
		fmt.Fprintf(sb, " %v |", c)
	}
	sb.WriteString("\n")
}

func header(sb *strings.Builder, cols ...string) {
	cells := make([]any, len(cols))
	for i, c := range cols {
		cells[i] = c
	}
	row(sb, cells...)
	sb.WriteString("|" + strings.Repeat(" --- |", len(cols)) + "\n")
}

// Info summarizes the project: metadata, timeline and counts.
func Info(p *sboard.Project) (string, error) {
	var sb strings.Builder

	title := p.Title()
	if title == "" {
		title = p.Name
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	fps, err := p.FrameRate()
	if err != nil {
		return "", err
	}
	tl, err := p.Timeline()
	if err != nil {
		return "", err
	}
	length, err := tl.Length()
	if err != nil {
		return "", err
	}

	scenes, err := sboard.Collect(p.Scenes())
	if err != nil {
		return "", err
	}
	panels, err := sboard.Collect(p.Panels())
	if err != nil {
		return "", err
	}
	seqs, err := sboard.Collect(p.Sequences())
	if err != nil {
		return "", err
	}

	header(&sb, "Property", "Value")
	row(&sb, "Source", p.Source())
	row(&sb, "Version", p.Version())
	row(&sb, "Build", p.Build())
	row(&sb, "Frame rate", fps)
	row(&sb, "Timeline frames", length)
	row(&sb, "Scenes", len(scenes))
	row(&sb, "Panels", len(panels))
	row(&sb, "Sequences", len(seqs))
	return sb.String(), nil
}

// Scenes lists the timeline scenes with their ranges.
func Scenes(p *sboard.Project) (string, error) {
	var sb strings.Builder
	sb.WriteString("## Scenes\n\n")
	header(&sb, "#", "Scene", "Sequence", "Timeline", "Clip", "Frames", "Panels")

	tl, err := p.Timeline()
	if err != nil {
		return "", err
	}
	i := 0
	for s, err := range tl.Scenes() {
		if err != nil {
			return "", err
		}
		i++
		tr, err := s.TimelineRange()
		if err != nil {
			return "", err
		}
		cr, err := s.ClipRange()
		if err != nil {
			return "", err
		}
		n, err := s.Length()
		if err != nil {
			return "", err
		}
		panels, err := sboard.Collect(s.Panels())
		if err != nil {
			return "", err
		}
		seq := s.SequenceName()
		if seq == "" {
			seq = "(default)"
		}
		row(&sb, i, s.Name(), seq, tr, cr, n, len(panels))
	}
	return sb.String(), nil
}

// Panels lists the panels of one scene, or of the whole timeline when scene is
// nil.
func Panels(p *sboard.Project, scene *sboard.Scene) (string, error) {
	var sb strings.Builder
	sb.WriteString("## Panels\n\n")
	header(&sb, "Scene", "#", "Panel", "Scene range", "Timeline", "Frames", "Layers")

	var seq iter.Seq2[sboard.Panel, error]
	if scene != nil {
		seq = scene.Panels()
	} else {
		tl, err := p.Timeline()
		if err != nil {
			return "", err
		}
		seq = tl.Panels()
	}
	for pn, err := range seq {
		if err != nil {
			return "", err
		}
		sr, err := pn.SceneRange()
		if err != nil {
			return "", err
		}
		tr, err := pn.TimelineRange()
		if err != nil {
			return "", err
		}
		n, err := pn.Length()
		if err != nil {
			return "", err
		}
		layers, err := sboard.Collect(pn.Layers(false, true))
		if err != nil {
			return "", err
		}
		row(&sb, pn.Scene().Name(), pn.Number(), pn.Name(), sr, tr, n, len(layers))
	}
	return sb.String(), nil
}

// Layers renders a panel's layer tree as a nested list.
func Layers(pn sboard.Panel) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Layers of %s\n\n", pn.Name())
	if err := writeLayers(&sb, pn.Layers(true, false), 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeLayers(sb *strings.Builder, seq func(func(sboard.Layer, error) bool), depth int) error {
	for l, err := range seq {
		if err != nil {
			return err
		}
		indent := strings.Repeat("  ", depth)
		switch {
		case l.IsGroup():
			fmt.Fprintf(sb, "%s- **%s**/\n", indent, l.Name())
			if err := writeLayers(sb, l.Layers(true, false), depth+1); err != nil {
				return err
			}
		case !l.ElementRef().IsZero():
			path := "(unresolved)"
			if el, ok, err := l.Element(); ok && err == nil {
				path = el.Path()
			}
			fmt.Fprintf(sb, "%s- %s `%s`\n", indent, l.Name(), path)
		default:
			fmt.Fprintf(sb, "%s- %s\n", indent, l.Name())
		}
	}
	return nil
}

// Library lists every library element with its resolved path.
func Library(p *sboard.Project) (string, error) {
	var sb strings.Builder
	sb.WriteString("## Library\n\n")
	header(&sb, "Category", "Id", "Element", "Path")

	for el, err := range p.Library().Elements() {
		if err != nil {
			return "", err
		}
		c := el.Category()
		row(&sb, c.Name(), c.UID(), el.Name(), "`"+el.Path()+"`")
	}
	return sb.String(), nil
}
