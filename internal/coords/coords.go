// Package coords parses exposure ranges and converts frame ranges between the
// three coordinate spaces of a project: panel-local, scene-relative and
// global-timeline.
//
// Exposures in the document are 1-based and inclusive. Scene-relative panel
// ranges are 0-based offsets into the owning scene with an exclusive end, so
// they compose additively with a scene's global start.
package coords

import (
	"strconv"
	"strings"

	"github.com/aretw0/sboard/internal/refindex"
	"github.com/aretw0/sboard/pkg/domain"
)

// AttrExposures is the placement-record attribute holding the exposure range.
const AttrExposures = "exposures"

// ParseExposure parses "N" as (N, N) and "A-B" as (A, B).
// End >= Start is not enforced.
func ParseExposure(text string) (domain.FrameRange, error) {
	parts := strings.Split(text, "-")
	switch len(parts) {
	case 1:
		n, err := parseFrame(text, parts[0])
		if err != nil {
			return domain.FrameRange{}, err
		}
		return domain.FrameRange{Start: n, End: n}, nil
	case 2:
		start, err := parseFrame(text, parts[0])
		if err != nil {
			return domain.FrameRange{}, err
		}
		end, err := parseFrame(text, parts[1])
		if err != nil {
			return domain.FrameRange{}, err
		}
		return domain.FrameRange{Start: start, End: end}, nil
	default:
		return domain.FrameRange{}, &domain.RangeError{Text: text, Reason: "more than one separator"}
	}
}

func parseFrame(text, part string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, &domain.RangeError{Text: text, Reason: "not an integer"}
	}
	return n, nil
}

// ParseFrameAttr parses a single integer frame attribute such as nbframes.
func ParseFrameAttr(name, value string, ok bool) (int, error) {
	if !ok {
		return 0, &domain.RangeError{Text: "", Reason: "missing attribute " + name}
	}
	return parseFrame(value, value)
}

// ParseFloatAttr parses a float attribute such as startTime or a frame rate.
func ParseFloatAttr(name, value string, ok bool) (float64, error) {
	if !ok {
		return 0, &domain.RangeError{Text: "", Reason: "missing attribute " + name}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &domain.RangeError{Text: value, Reason: "not a number"}
	}
	return f, nil
}

// ExposureLength returns the number of frames covered by an inclusive
// exposure range.
func ExposureLength(r domain.FrameRange) int {
	return r.End - r.Start + 1
}

// SceneRelative converts a panel's exposure inside its scene into a 0-based
// offset range with an exclusive end.
func SceneRelative(exposure domain.FrameRange) domain.FrameRange {
	start := exposure.Start - 1
	return domain.FrameRange{Start: start, End: start + ExposureLength(exposure)}
}

// ComposeGlobal places a scene-relative panel range on the global timeline:
// start = scene global start + panel scene-relative start,
// end = start + panel length.
func ComposeGlobal(sceneTimeline, panelScene domain.FrameRange) domain.FrameRange {
	start := sceneTimeline.Start + panelScene.Start
	return domain.FrameRange{Start: start, End: start + (panelScene.End - panelScene.Start)}
}

// TimelineOffset locates the placement record of id in a container's
// placement list and returns its exposure range.
func TimelineOffset(placements *refindex.Index, id string) (domain.FrameRange, error) {
	rec, err := placements.Find(id)
	if err != nil {
		return domain.FrameRange{}, err
	}
	exp, ok := rec.Attr(AttrExposures)
	if !ok {
		return domain.FrameRange{}, &domain.RangeError{Text: "", Reason: "placement " + id + " has no exposures"}
	}
	return ParseExposure(exp)
}
