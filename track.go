package sboard

import (
	"iter"
	"path"

	"github.com/aretw0/sboard/internal/coords"
	"github.com/aretw0/sboard/pkg/domain"
	"github.com/aretw0/sboard/pkg/ports"
)

const (
	tagElementSeq    = "elementSeq"
	tagSoundSequence = "soundSequence"
)

func enabled(n ports.Node) bool {
	return attr(n, "enabled") != "false"
}

// VideoTrack is a video column of the master timeline.
type VideoTrack struct {
	t    Timeline
	node ports.Node
}

// UID returns the track id.
func (vt VideoTrack) UID() string { return attr(vt.node, "id") }

// Name returns the track name.
func (vt VideoTrack) Name() string { return attr(vt.node, "name") }

// Enabled reports whether the track is active. Tracks are enabled unless
// explicitly marked otherwise.
func (vt VideoTrack) Enabled() bool { return enabled(vt.node) }

// Timeline returns the owning timeline.
func (vt VideoTrack) Timeline() Timeline { return vt.t }

// Equal reports whether both views wrap the same track.
func (vt VideoTrack) Equal(o VideoTrack) bool {
	return vt.t.Equal(o.t) && vt.node == o.node
}

// Clips yields the track's clips in document order.
func (vt VideoTrack) Clips() iter.Seq2[VideoClip, error] {
	return func(yield func(VideoClip, error) bool) {
		for _, n := range vt.node.Children(tagElementSeq) {
			if !yield(VideoClip{track: vt, node: n}, nil) {
				return
			}
		}
	}
}

// VideoClip is a library element placed on a video track.
type VideoClip struct {
	track VideoTrack
	node  ports.Node
}

// UID returns the clip id.
func (c VideoClip) UID() string { return attr(c.node, "uid") }

// Track returns the owning track.
func (c VideoClip) Track() VideoTrack { return c.track }

// Equal reports whether both views wrap the same clip.
func (c VideoClip) Equal(o VideoClip) bool {
	return c.track.Equal(o.track) && c.node == o.node
}

// TimelineRange returns the global frames the clip is exposed on.
func (c VideoClip) TimelineRange() (domain.FrameRange, error) {
	v, ok := c.node.Attr(coords.AttrExposures)
	if !ok {
		return domain.FrameRange{}, &domain.RangeError{Text: "", Reason: "clip " + c.UID() + " has no exposures"}
	}
	return coords.ParseExposure(v)
}

// Length returns the length of the clip's source media. A trimmed clip ends
// its source at the trim end; an untrimmed one plays it whole on the timeline.
func (c VideoClip) Length() (int, error) {
	r, err := c.ClipRange()
	if err != nil {
		return 0, err
	}
	return r.End, nil
}

// ClipRange returns the trimmed source frames. Without a trim the whole
// source is used, from frame 1 to the timeline span of the clip.
func (c VideoClip) ClipRange() (domain.FrameRange, error) {
	if v, ok := c.node.Attr("trim"); ok {
		return coords.ParseExposure(v)
	}
	r, err := c.TimelineRange()
	if err != nil {
		return domain.FrameRange{}, err
	}
	return domain.FrameRange{Start: 1, End: coords.ExposureLength(r)}, nil
}

// ElementRef returns the unresolved library reference of the clip.
func (c VideoClip) ElementRef() domain.ElementRef {
	return domain.ElementRef{CategoryID: attr(c.node, "id"), Name: attr(c.node, "val")}
}

// Element resolves the clip's source in the project library.
func (c VideoClip) Element() (LibraryElement, error) {
	return c.track.t.p.Library().Resolve(c.ElementRef())
}

// Path returns the project-relative path of the clip's source file.
func (c VideoClip) Path() (string, error) {
	el, err := c.Element()
	if err != nil {
		return "", err
	}
	return el.Path(), nil
}

// AudioTrack is an audio column of the master timeline.
type AudioTrack struct {
	t    Timeline
	node ports.Node
}

// Name returns the track name.
func (at AudioTrack) Name() string { return attr(at.node, "name") }

// Enabled reports whether the track is active.
func (at AudioTrack) Enabled() bool { return enabled(at.node) }

// Timeline returns the owning timeline.
func (at AudioTrack) Timeline() Timeline { return at.t }

// Equal reports whether both views wrap the same track.
func (at AudioTrack) Equal(o AudioTrack) bool {
	return at.t.Equal(o.t) && at.node == o.node
}

// Clips yields the track's sound clips in document order.
func (at AudioTrack) Clips() iter.Seq2[AudioClip, error] {
	return func(yield func(AudioClip, error) bool) {
		for _, n := range at.node.Children(tagSoundSequence) {
			if !yield(AudioClip{track: at, node: n}, nil) {
				return
			}
		}
	}
}

// AudioClip is a sound file placed on an audio track.
type AudioClip struct {
	track AudioTrack
	node  ports.Node
}

// FileName returns the sound file name.
func (c AudioClip) FileName() string { return attr(c.node, "name") }

// Path returns the project-relative path of the sound file.
func (c AudioClip) Path() string {
	return "./" + path.Join(domain.AudioFolder, c.FileName())
}

// Track returns the owning track.
func (c AudioClip) Track() AudioTrack { return c.track }

// Equal reports whether both views wrap the same clip.
func (c AudioClip) Equal(o AudioClip) bool {
	return c.track.Equal(o.track) && c.node == o.node
}

// TimelineRange returns the global frames the sound plays on.
func (c AudioClip) TimelineRange() (domain.FrameRange, error) {
	sv, sok := c.node.Attr("startFrame")
	start, err := coords.ParseFrameAttr("startFrame", sv, sok)
	if err != nil {
		return domain.FrameRange{}, err
	}
	ev, eok := c.node.Attr("stopFrame")
	end, err := coords.ParseFrameAttr("stopFrame", ev, eok)
	if err != nil {
		return domain.FrameRange{}, err
	}
	return domain.FrameRange{Start: start, End: end}, nil
}

// Length returns the number of timeline frames the sound covers.
func (c AudioClip) Length() (int, error) {
	r, err := c.TimelineRange()
	if err != nil {
		return 0, err
	}
	return coords.ExposureLength(r), nil
}

// ClipRange returns the trim of the sound file in seconds.
func (c AudioClip) ClipRange() (domain.TimeRange, error) {
	sv, sok := c.node.Attr("startTime")
	start, err := coords.ParseFloatAttr("startTime", sv, sok)
	if err != nil {
		return domain.TimeRange{}, err
	}
	ev, eok := c.node.Attr("stopTime")
	end, err := coords.ParseFloatAttr("stopTime", ev, eok)
	if err != nil {
		return domain.TimeRange{}, err
	}
	return domain.TimeRange{Start: start, End: end}, nil
}
