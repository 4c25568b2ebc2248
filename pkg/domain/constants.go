package domain

// Names of the fixed Storyboard document schema.
const (
	// TimelineSceneName is the name of the scene acting as the master timeline.
	TimelineSceneName = "Top"
	// ShotMarker is contained in the name of every shot scene.
	ShotMarker = "shot"
	// PanelMarker is contained in the name of every panel scene.
	PanelMarker = "panel"

	// DefaultRootGroup is used when a panel's rootgroup has no name.
	DefaultRootGroup = "Top"

	// AudioFolder is the project-relative folder holding sound files.
	AudioFolder = "audio"
)

// Column types found under a scene's <columns>.
const (
	ColumnTimeline = "0" // warpSeq / transitionSeq placement list
	ColumnAudio    = "1" // soundSequence clips
	ColumnVideo    = "2" // elementSeq clips
)

// Meta types found under <metas>.
const (
	MetaProjectInfo = "projectInfo"
	MetaSceneInfo   = "sceneInfo"
	MetaPanelInfo   = "panelInfo"
)

// Module types of the layer graph with a non-leaf meaning.
const (
	ModuleGroup        = "GROUP"
	ModuleMultiportOut = "MULTIPORT_OUT"
	ModuleDisplay      = "DISPLAY"
)

// KindOfModule maps a module type attribute to its layer kind.
// Unknown types are renderable leaves.
func KindOfModule(moduleType string) LayerKind {
	switch moduleType {
	case ModuleGroup:
		return LayerGroup
	case ModuleMultiportOut, ModuleDisplay:
		return LayerTerminal
	default:
		return LayerLeaf
	}
}
