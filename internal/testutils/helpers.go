package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleProject is a small but complete Storyboard project:
//
//   - Top timeline: shot1 at 100-109, shot2 at 110-117, shot3 at 118-121.
//   - shot1 (seqA): panels p1 "1-4" and p2 "5-10".
//   - shot2 (default sequence): panel p3 "1-8".
//   - shot3 (seqA): panel p4 "1-4".
//   - p1 carries a layer graph with groups, leaves and a terminal output.
//   - Two audio tracks, two video tracks, one transition.
//   - Library categories "mp4" (2), "Shared" (3) and "Drawing" (4).
const SampleProject = `<?xml version="1.0" encoding="UTF-8"?>
<project version="2012" build="17925" source="Storyboard Pro 22.0.0">
  <options>
    <framerate val="24"/>
  </options>
  <metas>
    <meta type="projectInfo"><projectInfo title="Sample Board"/></meta>
  </metas>
  <scenes>
    <scene id="top" name="Top" nbframes="1500">
      <columns>
        <column type="0">
          <warpSeq id="shot1" exposures="100-109" start="1" end="10"/>
          <warpSeq id="shot2" exposures="110-117" start="1" end="8"/>
          <transitionSeq id="tr1" exposures="108-111" type="dissolve"/>
          <warpSeq id="shot3" exposures="118-121" start="3" end="6"/>
        </column>
        <column type="1" name="AudioTrack2" enabled="false"/>
        <column type="1" name="AudioTrack1" enabled="true">
          <soundSequence name="file_example_MP3_700KB.mp3" startFrame="146" stopFrame="699" startTime="4.25" stopTime="27.5"/>
          <soundSequence name="file_example_MP3_700KB.mp3" startFrame="775" stopFrame="1429" startTime="0" stopTime="27.5"/>
        </column>
        <column type="2" id="ATV-0A5A672AA5C01754" name="VideoTrack1" enabled="true">
          <elementSeq uid="0a5a672aa5c0189f" id="2" val="clipA" exposures="1-1045" trim="1-1045"/>
          <elementSeq uid="0a5a672aa5c04668" id="3" val="bg_01" exposures="1046-1069" trim="1-24"/>
          <elementSeq uid="0a5a672aa5c03a09" id="2" val="clipB" exposures="1203-1491" trim="757-1045"/>
        </column>
        <column type="2" id="ATV-0A5A672AA5C0FFFF" name="VideoTrack2" enabled="false"/>
      </columns>
    </scene>
    <scene id="shot1" name="shot_shot1" nbframes="10">
      <metas><meta type="sceneInfo"><sceneInfo name="shot1" sequence="seqA"/></meta></metas>
      <columns>
        <column type="0">
          <warpSeq id="p1" exposures="1-4" start="1" end="4"/>
          <warpSeq id="p2" exposures="5-10" start="1" end="6"/>
        </column>
      </columns>
    </scene>
    <scene id="shot2" name="shot_shot2" nbframes="8">
      <metas><meta type="sceneInfo"><sceneInfo name="shot2" sequence=""/></meta></metas>
      <columns>
        <column type="0">
          <warpSeq id="p3" exposures="1-8" start="1" end="8"/>
        </column>
      </columns>
    </scene>
    <scene id="shot3" name="shot_shot3" nbframes="4">
      <metas><meta type="sceneInfo"><sceneInfo name="shot3" sequence="seqA"/></meta></metas>
      <columns>
        <column type="0">
          <warpSeq id="p4" exposures="1-4" start="1" end="4"/>
        </column>
      </columns>
    </scene>
    <scene id="p1" name="panel_p1" nbframes="4">
      <metas><meta type="panelInfo"><panelInfo name="Establishing"/></meta></metas>
      <rootgroup name="Top">
        <nodeslist>
          <module type="GROUP" name="BG"/>
          <module type="READ" name="Sky"><drawing element="3" name="bg_01"/></module>
          <module type="READ" name="Ground"/>
          <module type="READ" name="Char"><drawing element="4" name="char_01"/></module>
          <module type="MULTIPORT_OUT" name="Out"/>
          <module type="GROUP" name="FX"/>
          <module type="READ" name="Glow"/>
        </nodeslist>
        <linkedlist>
          <link out="Top" in="BG"/>
          <link out="BG" in="Sky"/>
          <link out="BG" in="Ground"/>
          <link out="Top" in="Char"/>
          <link out="Top" in="Out"/>
          <link out="Out" in="Glow"/>
          <link out="Top" in="FX"/>
          <link out="FX" in="Glow"/>
        </linkedlist>
      </rootgroup>
    </scene>
    <scene id="p2" name="panel_p2" nbframes="6">
      <metas><meta type="panelInfo"><panelInfo name="Reaction"/></meta></metas>
    </scene>
    <scene id="p3" name="panel_p3" nbframes="8"/>
    <scene id="p4" name="panel_p4" nbframes="4"/>
  </scenes>
  <elements>
    <element id="2" elementName="mp4" elementFolder="clips" rootFolder="library">
      <drawings><dwg name="clipA"/><dwg name="clipB"/></drawings>
    </element>
    <element id="3" elementName="Shared" elementFolder="shared" rootFolder="library">
      <drawings><dwg name="bg_01"/></drawings>
    </element>
    <element id="4" elementName="Drawing" elementFolder="char" rootFolder="elements">
      <drawings><dwg name="char_01"/></drawings>
    </element>
  </elements>
</project>
`

// Mutate returns SampleProject with each old/new pair replaced once.
// It fails the test if a pattern is absent, so fixtures never silently drift.
func Mutate(t *testing.T, pairs ...string) string {
	t.Helper()
	require.True(t, len(pairs)%2 == 0, "Mutate needs old/new pairs")

	doc := SampleProject
	for i := 0; i < len(pairs); i += 2 {
		require.Contains(t, doc, pairs[i], "pattern missing from sample project")
		doc = strings.Replace(doc, pairs[i], pairs[i+1], 1)
	}
	return doc
}

// WriteProject writes content as a .sboard file in a temp dir and returns its path.
func WriteProject(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.sboard")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write sample project")
	return path
}
