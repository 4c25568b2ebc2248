package xmltree_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sboard/pkg/adapters/xmltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0"?>
<project version="1">
  <scenes>
    <scene id="a" name="Top"/>
    <scene id="b" name="shot_b"><!-- comment --></scene>
    <scene id="b" name="dup"/>
  </scenes>
  <elements/>
</project>`

func TestParse_RootAndAttributes(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "project", root.Tag())
	v, ok := root.Attr("version")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = root.Attr("missing")
	assert.False(t, ok)
}

func TestNode_ChildAndChildren(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	scenes := root.Child("scenes")
	require.NotNil(t, scenes)
	assert.Nil(t, root.Child("nope"))

	all := scenes.Children("scene")
	require.Len(t, all, 3)
	name, _ := all[1].Attr("name")
	assert.Equal(t, "shot_b", name)

	assert.Len(t, root.Children(""), 2, "empty tag matches every element child")
}

func TestNode_IdentityEquality(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	first := root.Child("scenes").Children("scene")[0]
	again := root.Child("scenes").Child("scene")
	assert.True(t, first == again, "same element must compare equal")

	other := root.Child("scenes").Children("scene")[1]
	assert.False(t, first == other)
}

func TestNode_Query(t *testing.T) {
	root, err := xmltree.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	n, err := root.Query("scenes/scene[@id='b']")
	require.NoError(t, err)
	require.NotNil(t, n)
	name, _ := n.Attr("name")
	assert.Equal(t, "shot_b", name, "first match in document order wins")

	all, err := root.QueryAll("scenes/scene[@id='b']")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := root.Query("scenes/scene[@id='zzz']")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = root.QueryAll("scenes/scene[")
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := xmltree.Parse(strings.NewReader(""))
	assert.Error(t, err)
}
