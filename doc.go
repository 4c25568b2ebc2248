/*
Package sboard is a read-only object model for Storyboard Pro projects (.sboard).

A project document stores its entities in disjoint regions of one XML tree: the
master timeline, the shots and the panels are all sibling <scene> nodes that
reference each other by id, frame ranges are expressed in three different
coordinate spaces, and each panel's layer stack is a flat module list plus a
separate list of links. The package resolves those references on demand and
exposes the document as a navigable hierarchy.

# Concept

Every entity is a small immutable view over a node of the parsed document plus
a back-reference to its owner. Views are cheap to create, compare with Equal,
and never mutate the document. Child collections are returned as
iter.Seq2[T, error] sequences: they are lazy, finite, restartable and produce
equal values on every pass.

	Project
	 ├─ Timeline ─┬─ VideoTrack ─ VideoClip ─→ LibraryElement
	 │            ├─ AudioTrack ─ AudioClip
	 │            └─ Transition
	 ├─ Scene ─ Panel ─ Layer ─→ LibraryElement
	 ├─ Sequence (virtual, grouped by tag)
	 └─ Library ─ LibraryCategory ─ LibraryElement

# Coordinates

Exposures in the document are 1-based and inclusive. A scene's TimelineRange is
its master timeline exposure as written. A panel's SceneRange is a 0-based,
end-exclusive offset inside its scene, and its TimelineRange is the scene's
global start plus that offset.

# Errors

Failures are reported with typed errors from pkg/domain that match the
sentinels ErrMalformedRange, ErrReferenceNotFound, ErrAssetNotFound and
ErrStructuralPrecondition through errors.Is.

# Usage

	project, err := sboard.Open("board.sboard")
	if err != nil {
		log.Fatal(err)
	}

	timeline, err := project.Timeline()
	if err != nil {
		log.Fatal(err)
	}
	for scene, err := range timeline.Scenes() {
		if err != nil {
			log.Fatal(err)
		}
		for panel, err := range scene.Panels() {
			if err != nil {
				log.Fatal(err)
			}
			r, _ := panel.TimelineRange()
			fmt.Println(scene.Name(), panel.Number(), r)
		}
	}
*/
package sboard
