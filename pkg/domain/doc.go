/*
Package domain contains the core value types and error taxonomy of the sboard
object model.

It is kept pure and free of I/O: the types here describe frame ranges, layer
kinds, element references and the names used by the fixed Storyboard document
schema. Navigation over an actual document lives in the root sboard package.

# Key Types

  - FrameRange: an integer frame interval in one of the three coordinate spaces.
  - TimeRange: a source interval expressed in seconds (audio trim points).
  - LayerKind: leaf, group or terminal classification of a layer-graph node.
  - ElementRef: a (category id, element name) pair pointing into the library.
*/
package domain
