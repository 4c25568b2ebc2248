/*
Package ports defines the driven ports (interfaces) of the sboard object model.

These interfaces decouple the entity facade from the concrete tree-query
facility and from where document bytes are stored.

# Key Interfaces

  - Node: read-only view of one element of an already-parsed document tree.
  - TreeLoader: turns serialized document bytes into a Node tree.
  - DocumentSource: hands out document bytes by name (file system, memory, Redis).
*/
package ports
