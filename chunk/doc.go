// Package chunk defines the low-level binary records of the voxel container
// format.
//
// This package provides the foundational types that define the physical
// layout of a container stream: the file header that opens every stream and
// the chunk header record that precedes every chunk payload. It handles
// binary serialization and deserialization of both records, ensuring a
// consistent byte-level representation across platforms.
//
// # Stream Structure
//
// A container stream is a file header followed by a tree of chunks. In
// practice the tree is flat: a single root chunk whose children carry the
// model data, in document order:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ File Header (8 bytes, fixed)                            │
//	│  - Magic "VOX " (4 bytes)                               │
//	│  - Version (4 bytes, int32)                             │
//	├─────────────────────────────────────────────────────────┤
//	│ Root Chunk Header "MAIN" (12 bytes)                     │
//	│  - content length 0, children length = rest of stream   │
//	├─────────────────────────────────────────────────────────┤
//	│ Child Chunks (children of the root, back to back)       │
//	│  - each: 12-byte header + content bytes                 │
//	│  - PACK, SIZE, XYZI, RGBA, extension chunks             │
//	└─────────────────────────────────────────────────────────┘
//
// # Record Formats
//
// FileHeader (8 bytes, little-endian):
//
//	Bytes | Field   | Type  | Description
//	------|---------|-------|------------------------------------
//	0-3   | Magic   | Tag   | "VOX " file magic
//	4-7   | Version | int32 | format version (150)
//
// Header (12 bytes, little-endian):
//
//	Bytes | Field         | Type  | Description
//	------|---------------|-------|------------------------------------
//	0-3   | ID            | Tag   | chunk id tag
//	4-7   | ContentBytes  | int32 | length of the chunk's own content
//	8-11  | ChildrenBytes | int32 | total length of the chunk's children
//
// # Length Handling
//
// The wire stores lengths as signed 32-bit values and nothing prevents a
// corrupt or hostile stream from declaring a negative length. Header keeps
// the raw fields as read, and the span accessors (ContentSpan, ChildSpan,
// TotalSpan) clamp negatives to zero. All skip and budget arithmetic in the
// packages above goes through the span accessors, so a hostile length can
// shorten a walk but never move it backwards or grow it past the stream.
//
// # Tags
//
// Chunk ids and the file magic share the Tag type, a four-byte array
// compared by value. KindOf and TagOf map between wire tags and the
// format.ChunkKind enumeration; tags outside the format map to
// format.KindUnknown and are carried opaquely by the packages above.
package chunk
