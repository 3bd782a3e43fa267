package chunk

import "github.com/arloliu/voxio/endian"

// Wire sizes of the fixed records, in bytes.
const (
	// FileHeaderSize is the byte length of the file header record:
	// a 4-byte magic tag followed by a 4-byte version.
	FileHeaderSize = 8

	// HeaderSize is the byte length of a chunk header record:
	// a 4-byte id tag followed by two 4-byte lengths.
	HeaderSize = 12
)

// Version is the container format version this codec reads and writes.
const Version int32 = 150

// engine is the wire byte order. The container format is little-endian.
var engine = endian.GetLittleEndianEngine()
