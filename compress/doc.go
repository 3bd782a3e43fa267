// Package compress provides the compression codecs for container files.
//
// Compression in voxio operates on whole files: a fully encoded container
// stream is compressed as one block before it reaches disk, and
// decompressed as one block before decoding. Nothing inside the container
// changes, so plain and compressed files share the same codec path.
//
// # Interfaces
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec returns a shared built-in codec; CreateCodec constructs one and
// reports invalid types with a caller-supplied context string.
//
// # Algorithms
//
// None (format.CompressionNone): pass-through. The returned slices alias
// the input. Use for plain .vox files.
//
// Zstd (format.CompressionZstd): the best ratio, for archival files. Two
// build-tagged implementations produce interchangeable frames: a libzstd
// binding under cgo and a pure-Go encoder otherwise.
//
// S2 (format.CompressionS2): a balanced default when files are both
// written and read frequently.
//
// LZ4 (format.CompressionLZ4): the fastest decompression, for files
// written once and loaded many times. LZ4 blocks do not carry their
// decompressed size, so decompression sizes its buffer adaptively.
//
// # Choosing
//
// Voxel scenes compress well under every algorithm: voxel records are
// four-byte structures with heavily repeating coordinate bytes, and
// palettes are mostly-static tables. When in doubt, Zstd for cold files
// and S2 for hot ones.
//
// All codecs are safe for concurrent use; the stateful ones coordinate
// through internal pools.
package compress
