package compress

import (
	"fmt"

	"github.com/arloliu/voxio/format"
)

// Compressor compresses whole container buffers.
//
// Compression in voxio is applied at the file level: a fully encoded
// container stream goes in, a compressed frame comes out. Voxel lists are
// runs of small repeating structures, so general-purpose block codecs
// recover most of the redundancy the raw layout leaves on the table.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller except
	// where an implementation documents pass-through behavior. The input
	// slice is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores container buffers produced by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// The input must have been produced by the matching algorithm; corrupt
	// or foreign frames return an error. The returned slice is newly
	// allocated and owned by the caller except where an implementation
	// documents pass-through behavior.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression operation, for logging and
// tooling output.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType

	// OriginalSize is the input size in bytes before compression.
	OriginalSize int64

	// CompressedSize is the output size in bytes after compression.
	CompressedSize int64
}

// CompressionRatio returns compressed size over original size.
// Values below 1.0 indicate the compression saved space.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a Codec for the given compression type. The target
// string names the usage in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
