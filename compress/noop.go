package compress

// NoOpCompressor bypasses data without compression.
//
// It backs format.CompressionNone: plain container files on disk, and any
// scenario where the bytes are incompressible or CPU matters more than
// size.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, sharing its memory. Callers that
// mutate the input afterwards see the change through the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, sharing its memory.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
