// Package errs defines the sentinel errors shared by all voxio packages.
//
// Every failure path in the codec wraps one of these sentinels with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is
// while still receiving contextual detail (offending tag, byte counts,
// expected versus actual lengths) in the message.
//
// All sentinels except ErrUnknownChunk are fatal for the stream being
// decoded: the reader position is unreliable afterwards and the decoder
// must be abandoned. ErrUnknownChunk is recoverable; the decoder has
// already skipped past the unrecognized chunk and the next call continues
// with the following one.
package errs

import "errors"

// Codec state errors.
var (
	// ErrBadContext reports an operation issued in the wrong codec state,
	// such as decoding a chunk before the file header or emitting a second
	// file header on the same encoder.
	ErrBadContext = errors.New("operation not valid in current codec state")
)

// Structural stream errors.
var (
	// ErrMalformedHeader reports a file header whose magic tag does not
	// match the container format.
	ErrMalformedHeader = errors.New("malformed file header")

	// ErrMalformedStream reports a chunk sequence that violates the
	// container structure, such as a missing or duplicated root container
	// chunk or an unpaired dimensions/voxel-list run.
	ErrMalformedStream = errors.New("malformed chunk stream")

	// ErrMalformedChunk reports a chunk whose declared content length does
	// not match what its kind requires.
	ErrMalformedChunk = errors.New("malformed chunk")

	// ErrOutOfOrderChunk reports a recognized chunk appearing at a position
	// its ordering rules forbid, such as a voxel list with no preceding
	// dimensions chunk.
	ErrOutOfOrderChunk = errors.New("chunk out of order")

	// ErrTruncatedStream reports that the stream ended before a complete
	// header, chunk record, or payload could be read.
	ErrTruncatedStream = errors.New("truncated stream")
)

// Compatibility errors.
var (
	// ErrUnsupportedVersion reports a container version other than the one
	// this codec implements.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrUnknownChunk reports a chunk whose tag is not one of the decodable
	// kinds. It is the only recoverable error: the decoder skips the
	// chunk's content and children, and decoding may continue.
	ErrUnknownChunk = errors.New("unknown chunk")

	// ErrUnsupportedChunk reports an attempt to encode a payload kind the
	// encoder cannot serialize, such as a skipped extension chunk captured
	// during decode.
	ErrUnsupportedChunk = errors.New("unsupported chunk")
)

// Bounds and arithmetic errors.
var (
	// ErrInvalidVoxelCount reports a voxel-list count outside the
	// representable range of the format.
	ErrInvalidVoxelCount = errors.New("invalid voxel count")

	// ErrInvalidModelCount reports a model count outside the range the
	// codec is willing to materialize.
	ErrInvalidModelCount = errors.New("invalid model count")

	// ErrSizeOverflow reports an encode whose total chunk span cannot be
	// represented in the 32-bit length fields of the container.
	ErrSizeOverflow = errors.New("chunk size overflow")

	// ErrNoModels reports an encode attempted on an object that contains
	// no models.
	ErrNoModels = errors.New("no models to encode")
)
