package chunk

import (
	"fmt"
	"io"

	"github.com/arloliu/voxio/errs"
)

// FileHeader is the fixed preamble of a container stream.
//
// Wire layout (8 bytes, little-endian):
//
//	[0:4] magic tag "VOX "
//	[4:8] format version (int32)
type FileHeader struct {
	Magic   Tag
	Version int32
}

// NewFileHeader returns a header carrying the magic tag and the version
// this codec writes.
func NewFileHeader() FileHeader {
	return FileHeader{Magic: TagVOX, Version: Version}
}

// ReadFileHeader reads and parses a file header from r.
//
// A stream that ends before FileHeaderSize bytes reports
// errs.ErrTruncatedStream. The magic tag and version are returned as read;
// validating them is the caller's decision.
func ReadFileHeader(r io.Reader) (FileHeader, error) {
	var buf [FileHeaderSize]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return FileHeader{}, fmt.Errorf("file header: %w", err)
	}

	var h FileHeader
	if err := h.Parse(buf[:]); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}

// Parse decodes the header from the first FileHeaderSize bytes of data.
func (h *FileHeader) Parse(data []byte) error {
	if len(data) < FileHeaderSize {
		return fmt.Errorf("%w: file header needs %d bytes, got %d",
			errs.ErrTruncatedStream, FileHeaderSize, len(data))
	}

	copy(h.Magic[:], data[0:4])
	h.Version = int32(engine.Uint32(data[4:8]))

	return nil
}

// Bytes serializes the header into a new byte slice of FileHeaderSize bytes.
func (h FileHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, FileHeaderSize))
}

// AppendTo appends the serialized header to dst and returns the result.
func (h FileHeader) AppendTo(dst []byte) []byte {
	dst = append(dst, h.Magic[:]...)

	return engine.AppendUint32(dst, uint32(h.Version))
}

// Write serializes the header to w.
func (h FileHeader) Write(w io.Writer) error {
	var buf [FileHeaderSize]byte
	copy(buf[0:4], h.Magic[:])
	engine.PutUint32(buf[4:8], uint32(h.Version))

	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write file header: %w", err)
	}

	return nil
}
