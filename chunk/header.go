package chunk

import (
	"fmt"
	"io"

	"github.com/arloliu/voxio/errs"
	"github.com/arloliu/voxio/format"
)

// Header is the fixed record that precedes every chunk payload.
//
// Wire layout (12 bytes, little-endian):
//
//	[0:4]  chunk id tag
//	[4:8]  content length in bytes (int32)
//	[8:12] children length in bytes (int32)
//
// The length fields are stored as written. The span accessors clamp
// negative values to zero so that hostile lengths can never drive reads,
// skips, or budget arithmetic backwards.
type Header struct {
	ID            Tag
	ContentBytes  int32
	ChildrenBytes int32
}

// ReadHeader reads and parses a chunk header from r.
//
// A stream that ends before HeaderSize bytes reports
// errs.ErrTruncatedStream.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("chunk header: %w", err)
	}

	var h Header
	if err := h.Parse(buf[:]); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Parse decodes the record from the first HeaderSize bytes of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: chunk header needs %d bytes, got %d",
			errs.ErrTruncatedStream, HeaderSize, len(data))
	}

	copy(h.ID[:], data[0:4])
	h.ContentBytes = int32(engine.Uint32(data[4:8]))
	h.ChildrenBytes = int32(engine.Uint32(data[8:12]))

	return nil
}

// Bytes serializes the record into a new byte slice of HeaderSize bytes.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized record to dst and returns the result.
func (h Header) AppendTo(dst []byte) []byte {
	dst = append(dst, h.ID[:]...)
	dst = engine.AppendUint32(dst, uint32(h.ContentBytes))

	return engine.AppendUint32(dst, uint32(h.ChildrenBytes))
}

// Write serializes the record to w.
func (h Header) Write(w io.Writer) error {
	var buf [HeaderSize]byte
	copy(buf[0:4], h.ID[:])
	engine.PutUint32(buf[4:8], uint32(h.ContentBytes))
	engine.PutUint32(buf[8:12], uint32(h.ChildrenBytes))

	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write chunk header: %w", err)
	}

	return nil
}

// Kind returns the chunk kind of the record's id tag.
func (h Header) Kind() format.ChunkKind {
	return KindOf(h.ID)
}

// ContentSpan returns the declared content length, clamped to zero when
// the field is negative.
func (h Header) ContentSpan() int {
	return clampSpan(h.ContentBytes)
}

// ChildSpan returns the declared children length, clamped to zero when
// the field is negative.
func (h Header) ChildSpan() int {
	return clampSpan(h.ChildrenBytes)
}

// TotalSpan returns the whole span following the record on the wire:
// content plus children, each clamped independently.
func (h Header) TotalSpan() int {
	return h.ContentSpan() + h.ChildSpan()
}

func clampSpan(n int32) int {
	if n < 0 {
		return 0
	}

	return int(n)
}
