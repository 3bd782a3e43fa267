package vox

import (
	"fmt"
	"io"

	"github.com/arloliu/voxio/chunk"
	"github.com/arloliu/voxio/errs"
	"github.com/arloliu/voxio/format"
)

// Decoder reads a container stream one chunk at a time.
//
// A Decoder must consume the file header with DecodeHeader before its
// first chunk. DecodeChunk then returns records in stream order. The
// Decoder performs no cross-chunk bookkeeping: ordering, pairing and
// budget rules belong to Decode, which layers them on top.
//
// After any error other than errs.ErrUnknownChunk the reader position is
// unreliable and the Decoder must be abandoned.
type Decoder struct {
	r     io.Reader
	ready bool
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// DecodeHeader consumes and validates the file header.
//
// It fails with errs.ErrBadContext when called more than once and with
// errs.ErrMalformedHeader when the magic tag does not match. The version
// is returned as read; compatibility policy is the caller's decision.
func (d *Decoder) DecodeHeader() (chunk.FileHeader, error) {
	if d.ready {
		return chunk.FileHeader{}, fmt.Errorf("%w: file header already decoded", errs.ErrBadContext)
	}

	h, err := chunk.ReadFileHeader(d.r)
	if err != nil {
		return chunk.FileHeader{}, err
	}

	if h.Magic != chunk.TagVOX {
		return chunk.FileHeader{}, fmt.Errorf("%w: magic %q", errs.ErrMalformedHeader, h.Magic)
	}

	d.ready = true

	return h, nil
}

// DecodeChunk reads the next chunk record and its payload.
//
// For the decodable kinds the payload is one of Main, Pack, Size, XYZI or
// RGBA. For any other tag the chunk's content and children are skipped and
// the call returns the header, an Unsupported payload, and
// errs.ErrUnknownChunk; the stream is then positioned at the next record
// and the following call proceeds normally. Every other error is fatal for
// the stream.
func (d *Decoder) DecodeChunk() (chunk.Header, Payload, error) {
	if !d.ready {
		return chunk.Header{}, nil, fmt.Errorf("%w: chunk decoded before file header", errs.ErrBadContext)
	}

	h, err := chunk.ReadHeader(d.r)
	if err != nil {
		return chunk.Header{}, nil, err
	}

	if !h.Kind().Supported() {
		if err := chunk.Discard(d.r, h.TotalSpan()); err != nil {
			return chunk.Header{}, nil, fmt.Errorf("%s chunk: %w", h.ID, err)
		}

		return h, Unsupported{ID: h.ID}, fmt.Errorf("%w: %s (%d content bytes, %d child bytes)",
			errs.ErrUnknownChunk, h.ID, h.ContentSpan(), h.ChildSpan())
	}

	p, err := decodePayload(h, d.r)
	if err != nil {
		return chunk.Header{}, nil, err
	}

	return h, p, nil
}

// decodePayload reads the content of a decodable chunk. The content length
// declared by the header must match what the kind requires before any
// content byte is consumed.
func decodePayload(h chunk.Header, r io.Reader) (Payload, error) {
	switch h.Kind() {
	case format.KindMain:
		if h.ContentBytes != 0 {
			return nil, fmt.Errorf("%w: MAIN declares %d content bytes, the container owns none",
				errs.ErrMalformedChunk, h.ContentBytes)
		}

		return Main{}, nil
	case format.KindPack:
		return decodePack(h, r)
	case format.KindSize:
		return decodeSize(h, r)
	case format.KindXYZI:
		return decodeXYZI(h, r)
	case format.KindRGBA:
		return decodeRGBA(h, r)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedChunk, h.ID)
	}
}

func decodePack(h chunk.Header, r io.Reader) (Payload, error) {
	if h.ContentBytes != packContentSize {
		return nil, fmt.Errorf("%w: PACK content %d bytes, want %d",
			errs.ErrMalformedChunk, h.ContentBytes, packContentSize)
	}

	var buf [packContentSize]byte
	if err := chunk.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("PACK content: %w", err)
	}

	count := int32(engine.Uint32(buf[:]))
	if count > MaxModelCount {
		return nil, fmt.Errorf("%w: %d models, limit %d", errs.ErrInvalidModelCount, count, MaxModelCount)
	}

	return Pack{ModelCount: count}, nil
}

func decodeSize(h chunk.Header, r io.Reader) (Payload, error) {
	if h.ContentBytes != sizeContentSize {
		return nil, fmt.Errorf("%w: SIZE content %d bytes, want %d",
			errs.ErrMalformedChunk, h.ContentBytes, sizeContentSize)
	}

	var buf [sizeContentSize]byte
	if err := chunk.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("SIZE content: %w", err)
	}

	return Size{
		X: int32(engine.Uint32(buf[0:4])),
		Y: int32(engine.Uint32(buf[4:8])),
		Z: int32(engine.Uint32(buf[8:12])),
	}, nil
}

func decodeXYZI(h chunk.Header, r io.Reader) (Payload, error) {
	if h.ContentBytes < voxelCountSize {
		return nil, fmt.Errorf("%w: XYZI content %d bytes, want at least %d",
			errs.ErrMalformedChunk, h.ContentBytes, voxelCountSize)
	}

	var buf [voxelCountSize]byte
	if err := chunk.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("XYZI count: %w", err)
	}

	count := int32(engine.Uint32(buf[:]))
	if count < 0 || count > MaxVoxelCount {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidVoxelCount, count)
	}

	want := voxelCountSize + int(count)*voxelSize
	if int(h.ContentBytes) != want {
		return nil, fmt.Errorf("%w: XYZI content %d bytes, %d voxels need %d",
			errs.ErrMalformedChunk, h.ContentBytes, count, want)
	}

	if count == 0 {
		return XYZI{}, nil
	}

	voxels := make([]Voxel, count)
	if err := chunk.ReadFull(r, voxelBytes(voxels)); err != nil {
		return nil, fmt.Errorf("XYZI voxels: %w", err)
	}

	return XYZI{Voxels: voxels}, nil
}

func decodeRGBA(h chunk.Header, r io.Reader) (Payload, error) {
	if h.ContentBytes != paletteContentSize {
		return nil, fmt.Errorf("%w: RGBA content %d bytes, want %d",
			errs.ErrMalformedChunk, h.ContentBytes, paletteContentSize)
	}

	var p Palette
	if err := chunk.ReadFull(r, paletteBytes(&p)); err != nil {
		return nil, fmt.Errorf("RGBA content: %w", err)
	}

	return RGBA{Palette: p}, nil
}
