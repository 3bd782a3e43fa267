package vox

import (
	"fmt"
	"io"

	"github.com/arloliu/voxio/chunk"
	"github.com/arloliu/voxio/errs"
)

// Encoder writes a container stream one chunk at a time.
//
// An Encoder must emit the file header with EncodeHeader before its first
// chunk. It performs no cross-chunk bookkeeping: the caller supplies each
// chunk header, and the container's ChildrenBytes must already account for
// the chunks that will follow it. Data.Encode layers that accounting on
// top.
type Encoder struct {
	w     io.Writer
	ready bool
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// EncodeHeader writes the file header for the version this codec produces.
// It fails with errs.ErrBadContext when called more than once.
func (e *Encoder) EncodeHeader() error {
	if e.ready {
		return fmt.Errorf("%w: file header already encoded", errs.ErrBadContext)
	}

	if err := chunk.NewFileHeader().Write(e.w); err != nil {
		return err
	}

	e.ready = true

	return nil
}

// EncodeChunk writes one chunk record followed by its payload content.
//
// The payload kind must match the header id, and the header's ContentBytes
// must equal the payload's encoded length; mismatches fail with
// errs.ErrMalformedChunk before anything is written. Skipped-chunk
// payloads fail with errs.ErrUnsupportedChunk: their bytes were never
// captured, so they cannot be re-emitted.
func (e *Encoder) EncodeChunk(h chunk.Header, p Payload) error {
	if !e.ready {
		return fmt.Errorf("%w: chunk encoded before file header", errs.ErrBadContext)
	}

	if p == nil {
		return fmt.Errorf("%w: nil payload", errs.ErrUnsupportedChunk)
	}

	if !p.Kind().Supported() {
		return fmt.Errorf("%w: %s payloads cannot be encoded", errs.ErrUnsupportedChunk, h.ID)
	}

	if chunk.KindOf(h.ID) != p.Kind() {
		return fmt.Errorf("%w: header id %s does not match payload kind %s",
			errs.ErrMalformedChunk, h.ID, p.Kind())
	}

	if err := validatePayload(p); err != nil {
		return err
	}

	if got, want := int(h.ContentBytes), p.contentLen(); got != want {
		return fmt.Errorf("%w: %s declares %d content bytes, payload encodes to %d",
			errs.ErrMalformedChunk, h.ID, got, want)
	}

	if err := h.Write(e.w); err != nil {
		return err
	}

	if err := p.encodeContent(e.w); err != nil {
		return fmt.Errorf("%s content: %w", h.ID, err)
	}

	return nil
}

// validatePayload enforces the value bounds a payload must satisfy before
// serialization, mirroring what decode accepts.
func validatePayload(p Payload) error {
	switch p := p.(type) {
	case XYZI:
		if len(p.Voxels) > MaxVoxelCount {
			return fmt.Errorf("%w: %d", errs.ErrInvalidVoxelCount, len(p.Voxels))
		}
	case Pack:
		if p.ModelCount > MaxModelCount {
			return fmt.Errorf("%w: %d models, limit %d", errs.ErrInvalidModelCount, p.ModelCount, MaxModelCount)
		}
	}

	return nil
}
