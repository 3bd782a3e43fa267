package vox

import (
	"io"

	"github.com/arloliu/voxio/chunk"
	"github.com/arloliu/voxio/errs"
	"github.com/arloliu/voxio/format"
)

// Payload is the decoded content of a single chunk. The implementations
// are exactly the chunk kinds of the format (Main, Pack, Size, XYZI, RGBA)
// plus Unsupported for skipped chunks; the interface is closed.
type Payload interface {
	// Kind identifies the chunk kind the payload belongs to.
	Kind() format.ChunkKind

	// contentLen returns the encoded byte length of the payload content.
	contentLen() int

	// encodeContent writes the payload content bytes to w.
	encodeContent(w io.Writer) error
}

// Main is the root container payload. It owns no content; every other
// chunk of the stream is one of its children.
type Main struct{}

func (Main) Kind() format.ChunkKind { return format.KindMain }

func (Main) contentLen() int { return 0 }

func (Main) encodeContent(io.Writer) error { return nil }

// Pack declares how many models the stream carries.
type Pack struct {
	ModelCount int32
}

func (Pack) Kind() format.ChunkKind { return format.KindPack }

func (Pack) contentLen() int { return packContentSize }

func (p Pack) encodeContent(w io.Writer) error {
	var buf [packContentSize]byte
	engine.PutUint32(buf[:], uint32(p.ModelCount))

	_, err := w.Write(buf[:])

	return err
}

// Size carries one model's grid dimensions. It doubles as the dimensions
// record of a decoded Model.
type Size struct {
	X, Y, Z int32
}

func (Size) Kind() format.ChunkKind { return format.KindSize }

func (Size) contentLen() int { return sizeContentSize }

func (s Size) encodeContent(w io.Writer) error {
	var buf [sizeContentSize]byte
	engine.PutUint32(buf[0:4], uint32(s.X))
	engine.PutUint32(buf[4:8], uint32(s.Y))
	engine.PutUint32(buf[8:12], uint32(s.Z))

	_, err := w.Write(buf[:])

	return err
}

// Volume returns the number of grid cells the dimensions span.
func (s Size) Volume() int64 {
	return int64(s.X) * int64(s.Y) * int64(s.Z)
}

// XYZI carries one model's voxel list.
type XYZI struct {
	Voxels []Voxel
}

func (XYZI) Kind() format.ChunkKind { return format.KindXYZI }

func (x XYZI) contentLen() int { return voxelCountSize + len(x.Voxels)*voxelSize }

func (x XYZI) encodeContent(w io.Writer) error {
	var buf [voxelCountSize]byte
	engine.PutUint32(buf[:], uint32(len(x.Voxels)))

	if _, err := w.Write(buf[:]); err != nil {
		return err
	}

	if len(x.Voxels) == 0 {
		return nil
	}

	_, err := w.Write(voxelBytes(x.Voxels))

	return err
}

// RGBA carries the palette.
type RGBA struct {
	Palette Palette
}

func (RGBA) Kind() format.ChunkKind { return format.KindRGBA }

func (RGBA) contentLen() int { return paletteContentSize }

func (c RGBA) encodeContent(w io.Writer) error {
	_, err := w.Write(paletteBytes(&c.Palette))

	return err
}

// Unsupported records a chunk the decoder skipped: a recognized extension
// chunk or a wholly unknown tag. Only the id survives; the payload bytes
// are gone. It cannot be encoded.
type Unsupported struct {
	ID chunk.Tag
}

// Kind returns the extension kind for recognized extension tags and
// format.KindUnknown for everything else.
func (u Unsupported) Kind() format.ChunkKind { return chunk.KindOf(u.ID) }

func (Unsupported) contentLen() int { return 0 }

func (u Unsupported) encodeContent(io.Writer) error {
	return errs.ErrUnsupportedChunk
}
