package vox

import (
	"unsafe"

	"github.com/arloliu/voxio/endian"
)

// Wire sizes of the payload pieces, in bytes.
const (
	packContentSize    = 4
	sizeContentSize    = 12
	voxelCountSize     = 4
	voxelSize          = 4
	paletteContentSize = 1024
)

// Limits on what the codec will materialize.
const (
	// MaxVoxelCount is the largest voxel-list count the format accepts.
	// Coordinates are single bytes, so a full grid holds 256^3 cells.
	MaxVoxelCount = 1 << 24

	// MaxModelCount bounds how many model slots a model-count chunk may
	// declare. A hostile 4-byte count must not drive an unbounded
	// allocation.
	MaxModelCount = 1 << 20
)

// engine is the wire byte order. The container format is little-endian.
var engine = endian.GetLittleEndianEngine()

// Voxel is one occupied grid cell. The field order matches the wire: three
// coordinate bytes followed by the palette index.
type Voxel struct {
	X, Y, Z    uint8
	ColorIndex uint8
}

// Color is one palette entry. The field order matches the wire: red,
// green, blue, alpha.
type Color struct {
	R, G, B, A uint8
}

// Palette is the 256-entry color table of a container, stored in file
// order. The zero Palette (all entries transparent black) is the default
// for streams that carry no palette chunk. Index interpretation is the
// consumer's concern; the codec only preserves bytes.
type Palette [256]Color

// Model is one voxel grid: its dimensions plus its voxel list.
type Model struct {
	Size   Size
	Voxels []Voxel
}

// VoxelCount returns the number of voxels in the model's list.
func (m *Model) VoxelCount() int { return len(m.Voxels) }

// IsZero reports whether every entry is transparent black, the state of a
// palette no RGBA chunk ever filled.
func (p *Palette) IsZero() bool { return *p == Palette{} }

// Data is a fully decoded container: every model in document order plus
// the palette.
type Data struct {
	Models  []Model
	Palette Palette
}

// AddModel appends a model built from the given dimensions and voxel list.
// The slice is kept, not copied.
func (d *Data) AddModel(size Size, voxels []Voxel) {
	d.Models = append(d.Models, Model{Size: size, Voxels: voxels})
}

// voxelBytes reinterprets a voxel slice as its wire bytes. Voxel is four
// uint8 fields declared in wire order, so the in-memory layout and the
// stream layout coincide on every platform.
func voxelBytes(v []Voxel) []byte {
	if len(v) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*voxelSize)
}

// paletteBytes reinterprets a palette as its wire bytes. Color is four
// uint8 fields declared in wire order.
func paletteBytes(p *Palette) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&p[0])), paletteContentSize)
}
