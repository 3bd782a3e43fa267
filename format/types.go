package format

type (
	ChunkKind       uint8
	CompressionType uint8
)

const (
	// KindUnknown is the zero value, reported for tags outside the format.
	KindUnknown ChunkKind = 0x0

	KindMain ChunkKind = 0x1 // KindMain is the root container chunk.
	KindPack ChunkKind = 0x2 // KindPack declares the model count.
	KindSize ChunkKind = 0x3 // KindSize carries one model's grid dimensions.
	KindXYZI ChunkKind = 0x4 // KindXYZI carries one model's voxel list.
	KindRGBA ChunkKind = 0x5 // KindRGBA carries the 256-entry palette.

	KindMATL ChunkKind = 0x10 // KindMATL is the material extension chunk.
	KindMATT ChunkKind = 0x11 // KindMATT is the legacy material extension chunk.
	KindNTRN ChunkKind = 0x12 // KindNTRN is the scene-graph transform extension chunk.
	KindNGRP ChunkKind = 0x13 // KindNGRP is the scene-graph group extension chunk.
	KindNSHP ChunkKind = 0x14 // KindNSHP is the scene-graph shape extension chunk.
	KindLAYR ChunkKind = 0x15 // KindLAYR is the layer extension chunk.
	KindROBJ ChunkKind = 0x16 // KindROBJ is the render-object extension chunk.
	KindRCAM ChunkKind = 0x17 // KindRCAM is the render-camera extension chunk.
	KindNOTE ChunkKind = 0x18 // KindNOTE is the palette-note extension chunk.
	KindIMAP ChunkKind = 0x19 // KindIMAP is the index-map extension chunk.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Supported reports whether the codec decodes this chunk kind's payload.
// Extension and unknown kinds are skipped, not decoded.
func (k ChunkKind) Supported() bool {
	switch k {
	case KindMain, KindPack, KindSize, KindXYZI, KindRGBA:
		return true
	default:
		return false
	}
}

// Extension reports whether the kind is a recognized extension chunk:
// part of the format family, but carried opaquely and never decoded.
func (k ChunkKind) Extension() bool {
	return k >= KindMATL && k <= KindIMAP
}

func (k ChunkKind) String() string {
	switch k {
	case KindMain:
		return "MAIN"
	case KindPack:
		return "PACK"
	case KindSize:
		return "SIZE"
	case KindXYZI:
		return "XYZI"
	case KindRGBA:
		return "RGBA"
	case KindMATL:
		return "MATL"
	case KindMATT:
		return "MATT"
	case KindNTRN:
		return "nTRN"
	case KindNGRP:
		return "nGRP"
	case KindNSHP:
		return "nSHP"
	case KindLAYR:
		return "LAYR"
	case KindROBJ:
		return "rOBJ"
	case KindRCAM:
		return "rCAM"
	case KindNOTE:
		return "NOTE"
	case KindIMAP:
		return "IMAP"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
