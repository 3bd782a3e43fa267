package chunk

import "github.com/arloliu/voxio/format"

// Tag is a four-byte identifier as it appears on the wire, used for both
// the file magic and chunk ids.
type Tag [4]byte

// TagVOX is the file magic that opens every container stream.
var TagVOX = Tag{'V', 'O', 'X', ' '}

// Tags of the decodable chunk kinds.
var (
	TagMain = Tag{'M', 'A', 'I', 'N'}
	TagPack = Tag{'P', 'A', 'C', 'K'}
	TagSize = Tag{'S', 'I', 'Z', 'E'}
	TagXYZI = Tag{'X', 'Y', 'Z', 'I'}
	TagRGBA = Tag{'R', 'G', 'B', 'A'}
)

// Tags of the recognized extension chunk kinds. The codec identifies these
// but never decodes their payloads.
var (
	TagMATL = Tag{'M', 'A', 'T', 'L'}
	TagMATT = Tag{'M', 'A', 'T', 'T'}
	TagNTRN = Tag{'n', 'T', 'R', 'N'}
	TagNGRP = Tag{'n', 'G', 'R', 'P'}
	TagNSHP = Tag{'n', 'S', 'H', 'P'}
	TagLAYR = Tag{'L', 'A', 'Y', 'R'}
	TagROBJ = Tag{'r', 'O', 'B', 'J'}
	TagRCAM = Tag{'r', 'C', 'A', 'M'}
	TagNOTE = Tag{'N', 'O', 'T', 'E'}
	TagIMAP = Tag{'I', 'M', 'A', 'P'}
)

// KindOf maps a wire tag to its chunk kind.
// Tags outside the format map to format.KindUnknown.
func KindOf(t Tag) format.ChunkKind {
	switch t {
	case TagMain:
		return format.KindMain
	case TagPack:
		return format.KindPack
	case TagSize:
		return format.KindSize
	case TagXYZI:
		return format.KindXYZI
	case TagRGBA:
		return format.KindRGBA
	case TagMATL:
		return format.KindMATL
	case TagMATT:
		return format.KindMATT
	case TagNTRN:
		return format.KindNTRN
	case TagNGRP:
		return format.KindNGRP
	case TagNSHP:
		return format.KindNSHP
	case TagLAYR:
		return format.KindLAYR
	case TagROBJ:
		return format.KindROBJ
	case TagRCAM:
		return format.KindRCAM
	case TagNOTE:
		return format.KindNOTE
	case TagIMAP:
		return format.KindIMAP
	default:
		return format.KindUnknown
	}
}

// TagOf returns the wire tag for a chunk kind.
// The second return value is false for format.KindUnknown.
func TagOf(k format.ChunkKind) (Tag, bool) {
	switch k {
	case format.KindMain:
		return TagMain, true
	case format.KindPack:
		return TagPack, true
	case format.KindSize:
		return TagSize, true
	case format.KindXYZI:
		return TagXYZI, true
	case format.KindRGBA:
		return TagRGBA, true
	case format.KindMATL:
		return TagMATL, true
	case format.KindMATT:
		return TagMATT, true
	case format.KindNTRN:
		return TagNTRN, true
	case format.KindNGRP:
		return TagNGRP, true
	case format.KindNSHP:
		return TagNSHP, true
	case format.KindLAYR:
		return TagLAYR, true
	case format.KindROBJ:
		return TagROBJ, true
	case format.KindRCAM:
		return TagRCAM, true
	case format.KindNOTE:
		return TagNOTE, true
	case format.KindIMAP:
		return TagIMAP, true
	default:
		return Tag{}, false
	}
}

// String renders the tag for diagnostics.
// Bytes outside printable ASCII are replaced with '.'.
func (t Tag) String() string {
	b := make([]byte, 4)
	for i, c := range t {
		if c >= 0x20 && c < 0x7f {
			b[i] = c
		} else {
			b[i] = '.'
		}
	}

	return string(b)
}
