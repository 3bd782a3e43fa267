package vox

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/voxio/chunk"
	"github.com/arloliu/voxio/errs"
)

// Decode reads one complete container object from r.
//
// The stream must open with a valid file header and a single MAIN
// container chunk; the container's children are then walked in document
// order until its declared child budget is consumed. Unknown and extension
// chunks inside the container are skipped. Bytes following the container
// are left unread.
//
// The document rules enforced here, on top of the per-chunk validation in
// Decoder:
//
//   - the model-count chunk must precede all dimensions and voxel-list
//     chunks; it resizes the model list to max(1, count)
//   - dimensions and voxel-list chunks alternate strictly, dimensions
//     first; each pair fills the next model slot, growing the list when
//     more pairs arrive than were declared
//   - a palette chunk replaces the palette; absent one, the palette stays
//     zero
//
// On any error the partially decoded object is discarded and Decode
// returns nil.
func Decode(r io.Reader) (*Data, error) {
	dec := NewDecoder(r)

	fh, err := dec.DecodeHeader()
	if err != nil {
		return nil, err
	}

	if fh.Version != chunk.Version {
		return nil, fmt.Errorf("%w: version %d, this codec reads %d",
			errs.ErrUnsupportedVersion, fh.Version, chunk.Version)
	}

	root, payload, err := dec.DecodeChunk()
	if err != nil {
		if errors.Is(err, errs.ErrUnknownChunk) {
			return nil, fmt.Errorf("%w: first chunk %s, want MAIN", errs.ErrMalformedStream, root.ID)
		}

		return nil, err
	}

	if _, ok := payload.(Main); !ok {
		return nil, fmt.Errorf("%w: first chunk %s, want MAIN", errs.ErrMalformedStream, root.ID)
	}

	data := &Data{Models: make([]Model, 1)}

	var sizes, lists int

	// The container's children span is the read budget. Decodable chunks
	// charge their header and content; skipped chunks also charge their
	// children, the only place a child span can occur mid stream.
	remaining := root.ChildSpan()
	for remaining > 0 {
		h, p, err := dec.DecodeChunk()
		if err != nil {
			if errors.Is(err, errs.ErrUnknownChunk) {
				remaining -= chunk.HeaderSize + h.TotalSpan()
				continue
			}

			return nil, err
		}

		switch p := p.(type) {
		case Main:
			return nil, fmt.Errorf("%w: second MAIN chunk", errs.ErrMalformedStream)

		case Pack:
			if sizes > 0 || lists > 0 {
				return nil, fmt.Errorf("%w: PACK after model data", errs.ErrOutOfOrderChunk)
			}

			count := int(p.ModelCount)
			if count < 1 {
				count = 1
			}

			if count != len(data.Models) {
				resized := make([]Model, count)
				copy(resized, data.Models)
				data.Models = resized
			}

		case Size:
			if sizes != lists {
				return nil, fmt.Errorf("%w: SIZE while model %d still lacks its voxel list",
					errs.ErrOutOfOrderChunk, sizes-1)
			}

			if sizes == len(data.Models) {
				data.Models = append(data.Models, Model{})
			}

			data.Models[sizes].Size = p
			sizes++

		case XYZI:
			if lists != sizes-1 {
				return nil, fmt.Errorf("%w: XYZI without a preceding SIZE", errs.ErrOutOfOrderChunk)
			}

			data.Models[lists].Voxels = p.Voxels
			lists++

		case RGBA:
			data.Palette = p.Palette
		}

		remaining -= chunk.HeaderSize + h.ContentSpan()
	}

	if sizes != lists {
		return nil, fmt.Errorf("%w: %d SIZE chunks but %d XYZI chunks", errs.ErrMalformedStream, sizes, lists)
	}

	return data, nil
}

// Encode writes the object as one complete container stream.
//
// The layout is canonical regardless of how the object was built: file
// header, MAIN, PACK with the model count, one SIZE/XYZI pair per model in
// order, then RGBA with the palette. Extension chunks are never emitted.
func (d *Data) Encode(w io.Writer) error {
	if len(d.Models) == 0 {
		return errs.ErrNoModels
	}

	if len(d.Models) > MaxModelCount {
		return fmt.Errorf("%w: %d models, limit %d", errs.ErrInvalidModelCount, len(d.Models), MaxModelCount)
	}

	// Children of the container: PACK, one SIZE/XYZI pair per model, RGBA.
	children := int64(chunk.HeaderSize + packContentSize)

	for i := range d.Models {
		count := len(d.Models[i].Voxels)
		if count > MaxVoxelCount {
			return fmt.Errorf("%w: model %d has %d voxels, limit %d",
				errs.ErrInvalidVoxelCount, i, count, MaxVoxelCount)
		}

		children += chunk.HeaderSize + sizeContentSize
		children += chunk.HeaderSize + voxelCountSize + int64(count)*voxelSize
	}

	children += chunk.HeaderSize + paletteContentSize

	if children > math.MaxInt32 {
		return fmt.Errorf("%w: container children span %d bytes", errs.ErrSizeOverflow, children)
	}

	enc := NewEncoder(w)
	if err := enc.EncodeHeader(); err != nil {
		return err
	}

	root := chunk.Header{ID: chunk.TagMain, ChildrenBytes: int32(children)}
	if err := enc.EncodeChunk(root, Main{}); err != nil {
		return err
	}

	packHdr := chunk.Header{ID: chunk.TagPack, ContentBytes: packContentSize}
	if err := enc.EncodeChunk(packHdr, Pack{ModelCount: int32(len(d.Models))}); err != nil {
		return err
	}

	for i := range d.Models {
		m := &d.Models[i]

		sizeHdr := chunk.Header{ID: chunk.TagSize, ContentBytes: sizeContentSize}
		if err := enc.EncodeChunk(sizeHdr, m.Size); err != nil {
			return err
		}

		voxels := XYZI{Voxels: m.Voxels}
		listHdr := chunk.Header{ID: chunk.TagXYZI, ContentBytes: int32(voxels.contentLen())}
		if err := enc.EncodeChunk(listHdr, voxels); err != nil {
			return err
		}
	}

	paletteHdr := chunk.Header{ID: chunk.TagRGBA, ContentBytes: paletteContentSize}

	return enc.EncodeChunk(paletteHdr, RGBA{Palette: d.Palette})
}
