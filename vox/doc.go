// Package vox implements the chunk payloads and the two-level codec of the
// voxel container format.
//
// The package offers two API layers:
//
//  1. Chunk level: Decoder and Encoder move one chunk at a time and keep
//     no document state beyond "file header seen". They are the right
//     layer for tools that inspect or filter streams chunk by chunk.
//  2. Object level: Decode and Data.Encode read and write whole objects,
//     enforcing the document rules (single container, model-count
//     placement, dimensions/voxel-list alternation, child budget).
//
// # Payloads
//
// Every decodable chunk kind has a payload type: Main, Pack, Size, XYZI
// and RGBA. Extension chunks and unknown tags decode to Unsupported, which
// records only the id; their bytes are skipped on the way in and can never
// be written back out.
//
// # Decoding
//
// Object-level decoding reads one complete container:
//
//	data, err := vox.Decode(file)
//	if err != nil {
//		return err
//	}
//	for i, m := range data.Models {
//		fmt.Printf("model %d: %dx%dx%d, %d voxels\n",
//			i, m.Size.X, m.Size.Y, m.Size.Z, len(m.Voxels))
//	}
//
// Chunk-level decoding walks the same stream manually:
//
//	dec := vox.NewDecoder(file)
//	if _, err := dec.DecodeHeader(); err != nil {
//		return err
//	}
//	for {
//		h, p, err := dec.DecodeChunk()
//		if errors.Is(err, errs.ErrUnknownChunk) {
//			continue // skipped, stream already at the next chunk
//		}
//		if err != nil {
//			return err
//		}
//		// use h and p
//	}
//
// # Encoding
//
// Data.Encode always produces the canonical layout: file header, MAIN,
// PACK, one SIZE/XYZI pair per model, RGBA. Re-encoding a decoded object
// therefore normalizes chunk order and drops extension chunks, and
// encoding the same object twice produces identical bytes.
//
// # Error model
//
// All failures wrap the sentinels in the errs package. Only
// errs.ErrUnknownChunk is recoverable, and only at the chunk level; every
// other error leaves the stream position unreliable. Fingerprint methods
// on Model and Data give 64-bit content digests for change detection
// across decode/encode cycles.
package vox
