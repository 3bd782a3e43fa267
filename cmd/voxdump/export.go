package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/voxio/vox"
)

// exportDocument is the shape written by --export. Fingerprints are hex
// strings; a JSON number cannot carry 64 bits.
type exportDocument struct {
	Models      []exportModel `json:"models" cbor:"models"`
	Palette     []byte        `json:"palette" cbor:"palette"`
	Fingerprint string        `json:"fingerprint" cbor:"fingerprint"`
}

// exportModel flattens one model. Voxels are [x, y, z, colorIndex] quads
// in wire order; the palette is the raw 1024 RGBA bytes.
type exportModel struct {
	Size        [3]int32   `json:"size" cbor:"size"`
	VoxelCount  int        `json:"voxel_count" cbor:"voxel_count"`
	Voxels      [][4]uint8 `json:"voxels" cbor:"voxels"`
	Fingerprint string     `json:"fingerprint" cbor:"fingerprint"`
}

// buildExport converts a decoded object into its export shape.
func buildExport(data *vox.Data) exportDocument {
	doc := exportDocument{
		Models:      make([]exportModel, 0, len(data.Models)),
		Palette:     make([]byte, 0, 4*len(data.Palette)),
		Fingerprint: fmt.Sprintf("%016x", data.Fingerprint()),
	}

	for i := range data.Models {
		m := &data.Models[i]
		em := exportModel{
			Size:        [3]int32{m.Size.X, m.Size.Y, m.Size.Z},
			VoxelCount:  m.VoxelCount(),
			Voxels:      make([][4]uint8, 0, len(m.Voxels)),
			Fingerprint: fmt.Sprintf("%016x", m.Fingerprint()),
		}
		for _, v := range m.Voxels {
			em.Voxels = append(em.Voxels, [4]uint8{v.X, v.Y, v.Z, v.ColorIndex})
		}
		doc.Models = append(doc.Models, em)
	}

	for _, c := range data.Palette {
		doc.Palette = append(doc.Palette, c.R, c.G, c.B, c.A)
	}

	return doc
}

// writeExport writes the decoded object to path in the requested format.
func writeExport(path, exportFormat string, data *vox.Data) error {
	doc := buildExport(data)

	var (
		out []byte
		err error
	)
	switch exportFormat {
	case "json":
		out, err = json.MarshalIndent(doc, "", "  ")
	case "cbor":
		out, err = cbor.Marshal(doc)
	default:
		return fmt.Errorf("unknown export format %q (want json or cbor)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("marshal %s export: %w", exportFormat, err)
	}

	return os.WriteFile(path, out, 0o644)
}
