package vox

import "github.com/arloliu/voxio/internal/hash"

// Fingerprint returns a 64-bit digest of the model: its dimensions, voxel
// count and every voxel in order, all hashed in wire byte order. Two
// models fingerprint equal exactly when their grids and voxel sequences
// are byte-identical.
func (m *Model) Fingerprint() uint64 {
	d := hash.New()
	writeModelDigest(d, m)

	return d.Sum64()
}

// Fingerprint returns a 64-bit digest of the whole object: every model in
// document order followed by the palette. Reordering models, editing any
// voxel or touching any palette entry changes the digest.
func (d *Data) Fingerprint() uint64 {
	h := hash.New()
	for i := range d.Models {
		writeModelDigest(h, &d.Models[i])
	}

	_, _ = h.Write(paletteBytes(&d.Palette))

	return h.Sum64()
}

// writeModelDigest feeds one model to the digest. The voxel count sits
// between the dimensions and the voxels so that consecutive models hash
// unambiguously in Data.Fingerprint.
func writeModelDigest(d *hash.Digest, m *Model) {
	var buf [16]byte
	engine.PutUint32(buf[0:4], uint32(m.Size.X))
	engine.PutUint32(buf[4:8], uint32(m.Size.Y))
	engine.PutUint32(buf[8:12], uint32(m.Size.Z))
	engine.PutUint32(buf[12:16], uint32(len(m.Voxels)))

	_, _ = d.Write(buf[:])
	_, _ = d.Write(voxelBytes(m.Voxels))
}
