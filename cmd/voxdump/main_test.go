package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/voxio"
	"github.com/arloliu/voxio/chunk"
	"github.com/arloliu/voxio/endian"
	"github.com/arloliu/voxio/errs"
	"github.com/arloliu/voxio/format"
	"github.com/arloliu/voxio/internal/hash"
)

var eng = endian.GetLittleEndianEngine()

func appendChunk(dst []byte, id chunk.Tag, content []byte, children int32) []byte {
	header := chunk.Header{ID: id, ContentBytes: int32(len(content)), ChildrenBytes: children}
	dst = header.AppendTo(dst)

	return append(dst, content...)
}

// extensionStream builds a one-model container by hand, with a material
// extension chunk between the model pair and the palette.
func extensionStream() []byte {
	var pack, size, xyzi []byte
	pack = eng.AppendUint32(pack, 1)
	size = eng.AppendUint32(size, 2)
	size = eng.AppendUint32(size, 2)
	size = eng.AppendUint32(size, 1)
	xyzi = eng.AppendUint32(xyzi, 2)
	xyzi = append(xyzi, 0, 0, 0, 1) // voxel (0,0,0) color 1
	xyzi = append(xyzi, 1, 1, 0, 2) // voxel (1,1,0) color 2

	rgba := make([]byte, 1024)
	rgba[4] = 255 // entry 1: opaque red
	rgba[7] = 255

	var body []byte
	body = appendChunk(body, chunk.TagPack, pack, 0)
	body = appendChunk(body, chunk.TagSize, size, 0)
	body = appendChunk(body, chunk.TagXYZI, xyzi, 0)
	body = appendChunk(body, chunk.TagMATL, []byte{0xDE, 0xAD}, 0)
	body = appendChunk(body, chunk.TagRGBA, rgba, 0)

	stream := chunk.NewFileHeader().AppendTo(nil)
	stream = chunk.Header{ID: chunk.TagMain, ChildrenBytes: int32(len(body))}.AppendTo(stream)

	return append(stream, body...)
}

func TestWalkChunks(t *testing.T) {
	stream := extensionStream()

	var buf bytes.Buffer
	require.NoError(t, walkChunks(&buf, stream))

	out := buf.String()
	require.Contains(t, out, fmt.Sprintf("stream: %d bytes, digest %016x", len(stream), hash.Sum64(stream)))
	require.Contains(t, out, `magic "VOX ", version 150`)
	require.Contains(t, out, "MAIN")
	require.Contains(t, out, "model count 1")
	require.Contains(t, out, "2 x 2 x 1 (4 cells)")
	require.Contains(t, out, "2 voxels")
	require.Contains(t, out, "MATL")
	require.Contains(t, out, "[skipped]")
	require.Contains(t, out, "palette")
}

func TestWalkChunksRejectsGarbage(t *testing.T) {
	var buf bytes.Buffer
	err := walkChunks(&buf, []byte("definitely not a container"))
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestPrintSummary(t *testing.T) {
	data, err := voxio.DecodeBytes(extensionStream())
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, data)

	out := buf.String()
	require.Contains(t, out, "models: 1")
	require.Contains(t, out, "2 voxels")
	require.Contains(t, out, "palette: 1 of 256 entries set")
	require.Contains(t, out, fmt.Sprintf("fingerprint: %016x", data.Fingerprint()))
}

func TestRunVerify(t *testing.T) {
	data, err := voxio.DecodeBytes(extensionStream())
	require.NoError(t, err)
	require.NoError(t, runVerify(data))
}

func TestBuildExport(t *testing.T) {
	data, err := voxio.DecodeBytes(extensionStream())
	require.NoError(t, err)

	doc := buildExport(data)
	require.Equal(t, fmt.Sprintf("%016x", data.Fingerprint()), doc.Fingerprint)
	require.Len(t, doc.Models, 1)
	require.Equal(t, [3]int32{2, 2, 1}, doc.Models[0].Size)
	require.Equal(t, 2, doc.Models[0].VoxelCount)
	require.Equal(t, [4]uint8{0, 0, 0, 1}, doc.Models[0].Voxels[0])
	require.Equal(t, [4]uint8{1, 1, 0, 2}, doc.Models[0].Voxels[1])
	require.Len(t, doc.Palette, 1024)
	require.Equal(t, uint8(255), doc.Palette[4])
}

func TestWriteExport(t *testing.T) {
	data, err := voxio.DecodeBytes(extensionStream())
	require.NoError(t, err)

	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "scene.json")
		require.NoError(t, writeExport(path, "json", data))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		var doc exportDocument
		require.NoError(t, json.Unmarshal(raw, &doc))
		require.Len(t, doc.Models, 1)
		require.Equal(t, 2, doc.Models[0].VoxelCount)
	})

	t.Run("cbor", func(t *testing.T) {
		path := filepath.Join(dir, "scene.cbor")
		require.NoError(t, writeExport(path, "cbor", data))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		var doc exportDocument
		require.NoError(t, cbor.Unmarshal(raw, &doc))
		require.Len(t, doc.Models, 1)
		require.Equal(t, [4]uint8{1, 1, 0, 2}, doc.Models[0].Voxels[1])
	})

	t.Run("unknown format", func(t *testing.T) {
		err := writeExport(filepath.Join(dir, "scene.xml"), "xml", data)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown export format")
	})
}

func TestCompressionTypeFor(t *testing.T) {
	tests := []struct {
		flag string
		path string
		want format.CompressionType
	}{
		{"", "scene.vox", format.CompressionNone},
		{"", "scene.vox.zst", format.CompressionZstd},
		{"", "scene.vox.s2", format.CompressionS2},
		{"", "scene.vox.lz4", format.CompressionLZ4},
		{"none", "scene.vox.zst", format.CompressionNone},
		{"zstd", "scene.vox", format.CompressionZstd},
		{"s2", "scene.vox", format.CompressionS2},
		{"lz4", "scene.vox", format.CompressionLZ4},
	}

	for _, tt := range tests {
		got, err := compressionTypeFor(tt.flag, tt.path)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "flag=%q path=%q", tt.flag, tt.path)
	}

	_, err := compressionTypeFor("brotli", "scene.vox")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown compression")
}
