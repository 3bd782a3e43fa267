// Package voxio reads and writes chunk-based voxel container files.
//
// A container is a little-endian stream of tagged records: a file header,
// a MAIN record that owns the rest of the stream, an optional model count,
// one dimensions/voxel-list pair per model, and an optional 256-entry
// palette. Unknown and extension records are skipped structurally, so
// files written by richer editors survive a decode/encode round trip of
// the parts this codec understands.
//
// # Core Features
//
//   - Two-phase decoding: hard header validation, then per-chunk dispatch
//   - Whole-object Decode/Encode with canonical, deterministic output
//   - Structural skipping of extension chunks (materials, scene graph, ...)
//   - Optional whole-file compression (None, Zstd, S2, LZ4)
//   - xxHash64 content fingerprints for round-trip verification
//
// # Basic Usage
//
// Decoding a container from a byte slice:
//
//	data, err := voxio.DecodeBytes(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, model := range data.Models {
//	    fmt.Printf("model %d: %dx%dx%d, %d voxels\n",
//	        i, model.Size.X, model.Size.Y, model.Size.Z, model.VoxelCount())
//	}
//
// Building and writing a container:
//
//	var data vox.Data
//	data.AddModel(vox.Size{X: 3, Y: 3, Z: 3}, voxels)
//	data.Palette[1] = vox.Color{R: 255, A: 255}
//
//	err := voxio.WriteFile("scene.vox.zst", &data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the vox and
// compress packages, simplifying the most common use cases. For chunk-level
// control (inspecting tags, tolerating unknown chunks one at a time), use
// the vox package's Decoder and Encoder directly.
package voxio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arloliu/voxio/compress"
	"github.com/arloliu/voxio/format"
	"github.com/arloliu/voxio/internal/options"
	"github.com/arloliu/voxio/vox"
)

// FileOption configures ReadFile and WriteFile.
type FileOption = options.Option[*fileConfig]

type fileConfig struct {
	compression format.CompressionType
}

// WithCompression selects the whole-file compression algorithm, overriding
// whatever the file suffix implies. The option is rejected if the type has
// no registered codec.
func WithCompression(compressionType format.CompressionType) FileOption {
	return options.New(func(cfg *fileConfig) error {
		if _, err := compress.GetCodec(compressionType); err != nil {
			return err
		}
		cfg.compression = compressionType

		return nil
	})
}

// compressionForPath infers the compression codec from the file suffix.
// Anything without a recognized suffix is treated as a plain container.
func compressionForPath(path string) format.CompressionType {
	switch filepath.Ext(path) {
	case ".zst":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// Decode reads one complete container stream from r.
//
// It consumes exactly the bytes the container's length fields claim and
// leaves r positioned after them. See vox.Decode for the error taxonomy.
func Decode(r io.Reader) (*vox.Data, error) {
	return vox.Decode(r)
}

// DecodeBytes decodes one complete container stream held in memory.
//
// Trailing bytes after the container are ignored, matching the stream
// behavior of Decode.
func DecodeBytes(data []byte) (*vox.Data, error) {
	return vox.Decode(bytes.NewReader(data))
}

// Encode writes data to w as one complete container stream.
//
// Output is canonical: the same object always encodes to the same bytes,
// regardless of what the stream it was decoded from looked like.
func Encode(w io.Writer, data *vox.Data) error {
	return data.Encode(w)
}

// EncodeBytes encodes data and returns the container stream bytes.
func EncodeBytes(data *vox.Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := data.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ReadFile reads and decodes the container file at path.
//
// The compression codec is inferred from the file suffix (".zst", ".s2",
// ".lz4", anything else plain) and can be overridden with WithCompression.
//
// Example:
//
//	data, err := voxio.ReadFile("scene.vox.zst")
//	if err != nil {
//	    log.Fatal(err)
//	}
func ReadFile(path string, opts ...FileOption) (*vox.Data, error) {
	cfg := &fileConfig{compression: compressionForPath(path)}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	stream, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	return DecodeBytes(stream)
}

// WriteFile encodes data and writes it to the file at path, creating or
// truncating it.
//
// Compression follows the same suffix inference and override rules as
// ReadFile, so a path ending in ".zst" produces a zstd-compressed
// container without any options.
//
// Example:
//
//	// Plain container.
//	err := voxio.WriteFile("scene.vox", data)
//
//	// Compressed despite the plain suffix.
//	err = voxio.WriteFile("scene.bin", data,
//	    voxio.WithCompression(format.CompressionLZ4),
//	)
func WriteFile(path string, data *vox.Data, opts ...FileOption) error {
	cfg := &fileConfig{compression: compressionForPath(path)}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	stream, err := EncodeBytes(data)
	if err != nil {
		return err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	frame, err := codec.Compress(stream)
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}

	return os.WriteFile(path, frame, 0o644)
}
