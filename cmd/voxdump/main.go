// voxdump prints the structure of voxel container files.
//
// It walks a file chunk by chunk with the low-level decoder, printing
// every record including the extension chunks the codec skips, then
// decodes the whole object for model, palette and fingerprint summaries.
// With --verify it re-encodes the object and checks the round trip; with
// --export it writes the decoded object as JSON or CBOR for other tooling.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/arloliu/voxio"
	"github.com/arloliu/voxio/chunk"
	"github.com/arloliu/voxio/compress"
	"github.com/arloliu/voxio/endian"
	"github.com/arloliu/voxio/errs"
	"github.com/arloliu/voxio/format"
	"github.com/arloliu/voxio/internal/hash"
	"github.com/arloliu/voxio/vox"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		verify       bool
		exportPath   string
		exportFormat string
		compression  string
		verbose      bool
	)

	flagSet := pflag.NewFlagSet("voxdump", pflag.ContinueOnError)
	flagSet.BoolVar(&verify, "verify", false, "re-encode the decoded object and check the round trip")
	flagSet.StringVar(&exportPath, "export", "", "write the decoded object to this file")
	flagSet.StringVar(&exportFormat, "format", "json", "export format: json or cbor")
	flagSet.StringVar(&compression, "compression", "", "input compression: none, zstd, s2 or lz4 (default: by file suffix)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}

		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) != 1 {
		printHelp(flagSet)
		return fmt.Errorf("expected one container file, got %d arguments", len(args))
	}
	path := args[0]

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Debug("host platform",
		"native_little_endian", endian.IsNativeLittleEndian(),
		"byte_order", fmt.Sprintf("%v", endian.CheckEndianness()),
	)

	compressionType, err := compressionTypeFor(compression, path)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("=== %s ===\n\n", path)

	stream := raw
	if compressionType != format.CompressionNone {
		codec, err := compress.GetCodec(compressionType)
		if err != nil {
			return err
		}

		stream, err = codec.Decompress(raw)
		if err != nil {
			return fmt.Errorf("decompress %s: %w", path, err)
		}

		stats := compress.CompressionStats{
			Algorithm:      compressionType,
			OriginalSize:   int64(len(stream)),
			CompressedSize: int64(len(raw)),
		}
		fmt.Printf("compression: %s, %d bytes on disk, %d decompressed (%.1f%% saved)\n\n",
			stats.Algorithm, stats.CompressedSize, stats.OriginalSize, stats.SpaceSavings())
	}

	if err := walkChunks(os.Stdout, stream); err != nil {
		return err
	}

	data, err := voxio.DecodeBytes(stream)
	if err != nil {
		return err
	}
	printSummary(os.Stdout, data)

	if verify {
		if err := runVerify(data); err != nil {
			return err
		}
		fmt.Println("\nverify: round trip OK")
	}

	if exportPath != "" {
		if err := writeExport(exportPath, exportFormat, data); err != nil {
			return err
		}
		logger.Info("exported decoded object", "path", exportPath, "format", exportFormat)
	}

	return nil
}

// walkChunks prints the stream digest, then one line per chunk record,
// including the extension chunks the whole-object decoder skips.
func walkChunks(w io.Writer, stream []byte) error {
	fmt.Fprintf(w, "stream: %d bytes, digest %016x\n", len(stream), hash.Sum64(stream))

	dec := vox.NewDecoder(bytes.NewReader(stream))

	fileHeader, err := dec.DecodeHeader()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "header: magic %q, version %d\n", fileHeader.Magic, fileHeader.Version)

	mainHeader, payload, err := dec.DecodeChunk()
	if err != nil {
		return err
	}
	if payload.Kind() != format.KindMain {
		return fmt.Errorf("first chunk is %s, want %s", mainHeader.ID, chunk.TagMain)
	}
	fmt.Fprintf(w, "%s  children=%d\n", mainHeader.ID, mainHeader.ChildSpan())

	// Same budget arithmetic as the whole-object decoder: a decodable chunk
	// consumes its header and content, a skipped chunk also its children.
	budget := mainHeader.TotalSpan()
	for budget > 0 {
		header, payload, err := dec.DecodeChunk()
		if errors.Is(err, errs.ErrUnknownChunk) {
			fmt.Fprintf(w, "  %s  content=%d children=%d  [skipped]\n",
				header.ID, header.ContentSpan(), header.ChildSpan())
			budget -= chunk.HeaderSize + header.TotalSpan()

			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "  %s  content=%d  %s\n", header.ID, header.ContentSpan(), describePayload(payload))
		budget -= chunk.HeaderSize + header.ContentSpan()
	}

	return nil
}

// describePayload renders the interesting part of a decoded payload for
// the chunk listing.
func describePayload(p vox.Payload) string {
	switch v := p.(type) {
	case vox.Pack:
		return fmt.Sprintf("model count %d", v.ModelCount)
	case vox.Size:
		return fmt.Sprintf("%d x %d x %d (%d cells)", v.X, v.Y, v.Z, v.Volume())
	case vox.XYZI:
		return fmt.Sprintf("%d voxels", len(v.Voxels))
	case vox.RGBA:
		if v.Palette.IsZero() {
			return "palette (all zero)"
		}

		return "palette"
	default:
		return ""
	}
}

// printSummary prints the whole-object view: models, palette usage and
// content fingerprints.
func printSummary(w io.Writer, data *vox.Data) {
	fmt.Fprintf(w, "\nmodels: %d\n", len(data.Models))
	for i := range data.Models {
		m := &data.Models[i]
		fmt.Fprintf(w, "  model %d: %d x %d x %d, %d voxels, fingerprint %016x\n",
			i, m.Size.X, m.Size.Y, m.Size.Z, m.VoxelCount(), m.Fingerprint())
	}

	used := 0
	for _, c := range data.Palette {
		if c != (vox.Color{}) {
			used++
		}
	}
	fmt.Fprintf(w, "palette: %d of 256 entries set\n", used)
	fmt.Fprintf(w, "fingerprint: %016x\n", data.Fingerprint())
}

// runVerify checks that the decoded object survives an encode/decode
// round trip with an identical fingerprint, and that re-encoding the
// round-tripped object reproduces the same bytes.
func runVerify(data *vox.Data) error {
	first, err := voxio.EncodeBytes(data)
	if err != nil {
		return fmt.Errorf("re-encode: %w", err)
	}

	decoded, err := voxio.DecodeBytes(first)
	if err != nil {
		return fmt.Errorf("decode re-encoded stream: %w", err)
	}

	if got, want := decoded.Fingerprint(), data.Fingerprint(); got != want {
		return fmt.Errorf("fingerprint mismatch after round trip: %016x, want %016x", got, want)
	}

	second, err := voxio.EncodeBytes(decoded)
	if err != nil {
		return fmt.Errorf("second encode: %w", err)
	}
	if !bytes.Equal(first, second) {
		return errors.New("re-encoding is not deterministic")
	}

	return nil
}

// compressionTypeFor resolves the --compression flag, falling back to the
// same file-suffix inference voxio.ReadFile uses.
func compressionTypeFor(name, path string) (format.CompressionType, error) {
	switch name {
	case "":
		switch filepath.Ext(path) {
		case ".zst":
			return format.CompressionZstd, nil
		case ".s2":
			return format.CompressionS2, nil
		case ".lz4":
			return format.CompressionLZ4, nil
		default:
			return format.CompressionNone, nil
		}
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, zstd, s2 or lz4)", name)
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `voxdump prints the chunk structure of a voxel container file.

The file is walked record by record: every chunk tag and its declared
lengths are printed, including extension chunks the codec skips. The
whole object is then decoded for model, palette and fingerprint
summaries.

Compressed containers (.zst, .s2, .lz4) are decompressed before the
walk; use --compression to override the suffix inference.

Usage:
  voxdump [flags] <file>

Examples:
  # Print the structure of a container
  voxdump scene.vox

  # Check that decode -> encode -> decode preserves the content
  voxdump --verify scene.vox

  # Export the decoded object for other tooling
  voxdump --export scene.json scene.vox
  voxdump --export scene.cbor --format cbor scene.vox.zst

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
