// Command qoi15c packs and unpacks raw 16-bit monochrome sample files into
// self-describing QOI15 frames.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ice-github/qoi15/codec"
	"github.com/ice-github/qoi15/format"
	"github.com/ice-github/qoi15/frame"
	"github.com/ice-github/qoi15/internal/strategy"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("qoi15c: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: qoi15c <encode|decode|batch> [flags]")
}

func compressionFromName(name string) (format.CompressionType, error) {
	switch name {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	input := fs.String("in", "", "raw little-endian uint16 sample file")
	output := fs.String("out", "", "output frame path")
	width := fs.Uint("width", 0, "image width in samples")
	height := fs.Uint("height", 0, "image height in samples")
	shift := fs.Uint("shift", 1, "bit-discard shift")
	tableFirst := fs.Bool("table-first", false, "use the table-first tag layout")
	compression := fs.String("compression", "none", "none|zstd|s2|lz4")
	if err := fs.Parse(args); err != nil {
		return err
	}

	compressionType, err := compressionFromName(*compression)
	if err != nil {
		return err
	}

	layout := strategy.DefaultLayout
	if *tableFirst {
		layout = strategy.TableFirstLayout
	}

	return encodeFile(*input, *output, uint32(*width), uint32(*height), *shift, layout, compressionType)
}

func encodeFile(inputPath, outputPath string, width, height uint32, shift uint, layout strategy.TagLayout, compressionType format.CompressionType) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	if len(raw)%2 != 0 {
		return fmt.Errorf("%s: odd byte length %d is not a whole number of uint16 samples", inputPath, len(raw))
	}

	samples := make([]uint16, len(raw)/2)
	for i := range samples {
		samples[i] = binary.LittleEndian.Uint16(raw[i*2 : i*2+2])
	}

	cfg := codec.Config{Shift: shift, Layout: layout}
	encoded, stats, err := frame.Encode(samples, width, height, cfg, compressionType)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Printf("%s: %d samples -> %d bytes (%.1f%% of raw)\n",
		outputPath, len(samples), len(encoded), 100.0*float64(len(encoded))/float64(len(raw)))
	if compressionType != format.CompressionNone {
		fmt.Printf("  second-stage compression: %.1f%% space savings\n", stats.SpaceSavings())
	}

	return nil
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	input := fs.String("in", "", "frame path")
	output := fs.String("out", "", "output raw little-endian uint16 sample file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return decodeFile(*input, *output)
}

func decodeFile(inputPath, outputPath string) error {
	b, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	samples, header, err := frame.Decode(b)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	raw := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(raw[i*2:i*2+2], s)
	}

	if err := os.WriteFile(outputPath, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Printf("%s: %dx%d samples decoded\n", outputPath, header.Width, header.Height)

	return nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	manifestPath := fs.String("manifest", "", "YAML manifest of encode jobs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *manifestPath == "" {
		return fmt.Errorf("-manifest is required")
	}

	m, err := loadManifest(*manifestPath)
	if err != nil {
		return err
	}

	for _, job := range m.Jobs {
		shift := uint(1)
		if job.Shift != nil {
			shift = *job.Shift
		}

		layout := strategy.DefaultLayout
		if job.TableFirst {
			layout = strategy.TableFirstLayout
		}

		compressionType, err := compressionFromName(job.Compression)
		if err != nil {
			return fmt.Errorf("job %s: %w", job.Input, err)
		}

		if err := encodeFile(job.Input, job.Output, job.Width, job.Height, shift, layout, compressionType); err != nil {
			return err
		}
	}

	return nil
}
