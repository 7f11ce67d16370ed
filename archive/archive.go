// Package archive compresses files and folders into the formats offered by
// the compression menu and verifies the archives it produced.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codealchemist/codealchemist/common/file"
	"github.com/codealchemist/codealchemist/compression"
	"github.com/codealchemist/codealchemist/constant"
)

var (
	ErrUnknownFormat        = errors.New("unknown archive format")
	ErrPasswordUnsupported  = errors.New("password protection is only available for ZIP")
	ErrToolNotFound         = errors.New("archiver not found in PATH")
	ErrPassword             = errors.New("wrong password")
	ErrPasswordRequired     = fmt.Errorf("%w: archive is encrypted, a password is required", ErrPassword)
	ErrUnrecognizedArchive  = errors.New("unrecognized archive")
	ErrOutputOverlapsInput  = errors.New("archive would be written over its own input")
	errUnsupportedStreaming = errors.New("format has no stream codec")
)

// sampleSize bounds how much input is read for the entropy estimate.
const sampleSize = 1 << 20

// Stage identifies the phase a progress update belongs to.
type Stage string

const (
	StageArchive Stage = "archive"
	StageDone    Stage = "done"
)

// ProgressInfo represents progress information for a compression run.
// Done and Total count input bytes.
type ProgressInfo struct {
	Stage  Stage  `json:"stage"`
	Format Format `json:"format"`
	Name   string `json:"name"`
	Done   int64  `json:"done"`
	Total  int64  `json:"total"`
}

// ProgressCallback is a function type for receiving progress updates
type ProgressCallback func(progress ProgressInfo)

// Options configures a Compress call.
type Options struct {
	Format    Format
	Password  string
	OutputDir string
	Level     compression.Level
	Progress  ProgressCallback
}

// Result describes the archive Compress produced.
type Result struct {
	OutputPath  string        `json:"output_path"`
	Format      Format        `json:"format"`
	Files       int           `json:"files"`
	InputBytes  int64         `json:"input_bytes"`
	OutputBytes int64         `json:"output_bytes"`
	Entropy     float64       `json:"entropy"`
	Encrypted   bool          `json:"encrypted"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Ratio returns output size divided by input size.
func (r *Result) Ratio() float64 {
	if r.InputBytes == 0 {
		return 0
	}
	return float64(r.OutputBytes) / float64(r.InputBytes)
}

// OutputName returns the archive file name for src in the given format.
func OutputName(f Format, isDir bool) string {
	return constant.ArchiveBaseName + f.Extension(isDir)
}

// Compress archives src (a file or folder) according to opts.
func Compress(ctx context.Context, src string, opts Options) (*Result, error) {
	start := time.Now()

	if !opts.Format.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(opts.Format))
	}
	if opts.Password != "" && !opts.Format.SupportsPassword() {
		return nil, fmt.Errorf("%w: %s", ErrPasswordUnsupported, opts.Format)
	}

	src, err := filepath.Abs(filepath.Clean(src))
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	outDir := opts.OutputDir
	if outDir == "" {
		if outDir, err = file.OutputDir(src); err != nil {
			return nil, err
		}
	}
	if outDir, err = filepath.Abs(outDir); err != nil {
		return nil, err
	}
	outPath := filepath.Join(outDir, OutputName(opts.Format, info.IsDir()))
	if overlaps(src, info.IsDir(), outDir, outPath) {
		return nil, fmt.Errorf("%w: %s", ErrOutputOverlapsInput, outPath)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files, total, err := file.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("failed to collect input files: %w", err)
	}
	sample, err := file.Sample(src, sampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to sample input: %w", err)
	}

	result := &Result{
		OutputPath: outPath,
		Format:     opts.Format,
		Files:      len(files),
		InputBytes: total,
		Entropy:    compression.Entropy(sample),
		Encrypted:  opts.Password != "",
	}

	p := newProgress(opts.Progress, opts.Format, total)
	p.report(filepath.Base(src))

	switch {
	case opts.Format == FormatZIP && opts.Password != "":
		err = writeEncryptedZip(ctx, src, result.OutputPath, opts.Password, p)
	case opts.Format == FormatZIP:
		err = writeZip(ctx, src, result.OutputPath, p)
	case opts.Format == FormatTAR:
		err = writeTar(ctx, src, result.OutputPath, nil, opts.Level, p)
	case opts.Format.External():
		err = writeExternal(ctx, src, result.OutputPath, opts.Format, opts.Level, p)
	case info.IsDir():
		codec, cerr := codecFor(opts.Format)
		if cerr != nil {
			return nil, cerr
		}
		err = writeTar(ctx, src, result.OutputPath, codec, opts.Level, p)
	default:
		codec, cerr := codecFor(opts.Format)
		if cerr != nil {
			return nil, cerr
		}
		err = writeStream(ctx, src, result.OutputPath, codec, opts.Level, p)
	}
	if err != nil {
		os.Remove(result.OutputPath)
		return nil, err
	}

	out, err := os.Stat(result.OutputPath)
	if err != nil {
		return nil, err
	}
	result.OutputBytes = out.Size()
	result.Elapsed = time.Since(start)

	p.finish()
	return result, nil
}

// overlaps reports whether writing outPath would clobber src, or whether a
// folder input would end up containing its own archive.
func overlaps(src string, isDir bool, outDir, outPath string) bool {
	if outPath == src {
		return true
	}
	if !isDir {
		return false
	}
	rel, err := filepath.Rel(src, outDir)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

var codecs = compression.NewCodecManager()

func codecFor(f Format) (compression.Codec, error) {
	t := f.Compression()
	if t == compression.TypeNone {
		return nil, fmt.Errorf("%w: %s", errUnsupportedStreaming, f)
	}
	return codecs.GetCodec(t)
}

// createOutput creates path and hands it to write, closing it afterwards.
func createOutput(path string, write func(out *os.File) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return nil
}
