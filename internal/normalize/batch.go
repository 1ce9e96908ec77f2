package normalize

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/toolittlecakes/ar-art-prod/internal/asset"
	"github.com/toolittlecakes/ar-art-prod/internal/logger"
)

// Options configures a batch run.
type Options struct {
	InputDir  string
	OutputDir string // may equal InputDir for in-place normalization
	Extension string // model file suffix, e.g. ".glb"
}

// Runner processes every matching file in a directory, one at a time.
// Files are independent units of work: a failure in one never aborts
// the rest of the batch.
type Runner struct {
	opts   Options
	loader Loader

	// Out receives the per-file report blocks and the summary. It is
	// part of the tool's interface; defaults to stdout.
	Out io.Writer
}

// New returns a Runner over the given options and loader.
func New(opts Options, loader Loader) *Runner {
	if opts.OutputDir == "" {
		opts.OutputDir = opts.InputDir
	}
	return &Runner{opts: opts, loader: loader, Out: os.Stdout}
}

// Run scans the input directory and normalizes each matching file in
// listing order. A missing input directory is the only fatal error;
// everything per-file is logged and skipped. An empty file list is a
// normal outcome reported as such.
func (r *Runner) Run() (*Summary, error) {
	entries, err := os.ReadDir(r.opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", r.opts.InputDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), r.opts.Extension) {
			files = append(files, e.Name())
		}
	}

	if len(files) == 0 {
		fmt.Fprintf(r.Out, "no %s files found in %s\n", r.opts.Extension, r.opts.InputDir)
		return &Summary{}, nil
	}

	logger.Info("starting batch",
		zap.String("input", r.opts.InputDir),
		zap.String("output", r.opts.OutputDir),
		zap.Int("files", len(files)))

	results := make([]FileResult, 0, len(files))
	for _, name := range files {
		results = append(results, r.processFile(name))
	}

	summary := summarize(results)
	fmt.Fprintf(r.Out, "normalized %d of %d files (%d skipped, %d failed)\n",
		summary.OK, summary.Total, summary.Skipped, summary.Failed)
	fmt.Fprintln(r.Out, "done")
	return summary, nil
}

// processFile runs one file through load, normalize, save and report.
// Every error is converted to a skip-or-fail result here; nothing
// propagates to the batch.
func (r *Runner) processFile(name string) FileResult {
	inPath := filepath.Join(r.opts.InputDir, name)
	outPath := filepath.Join(r.opts.OutputDir, name)

	fmt.Fprintf(r.Out, "processing %s\n", name)

	doc, err := r.loader.Load(inPath)
	if err != nil {
		logger.Error("load failed", zap.String("file", name), zap.Error(err))
		fmt.Fprintf(r.Out, "  failed: %v\n", err)
		return FileResult{Name: name, Status: StatusFailed, Reason: err.Error()}
	}

	report, err := Normalize(doc)
	if err != nil {
		if errors.Is(err, asset.ErrNoScene) || errors.Is(err, ErrDegenerateGeometry) {
			logger.Warn("skipping file", zap.String("file", name), zap.Error(err))
			fmt.Fprintf(r.Out, "  skipped: %v\n", err)
			return FileResult{Name: name, Status: StatusSkipped, Reason: err.Error()}
		}
		logger.Error("normalize failed", zap.String("file", name), zap.Error(err))
		fmt.Fprintf(r.Out, "  failed: %v\n", err)
		return FileResult{Name: name, Status: StatusFailed, Reason: err.Error()}
	}

	if err := doc.Save(outPath); err != nil {
		logger.Error("write failed", zap.String("file", name), zap.Error(err))
		fmt.Fprintf(r.Out, "  failed: %v\n", err)
		return FileResult{Name: name, Status: StatusFailed, Reason: err.Error()}
	}

	// Reporting only: re-measure the in-memory document so the operator
	// sees the resulting dimensions. The file is already written.
	if verified, err := doc.Bounds(); err == nil {
		report.NormalizedSize = verified.Size()
	}

	writeReport(r.Out, report)
	logger.Debug("normalized", zap.String("file", name), zap.Float32("scale", report.ScaleFactor))
	return FileResult{Name: name, Status: StatusOK, Report: report}
}
