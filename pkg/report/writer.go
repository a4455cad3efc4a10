package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"cputemps/pkg/analysis"
)

// Writer persists analysis results next to the input file or into Dir
type Writer struct {
	// Dir is the output directory. When empty, files are written next to
	// the input file.
	Dir string

	// Mode selects the file name prefix derivation
	Mode StemMode

	log *zap.SugaredLogger
}

// NewWriter creates a report writer. A nil logger discards log output.
func NewWriter(dir string, mode StemMode, logger *zap.SugaredLogger) *Writer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Writer{Dir: dir, Mode: mode, log: logger}
}

// Prefix returns the path prefix that output files for inputPath start with
func (w *Writer) Prefix(inputPath string) string {
	stem := Stem(inputPath, w.Mode)
	if w.Dir == "" {
		return stem
	}
	return filepath.Join(w.Dir, filepath.Base(stem))
}

// WriteReports writes one report file per successfully modeled core and
// returns the paths written. Cores with an error are skipped. Failures to
// write are collected and returned together; the results are not modified.
func (w *Writer) WriteReports(inputPath string, results []analysis.ChannelResult) ([]string, error) {
	if err := w.ensureDir(); err != nil {
		return nil, err
	}

	prefix := w.Prefix(inputPath)
	var written []string
	var errs []error
	for _, res := range results {
		if !res.OK() {
			w.log.Warnw("skipping report for core", "core", res.Channel, "error", res.Err)
			continue
		}

		path := CoreFileName(prefix, res.Channel)
		if err := os.WriteFile(path, []byte(res.Report), 0644); err != nil {
			errs = append(errs, fmt.Errorf("error writing report for core %d: %w", res.Channel, err))
			continue
		}
		w.log.Infow("report written", "core", res.Channel, "path", path)
		written = append(written, path)
	}

	return written, errors.Join(errs...)
}

// WriteModels exports the models of every successfully modeled core to a
// single file, <prefix>-models.<ext>, and returns its path.
func (w *Writer) WriteModels(inputPath string, format Format, results []analysis.ChannelResult) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s-models.%s", w.Prefix(inputPath), format.Extension())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating model file: %w", err)
	}

	if err := ExportModels(f, format, results); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("error closing model file: %w", err)
	}

	w.log.Infow("models exported", "format", format.String(), "path", path)
	return path, nil
}

func (w *Writer) ensureDir() error {
	if w.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	return nil
}
