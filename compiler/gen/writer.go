package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dave/jennifer/jen"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/tools/imports"
)

// FileWriter renders, formats and writes generated files. In check mode it
// compares the output with the file on disk instead of writing it.
type FileWriter struct {
	header string
	check  bool

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks generation performance
type WriterMetrics struct {
	FilesWritten   int
	FilesUnchanged int
	FilesRemoved   int
	TotalBytes     int64
	RenderTime     time.Duration
	FormatTime     time.Duration
	WriteTime      time.Duration
}

// NewFileWriter creates a writer for the given configuration.
func NewFileWriter(cfg *Config) *FileWriter {
	return &FileWriter{
		header: "// " + cfg.header(),
		check:  cfg.Check,
	}
}

// Metrics returns a snapshot of the writer metrics.
func (w *FileWriter) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Format renders f and formats the result as the file at path.
func (w *FileWriter) Format(path string, f *jen.File) ([]byte, error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError("render", path, "render builders", err)
	}
	rendered := time.Now()
	// FormatOnly keeps the imports Jennifer resolved from the type-checked
	// fields; goimports must not guess them again.
	out, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, NewGenerationError("format", path, "format builders", err)
	}
	w.mu.Lock()
	w.metrics.RenderTime += rendered.Sub(start)
	w.metrics.FormatTime += time.Since(rendered)
	w.mu.Unlock()
	return out, nil
}

// Write renders f and writes it to path if the content changed. It
// reports whether the file changed. In check mode the file is left
// untouched and the diff between the current and expected content is
// returned.
func (w *FileWriter) Write(path string, f *jen.File) (changed bool, diff string, err error) {
	out, err := w.Format(path, f)
	if err != nil {
		if !w.check {
			// Keep the unformatted output for debugging; errors are ignored as
			// we are already in an error state.
			var buf bytes.Buffer
			if f.Render(&buf) == nil {
				_ = os.WriteFile(path+".error", buf.Bytes(), 0o644)
			}
		}
		return false, "", err
	}
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, "", NewGenerationError("write", path, "read existing file", err)
	}
	if bytes.Equal(current, out) {
		w.count(func(m *WriterMetrics) { m.FilesUnchanged++ })
		return false, "", nil
	}
	if w.check {
		diff, err := unifiedDiff(path, current, out)
		if err != nil {
			return false, "", NewGenerationError("write", path, "diff", err)
		}
		return true, diff, nil
	}
	start := time.Now()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, "", NewGenerationError("write", path, "create directory", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, "", NewGenerationError("write", path, "write file", err)
	}
	w.count(func(m *WriterMetrics) {
		m.FilesWritten++
		m.TotalBytes += int64(len(out))
		m.WriteTime += time.Since(start)
	})
	return true, "", nil
}

// Remove deletes a previously generated file at path. Files that do not
// start with the generated header are never removed. In check mode the
// file is kept and its content is returned as diff.
func (w *FileWriter) Remove(path string) (removed bool, diff string, err error) {
	current, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, "", nil
	case err != nil:
		return false, "", NewGenerationError("remove", path, "read existing file", err)
	case !w.Generated(current):
		return false, "", nil
	}
	if w.check {
		diff, err := unifiedDiff(path, current, nil)
		if err != nil {
			return false, "", NewGenerationError("remove", path, "diff", err)
		}
		return true, diff, nil
	}
	if err := os.Remove(path); err != nil {
		return false, "", NewGenerationError("remove", path, "remove file", err)
	}
	w.count(func(m *WriterMetrics) { m.FilesRemoved++ })
	return true, "", nil
}

// Generated reports whether src starts with the generated file header.
func (w *FileWriter) Generated(src []byte) bool {
	return bytes.HasPrefix(src, []byte(w.header+"\n"))
}

func (w *FileWriter) count(fn func(*WriterMetrics)) {
	w.mu.Lock()
	fn(&w.metrics)
	w.mu.Unlock()
}

// String implements fmt.Stringer.
func (m WriterMetrics) String() string {
	return fmt.Sprintf("written=%d unchanged=%d removed=%d bytes=%d render=%s format=%s write=%s",
		m.FilesWritten, m.FilesUnchanged, m.FilesRemoved, m.TotalBytes, m.RenderTime, m.FormatTime, m.WriteTime)
}

// unifiedDiff returns the line diff turning current into out. Empty
// content has no lines.
func unifiedDiff(path string, current, out []byte) (string, error) {
	lines := func(b []byte) []string {
		if len(b) == 0 {
			return nil
		}
		return difflib.SplitLines(string(b))
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        lines(current),
		B:        lines(out),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	})
}
