// Package report serializes analyses into the pipe-delimited map stream.
// The stream is line-oriented and grep-friendly: one FILE line per visited
// file, followed by bounded groups of IMPORT/EXPORT/TYPE/CLASS/METHOD/FUNC
// lines for recognized code files.
package report

import (
	"fmt"
	"io"

	"github.com/corey/codemap/internal/config"
	"github.com/corey/codemap/internal/ports"
)

// Writer emits map records to an underlying stream, applying the configured
// per-category caps.
type Writer struct {
	w   io.Writer
	cfg *config.Config
}

// NewWriter wraps w with the given configuration.
func NewWriter(w io.Writer, cfg *config.Config) *Writer {
	return &Writer{w: w, cfg: cfg}
}

// Header writes the comment block preceding the record stream: root name,
// totals, exclusion/support notes, and the record legend.
func (w *Writer) Header(rootName string, dirs, files int) error {
	_, err := fmt.Fprintf(w.w,
		"# PROJECT_MAP: %s\n"+
			"# Total Directories: %d | Total Files: %d\n"+
			"# Excluded: Hidden dirs (.*), node_modules, dist, build, etc.\n"+
			"# Supported: TypeScript, JavaScript, Python\n"+
			"# Format: TYPE|field1|field2|...\n"+
			"#   FILE|path|size_bytes|has_tests\n"+
			"#   IMPORT|file|import_path\n"+
			"#   EXPORT|file|export_name\n"+
			"#   TYPE|file|name|kind|is_exported\n"+
			"#   CLASS|file|name|is_exported\n"+
			"#   METHOD|file|class|name|is_async\n"+
			"#   FUNC|file|name|is_async|is_exported\n"+
			"# ---\n",
		rootName, dirs, files)
	return err
}

// File writes the metadata line for one file plus its structural records.
// A nil analysis (non-code or unreadable file) yields just the FILE line with
// has_tests=false.
func (w *Writer) File(relPath string, size int64, a *ports.Analysis) error {
	hasTests := a != nil && a.HasTests
	if _, err := fmt.Fprintf(w.w, "FILE|%s|%d|%s\n", relPath, size, boolWord(hasTests)); err != nil {
		return err
	}
	if a == nil {
		return nil
	}

	for _, imp := range capped(a.Imports, w.cfg.Caps.Imports) {
		if _, err := fmt.Fprintf(w.w, "IMPORT|%s|%s\n", relPath, imp); err != nil {
			return err
		}
	}
	for _, exp := range capped(a.Exports, w.cfg.Caps.Exports) {
		if _, err := fmt.Fprintf(w.w, "EXPORT|%s|%s\n", relPath, exp); err != nil {
			return err
		}
	}

	// Types and classes are uncapped.
	for _, ti := range a.Types {
		if _, err := fmt.Fprintf(w.w, "TYPE|%s|%s|%s|%s\n", relPath, ti.Name, ti.Kind, bit(ti.Exported)); err != nil {
			return err
		}
	}
	for _, ci := range a.Classes {
		if _, err := fmt.Fprintf(w.w, "CLASS|%s|%s|%s\n", relPath, ci.Name, bit(ci.Exported)); err != nil {
			return err
		}
		for _, m := range capped(ci.Methods, w.cfg.Caps.Methods) {
			if _, err := fmt.Fprintf(w.w, "METHOD|%s|%s|%s|%s\n", relPath, ci.Name, m.Name, bit(m.Async)); err != nil {
				return err
			}
		}
	}

	for _, fn := range capped(a.Functions, w.cfg.Caps.Functions) {
		if _, err := fmt.Fprintf(w.w, "FUNC|%s|%s|%s|%s\n", relPath, fn.Name, bit(fn.Async), bit(fn.Exported)); err != nil {
			return err
		}
	}
	return nil
}

// Error writes the single line standing in for an unreadable directory's
// subtree.
func (w *Writer) Error(path string) error {
	_, err := fmt.Fprintf(w.w, "ERROR|%s|Permission Denied\n", path)
	return err
}

// capped returns at most limit leading elements; limit <= 0 means uncapped.
func capped[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
