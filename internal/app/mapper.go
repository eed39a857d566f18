// Package app orchestrates map generation: the counting pass, the depth-first
// traversal with exclusion filtering, per-file extraction (cache-assisted),
// and report emission.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/corey/codemap/internal/config"
	"github.com/corey/codemap/internal/domain/extract"
	"github.com/corey/codemap/internal/domain/report"
	"github.com/corey/codemap/internal/ports"
)

// Mapper generates the project map for one root directory. Cache is optional;
// when nil every file is re-extracted.
type Mapper struct {
	Root  string // absolute project root
	Cfg   *config.Config
	Cache ports.Cache
}

// Result holds totals from one generation pass.
type Result struct {
	Files int
	Dirs  int
}

// Generate writes the full map (header plus record stream) to out.
// No single file or directory failure aborts the run: unreadable files are
// listed without structural records, unreadable directories become one ERROR
// line each and traversal continues with the rest of the tree.
func (m *Mapper) Generate(out io.Writer) (*Result, error) {
	files, dirs := m.count(m.Root)
	if err := m.emit(out, files, dirs); err != nil {
		return nil, err
	}
	return &Result{Files: files, Dirs: dirs}, nil
}

// WriteMap generates the map into outPath, replacing any previous contents.
// The counting pass runs before the output file is created, so a fresh map
// file never inflates its own totals.
func (m *Mapper) WriteMap(outPath string) (*Result, error) {
	files, dirs := m.count(m.Root)

	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", outPath, err)
	}

	bw := bufio.NewWriter(f)
	err = m.emit(bw, files, dirs)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return &Result{Files: files, Dirs: dirs}, nil
}

// emit writes the header and the full record stream.
func (m *Mapper) emit(out io.Writer, files, dirs int) error {
	w := report.NewWriter(out, m.Cfg)
	if err := w.Header(filepath.Base(m.Root), dirs, files); err != nil {
		return err
	}
	return m.walk(m.Root, w)
}

// count tallies files and directories under dir, honoring the exclusion sets.
// Unreadable directories are skipped silently — they surface as ERROR lines
// during the walk instead.
func (m *Mapper) count(dir string) (files, dirs int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0
	}
	for _, e := range entries {
		if e.IsDir() {
			if m.Cfg.ExcludedDir(e.Name()) {
				continue
			}
			dirs++
			f, d := m.count(filepath.Join(dir, e.Name()))
			files += f
			dirs += d
		} else {
			if m.Cfg.ExcludedFile(e.Name()) {
				continue
			}
			files++
		}
	}
	return files, dirs
}

// walk emits records for every entry under dir, depth-first, directories
// before files, each group in case-insensitive name order.
func (m *Mapper) walk(dir string, w *report.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return w.Error(dir)
	}

	var subdirs, files []os.DirEntry
	for _, e := range entries {
		if e.IsDir() {
			if !m.Cfg.ExcludedDir(e.Name()) {
				subdirs = append(subdirs, e)
			}
		} else if !m.Cfg.ExcludedFile(e.Name()) {
			files = append(files, e)
		}
	}
	byLowerName := func(s []os.DirEntry) func(i, j int) bool {
		return func(i, j int) bool {
			return strings.ToLower(s[i].Name()) < strings.ToLower(s[j].Name())
		}
	}
	sort.Slice(subdirs, byLowerName(subdirs))
	sort.Slice(files, byLowerName(files))

	for _, e := range subdirs {
		if err := m.walk(filepath.Join(dir, e.Name()), w); err != nil {
			return err
		}
	}
	for _, e := range files {
		if err := m.emitFile(dir, e, w); err != nil {
			return err
		}
	}
	return nil
}

// emitFile writes the FILE line and, for recognized code files, the
// structural records.
func (m *Mapper) emitFile(dir string, entry os.DirEntry, w *report.Writer) error {
	path := filepath.Join(dir, entry.Name())

	relPath, err := filepath.Rel(m.Root, path)
	if err != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	info, err := entry.Info()
	if err != nil {
		// Stat failure: list the file with no size or structure.
		return w.File(relPath, 0, nil)
	}

	var a *ports.Analysis
	ext := strings.ToLower(filepath.Ext(path))
	if m.Cfg.IsCode(ext) && info.Size() <= m.Cfg.MaxFileSize {
		a = m.analyze(path, relPath, ext, info.ModTime().Unix(), info.Size())
	}
	return w.File(relPath, info.Size(), a)
}

// analyze returns the structural summary for a code file, consulting the
// cache first. An unreadable file yields nil — it is treated as not a code
// file, never as an error.
func (m *Mapper) analyze(path, relPath, ext string, modTime, size int64) *ports.Analysis {
	if m.Cache != nil {
		if cached, err := m.Cache.Get(relPath, modTime, size); err == nil && cached != nil {
			return cached
		}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	a := extract.Extract(string(source), extract.KindForExtension(ext))
	a.HasTests = extract.HasTests(path)

	if m.Cache != nil {
		// Cache failures never block generation.
		_ = m.Cache.Put(relPath, modTime, size, a)
	}
	return a
}
