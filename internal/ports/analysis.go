// Package ports defines the interfaces (contracts) that adapters must implement
// and the shared record model exchanged across them. Domain logic depends only
// on these types, never on concrete implementations.
package ports

// SourceKind identifies which extraction dialect applies to a source file.
type SourceKind int

const (
	// KindOther covers recognized code files with no structural extractor.
	// They still get a FILE line and a test-existence probe.
	KindOther SourceKind = iota

	// KindTypeScript covers .ts/.tsx/.js/.jsx — brace-delimited source with
	// first-class module exports.
	KindTypeScript

	// KindPython covers .py — indentation-based source with no export concept.
	KindPython
)

// FunctionInfo describes a function or method. Methods always carry
// Exported=false regardless of their class's own exported flag.
type FunctionInfo struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	Async     bool   `json:"async"`
	Exported  bool   `json:"exported"`
}

// ClassInfo describes a class and the methods found in its scan window.
type ClassInfo struct {
	Name     string         `json:"name"`
	Methods  []FunctionInfo `json:"methods,omitempty"`
	Exported bool           `json:"exported"`
}

// TypeInfo describes an interface, type alias, or enum declaration.
// Kind is one of "interface", "type", "enum".
type TypeInfo struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Exported bool   `json:"exported"`
}

// Analysis is the structural summary of one source file. All slices preserve
// first-seen textual order and are never deduplicated — the same name appears
// twice when the pattern matches twice. An Analysis is immutable once built.
type Analysis struct {
	// Imports holds relative import paths only (leading "."); package imports
	// are not captured.
	Imports []string `json:"imports,omitempty"`

	// Exports holds named export identifiers plus at most one
	// "default: <name>" entry per default export.
	Exports []string `json:"exports,omitempty"`

	Types     []TypeInfo     `json:"types,omitempty"`
	Classes   []ClassInfo    `json:"classes,omitempty"`
	Functions []FunctionInfo `json:"functions,omitempty"`

	// HasTests reports whether a companion test file exists on disk.
	HasTests bool `json:"has_tests"`
}
