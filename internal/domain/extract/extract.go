// Package extract implements the heuristic structural scan of source files:
// imports, exports, type declarations, classes with their methods, and
// standalone functions.
//
// This is deliberately not a parser. Declarations are recognized by regular
// expressions over raw text, so nested classes, generic parameters adjacent to
// names, multi-line signatures beyond the scan window, and computed export
// names are missed. That approximation is the contract: callers get a cheap,
// best-effort summary, and known false positives/negatives are preserved
// rather than fixed.
package extract

import (
	"strings"

	"github.com/corey/codemap/internal/ports"
)

// ClassScanWindow is how many bytes after a class keyword are searched for
// method declarations. An arbitrary bound standing in for brace/indent
// tracking — methods declared past it are not captured.
const ClassScanWindow = 2000

// MaxMethodsPerClass bounds how many methods are kept per scan window,
// in window order.
const MaxMethodsPerClass = 10

// KindForExtension maps a file extension (with leading dot) to its extraction
// dialect. Unrecognized extensions map to KindOther.
func KindForExtension(ext string) ports.SourceKind {
	switch strings.ToLower(ext) {
	case ".ts", ".tsx", ".js", ".jsx":
		return ports.KindTypeScript
	case ".py":
		return ports.KindPython
	default:
		return ports.KindOther
	}
}

// Extract scans source text and returns its structural summary. It is a pure
// function of its inputs: it never touches the filesystem and never fails —
// ill-formed or unsupported constructs are silently skipped, so the worst case
// is an Analysis with empty lists. HasTests is left false; the filesystem
// probe (HasTests) is the caller's concern.
func Extract(source string, kind ports.SourceKind) *ports.Analysis {
	switch kind {
	case ports.KindTypeScript:
		return extractTypeScript(source)
	case ports.KindPython:
		return extractPython(source)
	default:
		return &ports.Analysis{}
	}
}

// window returns the slice of source searched for a class's methods, starting
// at the end of the class keyword match.
func window(source string, start int) string {
	end := start + ClassScanWindow
	if end > len(source) {
		end = len(source)
	}
	return source[start:end]
}
