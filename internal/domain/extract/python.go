package extract

import (
	"regexp"
	"strings"

	"github.com/corey/codemap/internal/ports"
)

// Python patterns. Only dotted relative imports (leading dot) are captured.
// Python has no export concept, so Exported is always false and Types/Exports
// stay empty.
var (
	rePyImport = regexp.MustCompile(`from\s+(\.[^\s]+)\s+import`)
	rePyClass  = regexp.MustCompile(`class\s+(\w+)`)
	rePyDef    = regexp.MustCompile(`(?:async\s+)?def\s+(\w+)\s*\(([^)]*)\)(?:\s*->\s*([^:]+))?:`)
)

// pyAsync reports whether a def match is async: a substring check over the
// whole match, so a parameter named async_mode counts too. Preserved false
// positive of the heuristic.
func pyAsync(wholeMatch string) bool {
	return strings.Contains(wholeMatch, "async")
}

func extractPython(source string) *ports.Analysis {
	a := &ports.Analysis{}

	for _, m := range rePyImport.FindAllStringSubmatch(source, -1) {
		a.Imports = append(a.Imports, m[1])
	}

	for _, idx := range rePyClass.FindAllStringSubmatchIndex(source, -1) {
		a.Classes = append(a.Classes, ports.ClassInfo{
			Name:    source[idx[2]:idx[3]],
			Methods: pyMethods(window(source, idx[1])),
		})
	}

	// Captured method names, for the standalone-function pass below. The
	// comparison is by name only, with no regard to scope: an unrelated
	// top-level function sharing a method's name is wrongly excluded, and a
	// method past the scan window is wrongly included. Both are accepted
	// limitations of the heuristic.
	methodNames := make(map[string]bool)
	for _, c := range a.Classes {
		for _, m := range c.Methods {
			methodNames[m.Name] = true
		}
	}

	for _, m := range rePyDef.FindAllStringSubmatch(source, -1) {
		name := m[1]
		if methodNames[name] {
			continue
		}
		a.Functions = append(a.Functions, ports.FunctionInfo{
			Name:      name,
			Signature: pySignature(m[2], m[3]),
			Async:     pyAsync(m[0]),
		})
	}

	return a
}

// pyMethods scans a class window for def declarations. Dunder methods are
// skipped except __init__.
func pyMethods(section string) []ports.FunctionInfo {
	var methods []ports.FunctionInfo
	for _, m := range rePyDef.FindAllStringSubmatch(section, -1) {
		name := m[1]
		if strings.HasPrefix(name, "__") && name != "__init__" {
			continue
		}
		methods = append(methods, ports.FunctionInfo{
			Name:      name,
			Signature: pySignature(m[2], m[3]),
			Async:     pyAsync(m[0]),
		})
		if len(methods) == MaxMethodsPerClass {
			break
		}
	}
	return methods
}

func pySignature(params, returnType string) string {
	sig := "(" + strings.TrimSpace(params) + ")"
	if rt := strings.TrimSpace(returnType); rt != "" {
		sig += " -> " + rt
	}
	return sig
}
