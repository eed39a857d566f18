package extract

import (
	"regexp"
	"strings"

	"github.com/corey/codemap/internal/ports"
)

// TypeScript/JavaScript patterns. Local imports are paths with a leading dot;
// package imports are intentionally not captured.
var (
	reTSImport    = regexp.MustCompile(`import\s+.*?\s+from\s+['"](\.[^'"]+)['"]`)
	reTSExport    = regexp.MustCompile(`export\s+(?:const|let|var|function|class|interface|type|enum)\s+(\w+)`)
	reTSDefault   = regexp.MustCompile(`export\s+default\s+(\w+)`)
	reTSInterface = regexp.MustCompile(`(export\s+)?interface\s+(\w+)`)
	reTSTypeAlias = regexp.MustCompile(`(export\s+)?type\s+(\w+)`)
	reTSEnum      = regexp.MustCompile(`(export\s+)?enum\s+(\w+)`)
	reTSClass     = regexp.MustCompile(`(export\s+)?class\s+(\w+)`)

	// Method-like declaration inside a class scan window: optional visibility,
	// optional async, name, parameter list, optional return annotation, brace.
	reTSMethod = regexp.MustCompile(`(?:public|private|protected)?\s*(async\s+)?(\w+)\s*\(([^)]*)\)(?:\s*:\s*([^{]+))?\s*\{`)

	// Standalone functions: classic declarations and arrow-function bindings.
	reTSFunc  = regexp.MustCompile(`(export\s+)?(async\s+)?function\s+(\w+)\s*\(([^)]*)\)(?:\s*:\s*([^{]+))?\s*\{`)
	reTSArrow = regexp.MustCompile(`(export\s+)?(?:const|let|var)\s+(\w+)\s*=\s*(async\s+)?\(([^)]*)\)(?:\s*:\s*([^=>]+))?\s*=>`)
)

func extractTypeScript(source string) *ports.Analysis {
	a := &ports.Analysis{}

	for _, m := range reTSImport.FindAllStringSubmatch(source, -1) {
		a.Imports = append(a.Imports, m[1])
	}

	for _, m := range reTSExport.FindAllStringSubmatch(source, -1) {
		a.Exports = append(a.Exports, m[1])
	}
	for _, m := range reTSDefault.FindAllStringSubmatch(source, -1) {
		a.Exports = append(a.Exports, "default: "+m[1])
	}

	// Three independent passes; exported-ness is whether the export keyword
	// immediately preceded the declaration keyword.
	for _, pass := range []struct {
		kind string
		re   *regexp.Regexp
	}{
		{"interface", reTSInterface},
		{"type", reTSTypeAlias},
		{"enum", reTSEnum},
	} {
		for _, m := range pass.re.FindAllStringSubmatch(source, -1) {
			a.Types = append(a.Types, ports.TypeInfo{
				Name:     m[2],
				Kind:     pass.kind,
				Exported: m[1] != "",
			})
		}
	}

	for _, idx := range reTSClass.FindAllStringSubmatchIndex(source, -1) {
		name := source[idx[4]:idx[5]]
		a.Classes = append(a.Classes, ports.ClassInfo{
			Name:     name,
			Exported: idx[2] >= 0,
			Methods:  tsMethods(window(source, idx[1]), name),
		})
	}

	for _, m := range reTSFunc.FindAllStringSubmatch(source, -1) {
		a.Functions = append(a.Functions, ports.FunctionInfo{
			Name:      m[3],
			Signature: tsSignature(m[4], m[5]),
			Async:     m[2] != "",
			Exported:  m[1] != "",
		})
	}
	for _, m := range reTSArrow.FindAllStringSubmatch(source, -1) {
		a.Functions = append(a.Functions, ports.FunctionInfo{
			Name:      m[2],
			Signature: tsSignature(m[4], m[5]),
			Async:     m[3] != "",
			Exported:  m[1] != "",
		})
	}

	return a
}

// tsMethods scans a class window for method declarations, skipping the
// constructor (named "constructor" or matching the class name). Methods are
// never marked exported.
func tsMethods(section, className string) []ports.FunctionInfo {
	var methods []ports.FunctionInfo
	for _, m := range reTSMethod.FindAllStringSubmatch(section, -1) {
		name := m[2]
		if name == "constructor" || name == className {
			continue
		}
		methods = append(methods, ports.FunctionInfo{
			Name:      name,
			Signature: tsSignature(m[3], m[4]),
			Async:     m[1] != "",
		})
		if len(methods) == MaxMethodsPerClass {
			break
		}
	}
	return methods
}

func tsSignature(params, returnType string) string {
	sig := "(" + strings.TrimSpace(params) + ")"
	if rt := strings.TrimSpace(returnType); rt != "" {
		sig += ": " + rt
	}
	return sig
}
