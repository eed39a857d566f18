package extract

import (
	"os"
	"path/filepath"
	"strings"
)

// HasTests reports whether a companion test file exists for the given source
// path. The probe checks a fixed set of sibling conventions: a ".test" or
// ".spec" segment inserted before the extension, and the same name (bare or
// with either segment) inside an adjacent __tests__ directory. Pure existence
// check — file contents are never compared.
func HasTests(path string) bool {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stemBase := strings.TrimSuffix(base, ext)

	candidates := []string{
		stem + ".test" + ext,
		stem + ".spec" + ext,
		filepath.Join(dir, "__tests__", base),
		filepath.Join(dir, "__tests__", stemBase+".test"+ext),
		filepath.Join(dir, "__tests__", stemBase+".spec"+ext),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return true
		}
	}
	return false
}
