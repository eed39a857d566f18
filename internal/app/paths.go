package app

import "path/filepath"

// MapFileName is the default output file written at the project root.
const MapFileName = "PROJECT_MAP.txt"

// Paths holds all resolved filesystem paths for the .codemap/ project state
// directory. All fields are pre-computed strings.
type Paths struct {
	Root    string // .codemap/
	DB      string // .codemap/cache.db
	MapFile string // PROJECT_MAP.txt at the project root
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".codemap")
	return &Paths{
		Root:    root,
		DB:      filepath.Join(root, "cache.db"),
		MapFile: filepath.Join(projectRoot, MapFileName),
	}
}
