package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .textkit/ project directory.
// All fields are pre-computed strings — zero-alloc access after construction.
type Paths struct {
	Root string // .textkit/
	DB   string // .textkit/textkit.db
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".textkit")
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "textkit.db"),
	}
}

// EnsureDirs creates the .textkit/ directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
