// Package cafos adapts the real filesystem to the caf package's
// interfaces, keeping the codec itself free of direct os calls.
package cafos

import (
	"io"
	"os"
	"path/filepath"

	"github.com/comes-group/caf"
)

// Dest implements caf.Destination over a directory on the real
// filesystem.
type Dest struct {
	root string
}

// NewDest returns a Dest rooted at root, creating root itself if it does
// not already exist.
func NewDest(root string) (*Dest, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Dest{root: root}, nil
}

// MkdirAll creates path beneath d's root, including any missing parents,
// and returns a Destination scoped to it.
func (d *Dest) MkdirAll(path string) (caf.Destination, error) {
	full := filepath.Join(d.root, filepath.FromSlash(path))
	if err := os.MkdirAll(full, 0o755); err != nil {
		return nil, err
	}
	return &Dest{root: full}, nil
}

// CreateFile creates a file named name directly beneath d. It fails with
// an fs.ErrExist-wrapping error if the file is already there, and never
// truncates or overwrites an existing file.
func (d *Dest) CreateFile(name string) (io.WriteCloser, error) {
	full := filepath.Join(d.root, name)
	return os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}
