package caf

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Destination is the write-side filesystem interface through which
// Unpack materializes an archive. Unlike the read side (Source, built
// from io/fs), there is no standard-library interface for writing, so
// this package defines its own minimal one; cafos.Dest implements it over
// the real filesystem.
type Destination interface {
	// MkdirAll creates path (and any missing parents) beneath this
	// Destination and returns a handle scoped to it. Called only against
	// the root Destination passed to Unpack, never against a
	// previously-returned directory handle -- directory paths in a CAF
	// archive are always resolved from the unpack root.
	MkdirAll(path string) (Destination, error)

	// CreateFile creates a file named name directly beneath this
	// Destination. If a file already exists at that path, CreateFile
	// must return an error satisfying errors.Is(err, fs.ErrExist).
	CreateFile(name string) (io.WriteCloser, error)
}

// Unpack walks a's index left-to-right and materializes it beneath dest.
// A Directory entry is always resolved from dest (the unpack root), never
// from a previously-seen directory, and becomes the current write
// directory for subsequent File entries. A File entry consumes the next
// unconsumed payload; if a file already exists at the target path, it is
// left untouched and the payload is still consumed, so the remainder of
// the archive stays aligned.
//
// An archive with multiple Directory entries for the same path, or two
// File entries with the same name under one directory, is not forbidden
// by the format: the second Directory entry simply re-selects the same
// write directory, and the second File entry's "already exists" skip
// makes duplicates benign, though not idempotent with differing content.
func Unpack(a *Archive, dest Destination) error {
	if a.FileCount() != len(a.Files) {
		return ErrCountMismatch
	}

	current := dest
	fileIdx := 0
	for _, entry := range a.Index {
		switch entry.Kind {
		case KindDirectory:
			dir, err := dest.MkdirAll(entry.Name)
			if err != nil {
				return fmt.Errorf("caf: unpack: creating directory %q: %w", entry.Name, err)
			}
			current = dir
		case KindFile:
			payload := a.Files[fileIdx]
			fileIdx++
			if err := writeFile(current, entry.Name, payload); err != nil {
				return fmt.Errorf("caf: unpack: writing file %q: %w", entry.Name, err)
			}
		}
	}
	return nil
}

func writeFile(dir Destination, name string, payload []byte) error {
	w, err := dir.CreateFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return err
	}
	defer w.Close()
	_, err = w.Write(payload)
	return err
}
