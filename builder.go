package caf

import (
	"fmt"
	"io/fs"
	"sort"
)

// Builder accumulates index entries and file payloads before producing a
// completed Archive. It is the only mutable phase in the codec's
// lifecycle (see the Archive doc comment); once Finish is called, the
// resulting Archive is immutable.
//
// The zero value is ready to use.
type Builder struct {
	index []IndexEntry
	files [][]byte
}

// ChangeDirectory appends a directory marker, setting the "current
// directory" used by Unpack. path may contain '/' separators and is
// always interpreted relative to the unpack root, never relative to a
// previously seen directory.
func (b *Builder) ChangeDirectory(path string) error {
	if err := validateDirPath(path); err != nil {
		return err
	}
	b.index = append(b.index, IndexEntry{Kind: KindDirectory, Name: path})
	return nil
}

// Add appends a file marker and its payload under the current directory.
// name must be a bare file name: no '/' separator.
func (b *Builder) Add(name string, data []byte) error {
	if err := validateFileName(name); err != nil {
		return err
	}
	b.index = append(b.index, IndexEntry{Kind: KindFile, Name: name})
	b.files = append(b.files, data)
	return nil
}

// Finish transfers ownership of the accumulated index and files into a
// completed Archive with Version set to SupportedVersion. The Builder is
// left with an empty index and no files; calling Finish a second time
// yields an empty Archive.
func (b *Builder) Finish() *Archive {
	a := &Archive{
		Version: SupportedVersion,
		Index:   b.index,
		Files:   b.files,
	}
	b.index = nil
	b.files = nil
	return a
}

// Source is the read-side filesystem interface through which AddTree
// discovers a directory tree to pack. It is exactly io/fs's own
// composite of FS, ReadDirFS and ReadFileFS; os.DirFS already implements
// it, so no adapter type is needed for packing (see cafos for the
// corresponding write-side adapter used when unpacking).
type Source interface {
	fs.FS
	fs.ReadDirFS
	fs.ReadFileFS
}

// AddTree recursively ingests the directory tree rooted at root (a path
// within src) into the builder. If prefix is non-empty, a ChangeDirectory
// to prefix is emitted first. Within each directory, all files are added
// before any subdirectory is recursed into -- the order contract the
// format relies on to keep the index flat and order-independent across
// directories. Non-regular, non-directory entries (symlinks, devices,
// etc.) are ignored.
func (b *Builder) AddTree(src Source, root string, prefix string) error {
	if prefix != "" {
		if err := b.ChangeDirectory(prefix); err != nil {
			return err
		}
	}

	entries, err := src.ReadDir(root)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var dirs []fs.DirEntry
	for _, entry := range entries {
		switch {
		case entry.Type().IsRegular():
			data, err := src.ReadFile(joinPath(root, entry.Name()))
			if err != nil {
				return err
			}
			if err := b.Add(entry.Name(), data); err != nil {
				return err
			}
		case entry.IsDir():
			dirs = append(dirs, entry)
		default:
			// symlinks, devices, etc. are not part of this format.
		}
	}

	for _, entry := range dirs {
		childPrefix := entry.Name()
		if prefix != "" {
			childPrefix = prefix + "/" + entry.Name()
		}
		if err := b.AddTree(src, joinPath(root, entry.Name()), childPrefix); err != nil {
			return fmt.Errorf("caf: building tree under %q: %w", childPrefix, err)
		}
	}
	return nil
}

func joinPath(root, name string) string {
	if root == "" || root == "." {
		return name
	}
	return root + "/" + name
}
