package caf

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memDestination is an in-memory Destination fake, used to test Unpack's
// traversal logic without touching a real filesystem.
type memDestination struct {
	path     string
	files    map[string][]byte
	existing map[string]bool
}

func newMemDestination(existing map[string]bool) *memDestination {
	return &memDestination{files: map[string][]byte{}, existing: existing}
}

func (d *memDestination) MkdirAll(path string) (Destination, error) {
	return &memDestination{path: path, files: d.files, existing: d.existing}, nil
}

func (d *memDestination) CreateFile(name string) (io.WriteCloser, error) {
	full := d.path + "/" + name
	if d.existing[full] {
		return nil, os.ErrExist
	}
	return &recordingWriter{dest: d, key: full, Buffer: &bytes.Buffer{}}, nil
}

type recordingWriter struct {
	dest *memDestination
	key  string
	*bytes.Buffer
}

func (w *recordingWriter) Close() error {
	w.dest.files[w.key] = w.Buffer.Bytes()
	return nil
}

func TestUnpackWalksIndexInOrder(t *testing.T) {
	a := &Archive{
		Version: 1,
		Index: []IndexEntry{
			{Kind: KindFile, Name: "root.txt"},
			{Kind: KindDirectory, Name: "sub"},
			{Kind: KindFile, Name: "a.txt"},
			{Kind: KindDirectory, Name: "sub/nested"},
			{Kind: KindFile, Name: "b.txt"},
		},
		Files: [][]byte{
			[]byte("root"),
			[]byte("a"),
			[]byte("b"),
		},
	}

	dest := newMemDestination(nil)
	require.NoError(t, Unpack(a, dest))

	assert.Equal(t, []byte("root"), dest.files["/root.txt"])
	assert.Equal(t, []byte("a"), dest.files["sub/a.txt"])
	assert.Equal(t, []byte("b"), dest.files["sub/nested/b.txt"])
}

func TestUnpackDirectoryAlwaysResolvesFromRoot(t *testing.T) {
	a := &Archive{
		Version: 1,
		Index: []IndexEntry{
			{Kind: KindDirectory, Name: "first"},
			{Kind: KindDirectory, Name: "second"}, // NOT "first/second"
			{Kind: KindFile, Name: "f.txt"},
		},
		Files: [][]byte{[]byte("f")},
	}
	dest := newMemDestination(nil)
	require.NoError(t, Unpack(a, dest))
	assert.Equal(t, []byte("f"), dest.files["second/f.txt"])
}

func TestUnpackSkipsExistingFileButConsumesPayload(t *testing.T) {
	a := &Archive{
		Version: 1,
		Index: []IndexEntry{
			{Kind: KindFile, Name: "exists.txt"},
			{Kind: KindFile, Name: "new.txt"},
		},
		Files: [][]byte{[]byte("skipped"), []byte("kept")},
	}
	dest := newMemDestination(map[string]bool{"/exists.txt": true})
	require.NoError(t, Unpack(a, dest))

	_, stillAbsent := dest.files["/exists.txt"]
	assert.False(t, stillAbsent)
	assert.Equal(t, []byte("kept"), dest.files["/new.txt"])
}

func TestUnpackOnRealFilesystem(t *testing.T) {
	root := t.TempDir()

	var b Builder
	require.NoError(t, b.ChangeDirectory("assets"))
	require.NoError(t, b.Add("hi.txt", []byte("Hello, world!")))
	a := b.Finish()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, a))

	back, err := Decode(&buf)
	require.NoError(t, err)

	dest := &osDest{root: root}
	require.NoError(t, Unpack(back, dest))

	got, err := os.ReadFile(filepath.Join(root, "assets", "hi.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", string(got))
}

// osDest is a minimal local copy of cafos.Dest's logic, kept here (rather
// than importing cafos, which would import caf and form a cycle) purely
// to exercise Unpack against a real filesystem.
type osDest struct{ root string }

func (d *osDest) MkdirAll(path string) (Destination, error) {
	full := filepath.Join(d.root, filepath.FromSlash(path))
	if err := os.MkdirAll(full, 0o755); err != nil {
		return nil, err
	}
	return &osDest{root: full}, nil
}

func (d *osDest) CreateFile(name string) (io.WriteCloser, error) {
	return os.OpenFile(filepath.Join(d.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}
