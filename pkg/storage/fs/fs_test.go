package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/docread/pkg/storage"
	"github.com/adrianliechti/docread/pkg/storage/fs"

	"github.com/stretchr/testify/require"
)

func TestPutOpen(t *testing.T) {
	provider, err := fs.New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, provider.Put(ctx, "out/doc-1/001.txt", storage.File{
		Name:    "001.txt",
		Content: []byte("hello"),
	}))

	file, err := provider.Open(ctx, "out/doc-1/001.txt")
	require.NoError(t, err)

	defer file.Close()

	data, err := io.ReadAll(file)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func TestOpenNotFound(t *testing.T) {
	provider, err := fs.New(t.TempDir())
	require.NoError(t, err)

	_, err = provider.Open(context.Background(), "missing.txt")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestList(t *testing.T) {
	provider, err := fs.New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	for _, key := range []string{"out/a/001.txt", "out/a/full.txt", "in/a/doc.pdf"} {
		require.NoError(t, provider.Put(ctx, key, storage.File{Content: []byte("x")}))
	}

	keys, err := provider.List(ctx, "out/a/")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"out/a/001.txt", "out/a/full.txt"}, keys)
}

func TestKeyCannotEscapeRoot(t *testing.T) {
	root := t.TempDir()

	provider, err := fs.New(root)
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, provider.Put(ctx, "../escape.txt", storage.File{Content: []byte("x")}))

	// the traversal is neutralized, the file stays inside the root
	_, err = os.Stat(filepath.Join(root, "escape.txt"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(filepath.Dir(root), "escape.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
