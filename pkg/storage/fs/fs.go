package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/docread/pkg/storage"
)

var _ storage.Provider = &Provider{}

type Provider struct {
	root string
}

func New(root string) (*Provider, error) {
	if root == "" {
		return nil, errors.New("invalid root")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	return &Provider{
		root: root,
	}, nil
}

func (p *Provider) Put(ctx context.Context, key string, file storage.File) error {
	path, err := p.resolve(key)

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, file.Content, 0o644)
}

func (p *Provider) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := p.resolve(key)

	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}

	return file, err
}

func (p *Provider) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(p.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		key, err := filepath.Rel(p.root, path)

		if err != nil {
			return err
		}

		key = filepath.ToSlash(key)

		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}

		return nil
	})

	return keys, err
}

func (p *Provider) resolve(key string) (string, error) {
	key = filepath.ToSlash(filepath.Clean("/" + key))

	if key == "/" {
		return "", errors.New("invalid key")
	}

	return filepath.Join(p.root, filepath.FromSlash(strings.TrimPrefix(key, "/"))), nil
}
