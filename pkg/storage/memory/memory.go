package memory

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/adrianliechti/docread/pkg/storage"
)

var _ storage.Provider = &Provider{}

type Provider struct {
	mu    sync.RWMutex
	files map[string]storage.File
}

func New() *Provider {
	return &Provider{
		files: map[string]storage.File{},
	}
}

func (p *Provider) Put(ctx context.Context, key string, file storage.File) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.files[key] = file

	return nil
}

func (p *Provider) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	file, ok := p.files[key]

	if !ok {
		return nil, storage.ErrNotFound
	}

	return io.NopCloser(bytes.NewReader(file.Content)), nil
}

func (p *Provider) List(ctx context.Context, prefix string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var keys []string

	for key := range p.files {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys, nil
}

// File returns a stored file and whether it exists. Used by tests and the
// file-serving handler.
func (p *Provider) File(key string) (storage.File, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	file, ok := p.files[key]

	return file, ok
}
