package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("file not found")

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Provider interface {
	Put(ctx context.Context, key string, file File) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]string, error)
}
