// Package pipeline runs a document through recognition and persists the
// reconstructed text.
package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/adrianliechti/docread/pkg/layout"
	"github.com/adrianliechti/docread/pkg/ledger"
	"github.com/adrianliechti/docread/pkg/recognizer"
	"github.com/adrianliechti/docread/pkg/recognizer/azure"
	"github.com/adrianliechti/docread/pkg/storage"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type Pipeline struct {
	recognizer recognizer.Provider
	storage    storage.Provider

	ledger *ledger.Ledger
	logger *slog.Logger

	createZip bool
}

func New(r recognizer.Provider, s storage.Provider, options ...Option) (*Pipeline, error) {
	if r == nil {
		return nil, errors.New("invalid recognizer")
	}

	if s == nil {
		return nil, errors.New("invalid storage")
	}

	p := &Pipeline{
		recognizer: r,
		storage:    s,

		logger: slog.Default(),
	}

	for _, option := range options {
		option(p)
	}

	return p, nil
}

type Request struct {
	ID   string
	Name string

	// URL must be fetchable by the remote engine, credentials included.
	URL string

	// Content optionally holds the raw document for pre-flight validation.
	Content []byte
}

type Result struct {
	ID   string
	Name string

	Text  string
	Pages int

	Files []layout.File

	Duration time.Duration
}

// Run processes one document end to end: gate the file type, recognize,
// reconstruct text, persist the output files and journal the outcome.
// Documents are processed sequentially; Run holds no state across calls.
func (p *Pipeline) Run(ctx context.Context, request Request) (*Result, error) {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	if request.URL == "" {
		return nil, errors.New("invalid url")
	}

	if !isSupported(request.Name) {
		return nil, p.fail(ctx, request, time.Now(), recognizer.ErrUnsupported)
	}

	started := time.Now()

	if err := p.validate(request); err != nil {
		return nil, p.fail(ctx, request, started, err)
	}

	document, err := p.recognizer.Recognize(ctx, request.URL, nil)

	if err != nil {
		return nil, p.fail(ctx, request, started, err)
	}

	files := layout.Files(document)

	for _, file := range files {
		key := outputKey(request.ID, file.Name)

		if err := p.storage.Put(ctx, key, storage.File{
			Name:        file.Name,
			Content:     []byte(file.Text),
			ContentType: "text/plain; charset=utf-8",
		}); err != nil {
			return nil, p.fail(ctx, request, started, fmt.Errorf("store %s: %w", key, err))
		}
	}

	if p.createZip {
		if err := p.bundle(ctx, request, files); err != nil {
			return nil, p.fail(ctx, request, started, err)
		}
	}

	result := &Result{
		ID:   request.ID,
		Name: request.Name,

		Text:  layout.DocumentText(document.Pages),
		Pages: len(document.Pages),

		Files: files,

		Duration: time.Since(started),
	}

	p.record(ctx, ledger.Entry{
		ID:   request.ID,
		Name: request.Name,

		Status: ledger.StatusSucceeded,

		Pages:    result.Pages,
		Duration: result.Duration,
	})

	p.logger.Info("document recognized",
		"id", request.ID,
		"name", request.Name,
		"pages", result.Pages,
		"duration", result.Duration)

	return result, nil
}

// validate rejects unreadable PDF input before spending a recognition call.
func (p *Pipeline) validate(request Request) error {
	if len(request.Content) == 0 {
		return nil
	}

	if strings.ToLower(path.Ext(request.Name)) != ".pdf" {
		return nil
	}

	pdf, err := api.ReadValidateAndOptimize(bytes.NewReader(request.Content), model.NewDefaultConfiguration())

	if err != nil {
		return fmt.Errorf("%w: %w", recognizer.ErrUnsupported, err)
	}

	p.logger.Debug("validated pdf input",
		"id", request.ID,
		"name", request.Name,
		"pages", pdf.PageCount)

	return nil
}

func (p *Pipeline) bundle(ctx context.Context, request Request, files []layout.File) error {
	var buffer bytes.Buffer

	writer := zip.NewWriter(&buffer)

	for _, file := range files {
		entry, err := writer.Create(file.Name)

		if err != nil {
			return err
		}

		if _, err := entry.Write([]byte(file.Text)); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	name := zipName(request.Name)

	return p.storage.Put(ctx, outputKey(request.ID, name), storage.File{
		Name:        name,
		Content:     buffer.Bytes(),
		ContentType: "application/zip",
	})
}

func (p *Pipeline) fail(ctx context.Context, request Request, started time.Time, err error) error {
	p.record(ctx, ledger.Entry{
		ID:   request.ID,
		Name: request.Name,

		Status: ledger.StatusFailed,

		Duration: time.Since(started),

		Error: err.Error(),
	})

	p.logger.Error("document recognition failed",
		"id", request.ID,
		"name", request.Name,
		"error", err)

	return err
}

func (p *Pipeline) record(ctx context.Context, entry ledger.Entry) {
	if p.ledger == nil {
		return
	}

	if err := p.ledger.Record(ctx, entry); err != nil {
		p.logger.Error("ledger record failed", "id", entry.ID, "error", err)
	}
}

func isSupported(name string) bool {
	if name == "" {
		return true
	}

	ext := strings.ToLower(path.Ext(name))

	if ext == "" {
		return true
	}

	for _, supported := range azure.SupportedExtensions {
		if ext == supported {
			return true
		}
	}

	return false
}

func outputKey(id, name string) string {
	return "out/" + id + "/" + name
}

func zipName(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))

	if base == "" || base == "." {
		base = "result"
	}

	return base + ".zip"
}
