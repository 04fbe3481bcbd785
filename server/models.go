package server

import (
	"time"

	"github.com/adrianliechti/docread/pkg/ledger"
	"github.com/adrianliechti/docread/pkg/pipeline"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type Recognition struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	Status string `json:"status"`

	Pages int    `json:"pages,omitempty"`
	Text  string `json:"text,omitempty"`

	Files []string `json:"files,omitempty"`

	Error string `json:"error,omitempty"`

	Duration int64 `json:"duration_ms,omitempty"`

	Created *time.Time `json:"created,omitempty"`
}

func fromResult(result *pipeline.Result) *Recognition {
	recognition := &Recognition{
		ID:   result.ID,
		Name: result.Name,

		Status: string(ledger.StatusSucceeded),

		Pages: result.Pages,
		Text:  result.Text,

		Duration: result.Duration.Milliseconds(),
	}

	for _, file := range result.Files {
		recognition.Files = append(recognition.Files, file.Name)
	}

	return recognition
}

func fromEntry(entry *ledger.Entry) *Recognition {
	recognition := &Recognition{
		ID:   entry.ID,
		Name: entry.Name,

		Status: string(entry.Status),

		Pages: entry.Pages,
		Error: entry.Error,

		Duration: entry.Duration.Milliseconds(),
	}

	if !entry.Created.IsZero() {
		created := entry.Created
		recognition.Created = &created
	}

	return recognition
}
