package recognizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Provider interface {
	Recognize(ctx context.Context, url string, options *RecognizeOptions) (*Document, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")

	ErrSubmission        = errors.New("submission failed")
	ErrMissingOperation  = errors.New("missing operation location")
	ErrRecognitionFailed = errors.New("recognition failed")
	ErrPollTransport     = errors.New("poll transport error")
	ErrTimeout           = errors.New("recognition timed out")
)

type Mode string

const (
	ModePrinted     Mode = "Printed"
	ModeHandwritten Mode = "Handwritten"
)

func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(value) {
	case "", "printed":
		return ModePrinted, nil

	case "handwritten":
		return ModeHandwritten, nil
	}

	return "", errors.New("invalid mode: " + value)
}

type RecognizeOptions struct {
	Mode Mode
}

// Line is one recognized text line. BoundingBox holds the line geometry as
// returned by the engine; only index 1 (the top coordinate) carries meaning
// for layout reconstruction.
type Line struct {
	Text        string
	BoundingBox []float64
}

// Top returns the vertical position of the line, or 0 if the engine omitted
// the bounding box.
func (l Line) Top() float64 {
	if len(l.BoundingBox) < 2 {
		return 0
	}

	return l.BoundingBox[1]
}

type Page struct {
	Number int

	Lines []Line
}

type Document struct {
	Pages []Page
}

// StatusError carries the HTTP status and response detail of a rejected
// submission. It unwraps to ErrSubmission.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("submission failed: status %d", e.Status)
	}

	return fmt.Sprintf("submission failed: status %d: %s", e.Status, e.Detail)
}

func (e *StatusError) Unwrap() error {
	return ErrSubmission
}

// TimeoutError reports an exhausted attempt budget. It unwraps to ErrTimeout.
type TimeoutError struct {
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("recognition timed out after %d attempts", e.Attempts)
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}
