package otel

import (
	"context"

	"github.com/adrianliechti/docread/pkg/recognizer"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type Recognizer interface {
	Observable
	recognizer.Provider
}

type observableRecognizer struct {
	name     string
	provider string

	recognizer recognizer.Provider
}

func NewRecognizer(provider, name string, p recognizer.Provider) Recognizer {
	return &observableRecognizer{
		recognizer: p,

		name:     name,
		provider: provider,
	}
}

func (p *observableRecognizer) otelSetup() {
}

func (p *observableRecognizer) Recognize(ctx context.Context, url string, options *recognizer.RecognizeOptions) (*recognizer.Document, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "recognize "+p.provider)
	defer span.End()

	result, err := p.recognizer.Recognize(ctx, url, options)

	if result != nil {
		span.SetAttributes(attribute.Int("pages", len(result.Pages)))
	}

	return result, err
}
