package otel

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
)

const instrumentationName = "github.com/adrianliechti/docread"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}

func Setup(ctx context.Context, name, version string) error {
	if !EnableTelemetry {
		return nil
	}

	resource := sdkresource.NewSchemaless(
		attribute.String("service.name", name),
		attribute.String("service.version", version),
	)

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	if err := setupMeter(ctx, resource); err != nil {
		return err
	}

	return nil
}
