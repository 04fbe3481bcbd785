package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/docread/config"
	"github.com/adrianliechti/docread/pkg/recognizer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) *Handler {
	return &Handler{
		Config: cfg,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", h.handleHealth)

	r.Post("/v1/recognitions", h.handleRecognition)
	r.Get("/v1/recognitions", h.handleRecognitionList)
	r.Get("/v1/recognitions/{id}", h.handleRecognitionGet)

	r.Get("/v1/files/*", h.handleFile)

	return otelhttp.NewHandler(r, "server")
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	if err != nil {
		slog.Error("server error", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	resp := ErrorResponse{
		Error: err.Error(),
	}

	json.NewEncoder(w).Encode(resp)
}

// errorCode maps the recognition error taxonomy onto HTTP statuses so
// callers can distinguish caller faults from engine faults.
func errorCode(err error) int {
	switch {
	case errors.Is(err, recognizer.ErrUnsupported):
		return http.StatusUnsupportedMediaType

	case errors.Is(err, recognizer.ErrTimeout):
		return http.StatusGatewayTimeout

	case errors.Is(err, recognizer.ErrRecognitionFailed):
		return http.StatusUnprocessableEntity

	case errors.Is(err, recognizer.ErrSubmission),
		errors.Is(err, recognizer.ErrMissingOperation),
		errors.Is(err, recognizer.ErrPollTransport):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
