package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcraft/internal/core/port"
	"adcraft/internal/parse"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: all business logic lives behind the CreativeUseCase port. When
// mediaDir is non-empty, generated imagery is served from it under
// /media/.
type Handler struct {
	svc    port.CreativeUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CreativeUseCase, logger *slog.Logger, mediaDir string) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns/generate", h.handleGenerate)
		r.Post("/campaigns/modify", h.handleModify)
		r.Post("/campaigns/save", h.handleSave)
		r.Post("/campaigns/{campaignID}/images", h.handleGenerateImages)
		r.Get("/creatives", h.handleListCreatives)
	})
	if mediaDir != "" {
		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// errorPayload is the structured error body: the failing stage plus a
// human-readable message, never a stack trace.
type errorPayload struct {
	Stage string `json:"stage,omitempty"`
	Error string `json:"error"`
}

// writeError maps pipeline failures to HTTP statuses: parse failures are
// the client's prompt drift (422), generator trouble is upstream (502),
// everything else is internal.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	payload := errorPayload{Error: err.Error()}
	status := http.StatusInternalServerError

	var stageErr *port.StageError
	if errors.As(err, &stageErr) {
		payload.Stage = string(stageErr.Stage)
		payload.Error = stageErr.Err.Error()
		switch stageErr.Stage {
		case port.StageParsing:
			status = http.StatusUnprocessableEntity
		case port.StageGenerating:
			status = http.StatusBadGateway
		}
	}
	var missing *parse.MissingFieldError
	if errors.As(err, &missing) {
		status = http.StatusUnprocessableEntity
	}

	h.logger.Error("request failed",
		slog.String("stage", payload.Stage), slog.Any("error", err))
	h.writeJSON(w, status, payload)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
