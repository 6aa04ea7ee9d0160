package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
)

type saveRequest struct {
	Prompt  string `json:"prompt"`
	RawText string `json:"raw_text"`
}

// handleSave accepts finalized raw text, parses and persists it, and
// triggers image generation when configured. A parse failure returns 422
// with the patterns the parser tried, so prompt drift is debuggable from
// the response alone.
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" || strings.TrimSpace(req.RawText) == "" {
		http.Error(w, "prompt and raw_text are required", http.StatusBadRequest)
		return
	}
	creative, err := h.svc.SaveCreative(r.Context(), req.Prompt, req.RawText)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, creative)
}
