package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type modifyRequest struct {
	RawText     string `json:"raw_text"`
	Instruction string `json:"instruction"`
}

// handleGenerate runs retrieval and generation for a campaign prompt and
// returns the raw generated text for review. Nothing is persisted here;
// the reviewer saves the text through /campaigns/save once satisfied.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}
	draft, err := h.svc.GenerateDraft(r.Context(), req.Prompt)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, draft)
}

// handleModify asks the generator to revise previously generated raw text.
func (h *Handler) handleModify(w http.ResponseWriter, r *http.Request) {
	var req modifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.RawText) == "" || strings.TrimSpace(req.Instruction) == "" {
		http.Error(w, "raw_text and instruction are required", http.StatusBadRequest)
		return
	}
	draft, err := h.svc.ModifyDraft(r.Context(), req.RawText, req.Instruction)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, draft)
}
