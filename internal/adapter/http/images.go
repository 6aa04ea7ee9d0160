package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGenerateImages (re)renders imagery for every creative of a
// campaign and reports per-item outcomes. The call succeeds even when
// individual renders fail; the report carries the details.
func (h *Handler) handleGenerateImages(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	if campaignID == "" {
		http.Error(w, "missing campaign id", http.StatusBadRequest)
		return
	}
	report, err := h.svc.GenerateImages(r.Context(), campaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
