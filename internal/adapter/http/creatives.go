package httpadapter

import (
	"net/http"
	"strconv"
)

// handleListCreatives returns stored creatives, newest first. An optional
// `limit` query parameter caps the result; invalid values produce 400.
func (h *Handler) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	creatives, err := h.svc.ListCreatives(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, creatives)
}
