package handlers

import "net/http"

type healthResponse struct {
	OK          bool    `json:"ok"`
	HasKey      bool    `json:"has_key"`
	ClientReady bool    `json:"client_ready"`
	ClientError *string `json:"client_error"`
}

// Health handles GET /health. It is a pure read of provider-client state and
// always answers 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ready, reason := h.readiness.Ready()

	resp := healthResponse{
		OK:          true,
		HasKey:      h.hasKey,
		ClientReady: ready,
	}
	if !ready {
		resp.ClientError = &reason
	}

	writeJSON(w, http.StatusOK, resp)
}
