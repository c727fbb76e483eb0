package handler

import "net/http"

// Ping отдает состояние хранилища. Ответ всегда 200, недоступность
// передается в теле.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.usecase.HealthCheck(r.Context()))
}
