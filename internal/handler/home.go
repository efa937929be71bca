package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ecoswap/ecoswap/internal/view"
)

// HomeHandler serves the landing page and health check.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HandleHome renders the landing page.
// GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sess := SessionFromRequest(r)
	tr := translator(r)
	view.HomePage(sess, tr, popFlash(w, r, tr)).Render(r.Context(), w)
}

// HandleHealth responds with a 200 OK and a JSON body indicating the server is healthy.
// GET /healthz
func (h *HomeHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
