package http

import (
	"net/http"

	"github.com/MKhiriev/users-proxy/internal/utils"
	"github.com/MKhiriev/users-proxy/models"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}

// health reports liveness of the proxy itself. It never contacts upstream.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: statusOK}, http.StatusOK)
}

func (h *Handler) upstreamHealth(w http.ResponseWriter, r *http.Request) {
	if !h.services.AppInfoService.IsUpstreamHealthy(r.Context()) {
		utils.WriteJSON(w, models.StatusResponse{Status: statusUnavailable, Upstream: statusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Status: statusOK, Upstream: statusOK}, http.StatusOK)
}
