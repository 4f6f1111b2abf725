// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package api

import (
	"net/http"

	"github.com/tomtom215/trendline/internal/logging"
)

// ReloadOriginHTTP labels reloads requested through the admin endpoint.
const ReloadOriginHTTP = "http"

// ReloadResponse is the body of POST /v1/admin/reload.
type ReloadResponse struct {
	Status string `json:"status"`
	Queued bool   `json:"queued"`
}

// AdminReload handles POST /v1/admin/reload. The rebuild runs asynchronously;
// a request made while another rebuild is pending is coalesced into it.
func (h *Handler) AdminReload(w http.ResponseWriter, r *http.Request) {
	if h.reloader == nil {
		respondErrorBody(w, http.StatusServiceUnavailable, TypeReloadUnavailable, "Snapshot reload is not configured", nil)
		return
	}

	queued := h.reloader.RequestReload(ReloadOriginHTTP)
	logging.Ctx(r.Context()).Info().Bool("queued", queued).Msg("Snapshot reload requested")

	respondJSON(w, http.StatusAccepted, ReloadResponse{Status: "accepted", Queued: queued})
}
