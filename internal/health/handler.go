// Package health exposes the liveness endpoint.
package health

import (
	"net/http"
	"time"

	"github.com/filegate/service/internal/response"
)

type status struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2026-02-27T14:48:34Z"`
}

// Handler godoc
//
//	@Summary	Liveness check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	status
//	@Router		/health [get]
func Handler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, status{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
