package api

import (
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db"
)

var startTime = time.Now()

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// Health handles GET /health, reporting process uptime and database
// reachability.
func (h *Handlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		status := healthStatus{
			Status:   "ok",
			Database: "up",
			Uptime:   time.Since(startTime).Round(time.Second).String(),
		}

		if db.DB != nil {
			if err := db.DB.PingContext(r.Context()); err != nil {
				status.Status = "degraded"
				status.Database = "down"
			}
		}

		if status.Status != "ok" {
			common.RespondError(w, initTime, nil, constants.MsgInternalError, http.StatusServiceUnavailable)
			return
		}

		common.RespondSuccess(w, initTime, "", status)
	}
}
