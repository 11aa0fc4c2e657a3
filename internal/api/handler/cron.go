package handler

import (
	"net/http"

	"github.com/safarind/umrah-marketplace-api/internal/scheduler"
	"github.com/safarind/umrah-marketplace-api/pkg/apiErrors"
	"github.com/safarind/umrah-marketplace-api/pkg/log"
)

// RunExpirySweep triggers a manual expiry sweep run.
func RunExpirySweep(service *scheduler.ExpirySweepService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.RunSweep(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("manual expiry sweep failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "expiry sweep failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "completed"})
	}
}

// GetCronStatus reports the state of the scheduled jobs.
func GetCronStatus(service *scheduler.ExpirySweepService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"expiry_sweep": service.Status(),
		})
	}
}
