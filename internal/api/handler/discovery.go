package handler

import (
	"net/http"

	"github.com/safarind/umrah-marketplace-api/internal/usecases/discovery"
	"github.com/safarind/umrah-marketplace-api/pkg/apiErrors"
	"github.com/safarind/umrah-marketplace-api/pkg/log"
	"github.com/safarind/umrah-marketplace-api/pkg/utils"
)

// ListPackages serves the public package listing, ranked per the current
// admin settings.
func ListPackages(service discovery.DiscoveryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := service.ListPackages(r.Context(), discovery.ListOptions{})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error listing packages")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing packages", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]interface{}{
			"packages": packages,
		}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error writing package listing response")
		}
	}
}

// AdminListPackages serves the administrative listing. It may include
// inactive packages and supports previewing the ranking of another day
// via the as_of query parameter (yyyy-mm-dd).
func AdminListPackages(service discovery.DiscoveryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := discovery.ListOptions{
			IncludeInactive: r.URL.Query().Get("include_inactive") == "true",
		}

		asOf, err := utils.ParseDate(r.URL.Query().Get("as_of"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "as_of must be yyyy-mm-dd", nil)
			return
		}
		opts.AsOf = *asOf

		packages, err := service.ListPackages(r.Context(), opts)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error listing packages for admin")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing packages", nil)
			return
		}

		settings := service.RankingSettings(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]interface{}{
			"packages": packages,
			"settings": map[string]interface{}{
				"sort_algorithm":    settings.Algorithm,
				"verified_priority": settings.VerifiedPriority,
			},
		}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error writing admin package listing response")
		}
	}
}
