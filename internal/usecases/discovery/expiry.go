package discovery

import (
	"context"
	"time"

	"github.com/safarind/umrah-marketplace-api/internal/domain"
	"github.com/safarind/umrah-marketplace-api/pkg/log"
)

// Reconcile applies the lazy expiry check: every package whose departure
// date has passed and which is still flagged active is returned inactive
// in the current response, and a fire-and-forget write-back persists the
// deactivation. The read path never waits on or depends on the write-back;
// the check simply runs again on the next read.
func (s *Service) Reconcile(ctx context.Context, packages []*domain.Package, now time.Time) []*domain.Package {
	reconciled := make([]*domain.Package, len(packages))

	for i, p := range packages {
		if p.IsActive && p.Departed(now) {
			expired := *p
			expired.IsActive = false
			reconciled[i] = &expired

			s.submitExpiryWriteback(ctx, p.ID)
			continue
		}
		reconciled[i] = p
	}

	return reconciled
}

func (s *Service) submitExpiryWriteback(ctx context.Context, packageID string) {
	correlationID := log.GetCorrelationID(ctx)

	s.runner.Submit("expiry-writeback", func(taskCtx context.Context) error {
		if err := s.packageRepo.Deactivate(taskCtx, packageID); err != nil {
			log.L.WithError(err).WithFields(log.Fields{
				"correlation_id": correlationID,
				"package_id":     packageID,
			}).Warn("expiry write-back failed, will retry on next read")
			return nil
		}

		log.L.WithField("package_id", packageID).Debug("departed package deactivated")
		return nil
	})
}
