package cron

import (
	"context"
	"time"

	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/logging"
)

const cleanupInterval = 24 * time.Hour

// StartCleanupTask purges audit entries past the retention window, once at
// startup and then daily, until ctx is cancelled.
func StartCleanupTask(ctx context.Context, auditService *application.AuditService) {
	go func() {
		log := logging.L().WithField("task", "audit_cleanup")
		log.WithField("retention_days", config.AuditRetentionDays).Info("starting background cleanup task")

		run := func() {
			n, err := auditService.CleanupOldLogs(config.AuditRetentionDays)
			if err != nil {
				log.WithError(err).Error("failed to cleanup old audit logs")
				return
			}
			log.WithField("deleted", n).Info("audit log cleanup completed")
		}

		run()

		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				run()
			case <-ctx.Done():
				return
			}
		}
	}()
}
