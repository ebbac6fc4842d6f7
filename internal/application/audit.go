package application

import (
	"github.com/linskybing/oasis/internal/domain/audit"
	"github.com/linskybing/oasis/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, int64, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

// CleanupOldLogs drops entries older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}
