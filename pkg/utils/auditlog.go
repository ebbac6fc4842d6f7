package utils

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/domain/audit"
	"github.com/linskybing/oasis/internal/logging"
	"github.com/linskybing/oasis/internal/repository"
)

type requestMetaKey struct{}

// RequestMeta is the client information recorded alongside audit entries.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// WithRequestMeta copies client details from the gin request into its context
// so services can audit without depending on gin.
func WithRequestMeta(c *gin.Context) context.Context {
	return context.WithValue(c.Request.Context(), requestMetaKey{}, RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
}

func RequestMetaFrom(ctx context.Context) RequestMeta {
	if ctx == nil {
		return RequestMeta{}
	}
	meta, _ := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta
}

// LogAuditWithConsole records an audit entry in the background and logs failures.
var LogAuditWithConsole = func(ctx context.Context, actorID uint, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	meta := RequestMetaFrom(ctx)
	go func() {
		if err := LogAudit(actorID, meta.IP, meta.UserAgent, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			logging.L().WithError(err).WithField("action", action).Warn("audit log write failed")
		}
	}()
}

var LogAudit = func(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			logging.L().WithError(err).Warn("audit marshal oldData")
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			logging.L().WithError(err).Warn("audit marshal newData")
		}
	}

	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}

	return repo.CreateAuditLog(entry)
}
