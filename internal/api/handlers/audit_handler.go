package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/domain/audit"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/pkg/response"
	"github.com/linskybing/oasis/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

type AuditLogPage struct {
	Logs  []audit.AuditLog `json:"logs"`
	Total int64            `json:"total"`
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Retrieve audit logs filtered by user, resource, action and time range, with pagination.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     uint     false  "User ID" example(12)
// @Param        resource_type query     string   false  "Resource type" example("project")
// @Param        resource_id   query     string   false  "Resource ID" example("7")
// @Param        action        query     string   false  "Action" example("approve")
// @Param        start_time    query     string   false  "Start time in RFC3339 format" example("2024-01-01T00:00:00Z")
// @Param        end_time      query     string   false  "End time in RFC3339 format" example("2024-02-01T00:00:00Z")
// @Param        limit         query     int      false  "Max number of records (default 100, max 500)" example(100)
// @Param        offset        query     int      false  "Offset for pagination" example(0)
// @Success      200 {object}  AuditLogPage
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /admin/audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err != nil {
		if !errors.Is(err, utils.ErrEmptyParameter) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user_id"})
			return
		}
	} else {
		params.UserID = &uid
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if rid := c.Query("resource_id"); rid != "" {
		params.ResourceID = &rid
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	for _, q := range []struct {
		name string
		dst  **time.Time
	}{{"start_time", &params.StartTime}, {"end_time", &params.EndTime}} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid " + q.name})
			return
		}
		*q.dst = &t
	}

	params.Limit = utils.ParseQueryInt(c, "limit", 100)
	params.Offset = utils.ParseQueryInt(c, "offset", 0)
	if params.Offset < 0 {
		params.Offset = 0
	}

	logs, total, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, AuditLogPage{Logs: logs, Total: total})
}
