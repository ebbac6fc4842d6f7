package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/pkg/utils"
)

type DashboardHandler struct {
	svc *application.DashboardService
	out *Responder
}

func NewDashboardHandler(svc *application.DashboardService, out *Responder) *DashboardHandler {
	return &DashboardHandler{svc: svc, out: out}
}

// AdminDashboard godoc
// @Summary Admin dashboard counters
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} application.AdminDashboard
// @Failure 403 {object} response.RedirectResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	d, err := h.svc.Admin(utils.IdentityFromContext(c))
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, d)
}

// Reports godoc
// @Summary User and project statistics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} application.Reports
// @Router /admin/reports [get]
func (h *DashboardHandler) Reports(c *gin.Context) {
	r, err := h.svc.Reports(utils.IdentityFromContext(c))
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, r)
}

// ApprenticeDashboard godoc
// @Summary Projects the apprentice is assigned to or applied for
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} application.ApprenticeDashboard
// @Router /apprentice/dashboard [get]
func (h *DashboardHandler) ApprenticeDashboard(c *gin.Context) {
	d, err := h.svc.Apprentice(utils.IdentityFromContext(c))
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, d)
}
