package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/notify"
	"github.com/linskybing/oasis/pkg/response"
	"github.com/linskybing/oasis/pkg/utils"
)

const (
	companyProjectsPath    = "/company/projects"
	apprenticeProjectsPath = "/apprentice/projects"
	instructorProjectsPath = "/instructor/projects"
	adminPendingPath       = "/admin/projects/pending"
)

type ProjectHandler struct {
	svc *application.ProjectService
	out *Responder
}

func NewProjectHandler(svc *application.ProjectService, out *Responder) *ProjectHandler {
	return &ProjectHandler{svc: svc, out: out}
}

// ListCompanyProjects godoc
// @Summary Projects of the calling company
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} project.Project
// @Router /company/projects [get]
func (h *ProjectHandler) ListCompanyProjects(c *gin.Context) {
	projects, err := h.svc.ListByCompany(utils.IdentityFromContext(c))
	if err != nil {
		h.out.Fail(c, err, companyProjectsPath)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// SubmitProject godoc
// @Summary Submit a project for review
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body project.SubmitInput true "Project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.RedirectResponse
// @Router /company/projects [post]
func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	var in project.SubmitInput
	if !bind(c, &in) {
		return
	}
	p, err := h.svc.Submit(utils.WithRequestMeta(c), utils.IdentityFromContext(c), in)
	if err != nil {
		h.out.Fail(c, err, companyProjectsPath)
		return
	}
	h.out.push(c, utils.IdentityFromContext(c), notify.Success("Proyecto enviado. Quedo pendiente de aprobacion."))
	c.JSON(http.StatusCreated, p)
}

// EditProject godoc
// @Summary Edit an own project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param input body project.EditInput true "Fields to change"
// @Success 200 {object} project.Project
// @Failure 403 {object} response.RedirectResponse
// @Router /company/projects/{id} [put]
func (h *ProjectHandler) EditProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in project.EditInput
	if !bind(c, &in) {
		return
	}
	p, err := h.svc.Edit(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id, in)
	if err != nil {
		h.out.Fail(c, err, companyProjectsPath)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProject godoc
// @Summary Project detail with assigned apprentices and instructor
// @Description Apprentices and instructors only see approved projects and the ones they work on.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} project.Project
// @Failure 403 {object} response.RedirectResponse
// @Failure 404 {object} response.RedirectResponse
// @Failure 409 {object} response.RedirectResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.DetailFor(utils.IdentityFromContext(c), id)
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListApprenticeProjects godoc
// @Summary Projects an apprentice may apply to
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} project.Project
// @Router /apprentice/projects [get]
func (h *ProjectHandler) ListApprenticeProjects(c *gin.Context) {
	projects, err := h.svc.EligibleForApprentice(c.Request.Context(), utils.IdentityFromContext(c))
	if err != nil {
		h.out.Fail(c, err, "/apprentice/dashboard")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetApprenticeProject godoc
// @Summary Approved project as an apprentice sees it
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} project.ApprenticeView
// @Router /apprentice/projects/{id} [get]
func (h *ProjectHandler) GetApprenticeProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.svc.ApprenticeView(c.Request.Context(), utils.IdentityFromContext(c), id)
	if err != nil {
		h.out.Fail(c, err, apprenticeProjectsPath)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListInstructorProjects godoc
// @Summary Approved projects an instructor may supervise
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} project.InstructorView
// @Router /instructor/projects [get]
func (h *ProjectHandler) ListInstructorProjects(c *gin.Context) {
	views, err := h.svc.EligibleForInstructor(utils.IdentityFromContext(c))
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetInstructorProject godoc
// @Summary Approved project as an instructor sees it
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} project.InstructorView
// @Router /instructor/projects/{id} [get]
func (h *ProjectHandler) GetInstructorProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.svc.InstructorView(utils.IdentityFromContext(c), id)
	if err != nil {
		h.out.Fail(c, err, instructorProjectsPath)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListSupervised godoc
// @Summary Projects the instructor supervises
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} project.Project
// @Router /instructor/supervised [get]
func (h *ProjectHandler) ListSupervised(c *gin.Context) {
	projects, err := h.svc.SupervisedByInstructor(utils.IdentityFromContext(c))
	if err != nil {
		h.out.Fail(c, err, instructorProjectsPath)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListAllProjects godoc
// @Summary All projects (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(PENDING, APPROVED, REJECTED, IN_PROGRESS, COMPLETED)
// @Success 200 {array} project.Project
// @Router /admin/projects [get]
func (h *ProjectHandler) ListAllProjects(c *gin.Context) {
	var status *project.Status
	if s := c.Query("status"); s != "" {
		st := project.Status(s)
		status = &st
	}
	projects, err := h.svc.ListAll(status)
	if err != nil {
		h.out.Fail(c, err, "/admin/projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListPendingProjects godoc
// @Summary Review queue, newest first (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} project.Project
// @Router /admin/projects/pending [get]
func (h *ProjectHandler) ListPendingProjects(c *gin.Context) {
	projects, err := h.svc.ListPending()
	if err != nil {
		h.out.Fail(c, err, "/admin/dashboard")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) decide(c *gin.Context, decision project.Decision) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in project.DecisionInput
	if !bind(c, &in) {
		return
	}
	p, err := h.svc.Decide(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id, decision, in.Reason)
	if err != nil {
		h.out.Fail(c, err, adminPendingPath)
		return
	}
	text := fmt.Sprintf("Proyecto %q aprobado", p.Name)
	if decision == project.DecisionReject {
		text = fmt.Sprintf("Proyecto %q rechazado", p.Name)
	}
	h.out.Done(c, http.StatusOK, text, adminPendingPath)
}

// ApproveProject godoc
// @Summary Approve a pending project (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param input body project.DecisionInput true "Mandatory reason"
// @Success 200 {object} response.RedirectResponse
// @Failure 400 {object} response.RedirectResponse "Missing reason or project not pending"
// @Router /admin/projects/{id}/approve [put]
func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	h.decide(c, project.DecisionApprove)
}

// RejectProject godoc
// @Summary Reject a pending project (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param input body project.DecisionInput true "Mandatory reason"
// @Success 200 {object} response.RedirectResponse
// @Failure 400 {object} response.RedirectResponse "Missing reason or project not pending"
// @Router /admin/projects/{id}/reject [put]
func (h *ProjectHandler) RejectProject(c *gin.Context) {
	h.decide(c, project.DecisionReject)
}

// AdvanceProject godoc
// @Summary Record project progress (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param input body project.AdvanceInput true "Next status"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.RedirectResponse
// @Router /admin/projects/{id}/advance [put]
func (h *ProjectHandler) AdvanceProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in project.AdvanceInput
	if !bind(c, &in) {
		return
	}
	p, err := h.svc.Advance(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id, in.Status)
	if err != nil {
		h.out.Fail(c, err, "/admin/projects")
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Delete a project (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} response.MessageResponse
// @Router /admin/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id); err != nil {
		h.out.Fail(c, err, "/admin/projects")
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project deleted"})
}
