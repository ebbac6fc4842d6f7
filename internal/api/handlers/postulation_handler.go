package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/pkg/response"
	"github.com/linskybing/oasis/pkg/utils"
)

type PostulationHandler struct {
	svc *application.PostulationService
	out *Responder
}

func NewPostulationHandler(svc *application.PostulationService, out *Responder) *PostulationHandler {
	return &PostulationHandler{svc: svc, out: out}
}

// ProjectPostulations groups both kinds of postulations for one project.
type ProjectPostulations struct {
	Apprentices []postulation.Postulation `json:"apprentices"`
	Instructors []postulation.Postulation `json:"instructors"`
}

// Apply godoc
// @Summary Apply to a project
// @Description Apprentices and instructors apply with the same endpoint under their own prefix.
// @Tags postulations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 201 {object} postulation.Postulation
// @Failure 409 {object} response.RedirectResponse "Already applied or project not open"
// @Failure 422 {object} response.RedirectResponse "Programme mismatch"
// @Router /apprentice/projects/{id}/apply [post]
// @Router /instructor/projects/{id}/apply [post]
func (h *PostulationHandler) Apply(c *gin.Context) {
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	id := utils.IdentityFromContext(c)
	kind, back := postulation.KindApprentice, apprenticeProjectsPath
	if id.Role == user.RoleInstructor {
		kind, back = postulation.KindInstructor, instructorProjectsPath
	}

	p, err := h.svc.Apply(utils.WithRequestMeta(c), id, kind, projectID)
	if err != nil {
		h.out.Fail(c, err, back)
		return
	}
	h.out.Done(c, http.StatusCreated, "Postulacion enviada a "+p.ProjectName, back)
}

// Decide godoc
// @Summary Accept or reject a postulation
// @Tags postulations
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Postulation kind" Enums(apprentice, instructor)
// @Param id path int true "Postulation ID"
// @Param action path string true "Outcome" Enums(accept, reject)
// @Success 200 {object} response.RedirectResponse
// @Failure 403 {object} response.RedirectResponse "Not your project"
// @Failure 409 {object} response.RedirectResponse "Already decided"
// @Router /company/postulations/{kind}/{id}/{action} [put]
func (h *PostulationHandler) Decide(c *gin.Context) {
	kind, err := postulation.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	outcome, err := postulation.ParseOutcome(c.Param("action"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Decide(utils.WithRequestMeta(c), utils.IdentityFromContext(c), kind, id, outcome)
	if err != nil {
		h.out.Fail(c, err, companyProjectsPath)
		return
	}
	text := "Postulacion aceptada"
	if outcome == postulation.OutcomeReject {
		text = "Postulacion rechazada"
	}
	h.out.Done(c, http.StatusOK, text, projectPostulationsPath(p.ProjectID))
}

// ListForProject godoc
// @Summary Postulations received by a project
// @Tags postulations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} ProjectPostulations
// @Router /company/projects/{id}/postulations [get]
func (h *PostulationHandler) ListForProject(c *gin.Context) {
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	apprentices, instructors, err := h.svc.ListForProject(utils.IdentityFromContext(c), projectID)
	if err != nil {
		h.out.Fail(c, err, companyProjectsPath)
		return
	}
	c.JSON(http.StatusOK, ProjectPostulations{Apprentices: apprentices, Instructors: instructors})
}

// ListMine godoc
// @Summary Own postulations
// @Tags postulations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} postulation.Postulation
// @Router /apprentice/postulations [get]
// @Router /instructor/postulations [get]
func (h *PostulationHandler) ListMine(c *gin.Context) {
	id := utils.IdentityFromContext(c)
	kind := postulation.KindApprentice
	if id.Role == user.RoleInstructor {
		kind = postulation.KindInstructor
	}
	list, err := h.svc.ListMine(id, kind)
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, list)
}

func projectPostulationsPath(projectID uint) string {
	return companyProjectsPath + "/" + utoa(projectID) + "/postulations"
}
