package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/linskybing/oasis/pkg/utils"
)

const (
	adminProgramsPath = "/admin/programs"
	adminSectorsPath  = "/admin/sectors"
)

type CatalogHandler struct {
	svc *application.CatalogService
	out *Responder
}

func NewCatalogHandler(svc *application.CatalogService, out *Responder) *CatalogHandler {
	return &CatalogHandler{svc: svc, out: out}
}

// ListPrograms godoc
// @Summary Training programmes
// @Description Public listing returns active programmes only; admins may pass all=true.
// @Tags catalog
// @Produce json
// @Param all query bool false "Include inactive programmes (admin only)"
// @Success 200 {array} catalog.Program
// @Router /programs [get]
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	activeOnly := true
	if c.Query("all") == "true" && utils.IdentityFromContext(c).IsAdmin() {
		activeOnly = false
	}
	programs, err := h.svc.ListPrograms(activeOnly)
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, programs)
}

// GetProgram godoc
// @Summary Programme detail
// @Tags catalog
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} catalog.Program
// @Failure 404 {object} response.RedirectResponse
// @Router /programs/{id} [get]
func (h *CatalogHandler) GetProgram(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetProgram(id)
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProgram godoc
// @Summary Create a programme
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body catalog.ProgramInput true "Programme"
// @Success 201 {object} response.RedirectResponse
// @Failure 400 {object} response.RedirectResponse
// @Router /admin/programs [post]
func (h *CatalogHandler) CreateProgram(c *gin.Context) {
	var in catalog.ProgramInput
	if !bind(c, &in) {
		return
	}
	p, err := h.svc.CreateProgram(utils.WithRequestMeta(c), utils.IdentityFromContext(c), in)
	if err != nil {
		h.out.Fail(c, err, adminProgramsPath)
		return
	}
	h.out.Done(c, http.StatusCreated, "Programa "+p.Name+" creado.", adminProgramsPath)
}

// UpdateProgram godoc
// @Summary Update a programme
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Param input body catalog.ProgramInput true "Programme"
// @Success 200 {object} response.RedirectResponse
// @Router /admin/programs/{id} [put]
func (h *CatalogHandler) UpdateProgram(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in catalog.ProgramInput
	if !bind(c, &in) {
		return
	}
	p, err := h.svc.UpdateProgram(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id, in)
	if err != nil {
		h.out.Fail(c, err, adminProgramsPath)
		return
	}
	h.out.Done(c, http.StatusOK, "Programa "+p.Name+" actualizado.", adminProgramsPath)
}

// DeleteProgram godoc
// @Summary Delete a programme
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Success 200 {object} response.RedirectResponse
// @Router /admin/programs/{id} [delete]
func (h *CatalogHandler) DeleteProgram(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProgram(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id); err != nil {
		h.out.Fail(c, err, adminProgramsPath)
		return
	}
	h.out.Done(c, http.StatusOK, "Programa eliminado.", adminProgramsPath)
}

// ListSectors godoc
// @Summary Productive sectors
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Sector
// @Router /sectors [get]
func (h *CatalogHandler) ListSectors(c *gin.Context) {
	sectors, err := h.svc.ListSectors()
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// CreateSector godoc
// @Summary Create a sector
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body catalog.SectorInput true "Sector"
// @Success 201 {object} response.RedirectResponse
// @Router /admin/sectors [post]
func (h *CatalogHandler) CreateSector(c *gin.Context) {
	var in catalog.SectorInput
	if !bind(c, &in) {
		return
	}
	s, err := h.svc.CreateSector(utils.WithRequestMeta(c), utils.IdentityFromContext(c), in)
	if err != nil {
		h.out.Fail(c, err, adminSectorsPath)
		return
	}
	h.out.Done(c, http.StatusCreated, "Sector "+s.Name+" creado.", adminSectorsPath)
}

// UpdateSector godoc
// @Summary Update a sector
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sector ID"
// @Param input body catalog.SectorInput true "Sector"
// @Success 200 {object} response.RedirectResponse
// @Router /admin/sectors/{id} [put]
func (h *CatalogHandler) UpdateSector(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in catalog.SectorInput
	if !bind(c, &in) {
		return
	}
	s, err := h.svc.UpdateSector(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id, in)
	if err != nil {
		h.out.Fail(c, err, adminSectorsPath)
		return
	}
	h.out.Done(c, http.StatusOK, "Sector "+s.Name+" actualizado.", adminSectorsPath)
}

// DeleteSector godoc
// @Summary Delete a sector
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sector ID"
// @Success 200 {object} response.RedirectResponse
// @Router /admin/sectors/{id} [delete]
func (h *CatalogHandler) DeleteSector(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSector(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id); err != nil {
		h.out.Fail(c, err, adminSectorsPath)
		return
	}
	h.out.Done(c, http.StatusOK, "Sector eliminado.", adminSectorsPath)
}
