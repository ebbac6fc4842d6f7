package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/notify"
	"github.com/linskybing/oasis/pkg/response"
	"github.com/linskybing/oasis/pkg/utils"
)

const imageURLTTL = 15 * time.Minute

// ProfileView is the profile page payload.
type ProfileView struct {
	Profile    profile.Profile  `json:"profile"`
	Created    bool             `json:"created"`
	Incomplete bool             `json:"incomplete"`
	ImageURL   string           `json:"image_url,omitempty"`
	Notice     *response.Notice `json:"notice,omitempty"`
}

type ProfileHandler struct {
	svc *application.ProfileService
	out *Responder
}

func NewProfileHandler(svc *application.ProfileService, out *Responder) *ProfileHandler {
	return &ProfileHandler{svc: svc, out: out}
}

func imageKey(p profile.Profile) string {
	switch {
	case p.Company != nil:
		return p.Company.LogoKey
	case p.Apprentice != nil:
		return p.Apprentice.PhotoKey
	case p.Instructor != nil:
		return p.Instructor.PhotoKey
	}
	return ""
}

// GetProfile godoc
// @Summary Own profile
// @Description Returns the caller's profile, creating a placeholder on first visit.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileView
// @Router /company/profile [get]
// @Router /apprentice/profile [get]
// @Router /instructor/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id := utils.IdentityFromContext(c)
	p, created, err := h.svc.GetOrCreate(c.Request.Context(), id)
	if err != nil {
		h.out.Fail(c, err, authz.HomeFor(id.Role))
		return
	}

	view := ProfileView{Profile: p, Created: created, Incomplete: p.Incomplete()}
	if view.Incomplete {
		n := notify.Warning("Completa tu perfil para continuar.")
		if created {
			n = notify.Info("Bienvenido. Completa tu perfil para continuar.")
		}
		view.Notice = n.Response()
	}
	if key := imageKey(p); key != "" && h.svc.Blobs != nil {
		if url, err := h.svc.Blobs.URL(c.Request.Context(), key, imageURLTTL); err == nil {
			view.ImageURL = url
		}
	}
	c.JSON(http.StatusOK, view)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Body is the company, apprentice or instructor form matching the caller's role.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body profile.CompanyInput true "Profile form for the caller's role"
// @Success 200 {object} response.RedirectResponse
// @Failure 400 {object} response.RedirectResponse
// @Router /company/profile [put]
// @Router /apprentice/profile [put]
// @Router /instructor/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id := utils.IdentityFromContext(c)
	var in profile.UpdateInput
	switch id.Role {
	case user.RoleCompany:
		in.Company = &profile.CompanyInput{}
		if !bind(c, in.Company) {
			return
		}
	case user.RoleApprentice:
		in.Apprentice = &profile.ApprenticeInput{}
		if !bind(c, in.Apprentice) {
			return
		}
	case user.RoleInstructor:
		in.Instructor = &profile.InstructorInput{}
		if !bind(c, in.Instructor) {
			return
		}
	default:
		h.out.Fail(c, application.ErrPermissionDenied, authz.HomePath)
		return
	}

	back := authz.ProfilePathFor(id.Role)
	if _, err := h.svc.Update(utils.WithRequestMeta(c), id, in); err != nil {
		h.out.Fail(c, err, back)
		return
	}
	h.out.Done(c, http.StatusOK, "Perfil actualizado correctamente", authz.HomeFor(id.Role))
}

// UploadImage godoc
// @Summary Upload logo or photo
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "JPG, PNG or WEBP image"
// @Success 200 {object} response.RedirectResponse
// @Failure 400 {object} response.RedirectResponse
// @Router /company/profile/logo [post]
// @Router /apprentice/profile/photo [post]
// @Router /instructor/profile/photo [post]
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	id := utils.IdentityFromContext(c)
	back := authz.ProfilePathFor(id.Role)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxUploadBytes+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.out.Fail(c, err, back)
		return
	}
	defer f.Close()

	if _, err := h.svc.UploadPhoto(utils.WithRequestMeta(c), id, fh.Filename, fh.Header.Get("Content-Type"), f, fh.Size); err != nil {
		h.out.Fail(c, err, back)
		return
	}
	h.out.Done(c, http.StatusOK, "Imagen actualizada", back)
}
