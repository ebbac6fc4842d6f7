package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/api/middleware"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/pkg/response"
	"github.com/linskybing/oasis/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
	out *Responder
}

func NewUserHandler(svc *application.UserService, out *Responder) *UserHandler {
	return &UserHandler{svc: svc, out: out}
}

// Register godoc
// @Summary Self-service registration
// @Description Creates the account and its completed profile in one step. kind is apprentice, company or instructor.
// @Tags auth
// @Accept json
// @Produce json
// @Param kind path string true "Account kind" Enums(apprentice, company, instructor)
// @Param input body application.RegisterCompanyInput true "Account and profile fields for the chosen kind"
// @Success 201 {object} response.RedirectResponse
// @Failure 400 {object} response.RedirectResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Unknown kind"
// @Router /register/{kind} [post]
func (h *UserHandler) Register(c *gin.Context) {
	var (
		role    user.Role
		account user.RegisterInput
		in      profile.UpdateInput
	)
	switch c.Param("kind") {
	case "company":
		var req application.RegisterCompanyInput
		if !bind(c, &req) {
			return
		}
		role, account, in.Company = user.RoleCompany, req.RegisterInput, &req.CompanyInput
	case "apprentice":
		var req application.RegisterApprenticeInput
		if !bind(c, &req) {
			return
		}
		role, account, in.Apprentice = user.RoleApprentice, req.RegisterInput, &req.ApprenticeInput
	case "instructor":
		var req application.RegisterInstructorInput
		if !bind(c, &req) {
			return
		}
		role, account, in.Instructor = user.RoleInstructor, req.RegisterInput, &req.InstructorInput
	default:
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "unknown account kind"})
		return
	}

	if _, err := h.svc.Register(utils.WithRequestMeta(c), role, account, in); err != nil {
		h.out.Fail(c, err, "/register/"+c.Param("kind"))
		return
	}
	h.out.Done(c, http.StatusCreated, "Registro exitoso. Ya puedes iniciar sesion.", authz.LoginPath)
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.RedirectResponse "Invalid username or password"
// @Failure 429 {object} response.ErrorResponse "Too many attempts"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginInput
	if !bind(c, &req) {
		return
	}

	usr, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		h.out.Fail(c, err, authz.LoginPath)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.TokenCookie,
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction,
		true,
	)

	redirect := authz.HomeFor(usr.Role)
	if next := c.Query("next"); strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		redirect = next
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Username: usr.Username,
		Role:     string(usr.Role),
		IsAdmin:  usr.IsAdmin(),
		Redirect: redirect,
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.RedirectResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		middleware.TokenCookie,
		"",
		-1,
		"/",
		"",
		config.IsProduction,
		true,
	)
	c.JSON(http.StatusOK, response.RedirectResponse{Message: "Sesion cerrada", Redirect: authz.LoginPath})
}

// AuthStatus godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/status [get]
func (h *UserHandler) AuthStatus(c *gin.Context) {
	id := utils.IdentityFromContext(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":      id.UserID,
		"username":     id.Username,
		"role":         id.Role,
		"is_superuser": id.IsSuperuser,
		"home":         authz.HomeFor(id.Role),
	})
}

// ChangePassword godoc
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body user.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.RedirectResponse
// @Failure 400 {object} response.RedirectResponse
// @Router /me/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var in user.ChangePasswordInput
	if !bind(c, &in) {
		return
	}
	id := utils.IdentityFromContext(c)
	if err := h.svc.ChangePassword(utils.WithRequestMeta(c), id, in); err != nil {
		h.out.Fail(c, err, "/me/password")
		return
	}
	h.out.Done(c, http.StatusOK, "Contrasena actualizada", authz.HomeFor(id.Role))
}

// ListUsers godoc
// @Summary List users (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Username contains"
// @Param role query string false "Role filter" Enums(ADMIN, COMPANY, APPRENTICE, INSTRUCTOR)
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} response.PageResponse[user.UserDTO]
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q user.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingMessage(err)})
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}
	users, total, err := h.svc.List(q)
	if err != nil {
		h.out.Fail(c, err, "/admin/users")
		return
	}
	items := make([]user.UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, user.ToDTO(u))
	}
	c.JSON(http.StatusOK, response.PageResponse[user.UserDTO]{
		Items: items,
		Page:  q.Page,
		Limit: config.UsersPageSize,
		Total: total,
	})
}

// GetUser godoc
// @Summary User detail with profile (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} application.UserDetail
// @Failure 404 {object} response.RedirectResponse
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.svc.Detail(id)
	if err != nil {
		h.out.Fail(c, err, "/admin/users")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateUser godoc
// @Summary Create a user of any role (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body user.CreateUserInput true "Account"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.RedirectResponse
// @Router /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var in user.CreateUserInput
	if !bind(c, &in) {
		return
	}
	u, err := h.svc.Create(utils.WithRequestMeta(c), utils.IdentityFromContext(c), in)
	if err != nil {
		h.out.Fail(c, err, "/admin/users")
		return
	}
	c.JSON(http.StatusCreated, user.ToDTO(u))
}

// UpdateUser godoc
// @Summary Update a user (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Fields to change"
// @Success 200 {object} user.UserDTO
// @Failure 400 {object} response.RedirectResponse
// @Failure 404 {object} response.RedirectResponse
// @Router /admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in user.UpdateUserInput
	if !bind(c, &in) {
		return
	}
	u, err := h.svc.Update(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id, in)
	if err != nil {
		h.out.Fail(c, err, "/admin/users")
		return
	}
	c.JSON(http.StatusOK, user.ToDTO(u))
}

// DeleteUser godoc
// @Summary Delete a user (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.RedirectResponse
// @Failure 403 {object} response.RedirectResponse "Reserved admin"
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id); err != nil {
		h.out.Fail(c, err, "/admin/users")
		return
	}
	h.out.Done(c, http.StatusOK, "Usuario eliminado", "/admin/users")
}
