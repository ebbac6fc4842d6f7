package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/domain/contact"
	"github.com/linskybing/oasis/pkg/utils"
)

const adminContactPath = "/admin/contact"

type ContactHandler struct {
	svc *application.ContactService
	out *Responder
}

func NewContactHandler(svc *application.ContactService, out *Responder) *ContactHandler {
	return &ContactHandler{svc: svc, out: out}
}

// SendMessage godoc
// @Summary Send a support message
// @Description Open to visitors; the sender is recorded when a session is present.
// @Tags contact
// @Accept json
// @Produce json
// @Param input body contact.MessageInput true "Message"
// @Success 201 {object} response.RedirectResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var in contact.MessageInput
	if !bind(c, &in) {
		return
	}
	if _, err := h.svc.Send(utils.WithRequestMeta(c), utils.IdentityFromContext(c), in); err != nil {
		h.out.Fail(c, err, "/contact")
		return
	}
	h.out.Done(c, http.StatusCreated, "Mensaje enviado. Te responderemos pronto.", "/")
}

// ListMessages godoc
// @Summary Support messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param open query bool false "Only unresolved messages"
// @Success 200 {array} contact.Message
// @Router /admin/contact [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	msgs, err := h.svc.List(utils.IdentityFromContext(c), c.Query("open") == "true")
	if err != nil {
		h.out.Fail(c, err, "/")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// ResolveMessage godoc
// @Summary Mark a support message as resolved
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} response.RedirectResponse
// @Failure 404 {object} response.RedirectResponse
// @Router /admin/contact/{id}/resolve [put]
func (h *ContactHandler) ResolveMessage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Resolve(utils.WithRequestMeta(c), utils.IdentityFromContext(c), id); err != nil {
		h.out.Fail(c, err, adminContactPath)
		return
	}
	h.out.Done(c, http.StatusOK, "Mensaje marcado como resuelto.", adminContactPath)
}
