package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/logging"
	"github.com/linskybing/oasis/internal/notify"
	"github.com/linskybing/oasis/pkg/response"
	"github.com/linskybing/oasis/pkg/utils"
)

// fieldLabels maps struct fields to the names shown in validation messages.
var fieldLabels = map[string]string{
	"Username":           "usuario",
	"Password":           "contrasena",
	"OldPassword":        "contrasena actual",
	"NewPassword":        "nueva contrasena",
	"Email":              "correo",
	"FirstName":          "nombre",
	"LastName":           "apellido",
	"LegalName":          "razon social",
	"TaxID":              "NIT",
	"DocumentType":       "tipo de documento",
	"DocumentNumber":     "numero de documento",
	"CertificationLevel": "nivel de certificacion",
	"DurationWeeks":      "duracion",
	"Name":               "nombre",
	"Description":        "descripcion",
	"Area":               "area",
	"Subject":            "asunto",
	"Message":            "mensaje",
}

// bindingMessage turns validator errors into a friendly sentence for the
// front end.
func bindingMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Datos invalidos"
	}
	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s es obligatorio", lbl)
		case "min":
			msg = fmt.Sprintf("%s debe tener al menos %s", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s debe tener como maximo %s", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s debe ser un correo valido", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s debe ser uno de [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s no es valido", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// bind parses the request body and answers 400 with a friendly message when
// it does not validate.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingMessage(err)})
		return false
	}
	return true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// outcome describes how a failed operation is surfaced to the caller.
type outcome struct {
	status   int
	notice   notify.Notice
	redirect string
}

// classify maps the error taxonomy onto a status code, a notice and a page to
// send the user back to. Unknown errors are reported as 500.
func classify(id *authz.Identity, err error, back string) outcome {
	switch {
	case errors.Is(err, application.ErrProfileMissing):
		loc := authz.HomePath
		if id != nil {
			loc = authz.ProfilePathFor(id.Role)
		}
		return outcome{http.StatusPreconditionRequired, notify.Warning(err.Error()), loc}
	case errors.Is(err, application.ErrPermissionDenied), errors.Is(err, application.ErrReservedAdminUser):
		return outcome{http.StatusForbidden, notify.Error(authz.DeniedText), authz.HomePath}
	case errors.Is(err, application.ErrInactiveUser):
		return outcome{http.StatusForbidden, notify.Error(err.Error()), authz.LoginPath}
	case errors.Is(err, application.ErrInvalidCredentials):
		return outcome{http.StatusUnauthorized, notify.Error(err.Error()), authz.LoginPath}
	case errors.Is(err, application.ErrNotFound):
		return outcome{http.StatusNotFound, notify.Error(err.Error()), back}
	case errors.Is(err, application.ErrDuplicateApplication), errors.Is(err, application.ErrAlreadyDecided):
		return outcome{http.StatusConflict, notify.Warning(err.Error()), back}
	case errors.Is(err, application.ErrProjectNotEligible):
		return outcome{http.StatusConflict, notify.Error(err.Error()), back}
	case errors.Is(err, application.ErrProgramMismatch):
		return outcome{http.StatusUnprocessableEntity, notify.Error(err.Error()), back}
	case errors.Is(err, application.ErrValidation):
		var verr *application.ValidationError
		text := err.Error()
		if errors.As(err, &verr) {
			text = verr.Msg
		}
		return outcome{http.StatusBadRequest, notify.Warning(text), back}
	}
	return outcome{http.StatusInternalServerError, notify.Error("Ocurrio un error inesperado. Intenta de nuevo."), back}
}

// Responder writes operation results and pushes the matching notice to the
// user's notification queue.
type Responder struct {
	notifier notify.Notifier
}

func NewResponder(notifier notify.Notifier) *Responder {
	return &Responder{notifier: notifier}
}

func (r *Responder) push(c *gin.Context, id *authz.Identity, n notify.Notice) {
	if r == nil || r.notifier == nil || id == nil || n.Text == "" {
		return
	}
	if err := r.notifier.Notify(c.Request.Context(), id.UserID, n); err != nil {
		logging.FromContext(c).WithError(err).Warn("failed to deliver notice")
	}
}

// Fail surfaces err as a redirect response; back is the page to return to.
func (r *Responder) Fail(c *gin.Context, err error, back string) {
	id := utils.IdentityFromContext(c)
	out := classify(id, err, back)
	msg := err.Error()
	if out.status == http.StatusInternalServerError {
		logging.FromContext(c).WithError(err).Error("request failed")
		msg = "internal server error"
	}
	r.push(c, id, out.notice)
	c.JSON(out.status, response.RedirectResponse{
		Error:    msg,
		Redirect: out.redirect,
		Notice:   out.notice.Response(),
	})
}

// Done answers a successful mutation with a success notice and a redirect.
func (r *Responder) Done(c *gin.Context, status int, text, redirect string) {
	n := notify.Success(text)
	r.push(c, utils.IdentityFromContext(c), n)
	c.JSON(status, response.RedirectResponse{
		Message:  text,
		Redirect: redirect,
		Notice:   n.Response(),
	})
}

func utoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
