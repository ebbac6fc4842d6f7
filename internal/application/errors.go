package application

import (
	"errors"
	"fmt"
)

// Taxonomy of failures every operation may surface. Handlers map each one to a
// status code, a notice and a redirect.
var (
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateApplication = errors.New("ya te postulaste a este proyecto")
	ErrProgramMismatch      = errors.New("el proyecto no corresponde a tu programa de formacion")
	ErrProjectNotEligible   = errors.New("el proyecto no esta disponible para postulaciones")
	ErrAlreadyDecided       = errors.New("la postulacion ya fue decidida")
	ErrPermissionDenied     = errors.New("no tienes permiso para realizar esta accion")
	ErrProfileMissing       = errors.New("completa tu perfil para continuar")
	ErrNotFound             = errors.New("not found")
)

// ValidationError names the offending field. It matches ErrValidation.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// NotFoundError names the missing resource. It matches ErrNotFound.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

var (
	ErrProjectNotFound     = &NotFoundError{Resource: "project"}
	ErrPostulationNotFound = &NotFoundError{Resource: "postulation"}
	ErrUserNotFound        = &NotFoundError{Resource: "user"}
	ErrProgramNotFound     = &NotFoundError{Resource: "program"}
	ErrSectorNotFound      = &NotFoundError{Resource: "sector"}
	ErrMessageNotFound     = &NotFoundError{Resource: "contact message"}

	ErrReasonRequired    = &ValidationError{Field: "reason", Msg: "el motivo es obligatorio"}
	ErrProjectNotPending = &ValidationError{Field: "status", Msg: "solo se pueden decidir proyectos pendientes"}
	ErrInvalidTransition = &ValidationError{Field: "status", Msg: "transicion de estado no permitida"}
	ErrInactiveProgram   = &ValidationError{Field: "program_id", Msg: "el programa no esta activo"}
	ErrDuplicateDocument = &ValidationError{Field: "document_number", Msg: "el numero de documento ya esta registrado"}
	ErrDuplicateTaxID    = &ValidationError{Field: "tax_id", Msg: "el NIT ya esta registrado"}
)
