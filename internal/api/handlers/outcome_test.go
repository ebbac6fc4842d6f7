package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/notify"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	company := &authz.Identity{UserID: 2, Role: user.RoleCompany}

	tests := []struct {
		name     string
		err      error
		status   int
		level    notify.Level
		redirect string
	}{
		{"profile missing goes to the profile form", application.ErrProfileMissing, http.StatusPreconditionRequired, notify.LevelWarning, "/company/profile"},
		{"permission denied goes home", application.ErrPermissionDenied, http.StatusForbidden, notify.LevelError, authz.HomePath},
		{"reserved admin is a permission error", application.ErrReservedAdminUser, http.StatusForbidden, notify.LevelError, authz.HomePath},
		{"inactive user", application.ErrInactiveUser, http.StatusForbidden, notify.LevelError, authz.LoginPath},
		{"bad credentials", application.ErrInvalidCredentials, http.StatusUnauthorized, notify.LevelError, authz.LoginPath},
		{"not found", application.ErrProjectNotFound, http.StatusNotFound, notify.LevelError, "/back"},
		{"duplicate application", application.ErrDuplicateApplication, http.StatusConflict, notify.LevelWarning, "/back"},
		{"already decided", application.ErrAlreadyDecided, http.StatusConflict, notify.LevelWarning, "/back"},
		{"project not open", application.ErrProjectNotEligible, http.StatusConflict, notify.LevelError, "/back"},
		{"programme mismatch", application.ErrProgramMismatch, http.StatusUnprocessableEntity, notify.LevelError, "/back"},
		{"validation", application.ErrReasonRequired, http.StatusBadRequest, notify.LevelWarning, "/back"},
		{"wrapped validation", fmt.Errorf("decide: %w", application.ErrInvalidTransition), http.StatusBadRequest, notify.LevelWarning, "/back"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, notify.LevelError, "/back"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := classify(company, tt.err, "/back")
			assert.Equal(t, tt.status, out.status)
			assert.Equal(t, tt.level, out.notice.Level)
			assert.Equal(t, tt.redirect, out.redirect)
		})
	}
}

func TestClassifyValidationUsesFieldMessage(t *testing.T) {
	out := classify(nil, application.ErrReasonRequired, "/x")
	assert.Equal(t, application.ErrReasonRequired.Msg, out.notice.Text)
}

func TestClassifyProfileMissingAnonymous(t *testing.T) {
	out := classify(nil, application.ErrProfileMissing, "/x")
	assert.Equal(t, authz.HomePath, out.redirect)
}
