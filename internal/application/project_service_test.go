package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("always pending and owned by caller", func(t *testing.T) {
		svc, m := setupServices(t)
		company := identity(7, user.RoleCompany)

		m.profile.EXPECT().GetCompany(uint(7)).Return(profile.CompanyProfile{UserID: 7}, nil)
		m.project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.PID = 11
			return nil
		})

		p, err := svc.Project.Submit(ctx, company, project.SubmitInput{
			Name:          " Inventario ",
			Description:   "app",
			Area:          project.AreaSoftware,
			DurationWeeks: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(11), p.PID)
		assert.Equal(t, project.StatusPending, p.Status)
		assert.Equal(t, uint(7), p.CompanyID)
		assert.Equal(t, "Inventario", p.Name)
	})

	t.Run("non company denied", func(t *testing.T) {
		svc, _ := setupServices(t)
		_, err := svc.Project.Submit(ctx, identity(3, user.RoleApprentice), project.SubmitInput{Name: "x"})
		assert.ErrorIs(t, err, application.ErrPermissionDenied)
	})

	t.Run("profile lookup failure", func(t *testing.T) {
		svc, m := setupServices(t)
		m.profile.EXPECT().GetCompany(uint(7)).Return(profile.CompanyProfile{}, errors.New("db down"))

		_, err := svc.Project.Submit(ctx, identity(7, user.RoleCompany), project.SubmitInput{Name: "x"})
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("first visit provisions company profile", func(t *testing.T) {
		svc, m := setupServices(t)
		m.profile.EXPECT().GetCompany(uint(7)).Return(profile.CompanyProfile{}, gorm.ErrRecordNotFound)
		m.profile.EXPECT().CreateCompany(gomock.Any()).DoAndReturn(func(p *profile.CompanyProfile) error {
			assert.Equal(t, "TEMP-7", p.TaxID)
			return nil
		})
		m.project.EXPECT().CreateProject(gomock.Any()).Return(nil)

		p, err := svc.Project.Submit(ctx, identity(7, user.RoleCompany), project.SubmitInput{Name: "x", Area: project.AreaArt, DurationWeeks: 4})
		require.NoError(t, err)
		assert.Equal(t, project.StatusPending, p.Status)
	})

	t.Run("unknown program", func(t *testing.T) {
		svc, m := setupServices(t)
		m.profile.EXPECT().GetCompany(uint(7)).Return(profile.CompanyProfile{UserID: 7}, nil)
		m.catalog.EXPECT().GetProgram(uint(99)).Return(catalogProgram(99, true), gorm.ErrRecordNotFound)

		_, err := svc.Project.Submit(ctx, identity(7, user.RoleCompany), project.SubmitInput{Name: "x", ProgramID: ptr(uint(99))})
		assert.ErrorIs(t, err, application.ErrNotFound)
	})
}

func TestProjectDecide(t *testing.T) {
	ctx := context.Background()
	admin := adminIdentity()

	t.Run("approve stamps reason and decider", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, Status: project.StatusPending}, nil)
		m.project.EXPECT().UpdateStatusIf(uint(5), project.StatusPending, gomock.Any()).
			DoAndReturn(func(_ uint, _ project.Status, changes map[string]any) (bool, error) {
				assert.Equal(t, project.StatusApproved, changes["status"])
				assert.Equal(t, "cumple", changes["approval_reason"])
				assert.Equal(t, uint(1), changes["decided_by"])
				return true, nil
			})

		p, err := svc.Project.Decide(ctx, admin, 5, project.DecisionApprove, "  cumple ")
		require.NoError(t, err)
		assert.Equal(t, project.StatusApproved, p.Status)
		assert.Equal(t, "cumple", p.ApprovalReason)
		require.NotNil(t, p.DecidedAt)
		require.NotNil(t, p.DecidedBy)
		assert.Equal(t, uint(1), *p.DecidedBy)
	})

	t.Run("reject records rejection reason", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, Status: project.StatusPending}, nil)
		m.project.EXPECT().UpdateStatusIf(uint(5), project.StatusPending, gomock.Any()).Return(true, nil)

		p, err := svc.Project.Decide(ctx, admin, 5, project.DecisionReject, "incompleto")
		require.NoError(t, err)
		assert.Equal(t, project.StatusRejected, p.Status)
		assert.Equal(t, "incompleto", p.RejectionReason)
		assert.Empty(t, p.ApprovalReason)
	})

	t.Run("blank reason", func(t *testing.T) {
		svc, _ := setupServices(t)
		_, err := svc.Project.Decide(ctx, admin, 5, project.DecisionApprove, "   ")
		assert.ErrorIs(t, err, application.ErrValidation)
		assert.ErrorIs(t, err, application.ErrReasonRequired)
	})

	t.Run("non admin", func(t *testing.T) {
		svc, _ := setupServices(t)
		_, err := svc.Project.Decide(ctx, identity(7, user.RoleCompany), 5, project.DecisionApprove, "ok")
		assert.ErrorIs(t, err, application.ErrPermissionDenied)
	})

	t.Run("already decided", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, Status: project.StatusApproved}, nil)

		_, err := svc.Project.Decide(ctx, admin, 5, project.DecisionReject, "tarde")
		assert.ErrorIs(t, err, application.ErrProjectNotPending)
		assert.ErrorIs(t, err, application.ErrValidation)
	})

	t.Run("lost race", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, Status: project.StatusPending}, nil)
		m.project.EXPECT().UpdateStatusIf(uint(5), project.StatusPending, gomock.Any()).Return(false, nil)

		_, err := svc.Project.Decide(ctx, admin, 5, project.DecisionApprove, "ok")
		assert.ErrorIs(t, err, application.ErrProjectNotPending)
	})

	t.Run("missing project", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.Project.Decide(ctx, admin, 5, project.DecisionApprove, "ok")
		assert.ErrorIs(t, err, application.ErrProjectNotFound)
	})
}

func TestProjectEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("owner keeps status", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, CompanyID: 7, Name: "old", Status: project.StatusApproved}, nil)
		m.project.EXPECT().UpdateProject(gomock.Any()).Return(nil)

		p, err := svc.Project.Edit(ctx, identity(7, user.RoleCompany), 5, project.EditInput{Name: ptr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", p.Name)
		assert.Equal(t, project.StatusApproved, p.Status)
	})

	t.Run("other company denied", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, CompanyID: 7}, nil)

		_, err := svc.Project.Edit(ctx, identity(8, user.RoleCompany), 5, project.EditInput{Name: ptr("new")})
		assert.ErrorIs(t, err, application.ErrPermissionDenied)
	})

	t.Run("unknown program rejected before update", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, CompanyID: 7}, nil)
		m.catalog.EXPECT().GetProgram(uint(99)).Return(catalogProgram(99, true), gorm.ErrRecordNotFound)
		m.project.EXPECT().UpdateProject(gomock.Any()).Times(0)

		_, err := svc.Project.Edit(ctx, identity(7, user.RoleCompany), 5, project.EditInput{ProgramID: ptr(uint(99))})
		assert.ErrorIs(t, err, application.ErrProgramNotFound)
		assert.ErrorIs(t, err, application.ErrNotFound)
	})

	t.Run("known program saved", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, CompanyID: 7}, nil)
		m.catalog.EXPECT().GetProgram(uint(2)).Return(catalogProgram(2, true), nil)
		m.project.EXPECT().UpdateProject(gomock.Any()).Return(nil)

		p, err := svc.Project.Edit(ctx, identity(7, user.RoleCompany), 5, project.EditInput{ProgramID: ptr(uint(2))})
		require.NoError(t, err)
		require.NotNil(t, p.ProgramID)
		assert.Equal(t, uint(2), *p.ProgramID)
	})
}

func TestProjectAdvance(t *testing.T) {
	ctx := context.Background()
	admin := adminIdentity()

	t.Run("approved to in progress", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, Status: project.StatusApproved}, nil)
		m.project.EXPECT().UpdateStatusIf(uint(5), project.StatusApproved, map[string]any{"status": project.StatusInProgress}).Return(true, nil)

		p, err := svc.Project.Advance(ctx, admin, 5, project.StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, project.StatusInProgress, p.Status)
	})

	t.Run("pending cannot skip review", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, Status: project.StatusPending}, nil)

		_, err := svc.Project.Advance(ctx, admin, 5, project.StatusInProgress)
		assert.ErrorIs(t, err, application.ErrInvalidTransition)
	})
}

func TestEligibleForApprentice(t *testing.T) {
	svc, m := setupServices(t)
	apprentice := identity(3, user.RoleApprentice)
	program := uint(2)

	m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &program}, nil)
	m.project.EXPECT().ListEligibleForApprentice(uint(3), &program).Return([]project.Project{{PID: 1}}, nil)

	got, err := svc.Project.EligibleForApprentice(context.Background(), apprentice)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEligibleForApprenticeWithoutProgram(t *testing.T) {
	svc, m := setupServices(t)

	m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3}, nil)
	m.project.EXPECT().ListEligibleForApprentice(uint(3), (*uint)(nil)).Return([]project.Project{{PID: 4}}, nil)

	got, err := svc.Project.EligibleForApprentice(context.Background(), identity(3, user.RoleApprentice))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].ProgramID)
}

func TestEligibleForInstructorFlagsApplied(t *testing.T) {
	svc, m := setupServices(t)
	instructor := identity(4, user.RoleInstructor)

	m.project.EXPECT().ListEligibleForInstructor().Return([]project.Project{{PID: 1}, {PID: 2}}, nil)
	m.postulation.EXPECT().AppliedProjectIDs(postulation.KindInstructor, uint(4)).Return([]uint{2}, nil)

	views, err := svc.Project.EligibleForInstructor(instructor)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.False(t, views[0].AlreadyApplied)
	assert.True(t, views[1].AlreadyApplied)
}

func TestApprenticeViewProgramMatch(t *testing.T) {
	svc, m := setupServices(t)
	program := uint(2)
	other := uint(9)

	m.project.EXPECT().GetProjectDetail(uint(1)).Return(project.Project{PID: 1, Status: project.StatusApproved, ProgramID: &other}, nil)
	m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &program}, nil)
	m.postulation.EXPECT().Exists(postulation.KindApprentice, uint(3), uint(1)).Return(false, nil)

	view, err := svc.Project.ApprenticeView(context.Background(), identity(3, user.RoleApprentice), 1)
	require.NoError(t, err)
	assert.False(t, view.ProgramMatches)
	assert.False(t, view.AlreadyApplied)
}

func TestProjectDetailNotFound(t *testing.T) {
	svc, m := setupServices(t)
	m.project.EXPECT().GetProjectDetail(uint(1)).Return(project.Project{}, gorm.ErrRecordNotFound)

	_, err := svc.Project.Detail(1)
	assert.True(t, errors.Is(err, application.ErrNotFound))
}

func TestProjectDetailVisibility(t *testing.T) {
	instructorID := uint(4)
	rejected := project.Project{PID: 1, CompanyID: 7, Status: project.StatusRejected, RejectionReason: "incompleto"}
	running := project.Project{
		PID:          2,
		CompanyID:    7,
		Status:       project.StatusInProgress,
		InstructorID: &instructorID,
		Apprentices:  []profile.ApprenticeProfile{{UserID: 3}},
	}
	approved := project.Project{PID: 3, CompanyID: 7, Status: project.StatusApproved}

	tests := []struct {
		name    string
		caller  *authz.Identity
		project project.Project
		wantErr error
	}{
		{"admin sees rejected", adminIdentity(), rejected, nil},
		{"owner sees rejected", identity(7, user.RoleCompany), rejected, nil},
		{"other company denied", identity(8, user.RoleCompany), approved, application.ErrPermissionDenied},
		{"apprentice sees approved", identity(3, user.RoleApprentice), approved, nil},
		{"apprentice kept from rejected", identity(3, user.RoleApprentice), rejected, application.ErrProjectNotEligible},
		{"assigned apprentice sees running", identity(3, user.RoleApprentice), running, nil},
		{"unassigned apprentice kept from running", identity(5, user.RoleApprentice), running, application.ErrProjectNotEligible},
		{"instructor kept from rejected", identity(4, user.RoleInstructor), rejected, application.ErrProjectNotEligible},
		{"supervising instructor sees running", identity(4, user.RoleInstructor), running, nil},
		{"anonymous denied", nil, approved, application.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupServices(t)
			if tt.caller != nil {
				m.project.EXPECT().GetProjectDetail(tt.project.PID).Return(tt.project, nil)
			}

			got, err := svc.Project.DetailFor(tt.caller, tt.project.PID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.project.PID, got.PID)
		})
	}
}
