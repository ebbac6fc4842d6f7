package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func approvedProject(pid, company uint, program *uint) project.Project {
	return project.Project{PID: pid, Name: "Inventario", CompanyID: company, ProgramID: program, Status: project.StatusApproved}
}

func TestApplyApprentice(t *testing.T) {
	ctx := context.Background()
	apprentice := identity(3, user.RoleApprentice)
	programX := uint(1)
	programY := uint(2)

	t.Run("creates pending postulation", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, &programX), nil)
		m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &programX}, nil)
		m.postulation.EXPECT().Exists(postulation.KindApprentice, uint(3), uint(10)).Return(false, nil)
		m.postulation.EXPECT().Create(postulation.KindApprentice, uint(3), uint(10)).
			Return(postulation.Postulation{ID: 1, Kind: postulation.KindApprentice, ActorID: 3, ProjectID: 10, Status: postulation.StatusPending}, nil)

		got, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		require.NoError(t, err)
		assert.Equal(t, postulation.StatusPending, got.Status)
		assert.Equal(t, uint(7), got.CompanyID)
	})

	t.Run("program mismatch regardless of state", func(t *testing.T) {
		svc, m := setupServices(t)
		pending := approvedProject(10, 7, &programY)
		pending.Status = project.StatusPending
		m.project.EXPECT().GetProjectByID(uint(10)).Return(pending, nil)
		m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &programX}, nil)

		_, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		assert.ErrorIs(t, err, application.ErrProgramMismatch)
	})

	t.Run("program mismatch reported before duplicate", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, &programY), nil)
		m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &programX}, nil)
		m.postulation.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		assert.ErrorIs(t, err, application.ErrProgramMismatch)
	})

	t.Run("project without program does not match a programmed apprentice", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, nil), nil)
		m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &programX}, nil)

		_, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		assert.ErrorIs(t, err, application.ErrProgramMismatch)
	})

	t.Run("project and apprentice without program match", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, nil), nil)
		m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3}, nil)
		m.postulation.EXPECT().Exists(postulation.KindApprentice, uint(3), uint(10)).Return(false, nil)
		m.postulation.EXPECT().Create(postulation.KindApprentice, uint(3), uint(10)).
			Return(postulation.Postulation{ID: 4, Kind: postulation.KindApprentice, ActorID: 3, ProjectID: 10, Status: postulation.StatusPending}, nil)

		got, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		require.NoError(t, err)
		assert.Equal(t, postulation.StatusPending, got.Status)
	})

	t.Run("not approved", func(t *testing.T) {
		svc, m := setupServices(t)
		p := approvedProject(10, 7, &programX)
		p.Status = project.StatusRejected
		m.project.EXPECT().GetProjectByID(uint(10)).Return(p, nil)
		m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &programX}, nil)
		m.postulation.EXPECT().Exists(postulation.KindApprentice, uint(3), uint(10)).Return(false, nil)

		_, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		assert.ErrorIs(t, err, application.ErrProjectNotEligible)
	})

	t.Run("duplicate caught by pre-check", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, &programX), nil)
		m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &programX}, nil)
		m.postulation.EXPECT().Exists(postulation.KindApprentice, uint(3), uint(10)).Return(true, nil)

		_, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		assert.ErrorIs(t, err, application.ErrDuplicateApplication)
	})

	t.Run("duplicate caught by constraint", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, &programX), nil)
		m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &programX}, nil)
		m.postulation.EXPECT().Exists(postulation.KindApprentice, uint(3), uint(10)).Return(false, nil)
		m.postulation.EXPECT().Create(postulation.KindApprentice, uint(3), uint(10)).
			Return(postulation.Postulation{}, &repository.DuplicateError{Constraint: "idx_apprentice_postulation_actor_project"})

		_, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		assert.ErrorIs(t, err, application.ErrDuplicateApplication)
	})

	t.Run("missing project", func(t *testing.T) {
		svc, m := setupServices(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
		assert.ErrorIs(t, err, application.ErrProjectNotFound)
	})

	t.Run("wrong role", func(t *testing.T) {
		svc, _ := setupServices(t)
		_, err := svc.Postulation.Apply(ctx, identity(4, user.RoleInstructor), postulation.KindApprentice, 10)
		assert.ErrorIs(t, err, application.ErrPermissionDenied)
	})
}

func TestApplyInstructorIgnoresProgram(t *testing.T) {
	svc, m := setupServices(t)
	programY := uint(2)

	m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, &programY), nil)
	m.profile.EXPECT().GetInstructor(uint(4)).Return(profile.InstructorProfile{UserID: 4}, nil)
	m.postulation.EXPECT().Exists(postulation.KindInstructor, uint(4), uint(10)).Return(false, nil)
	m.postulation.EXPECT().Create(postulation.KindInstructor, uint(4), uint(10)).
		Return(postulation.Postulation{ID: 2, Kind: postulation.KindInstructor, ActorID: 4, ProjectID: 10, Status: postulation.StatusPending}, nil)

	got, err := svc.Postulation.Apply(context.Background(), identity(4, user.RoleInstructor), postulation.KindInstructor, 10)
	require.NoError(t, err)
	assert.Equal(t, postulation.KindInstructor, got.Kind)
}

func pendingPostulation(kind postulation.Kind, id, actor, projectID, company uint) postulation.Postulation {
	return postulation.Postulation{ID: id, Kind: kind, ActorID: actor, ProjectID: projectID, CompanyID: company, Status: postulation.StatusPending}
}

func TestDecidePostulation(t *testing.T) {
	ctx := context.Background()
	company := identity(7, user.RoleCompany)

	t.Run("accept apprentice assigns once", func(t *testing.T) {
		svc, m := setupServices(t)
		m.postulation.EXPECT().GetByID(postulation.KindApprentice, uint(1)).Return(pendingPostulation(postulation.KindApprentice, 1, 3, 10, 7), nil)
		m.postulation.EXPECT().TransitionStatus(postulation.KindApprentice, uint(1), postulation.StatusPending, postulation.StatusAccepted, gomock.Any()).Return(true, nil)
		m.project.EXPECT().AssignApprentice(uint(10), uint(3)).Return(nil).Times(1)

		got, err := svc.Postulation.Decide(ctx, company, postulation.KindApprentice, 1, postulation.OutcomeAccept)
		require.NoError(t, err)
		assert.Equal(t, postulation.StatusAccepted, got.Status)
		assert.NotNil(t, got.DecidedAt)
	})

	t.Run("reject has no side effect", func(t *testing.T) {
		svc, m := setupServices(t)
		m.postulation.EXPECT().GetByID(postulation.KindApprentice, uint(1)).Return(pendingPostulation(postulation.KindApprentice, 1, 3, 10, 7), nil)
		m.postulation.EXPECT().TransitionStatus(postulation.KindApprentice, uint(1), postulation.StatusPending, postulation.StatusRejected, gomock.Any()).Return(true, nil)

		got, err := svc.Postulation.Decide(ctx, company, postulation.KindApprentice, 1, postulation.OutcomeReject)
		require.NoError(t, err)
		assert.Equal(t, postulation.StatusRejected, got.Status)
	})

	t.Run("other company", func(t *testing.T) {
		svc, m := setupServices(t)
		m.postulation.EXPECT().GetByID(postulation.KindApprentice, uint(1)).Return(pendingPostulation(postulation.KindApprentice, 1, 3, 10, 7), nil)

		_, err := svc.Postulation.Decide(ctx, identity(8, user.RoleCompany), postulation.KindApprentice, 1, postulation.OutcomeAccept)
		assert.ErrorIs(t, err, application.ErrPermissionDenied)
	})

	t.Run("already decided", func(t *testing.T) {
		svc, m := setupServices(t)
		decided := pendingPostulation(postulation.KindApprentice, 1, 3, 10, 7)
		decided.Status = postulation.StatusAccepted
		m.postulation.EXPECT().GetByID(postulation.KindApprentice, uint(1)).Return(decided, nil)

		_, err := svc.Postulation.Decide(ctx, company, postulation.KindApprentice, 1, postulation.OutcomeReject)
		assert.ErrorIs(t, err, application.ErrAlreadyDecided)
	})

	t.Run("concurrent decision wins first", func(t *testing.T) {
		svc, m := setupServices(t)
		m.postulation.EXPECT().GetByID(postulation.KindApprentice, uint(1)).Return(pendingPostulation(postulation.KindApprentice, 1, 3, 10, 7), nil)
		m.postulation.EXPECT().TransitionStatus(postulation.KindApprentice, uint(1), postulation.StatusPending, postulation.StatusAccepted, gomock.Any()).Return(false, nil)

		_, err := svc.Postulation.Decide(ctx, company, postulation.KindApprentice, 1, postulation.OutcomeAccept)
		assert.ErrorIs(t, err, application.ErrAlreadyDecided)
	})

	t.Run("missing postulation", func(t *testing.T) {
		svc, m := setupServices(t)
		m.postulation.EXPECT().GetByID(postulation.KindInstructor, uint(9)).Return(postulation.Postulation{}, gorm.ErrRecordNotFound)

		_, err := svc.Postulation.Decide(ctx, company, postulation.KindInstructor, 9, postulation.OutcomeAccept)
		assert.ErrorIs(t, err, application.ErrPostulationNotFound)
	})
}

func TestSecondInstructorAcceptOverwrites(t *testing.T) {
	svc, m := setupServices(t)
	company := identity(7, user.RoleCompany)
	ctx := context.Background()
	first := uint(4)

	gomock.InOrder(
		m.postulation.EXPECT().GetByID(postulation.KindInstructor, uint(1)).Return(pendingPostulation(postulation.KindInstructor, 1, 4, 10, 7), nil),
		m.postulation.EXPECT().TransitionStatus(postulation.KindInstructor, uint(1), postulation.StatusPending, postulation.StatusAccepted, gomock.Any()).Return(true, nil),
		m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, nil), nil),
		m.project.EXPECT().SetInstructor(uint(10), uint(4)).Return(nil),

		m.postulation.EXPECT().GetByID(postulation.KindInstructor, uint(2)).Return(pendingPostulation(postulation.KindInstructor, 2, 5, 10, 7), nil),
		m.postulation.EXPECT().TransitionStatus(postulation.KindInstructor, uint(2), postulation.StatusPending, postulation.StatusAccepted, gomock.Any()).Return(true, nil),
		m.project.EXPECT().GetProjectByID(uint(10)).Return(project.Project{PID: 10, CompanyID: 7, InstructorID: &first, Status: project.StatusApproved}, nil),
		m.project.EXPECT().SetInstructor(uint(10), uint(5)).Return(nil),
	)

	_, err := svc.Postulation.Decide(ctx, company, postulation.KindInstructor, 1, postulation.OutcomeAccept)
	require.NoError(t, err)
	_, err = svc.Postulation.Decide(ctx, company, postulation.KindInstructor, 2, postulation.OutcomeAccept)
	require.NoError(t, err)
}

// Company submits, admin approves, apprentice applies, company accepts.
func TestInternshipHappyPath(t *testing.T) {
	svc, m := setupServices(t)
	ctx := context.Background()
	program := uint(1)
	company := identity(7, user.RoleCompany)
	apprentice := identity(3, user.RoleApprentice)

	stored := project.Project{}
	m.profile.EXPECT().GetCompany(uint(7)).Return(profile.CompanyProfile{UserID: 7}, nil)
	m.catalog.EXPECT().GetProgram(program).Return(catalogProgram(program, true), nil)
	m.project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
		p.PID = 10
		stored = *p
		return nil
	})

	p, err := svc.Project.Submit(ctx, company, project.SubmitInput{Name: "Inventario", Description: "d", Area: project.AreaSoftware, ProgramID: &program, DurationWeeks: 8})
	require.NoError(t, err)
	require.Equal(t, project.StatusPending, p.Status)

	m.project.EXPECT().GetProjectByID(uint(10)).DoAndReturn(func(uint) (project.Project, error) { return stored, nil })
	m.project.EXPECT().UpdateStatusIf(uint(10), project.StatusPending, gomock.Any()).
		DoAndReturn(func(_ uint, _ project.Status, changes map[string]any) (bool, error) {
			stored.Status = changes["status"].(project.Status)
			return true, nil
		})
	decided, err := svc.Project.Decide(ctx, adminIdentity(), 10, project.DecisionApprove, "Meets criteria")
	require.NoError(t, err)
	require.Equal(t, project.StatusApproved, decided.Status)

	m.project.EXPECT().GetProjectByID(uint(10)).DoAndReturn(func(uint) (project.Project, error) { return stored, nil })
	m.profile.EXPECT().GetApprentice(uint(3)).Return(profile.ApprenticeProfile{UserID: 3, ProgramID: &program}, nil)
	m.postulation.EXPECT().Exists(postulation.KindApprentice, uint(3), uint(10)).Return(false, nil)
	m.postulation.EXPECT().Create(postulation.KindApprentice, uint(3), uint(10)).
		Return(pendingPostulation(postulation.KindApprentice, 1, 3, 10, 7), nil)
	applied, err := svc.Postulation.Apply(ctx, apprentice, postulation.KindApprentice, 10)
	require.NoError(t, err)
	require.Equal(t, postulation.StatusPending, applied.Status)

	var assigned []uint
	m.postulation.EXPECT().GetByID(postulation.KindApprentice, uint(1)).Return(*applied, nil)
	m.postulation.EXPECT().TransitionStatus(postulation.KindApprentice, uint(1), postulation.StatusPending, postulation.StatusAccepted, gomock.AssignableToTypeOf(time.Time{})).Return(true, nil)
	m.project.EXPECT().AssignApprentice(uint(10), uint(3)).DoAndReturn(func(_, apprenticeID uint) error {
		assigned = append(assigned, apprenticeID)
		return nil
	})
	accepted, err := svc.Postulation.Decide(ctx, company, postulation.KindApprentice, 1, postulation.OutcomeAccept)
	require.NoError(t, err)
	assert.Equal(t, postulation.StatusAccepted, accepted.Status)
	assert.Equal(t, []uint{3}, assigned)
}

func TestEmptyReasonLeavesProjectPending(t *testing.T) {
	svc, _ := setupServices(t)
	// No repository expectations: nothing may be read or written.
	_, err := svc.Project.Decide(context.Background(), adminIdentity(), 10, project.DecisionApprove, "")
	assert.ErrorIs(t, err, application.ErrValidation)
}

func TestListForProjectOwnership(t *testing.T) {
	svc, m := setupServices(t)
	m.project.EXPECT().GetProjectByID(uint(10)).Return(approvedProject(10, 7, nil), nil)

	_, _, err := svc.Postulation.ListForProject(identity(8, user.RoleCompany), 10)
	assert.ErrorIs(t, err, application.ErrPermissionDenied)
}
