//go:build integration
// +build integration

package application_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/internal/storage"
	"github.com/linskybing/oasis/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var integrationDB *gorm.DB

func TestMain(m *testing.M) {
	gdb, cleanup := testutils.SetupPostgresForIntegration()
	integrationDB = gdb
	code := m.Run()
	cleanup()
	os.Exit(code)
}

type world struct {
	svc       *application.Services
	repos     *repository.Repos
	admin     *authz.Identity
	company   *authz.Identity
	program   catalog.Program
	projectID uint
}

func newWorld(t *testing.T) *world {
	t.Helper()
	require.NoError(t, testutils.TruncateAll(integrationDB))

	repos := repository.NewRepositories(integrationDB)
	w := &world{repos: repos, svc: application.New(repos, storage.NewMemoryStore())}
	ctx := context.Background()

	w.program = catalog.Program{Name: "Analisis y Desarrollo de Software", Code: "ADSO", Type: catalog.ProgramTecnologo, Active: true}
	require.NoError(t, repos.Catalog.CreateProgram(&w.program))

	w.admin = w.account(t, "root", user.RoleAdmin)
	w.admin.IsSuperuser = true
	w.company = w.account(t, "acme", user.RoleCompany)

	p, err := w.svc.Project.Submit(ctx, w.company, project.SubmitInput{
		Name:          "Inventario",
		Description:   "App de inventario",
		Area:          project.AreaSoftware,
		ProgramID:     &w.program.ID,
		DurationWeeks: 12,
	})
	require.NoError(t, err)
	w.projectID = p.PID
	return w
}

func (w *world) account(t *testing.T, username string, role user.Role) *authz.Identity {
	t.Helper()
	u := user.User{Username: username, Password: "x", Role: role, IsActive: true}
	require.NoError(t, w.repos.User.CreateUser(&u))
	return &authz.Identity{UserID: u.UID, Username: u.Username, Role: u.Role}
}

func (w *world) apprentice(t *testing.T, username string, programID *uint) *authz.Identity {
	t.Helper()
	id := w.account(t, username, user.RoleApprentice)
	p := profile.NewApprenticePlaceholder(user.User{UID: id.UserID, Username: username})
	p.ProgramID = programID
	require.NoError(t, w.repos.Profile.CreateApprentice(&p))
	return id
}

func (w *world) approve(t *testing.T) {
	t.Helper()
	_, err := w.svc.Project.Decide(context.Background(), w.admin, w.projectID, project.DecisionApprove, "Cumple")
	require.NoError(t, err)
}

func TestIntegrationConcurrentApplyKeepsOneRow(t *testing.T) {
	w := newWorld(t)
	w.approve(t)
	ana := w.apprentice(t, "ana", &w.program.ID)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.svc.Postulation.Apply(context.Background(), ana, postulation.KindApprentice, w.projectID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, application.ErrDuplicateApplication):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, dupes)

	var rows int64
	require.NoError(t, integrationDB.Model(&postulation.ApprenticePostulation{}).Where("apprentice_id = ?", ana.UserID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestIntegrationConcurrentDecideLandsOnce(t *testing.T) {
	w := newWorld(t)
	w.approve(t)
	ana := w.apprentice(t, "ana", &w.program.ID)

	post, err := w.svc.Postulation.Apply(context.Background(), ana, postulation.KindApprentice, w.projectID)
	require.NoError(t, err)

	outcomes := []postulation.Outcome{postulation.OutcomeAccept, postulation.OutcomeReject}
	errs := make([]error, len(outcomes))
	var wg sync.WaitGroup
	for i, o := range outcomes {
		wg.Add(1)
		go func(i int, o postulation.Outcome) {
			defer wg.Done()
			_, errs[i] = w.svc.Postulation.Decide(context.Background(), w.company, postulation.KindApprentice, post.ID, o)
		}(i, o)
	}
	wg.Wait()

	var ok, decided int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, application.ErrAlreadyDecided):
			decided++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, decided)

	stored, err := w.repos.Postulation.GetByID(postulation.KindApprentice, post.ID)
	require.NoError(t, err)
	assert.False(t, stored.Pending())
	assert.NotNil(t, stored.DecidedAt)
}

func TestIntegrationProjectDecisionIsConditional(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	_, err := w.svc.Project.Decide(ctx, w.admin, w.projectID, project.DecisionApprove, "  ")
	assert.ErrorIs(t, err, application.ErrReasonRequired)

	p, err := w.svc.Project.Detail(w.projectID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusPending, p.Status)

	w.approve(t)
	_, err = w.svc.Project.Decide(ctx, w.admin, w.projectID, project.DecisionReject, "Tarde")
	assert.ErrorIs(t, err, application.ErrProjectNotPending)

	p, err = w.svc.Project.Detail(w.projectID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusApproved, p.Status)
	assert.Equal(t, "Cumple", p.ApprovalReason)
	assert.Empty(t, p.RejectionReason)
}

func TestIntegrationInternshipFlow(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	ana := w.apprentice(t, "ana", &w.program.ID)
	other := w.apprentice(t, "beto", nil)

	// pending projects are not open yet
	_, err := w.svc.Postulation.Apply(ctx, ana, postulation.KindApprentice, w.projectID)
	assert.ErrorIs(t, err, application.ErrProjectNotEligible)

	w.approve(t)

	eligible, err := w.svc.Project.EligibleForApprentice(ctx, ana)
	require.NoError(t, err)
	require.Len(t, eligible, 1)

	eligible, err = w.svc.Project.EligibleForApprentice(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, eligible)

	_, err = w.svc.Postulation.Apply(ctx, other, postulation.KindApprentice, w.projectID)
	assert.ErrorIs(t, err, application.ErrProgramMismatch)

	post, err := w.svc.Postulation.Apply(ctx, ana, postulation.KindApprentice, w.projectID)
	require.NoError(t, err)

	eligible, err = w.svc.Project.EligibleForApprentice(ctx, ana)
	require.NoError(t, err)
	assert.Empty(t, eligible, "applied projects leave the eligible list")

	_, err = w.svc.Postulation.Decide(ctx, w.company, postulation.KindApprentice, post.ID, postulation.OutcomeAccept)
	require.NoError(t, err)

	assigned, err := w.svc.Project.AssignedToApprentice(ana)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, w.projectID, assigned[0].PID)

	// instructor profile is provisioned on first use
	luis := w.account(t, "luis", user.RoleInstructor)
	ip, err := w.svc.Postulation.Apply(ctx, luis, postulation.KindInstructor, w.projectID)
	require.NoError(t, err)
	_, err = w.svc.Postulation.Decide(ctx, w.company, postulation.KindInstructor, ip.ID, postulation.OutcomeAccept)
	require.NoError(t, err)

	detail, err := w.svc.Project.Detail(w.projectID)
	require.NoError(t, err)
	require.NotNil(t, detail.InstructorID)
	assert.Equal(t, luis.UserID, *detail.InstructorID)
	assert.Len(t, detail.Apprentices, 1)

	supervised, err := w.svc.Project.SupervisedByInstructor(luis)
	require.NoError(t, err)
	assert.Len(t, supervised, 1)
}

func TestIntegrationProgramlessProjectMatchesProgramlessApprentice(t *testing.T) {
	w := newWorld(t)
	w.approve(t)
	ctx := context.Background()

	garden, err := w.svc.Project.Submit(ctx, w.company, project.SubmitInput{
		Name:          "Huerta comunitaria",
		Description:   "Sin programa asignado",
		Area:          project.AreaSoftware,
		DurationWeeks: 8,
	})
	require.NoError(t, err)
	_, err = w.svc.Project.Decide(ctx, w.admin, garden.PID, project.DecisionApprove, "Cumple")
	require.NoError(t, err)

	luis := w.apprentice(t, "luis", nil)
	eligible, err := w.svc.Project.EligibleForApprentice(ctx, luis)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, garden.PID, eligible[0].PID)

	_, err = w.svc.Postulation.Apply(ctx, luis, postulation.KindApprentice, garden.PID)
	require.NoError(t, err)
	_, err = w.svc.Postulation.Apply(ctx, luis, postulation.KindApprentice, w.projectID)
	assert.ErrorIs(t, err, application.ErrProgramMismatch)

	eligible, err = w.svc.Project.EligibleForApprentice(ctx, luis)
	require.NoError(t, err)
	assert.Empty(t, eligible)
}
