package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/linskybing/oasis/internal/domain/contact"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDashboard(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().CountUsers().Return(int64(4), nil)
	m.user.EXPECT().CountUsersByRole().Return(map[user.Role]int64{user.RoleAdmin: 1, user.RoleCompany: 3}, nil)
	m.user.EXPECT().ListRecentUsers(5).Return([]user.User{{UID: 4, Username: "new"}}, nil)
	m.project.EXPECT().CountByStatus().Return([]project.StatusCount{
		{Status: project.StatusApproved, Count: 2},
		{Status: project.StatusPending, Count: 6},
	}, nil)
	m.postulation.EXPECT().CountPending(postulation.KindApprentice).Return(int64(3), nil)
	m.postulation.EXPECT().CountPending(postulation.KindInstructor).Return(int64(1), nil)
	m.contact.EXPECT().CountOpen().Return(int64(2), nil)

	d, err := svc.Dashboard.Admin(adminIdentity())
	require.NoError(t, err)
	assert.Equal(t, int64(4), d.TotalUsers)
	assert.Equal(t, int64(6), d.PendingProjects)
	assert.Equal(t, int64(3), d.PendingApprentices)
	assert.Len(t, d.RecentUsers, 1)
	assert.Equal(t, "new", d.RecentUsers[0].Username)
}

func TestAdminDashboardDenied(t *testing.T) {
	svc, _ := setupServices(t)
	_, err := svc.Dashboard.Admin(identity(7, user.RoleCompany))
	assert.ErrorIs(t, err, application.ErrPermissionDenied)
}

func TestApprenticeDashboardMergesWithoutDuplicates(t *testing.T) {
	svc, m := setupServices(t)
	now := time.Now()

	m.project.EXPECT().ListAssignedToApprentice(uint(3)).Return([]project.Project{{PID: 1, CreatedAt: now.Add(-time.Hour)}}, nil)
	m.postulation.EXPECT().ListByActor(postulation.KindApprentice, uint(3)).Return([]postulation.Postulation{
		{ID: 10, ProjectID: 1, Status: postulation.StatusAccepted},
		{ID: 11, ProjectID: 2, Status: postulation.StatusPending},
	}, nil)
	m.project.EXPECT().ListProjectsByIDs([]uint{2}).Return([]project.Project{{PID: 2, CreatedAt: now}}, nil)

	d, err := svc.Dashboard.Apprentice(identity(3, user.RoleApprentice))
	require.NoError(t, err)
	require.Len(t, d.Projects, 2)
	assert.Equal(t, uint(2), d.Projects[0].PID)
	assert.Equal(t, []uint{1, 2}, d.AppliedProjectIDs)
}

func TestReports(t *testing.T) {
	svc, m := setupServices(t)
	m.user.EXPECT().CountUsers().Return(int64(1), nil)
	m.user.EXPECT().CountUsersByRole().Return(map[user.Role]int64{user.RoleAdmin: 1}, nil)
	m.project.EXPECT().CountByStatus().Return([]project.StatusCount{{Status: project.StatusCompleted, Count: 1}}, nil)

	r, err := svc.Dashboard.Reports(adminIdentity())
	require.NoError(t, err)
	assert.Len(t, r.ProjectsByStatus, 1)
}

func TestCatalogPrograms(t *testing.T) {
	ctx := context.Background()

	t.Run("create normalises code", func(t *testing.T) {
		svc, m := setupServices(t)
		m.catalog.EXPECT().CreateProgram(gomock.Any()).DoAndReturn(func(p *catalog.Program) error {
			assert.Equal(t, "ADSO", p.Code)
			assert.True(t, p.Active)
			p.ID = 1
			return nil
		})
		p, err := svc.Catalog.CreateProgram(ctx, adminIdentity(), catalog.ProgramInput{Name: "Analisis", Code: " adso ", Type: catalog.ProgramTecnologo})
		require.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, m := setupServices(t)
		m.catalog.EXPECT().CreateProgram(gomock.Any()).Return(repository.ErrDuplicate)
		_, err := svc.Catalog.CreateProgram(ctx, adminIdentity(), catalog.ProgramInput{Name: "A", Code: "A", Type: catalog.ProgramTecnico})
		assert.ErrorIs(t, err, application.ErrDuplicateProgram)
	})

	t.Run("deactivate", func(t *testing.T) {
		svc, m := setupServices(t)
		m.catalog.EXPECT().GetProgram(uint(1)).Return(catalogProgram(1, true), nil)
		m.catalog.EXPECT().SaveProgram(gomock.Any()).Return(nil)
		p, err := svc.Catalog.UpdateProgram(ctx, adminIdentity(), 1, catalog.ProgramInput{Name: "ADSO", Code: "ADSO", Type: catalog.ProgramTecnologo, Active: ptr(false)})
		require.NoError(t, err)
		assert.False(t, p.Active)
	})

	t.Run("company cannot manage", func(t *testing.T) {
		svc, _ := setupServices(t)
		err := svc.Catalog.DeleteSector(ctx, identity(7, user.RoleCompany), 1)
		assert.ErrorIs(t, err, application.ErrPermissionDenied)
	})
}

func TestCatalogSeed(t *testing.T) {
	svc, m := setupServices(t)
	m.catalog.EXPECT().UpsertProgramByCode(gomock.Any()).Return(nil).Times(2)
	m.catalog.EXPECT().UpsertSectorByName(gomock.Any()).Return(nil)

	err := svc.Catalog.Seed(
		[]catalog.ProgramInput{{Name: "A", Code: "a"}, {Name: "B", Code: "b"}},
		[]catalog.SectorInput{{Name: "TIC"}},
	)
	assert.NoError(t, err)
}

func TestContactMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous send", func(t *testing.T) {
		svc, m := setupServices(t)
		m.contact.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(msg *contact.Message) error {
			assert.Nil(t, msg.UserID)
			assert.Equal(t, "hola", msg.Body)
			return nil
		})
		_, err := svc.Contact.Send(ctx, nil, contact.MessageInput{Name: "Ana", Email: "a@b.co", Subject: contact.SubjectGeneral, Message: "hola"})
		assert.NoError(t, err)
	})

	t.Run("signed-in send keeps user", func(t *testing.T) {
		svc, m := setupServices(t)
		m.contact.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(msg *contact.Message) error {
			require.NotNil(t, msg.UserID)
			assert.Equal(t, uint(3), *msg.UserID)
			return nil
		})
		_, err := svc.Contact.Send(ctx, identity(3, user.RoleApprentice), contact.MessageInput{Name: "Ana", Email: "a@b.co", Subject: contact.SubjectSupport, Message: "ayuda"})
		assert.NoError(t, err)
	})

	t.Run("resolve unknown", func(t *testing.T) {
		svc, m := setupServices(t)
		m.contact.EXPECT().MarkResolved(uint(9)).Return(false, nil)
		err := svc.Contact.Resolve(ctx, adminIdentity(), 9)
		assert.ErrorIs(t, err, application.ErrMessageNotFound)
	})
}
