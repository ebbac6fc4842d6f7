package application_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/internal/repository/mock"
	"github.com/linskybing/oasis/internal/storage"
	"github.com/linskybing/oasis/pkg/utils"
)

type mocks struct {
	user        *mock.MockUserRepo
	profile     *mock.MockProfileRepo
	catalog     *mock.MockCatalogRepo
	project     *mock.MockProjectRepo
	postulation *mock.MockPostulationRepo
	audit       *mock.MockAuditRepo
	contact     *mock.MockContactRepo
	blobs       *storage.MemoryStore
}

func setupServices(t *testing.T) (*application.Services, *mocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &mocks{
		user:        mock.NewMockUserRepo(ctrl),
		profile:     mock.NewMockProfileRepo(ctrl),
		catalog:     mock.NewMockCatalogRepo(ctrl),
		project:     mock.NewMockProjectRepo(ctrl),
		postulation: mock.NewMockPostulationRepo(ctrl),
		audit:       mock.NewMockAuditRepo(ctrl),
		contact:     mock.NewMockContactRepo(ctrl),
		blobs:       storage.NewMemoryStore(),
	}
	repos := &repository.Repos{
		User:        m.user,
		Profile:     m.profile,
		Catalog:     m.catalog,
		Project:     m.project,
		Postulation: m.postulation,
		Audit:       m.audit,
		Contact:     m.contact,
	}

	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(ctx context.Context, actorID uint, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })

	return application.New(repos, m.blobs), m
}

func identity(uid uint, role user.Role) *authz.Identity {
	return &authz.Identity{UserID: uid, Username: "user", Role: role}
}

func adminIdentity() *authz.Identity {
	return &authz.Identity{UserID: 1, Username: "admin", Role: user.RoleAdmin, IsSuperuser: true}
}

func ptr[T any](v T) *T {
	return &v
}

func catalogProgram(id uint, active bool) catalog.Program {
	return catalog.Program{ID: id, Name: "ADSO", Code: "ADSO", Type: catalog.ProgramTecnologo, Active: active}
}
