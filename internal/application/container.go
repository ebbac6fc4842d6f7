package application

import (
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/internal/storage"
)

type Services struct {
	Audit       *AuditService
	User        *UserService
	Profile     *ProfileService
	Catalog     *CatalogService
	Project     *ProjectService
	Postulation *PostulationService
	Dashboard   *DashboardService
	Contact     *ContactService
}

func New(repos *repository.Repos, blobs storage.BlobStore) *Services {
	profiles := NewProfileService(repos, blobs)
	return &Services{
		Audit:       NewAuditService(repos),
		User:        NewUserService(repos, profiles),
		Profile:     profiles,
		Catalog:     NewCatalogService(repos),
		Project:     NewProjectService(repos, profiles),
		Postulation: NewPostulationService(repos, profiles),
		Dashboard:   NewDashboardService(repos),
		Contact:     NewContactService(repos),
	}
}
