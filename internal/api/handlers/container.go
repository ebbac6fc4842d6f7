package handlers

import (
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/notify"
)

type Handlers struct {
	Audit       *AuditHandler
	Catalog     *CatalogHandler
	Contact     *ContactHandler
	Dashboard   *DashboardHandler
	Notice      *NoticeHandler
	Postulation *PostulationHandler
	Profile     *ProfileHandler
	Project     *ProjectHandler
	User        *UserHandler
}

func New(svc *application.Services, notifier notify.Notifier) *Handlers {
	out := NewResponder(notifier)
	h := &Handlers{
		Audit:       NewAuditHandler(svc.Audit),
		Catalog:     NewCatalogHandler(svc.Catalog, out),
		Contact:     NewContactHandler(svc.Contact, out),
		Dashboard:   NewDashboardHandler(svc.Dashboard, out),
		Notice:      NewNoticeHandler(notifier),
		Postulation: NewPostulationHandler(svc.Postulation, out),
		Profile:     NewProfileHandler(svc.Profile, out),
		Project:     NewProjectHandler(svc.Project, out),
		User:        NewUserHandler(svc.User, out),
	}
	return h
}
