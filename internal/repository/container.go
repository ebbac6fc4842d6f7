package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User        UserRepo
	Profile     ProfileRepo
	Catalog     CatalogRepo
	Project     ProjectRepo
	Postulation PostulationRepo
	Audit       AuditRepo
	Contact     ContactRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:        NewUserRepo(db),
		Profile:     NewProfileRepo(db),
		Catalog:     NewCatalogRepo(db),
		Project:     NewProjectRepo(db),
		Postulation: NewPostulationRepo(db),
		Audit:       NewAuditRepo(db),
		Contact:     NewContactRepo(db),
		db:          db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:        r.User.WithTx(tx),
		Profile:     r.Profile.WithTx(tx),
		Catalog:     r.Catalog.WithTx(tx),
		Project:     r.Project.WithTx(tx),
		Postulation: r.Postulation.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		Contact:     r.Contact.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction. Repos built
// without a database (unit tests with mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
