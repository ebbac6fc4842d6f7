package repository

import (
	"github.com/linskybing/oasis/internal/domain/catalog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepo interface {
	ListPrograms(activeOnly bool) ([]catalog.Program, error)
	GetProgram(id uint) (catalog.Program, error)
	CreateProgram(p *catalog.Program) error
	SaveProgram(p *catalog.Program) error
	DeleteProgram(id uint) error
	UpsertProgramByCode(p *catalog.Program) error
	ListSectors() ([]catalog.Sector, error)
	GetSector(id uint) (catalog.Sector, error)
	CreateSector(s *catalog.Sector) error
	SaveSector(s *catalog.Sector) error
	DeleteSector(id uint) error
	UpsertSectorByName(s *catalog.Sector) error
	WithTx(tx *gorm.DB) CatalogRepo
}

type DBCatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *DBCatalogRepo {
	return &DBCatalogRepo{
		db: db,
	}
}

func (r *DBCatalogRepo) ListPrograms(activeOnly bool) ([]catalog.Program, error) {
	var programs []catalog.Program
	query := r.db.Order("name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&programs).Error
	return programs, err
}

func (r *DBCatalogRepo) GetProgram(id uint) (catalog.Program, error) {
	var p catalog.Program
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBCatalogRepo) CreateProgram(p *catalog.Program) error {
	return translate(r.db.Create(p).Error)
}

func (r *DBCatalogRepo) SaveProgram(p *catalog.Program) error {
	return translate(r.db.Save(p).Error)
}

func (r *DBCatalogRepo) DeleteProgram(id uint) error {
	return r.db.Delete(&catalog.Program{}, id).Error
}

// UpsertProgramByCode inserts the programme or refreshes the row sharing its code.
func (r *DBCatalogRepo) UpsertProgramByCode(p *catalog.Program) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "type", "active"}),
	}).Create(p).Error
}

func (r *DBCatalogRepo) ListSectors() ([]catalog.Sector, error) {
	var sectors []catalog.Sector
	err := r.db.Order("name").Find(&sectors).Error
	return sectors, err
}

func (r *DBCatalogRepo) GetSector(id uint) (catalog.Sector, error) {
	var s catalog.Sector
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBCatalogRepo) CreateSector(s *catalog.Sector) error {
	return translate(r.db.Create(s).Error)
}

func (r *DBCatalogRepo) SaveSector(s *catalog.Sector) error {
	return translate(r.db.Save(s).Error)
}

func (r *DBCatalogRepo) DeleteSector(id uint) error {
	return r.db.Delete(&catalog.Sector{}, id).Error
}

func (r *DBCatalogRepo) UpsertSectorByName(s *catalog.Sector) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description"}),
	}).Create(s).Error
}

func (r *DBCatalogRepo) WithTx(tx *gorm.DB) CatalogRepo {
	if tx == nil {
		return r
	}
	return &DBCatalogRepo{
		db: tx,
	}
}
