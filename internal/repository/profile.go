package repository

import (
	"github.com/linskybing/oasis/internal/domain/profile"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepo interface {
	GetCompany(userID uint) (profile.CompanyProfile, error)
	GetApprentice(userID uint) (profile.ApprenticeProfile, error)
	GetInstructor(userID uint) (profile.InstructorProfile, error)
	CreateCompany(p *profile.CompanyProfile) error
	CreateApprentice(p *profile.ApprenticeProfile) error
	CreateInstructor(p *profile.InstructorProfile) error
	SaveCompany(p *profile.CompanyProfile) error
	SaveApprentice(p *profile.ApprenticeProfile) error
	SaveInstructor(p *profile.InstructorProfile) error
	WithTx(tx *gorm.DB) ProfileRepo
}

type DBProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *DBProfileRepo {
	return &DBProfileRepo{
		db: db,
	}
}

func (r *DBProfileRepo) GetCompany(userID uint) (profile.CompanyProfile, error) {
	var p profile.CompanyProfile
	err := r.db.Preload("Sector").First(&p, "user_id = ?", userID).Error
	return p, err
}

func (r *DBProfileRepo) GetApprentice(userID uint) (profile.ApprenticeProfile, error) {
	var p profile.ApprenticeProfile
	err := r.db.Preload("Program").First(&p, "user_id = ?", userID).Error
	return p, err
}

func (r *DBProfileRepo) GetInstructor(userID uint) (profile.InstructorProfile, error) {
	var p profile.InstructorProfile
	err := r.db.First(&p, "user_id = ?", userID).Error
	return p, err
}

func (r *DBProfileRepo) CreateCompany(p *profile.CompanyProfile) error {
	return translate(r.db.Omit(clause.Associations).Create(p).Error)
}

func (r *DBProfileRepo) CreateApprentice(p *profile.ApprenticeProfile) error {
	return translate(r.db.Omit(clause.Associations).Create(p).Error)
}

func (r *DBProfileRepo) CreateInstructor(p *profile.InstructorProfile) error {
	return translate(r.db.Omit(clause.Associations).Create(p).Error)
}

func (r *DBProfileRepo) SaveCompany(p *profile.CompanyProfile) error {
	return translate(r.db.Omit(clause.Associations).Save(p).Error)
}

func (r *DBProfileRepo) SaveApprentice(p *profile.ApprenticeProfile) error {
	return translate(r.db.Omit(clause.Associations).Save(p).Error)
}

func (r *DBProfileRepo) SaveInstructor(p *profile.InstructorProfile) error {
	return translate(r.db.Omit(clause.Associations).Save(p).Error)
}

func (r *DBProfileRepo) WithTx(tx *gorm.DB) ProfileRepo {
	if tx == nil {
		return r
	}
	return &DBProfileRepo{
		db: tx,
	}
}
