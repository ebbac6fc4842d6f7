package repository

import (
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (project.Project, error)
	GetProjectDetail(id uint) (project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	DeleteProject(id uint) error
	ListProjects(filter project.ListFilter) ([]project.Project, error)
	ListProjectsByCompany(companyID uint) ([]project.Project, error)
	ListProjectsByIDs(ids []uint) ([]project.Project, error)
	ListEligibleForApprentice(apprenticeID uint, programID *uint) ([]project.Project, error)
	ListEligibleForInstructor() ([]project.Project, error)
	ListAssignedToApprentice(apprenticeID uint) ([]project.Project, error)
	ListSupervisedBy(instructorID uint) ([]project.Project, error)
	UpdateStatusIf(id uint, from project.Status, changes map[string]any) (bool, error)
	AssignApprentice(projectID, apprenticeID uint) error
	SetInstructor(projectID, instructorID uint) error
	CountByStatus() ([]project.StatusCount, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

// StatusIs restricts a project query to one lifecycle state.
func StatusIs(s project.Status) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("projects.status = ?", s)
	}
}

// ProgramIs restricts a project query to one programme. A nil programme
// selects projects without one.
func ProgramIs(programID *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if programID == nil {
			return db.Where("projects.program_id IS NULL")
		}
		return db.Where("projects.program_id = ?", *programID)
	}
}

// NotAppliedBy drops projects the actor already has a postulation for.
func NotAppliedBy(kind postulation.Kind, actorID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			"NOT EXISTS (SELECT 1 FROM "+kind.Table()+" ps WHERE ps.project_id = projects.p_id AND ps."+kind.ActorColumn()+" = ?)",
			actorID,
		)
	}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("projects.create_at DESC")
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, "p_id = ?", id).Error
	return p, err
}

func (r *DBProjectRepo) GetProjectDetail(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.
		Preload("Program").
		Preload("Company").
		Preload("Instructor").
		Preload("Apprentices").
		First(&p, "p_id = ?", id).Error
	return p, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Omit(clause.Associations).Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Omit(clause.Associations).Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return r.db.Delete(&project.Project{}, "p_id = ?", id).Error
}

func (r *DBProjectRepo) ListProjects(filter project.ListFilter) ([]project.Project, error) {
	query := r.db.Model(&project.Project{}).Preload("Company").Preload("Program").Scopes(newestFirst)
	if filter.Status != nil {
		query = query.Scopes(StatusIs(*filter.Status))
	}
	if filter.CompanyID != nil {
		query = query.Where("projects.company_id = ?", *filter.CompanyID)
	}

	var projects []project.Project
	err := query.Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByCompany(companyID uint) ([]project.Project, error) {
	return r.ListProjects(project.ListFilter{CompanyID: &companyID})
}

func (r *DBProjectRepo) ListProjectsByIDs(ids []uint) ([]project.Project, error) {
	if len(ids) == 0 {
		return []project.Project{}, nil
	}
	var projects []project.Project
	err := r.db.Preload("Company").Preload("Program").
		Where("p_id IN ?", ids).
		Scopes(newestFirst).
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListEligibleForApprentice(apprenticeID uint, programID *uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Preload("Company").Preload("Program").
		Scopes(
			StatusIs(project.StatusApproved),
			ProgramIs(programID),
			NotAppliedBy(postulation.KindApprentice, apprenticeID),
			newestFirst,
		).
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListEligibleForInstructor() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Preload("Company").Preload("Program").
		Scopes(StatusIs(project.StatusApproved), newestFirst).
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListAssignedToApprentice(apprenticeID uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Preload("Company").Preload("Program").
		Joins("JOIN project_apprentices pa ON pa.project_id = projects.p_id").
		Where("pa.apprentice_id = ?", apprenticeID).
		Scopes(newestFirst).
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListSupervisedBy(instructorID uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Preload("Company").Preload("Program").Preload("Apprentices").
		Where("projects.instructor_id = ?", instructorID).
		Scopes(newestFirst).
		Find(&projects).Error
	return projects, err
}

// UpdateStatusIf applies changes only while the row is still in status from.
// It reports whether a row was updated.
func (r *DBProjectRepo) UpdateStatusIf(id uint, from project.Status, changes map[string]any) (bool, error) {
	res := r.db.Model(&project.Project{}).
		Where("p_id = ? AND status = ?", id, from).
		Updates(changes)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBProjectRepo) AssignApprentice(projectID, apprenticeID uint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&project.Assignment{ProjectID: projectID, ApprenticeID: apprenticeID}).Error
}

func (r *DBProjectRepo) SetInstructor(projectID, instructorID uint) error {
	return r.db.Model(&project.Project{}).
		Where("p_id = ?", projectID).
		Update("instructor_id", instructorID).Error
}

func (r *DBProjectRepo) CountByStatus() ([]project.StatusCount, error) {
	var counts []project.StatusCount
	err := r.db.Model(&project.Project{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&counts).Error
	return counts, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
