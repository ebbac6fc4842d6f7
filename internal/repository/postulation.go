package repository

import (
	"fmt"
	"time"

	"github.com/linskybing/oasis/internal/domain/postulation"
	"gorm.io/gorm"
)

type PostulationRepo interface {
	Create(kind postulation.Kind, actorID, projectID uint) (postulation.Postulation, error)
	GetByID(kind postulation.Kind, id uint) (postulation.Postulation, error)
	Exists(kind postulation.Kind, actorID, projectID uint) (bool, error)
	TransitionStatus(kind postulation.Kind, id uint, from, to postulation.Status, at time.Time) (bool, error)
	ListByProject(kind postulation.Kind, projectID uint) ([]postulation.Postulation, error)
	ListByActor(kind postulation.Kind, actorID uint) ([]postulation.Postulation, error)
	AppliedProjectIDs(kind postulation.Kind, actorID uint) ([]uint, error)
	CountPending(kind postulation.Kind) (int64, error)
	WithTx(tx *gorm.DB) PostulationRepo
}

type DBPostulationRepo struct {
	db *gorm.DB
}

func NewPostulationRepo(db *gorm.DB) *DBPostulationRepo {
	return &DBPostulationRepo{
		db: db,
	}
}

// view joins a postulation table with its project and actor into the shared read model.
func (r *DBPostulationRepo) view(kind postulation.Kind) *gorm.DB {
	return r.db.Table(kind.Table() + " ps").
		Select(fmt.Sprintf(`
			ps.id,
			'%s' AS kind,
			ps.%s AS actor_id,
			COALESCE(NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.username) AS actor_name,
			ps.project_id,
			p.name AS project_name,
			p.company_id,
			ps.status,
			ps.submitted_at,
			ps.decided_at
		`, kind, kind.ActorColumn())).
		Joins("JOIN projects p ON p.p_id = ps.project_id").
		Joins("JOIN users u ON u.u_id = ps." + kind.ActorColumn())
}

func (r *DBPostulationRepo) Create(kind postulation.Kind, actorID, projectID uint) (postulation.Postulation, error) {
	var (
		id          uint
		submittedAt time.Time
		err         error
	)
	switch kind {
	case postulation.KindInstructor:
		row := postulation.InstructorPostulation{InstructorID: actorID, ProjectID: projectID, Status: postulation.StatusPending}
		err = r.db.Omit("Instructor", "Project").Create(&row).Error
		id, submittedAt = row.ID, row.SubmittedAt
	default:
		row := postulation.ApprenticePostulation{ApprenticeID: actorID, ProjectID: projectID, Status: postulation.StatusPending}
		err = r.db.Omit("Apprentice", "Project").Create(&row).Error
		id, submittedAt = row.ID, row.SubmittedAt
	}
	if err != nil {
		return postulation.Postulation{}, translate(err)
	}
	return postulation.Postulation{
		ID:          id,
		Kind:        kind,
		ActorID:     actorID,
		ProjectID:   projectID,
		Status:      postulation.StatusPending,
		SubmittedAt: submittedAt,
	}, nil
}

func (r *DBPostulationRepo) GetByID(kind postulation.Kind, id uint) (postulation.Postulation, error) {
	var rows []postulation.Postulation
	if err := r.view(kind).Where("ps.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return postulation.Postulation{}, err
	}
	if len(rows) == 0 {
		return postulation.Postulation{}, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

func (r *DBPostulationRepo) Exists(kind postulation.Kind, actorID, projectID uint) (bool, error) {
	var n int64
	err := r.db.Table(kind.Table()).
		Where(kind.ActorColumn()+" = ? AND project_id = ?", actorID, projectID).
		Count(&n).Error
	return n > 0, err
}

// TransitionStatus moves a postulation out of from only if it is still there,
// so two concurrent decisions cannot both win.
func (r *DBPostulationRepo) TransitionStatus(kind postulation.Kind, id uint, from, to postulation.Status, at time.Time) (bool, error) {
	res := r.db.Table(kind.Table()).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "decided_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBPostulationRepo) ListByProject(kind postulation.Kind, projectID uint) ([]postulation.Postulation, error) {
	var rows []postulation.Postulation
	err := r.view(kind).
		Where("ps.project_id = ?", projectID).
		Order("ps.submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBPostulationRepo) ListByActor(kind postulation.Kind, actorID uint) ([]postulation.Postulation, error) {
	var rows []postulation.Postulation
	err := r.view(kind).
		Where("ps."+kind.ActorColumn()+" = ?", actorID).
		Order("ps.submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBPostulationRepo) AppliedProjectIDs(kind postulation.Kind, actorID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table(kind.Table()).
		Where(kind.ActorColumn()+" = ?", actorID).
		Pluck("project_id", &ids).Error
	return ids, err
}

func (r *DBPostulationRepo) CountPending(kind postulation.Kind) (int64, error) {
	var n int64
	err := r.db.Table(kind.Table()).Where("status = ?", postulation.StatusPending).Count(&n).Error
	return n, err
}

func (r *DBPostulationRepo) WithTx(tx *gorm.DB) PostulationRepo {
	if tx == nil {
		return r
	}
	return &DBPostulationRepo{
		db: tx,
	}
}
