package repository

import (
	"time"

	"github.com/linskybing/oasis/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditQueryParams struct {
	UserID       *uint
	ResourceType *string
	ResourceID   *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

type AuditRepo interface {
	GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, int64, error)
	CreateAuditLog(entry *audit.AuditLog) error
	DeleteOldAuditLogs(retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

func (r *DBAuditRepo) DeleteOldAuditLogs(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (p AuditQueryParams) apply(db *gorm.DB) *gorm.DB {
	if p.UserID != nil {
		db = db.Where("user_id = ?", *p.UserID)
	}
	if p.ResourceType != nil {
		db = db.Where("resource_type = ?", *p.ResourceType)
	}
	if p.ResourceID != nil {
		db = db.Where("resource_id = ?", *p.ResourceID)
	}
	if p.Action != nil {
		db = db.Where("action = ?", *p.Action)
	}
	if p.StartTime != nil {
		db = db.Where("created_at >= ?", *p.StartTime)
	}
	if p.EndTime != nil {
		db = db.Where("created_at <= ?", *p.EndTime)
	}
	return db
}

func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, int64, error) {
	query := params.apply(r.db.Model(&audit.AuditLog{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []audit.AuditLog
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(params.Offset).
		Find(&logs).Error
	return logs, total, err
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
