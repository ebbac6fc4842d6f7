package repository

import (
	"github.com/linskybing/oasis/internal/domain/contact"
	"gorm.io/gorm"
)

type ContactRepo interface {
	CreateMessage(m *contact.Message) error
	ListMessages(onlyOpen bool) ([]contact.Message, error)
	MarkResolved(id uint) (bool, error)
	CountOpen() (int64, error)
	WithTx(tx *gorm.DB) ContactRepo
}

type DBContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *DBContactRepo {
	return &DBContactRepo{
		db: db,
	}
}

func (r *DBContactRepo) CreateMessage(m *contact.Message) error {
	return r.db.Create(m).Error
}

func (r *DBContactRepo) ListMessages(onlyOpen bool) ([]contact.Message, error) {
	var msgs []contact.Message
	query := r.db.Order("created_at DESC")
	if onlyOpen {
		query = query.Where("resolved = ?", false)
	}
	err := query.Find(&msgs).Error
	return msgs, err
}

func (r *DBContactRepo) MarkResolved(id uint) (bool, error) {
	res := r.db.Model(&contact.Message{}).Where("id = ?", id).Update("resolved", true)
	return res.RowsAffected > 0, res.Error
}

func (r *DBContactRepo) CountOpen() (int64, error) {
	var n int64
	err := r.db.Model(&contact.Message{}).Where("resolved = ?", false).Count(&n).Error
	return n, err
}

func (r *DBContactRepo) WithTx(tx *gorm.DB) ContactRepo {
	if tx == nil {
		return r
	}
	return &DBContactRepo{
		db: tx,
	}
}
