package repository

import (
	"github.com/linskybing/oasis/internal/domain/user"
	"gorm.io/gorm"
)

type UserQuery struct {
	Search string
	Role   *user.Role
	Page   int
	Limit  int
}

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	CreateUser(u *user.User) error
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	ListUsers(q UserQuery) ([]user.User, int64, error)
	ListRecentUsers(limit int) ([]user.User, error)
	CountUsers() (int64, error)
	CountUsersByRole() (map[user.Role]int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, "u_id = ?", id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return translate(r.db.Create(u).Error)
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return translate(r.db.Save(u).Error)
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, "u_id = ?", id).Error
}

func (r *DBUserRepo) ListUsers(q UserQuery) ([]user.User, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	query := r.db.Model(&user.User{})
	if q.Search != "" {
		query = query.Where("username ILIKE ?", "%"+q.Search+"%")
	}
	if q.Role != nil {
		query = query.Where("role = ?", *q.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []user.User
	err := query.Order("create_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&users).Error
	return users, total, err
}

func (r *DBUserRepo) ListRecentUsers(limit int) ([]user.User, error) {
	var users []user.User
	err := r.db.Order("create_at DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) CountUsers() (int64, error) {
	var n int64
	err := r.db.Model(&user.User{}).Count(&n).Error
	return n, err
}

func (r *DBUserRepo) CountUsersByRole() (map[user.Role]int64, error) {
	var rows []struct {
		Role  user.Role
		Count int64
	}
	err := r.db.Model(&user.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[user.Role]int64, len(user.AllRoles))
	for _, role := range user.AllRoles {
		counts[role] = 0
	}
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
