package user

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	UID         uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"u_id"`
	Username    string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email       string    `gorm:"size:254" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	FirstName   string    `gorm:"size:150" json:"first_name"`
	LastName    string    `gorm:"size:150" json:"last_name"`
	Role        Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	IsSuperuser bool      `gorm:"not null;default:false" json:"is_superuser"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (User) TableName() string {
	return "users"
}

// BeforeSave keeps superusers on the ADMIN role no matter what the caller set.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Normalize()
	return nil
}

// Normalize applies the superuser invariant without a database round trip.
func (u *User) Normalize() {
	if u.IsSuperuser {
		u.Role = RoleAdmin
	}
}

func (u *User) IsAdmin() bool {
	return u.IsSuperuser || u.Role == RoleAdmin
}

func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}
