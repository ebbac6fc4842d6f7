package catalog

import "time"

type ProgramType string

const (
	ProgramTecnico         ProgramType = "TECNICO"
	ProgramTecnologo       ProgramType = "TECNOLOGO"
	ProgramEspecializacion ProgramType = "ESPECIALIZACION"
	ProgramUniversitario   ProgramType = "UNIVERSITARIO"
)

// Program is a training programme apprentices enrol in and projects target.
type Program struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Type        ProgramType `gorm:"type:varchar(20);not null;default:'TECNICO'" json:"type"`
	Code        string      `gorm:"size:20;not null;uniqueIndex" json:"code"`
	Active      bool        `gorm:"not null" json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (Program) TableName() string {
	return "programs"
}

// Sector is a productive sector a company belongs to.
type Sector struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Sector) TableName() string {
	return "sectors"
}
