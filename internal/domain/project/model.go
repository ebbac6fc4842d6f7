package project

import (
	"time"

	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/linskybing/oasis/internal/domain/profile"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// NextBookkeeping reports the status an approved project may move to after s.
// Only APPROVED -> IN_PROGRESS -> COMPLETED is allowed.
func (s Status) NextBookkeeping() (Status, bool) {
	switch s {
	case StatusApproved:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusCompleted, true
	}
	return "", false
}

type Area string

const (
	AreaSoftware     Area = "DES"
	AreaIndustrial   Area = "IND"
	AreaManagement   Area = "ADM"
	AreaElectronics  Area = "ELE"
	AreaMechanics    Area = "MEC"
	AreaConstruction Area = "CON"
	AreaEnvironment  Area = "AMB"
	AreaHealth       Area = "SAL"
	AreaTourism      Area = "TUR"
	AreaArt          Area = "ART"
)

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// Project is a work proposal a company submits for administrative review.
type Project struct {
	PID             uint                        `gorm:"primaryKey;column:p_id;autoIncrement" json:"p_id"`
	Name            string                      `gorm:"size:200;not null" json:"name"`
	Description     string                      `gorm:"type:text;not null" json:"description"`
	Area            Area                        `gorm:"type:varchar(3);not null" json:"area"`
	ProgramID       *uint                       `gorm:"index" json:"program_id"`
	Program         *catalog.Program            `gorm:"foreignKey:ProgramID;constraint:OnDelete:SET NULL" json:"program,omitempty"`
	DurationWeeks   uint                        `gorm:"not null" json:"duration_weeks"`
	Status          Status                      `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	ApprovalReason  string                      `gorm:"type:text" json:"approval_reason"`
	RejectionReason string                      `gorm:"type:text" json:"rejection_reason"`
	DecidedAt       *time.Time                  `json:"decided_at"`
	DecidedBy       *uint                       `json:"decided_by"`
	CompanyID       uint                        `gorm:"not null;index" json:"company_id"`
	Company         *profile.CompanyProfile     `gorm:"foreignKey:CompanyID;references:UserID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	InstructorID    *uint                       `gorm:"index" json:"instructor_id"`
	Instructor      *profile.InstructorProfile  `gorm:"foreignKey:InstructorID;references:UserID;constraint:OnDelete:SET NULL" json:"instructor,omitempty"`
	Apprentices     []profile.ApprenticeProfile `gorm:"many2many:project_apprentices;joinForeignKey:ProjectID;joinReferences:ApprenticeID" json:"apprentices,omitempty"`
	CreatedAt       time.Time                   `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt       time.Time                   `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) OwnedBy(companyID uint) bool {
	return p.CompanyID == companyID
}

// HasApprentice reports whether the apprentice is assigned. Apprentices must
// be preloaded.
func (p *Project) HasApprentice(userID uint) bool {
	for _, a := range p.Apprentices {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

func (p *Project) SupervisedBy(userID uint) bool {
	return p.InstructorID != nil && *p.InstructorID == userID
}

// MatchesProgram compares the project's programme with the apprentice's.
// Two missing programmes are equal; one missing programme never matches.
func (p *Project) MatchesProgram(programID *uint) bool {
	if p.ProgramID == nil || programID == nil {
		return p.ProgramID == nil && programID == nil
	}
	return *p.ProgramID == *programID
}

// Assignment is the join row between a project and an apprentice working on it.
type Assignment struct {
	ProjectID    uint      `gorm:"primaryKey;autoIncrement:false"`
	ApprenticeID uint      `gorm:"primaryKey;autoIncrement:false"`
	AssignedAt   time.Time `gorm:"autoCreateTime"`
}

func (Assignment) TableName() string {
	return "project_apprentices"
}
