package postulation

import (
	"fmt"
	"time"

	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/domain/user"
)

type Kind string

const (
	KindApprentice Kind = "apprentice"
	KindInstructor Kind = "instructor"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindApprentice, KindInstructor:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown postulation kind %q", s)
}

// Role is the only role allowed to file postulations of this kind.
func (k Kind) Role() user.Role {
	if k == KindInstructor {
		return user.RoleInstructor
	}
	return user.RoleApprentice
}

func (k Kind) Table() string {
	if k == KindInstructor {
		return "instructor_postulations"
	}
	return "apprentice_postulations"
}

func (k Kind) ActorColumn() string {
	if k == KindInstructor {
		return "instructor_id"
	}
	return "apprentice_id"
}

func (k Kind) ProfileTable() string {
	if k == KindInstructor {
		return "instructor_profiles"
	}
	return "apprentice_profiles"
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

type Outcome string

const (
	OutcomeAccept Outcome = "ACCEPT"
	OutcomeReject Outcome = "REJECT"
)

func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "accept", "ACCEPT", "aceptar":
		return OutcomeAccept, nil
	case "reject", "REJECT", "rechazar":
		return OutcomeReject, nil
	}
	return "", fmt.Errorf("unknown outcome %q", s)
}

func (o Outcome) Status() Status {
	if o == OutcomeAccept {
		return StatusAccepted
	}
	return StatusRejected
}

type ApprenticePostulation struct {
	ID           uint                       `gorm:"primaryKey" json:"id"`
	ApprenticeID uint                       `gorm:"not null;uniqueIndex:idx_apprentice_postulation_actor_project" json:"apprentice_id"`
	Apprentice   *profile.ApprenticeProfile `gorm:"foreignKey:ApprenticeID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ProjectID    uint                       `gorm:"not null;uniqueIndex:idx_apprentice_postulation_actor_project;index" json:"project_id"`
	Project      *project.Project           `gorm:"foreignKey:ProjectID;references:PID;constraint:OnDelete:CASCADE" json:"-"`
	Status       Status                     `gorm:"type:varchar(10);not null;default:'PENDING'" json:"status"`
	SubmittedAt  time.Time                  `gorm:"autoCreateTime" json:"submitted_at"`
	DecidedAt    *time.Time                 `json:"decided_at"`
}

func (ApprenticePostulation) TableName() string {
	return KindApprentice.Table()
}

type InstructorPostulation struct {
	ID           uint                       `gorm:"primaryKey" json:"id"`
	InstructorID uint                       `gorm:"not null;uniqueIndex:idx_instructor_postulation_actor_project" json:"instructor_id"`
	Instructor   *profile.InstructorProfile `gorm:"foreignKey:InstructorID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ProjectID    uint                       `gorm:"not null;uniqueIndex:idx_instructor_postulation_actor_project;index" json:"project_id"`
	Project      *project.Project           `gorm:"foreignKey:ProjectID;references:PID;constraint:OnDelete:CASCADE" json:"-"`
	Status       Status                     `gorm:"type:varchar(10);not null;default:'PENDING'" json:"status"`
	SubmittedAt  time.Time                  `gorm:"autoCreateTime" json:"submitted_at"`
	DecidedAt    *time.Time                 `json:"decided_at"`
}

func (InstructorPostulation) TableName() string {
	return KindInstructor.Table()
}

// Postulation is the kind-agnostic read model used by listings and decisions.
type Postulation struct {
	ID          uint       `json:"id"`
	Kind        Kind       `json:"kind"`
	ActorID     uint       `json:"actor_id"`
	ActorName   string     `json:"actor_name"`
	ProjectID   uint       `json:"project_id"`
	ProjectName string     `json:"project_name"`
	CompanyID   uint       `json:"company_id"`
	Status      Status     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	DecidedAt   *time.Time `json:"decided_at"`
}

func (p Postulation) Pending() bool {
	return p.Status == StatusPending
}
