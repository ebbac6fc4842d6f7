package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/linskybing/oasis/internal/domain/user"
)

type CompanySize string

const (
	SizeMicro   CompanySize = "Micro"
	SizePequena CompanySize = "Pequena"
	SizeMediana CompanySize = "Mediana"
	SizeGrande  CompanySize = "Grande"
)

type DocumentType string

const (
	DocCC  DocumentType = "CC"
	DocCE  DocumentType = "CE"
	DocPA  DocumentType = "PA"
	DocTI  DocumentType = "TI"
	DocDNI DocumentType = "DNI"
)

type CertificationLevel string

const (
	LevelBasico     CertificationLevel = "Basico"
	LevelIntermedio CertificationLevel = "Intermedio"
	LevelAvanzado   CertificationLevel = "Avanzado"
	LevelExperto    CertificationLevel = "Experto"
)

const placeholderPrefix = "TEMP-"

// PlaceholderID is the unique stand-in written to tax ids and document numbers
// of lazily provisioned profiles until the owner completes them.
func PlaceholderID(userID uint) string {
	return fmt.Sprintf("%s%d", placeholderPrefix, userID)
}

func IsPlaceholder(v string) bool {
	return strings.HasPrefix(v, placeholderPrefix)
}

type CompanyProfile struct {
	UserID    uint            `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User      user.User       `gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE" json:"-"`
	LegalName string          `gorm:"size:200;not null" json:"legal_name"`
	TaxID     string          `gorm:"column:tax_id;size:20;not null;uniqueIndex" json:"tax_id"`
	Phone     string          `gorm:"size:20" json:"phone"`
	Address   string          `gorm:"type:text" json:"address"`
	SectorID  *uint           `json:"sector_id"`
	Sector    *catalog.Sector `gorm:"foreignKey:SectorID;constraint:OnDelete:SET NULL" json:"sector,omitempty"`
	Size      CompanySize     `gorm:"type:varchar(10);not null;default:'Micro'" json:"size"`
	LogoKey   string          `gorm:"size:255" json:"logo_key"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}

func (p *CompanyProfile) Incomplete() bool {
	return IsPlaceholder(p.TaxID)
}

type ApprenticeProfile struct {
	UserID         uint             `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User           user.User        `gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE" json:"-"`
	DocumentType   DocumentType     `gorm:"type:varchar(3);not null;default:'CC'" json:"document_type"`
	DocumentNumber string           `gorm:"size:20;not null;uniqueIndex" json:"document_number"`
	CohortCode     string           `gorm:"size:20" json:"cohort_code"`
	Phone          string           `gorm:"size:20" json:"phone"`
	PhotoKey       string           `gorm:"size:255" json:"photo_key"`
	ProgramID      *uint            `gorm:"index" json:"program_id"`
	Program        *catalog.Program `gorm:"foreignKey:ProgramID;constraint:OnDelete:SET NULL" json:"program,omitempty"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (ApprenticeProfile) TableName() string {
	return "apprentice_profiles"
}

func (p *ApprenticeProfile) Incomplete() bool {
	return IsPlaceholder(p.DocumentNumber)
}

type InstructorProfile struct {
	UserID             uint               `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User               user.User          `gorm:"foreignKey:UserID;references:UID;constraint:OnDelete:CASCADE" json:"-"`
	DocumentType       DocumentType       `gorm:"type:varchar(3);not null;default:'CC'" json:"document_type"`
	DocumentNumber     string             `gorm:"size:20;not null;uniqueIndex" json:"document_number"`
	BirthDate          *time.Time         `gorm:"type:date" json:"birth_date"`
	Bio                string             `gorm:"size:500" json:"bio"`
	CertificationLevel CertificationLevel `gorm:"type:varchar(20);not null;default:'Basico'" json:"certification_level"`
	KnowledgeArea      string             `gorm:"size:100" json:"knowledge_area"`
	PhotoKey           string             `gorm:"size:255" json:"photo_key"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (InstructorProfile) TableName() string {
	return "instructor_profiles"
}

func (p *InstructorProfile) Incomplete() bool {
	return IsPlaceholder(p.DocumentNumber)
}

// Profile holds whichever per-role record a user owns. Exactly one pointer is
// set, matching Kind.
type Profile struct {
	Kind       user.ProfileKind   `json:"kind"`
	Company    *CompanyProfile    `json:"company,omitempty"`
	Apprentice *ApprenticeProfile `json:"apprentice,omitempty"`
	Instructor *InstructorProfile `json:"instructor,omitempty"`
}

func (p Profile) Incomplete() bool {
	switch p.Kind {
	case user.ProfileCompany:
		return p.Company == nil || p.Company.Incomplete()
	case user.ProfileApprentice:
		return p.Apprentice == nil || p.Apprentice.Incomplete()
	case user.ProfileInstructor:
		return p.Instructor == nil || p.Instructor.Incomplete()
	}
	return false
}

// NewCompanyPlaceholder builds the row written the first time a company user
// reaches a page that needs a profile.
func NewCompanyPlaceholder(u user.User) CompanyProfile {
	return CompanyProfile{
		UserID:    u.UID,
		LegalName: "Empresa de " + u.Username,
		TaxID:     PlaceholderID(u.UID),
		Size:      SizeMicro,
	}
}

func NewApprenticePlaceholder(u user.User) ApprenticeProfile {
	return ApprenticeProfile{
		UserID:         u.UID,
		DocumentType:   DocCC,
		DocumentNumber: PlaceholderID(u.UID),
	}
}

func NewInstructorPlaceholder(u user.User) InstructorProfile {
	return InstructorProfile{
		UserID:             u.UID,
		DocumentType:       DocCC,
		DocumentNumber:     PlaceholderID(u.UID),
		CertificationLevel: LevelBasico,
	}
}
