package profile

import "time"

type CompanyInput struct {
	LegalName string      `json:"legal_name" form:"legal_name" binding:"required,max=200"`
	TaxID     string      `json:"tax_id" form:"tax_id" binding:"required,max=20"`
	Phone     string      `json:"phone" form:"phone" binding:"max=20"`
	Address   string      `json:"address" form:"address"`
	SectorID  *uint       `json:"sector_id" form:"sector_id"`
	Size      CompanySize `json:"size" form:"size" binding:"required,oneof=Micro Pequena Mediana Grande"`
}

type ApprenticeInput struct {
	DocumentType   DocumentType `json:"document_type" form:"document_type" binding:"required,oneof=CC CE PA TI DNI"`
	DocumentNumber string       `json:"document_number" form:"document_number" binding:"required,max=20"`
	CohortCode     string       `json:"cohort_code" form:"cohort_code" binding:"max=20"`
	Phone          string       `json:"phone" form:"phone" binding:"max=20"`
	ProgramID      *uint        `json:"program_id" form:"program_id"`
}

type InstructorInput struct {
	DocumentType       DocumentType       `json:"document_type" form:"document_type" binding:"required,oneof=CC CE PA TI DNI"`
	DocumentNumber     string             `json:"document_number" form:"document_number" binding:"required,max=20"`
	BirthDate          *time.Time         `json:"birth_date" form:"birth_date" time_format:"2006-01-02"`
	Bio                string             `json:"bio" form:"bio" binding:"max=500"`
	CertificationLevel CertificationLevel `json:"certification_level" form:"certification_level" binding:"required,oneof=Basico Intermedio Avanzado Experto"`
	KnowledgeArea      string             `json:"knowledge_area" form:"knowledge_area" binding:"max=100"`
}

// UpdateInput carries the form for whichever profile kind the caller owns.
type UpdateInput struct {
	Company    *CompanyInput
	Apprentice *ApprenticeInput
	Instructor *InstructorInput
}

func (in CompanyInput) Apply(p *CompanyProfile) {
	p.LegalName = in.LegalName
	p.TaxID = in.TaxID
	p.Phone = in.Phone
	p.Address = in.Address
	p.SectorID = in.SectorID
	p.Size = in.Size
}

func (in ApprenticeInput) Apply(p *ApprenticeProfile) {
	p.DocumentType = in.DocumentType
	p.DocumentNumber = in.DocumentNumber
	p.CohortCode = in.CohortCode
	p.Phone = in.Phone
	p.ProgramID = in.ProgramID
}

func (in InstructorInput) Apply(p *InstructorProfile) {
	p.DocumentType = in.DocumentType
	p.DocumentNumber = in.DocumentNumber
	p.BirthDate = in.BirthDate
	p.Bio = in.Bio
	p.CertificationLevel = in.CertificationLevel
	p.KnowledgeArea = in.KnowledgeArea
}
