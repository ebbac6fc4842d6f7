package project

type SubmitInput struct {
	Name          string `json:"name" form:"name" binding:"required,max=200" example:"Inventory app"`
	Description   string `json:"description" form:"description" binding:"required"`
	Area          Area   `json:"area" form:"area" binding:"required,oneof=DES IND ADM ELE MEC CON AMB SAL TUR ART" example:"DES"`
	ProgramID     *uint  `json:"program_id" form:"program_id"`
	DurationWeeks uint   `json:"duration_weeks" form:"duration_weeks" binding:"required,min=1" example:"12"`
}

type EditInput struct {
	Name          *string `json:"name,omitempty" form:"name" binding:"omitempty,max=200"`
	Description   *string `json:"description,omitempty" form:"description"`
	Area          *Area   `json:"area,omitempty" form:"area" binding:"omitempty,oneof=DES IND ADM ELE MEC CON AMB SAL TUR ART"`
	ProgramID     *uint   `json:"program_id,omitempty" form:"program_id"`
	DurationWeeks *uint   `json:"duration_weeks,omitempty" form:"duration_weeks" binding:"omitempty,min=1"`
}

func (in EditInput) Apply(p *Project) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Area != nil {
		p.Area = *in.Area
	}
	if in.ProgramID != nil {
		p.ProgramID = in.ProgramID
		p.Program = nil
	}
	if in.DurationWeeks != nil {
		p.DurationWeeks = *in.DurationWeeks
	}
}

type DecisionInput struct {
	Reason string `json:"reason" form:"reason" example:"Cumple los requisitos"`
}

type AdvanceInput struct {
	Status Status `json:"status" form:"status" binding:"required,oneof=IN_PROGRESS COMPLETED" example:"IN_PROGRESS"`
}

type ListFilter struct {
	Status    *Status
	CompanyID *uint
}

// ApprenticeView is a project as an apprentice sees it while browsing.
type ApprenticeView struct {
	Project        Project `json:"project"`
	AlreadyApplied bool    `json:"already_applied"`
	ProgramMatches bool    `json:"program_matches"`
}

type InstructorView struct {
	Project        Project `json:"project"`
	AlreadyApplied bool    `json:"already_applied"`
}

type StatusCount struct {
	Status Status `json:"status"`
	Count  int64  `json:"count"`
}
