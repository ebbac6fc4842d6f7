package catalog

type ProgramInput struct {
	Name        string      `json:"name" yaml:"name" binding:"required,max=200"`
	Description string      `json:"description" yaml:"description"`
	Type        ProgramType `json:"type" yaml:"type" binding:"required,oneof=TECNICO TECNOLOGO ESPECIALIZACION UNIVERSITARIO"`
	Code        string      `json:"code" yaml:"code" binding:"required,max=20"`
	Active      *bool       `json:"active,omitempty" yaml:"active"`
}

type SectorInput struct {
	Name        string `json:"name" yaml:"name" binding:"required,max=100"`
	Description string `json:"description" yaml:"description"`
}

func (in ProgramInput) ToModel() Program {
	p := Program{
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		Code:        in.Code,
		Active:      true,
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	return p
}
