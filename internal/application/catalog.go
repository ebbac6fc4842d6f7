package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/catalog"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/pkg/utils"
)

var (
	ErrDuplicateProgram = NewValidationError("code", "ya existe un programa con ese nombre o codigo")
	ErrDuplicateSector  = NewValidationError("name", "ya existe un sector con ese nombre")
)

type CatalogService struct {
	Repos *repository.Repos
}

func NewCatalogService(repos *repository.Repos) *CatalogService {
	return &CatalogService{
		Repos: repos,
	}
}

func (s *CatalogService) ListPrograms(activeOnly bool) ([]catalog.Program, error) {
	return s.Repos.Catalog.ListPrograms(activeOnly)
}

func (s *CatalogService) GetProgram(id uint) (catalog.Program, error) {
	p, err := s.Repos.Catalog.GetProgram(id)
	if repository.IsNotFound(err) {
		return p, ErrProgramNotFound
	}
	return p, err
}

func (s *CatalogService) CreateProgram(ctx context.Context, admin *authz.Identity, in catalog.ProgramInput) (catalog.Program, error) {
	if !admin.IsAdmin() {
		return catalog.Program{}, ErrPermissionDenied
	}
	p := in.ToModel()
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	if err := s.Repos.Catalog.CreateProgram(&p); err != nil {
		if repository.IsUniqueViolation(err) {
			return catalog.Program{}, ErrDuplicateProgram
		}
		return catalog.Program{}, err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "create", "program", fmt.Sprintf("id=%d", p.ID), nil, p, "", s.Repos.Audit)
	return p, nil
}

func (s *CatalogService) UpdateProgram(ctx context.Context, admin *authz.Identity, id uint, in catalog.ProgramInput) (catalog.Program, error) {
	if !admin.IsAdmin() {
		return catalog.Program{}, ErrPermissionDenied
	}
	p, err := s.GetProgram(id)
	if err != nil {
		return catalog.Program{}, err
	}
	before := p

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Type = in.Type
	p.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if in.Active != nil {
		p.Active = *in.Active
	}
	if err := s.Repos.Catalog.SaveProgram(&p); err != nil {
		if repository.IsUniqueViolation(err) {
			return catalog.Program{}, ErrDuplicateProgram
		}
		return catalog.Program{}, err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "update", "program", fmt.Sprintf("id=%d", p.ID), before, p, "", s.Repos.Audit)
	return p, nil
}

// DeleteProgram removes a programme. Profiles and projects pointing at it
// keep existing with no programme.
func (s *CatalogService) DeleteProgram(ctx context.Context, admin *authz.Identity, id uint) error {
	if !admin.IsAdmin() {
		return ErrPermissionDenied
	}
	p, err := s.GetProgram(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Catalog.DeleteProgram(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "delete", "program", fmt.Sprintf("id=%d", id), p, nil, "", s.Repos.Audit)
	return nil
}

func (s *CatalogService) ListSectors() ([]catalog.Sector, error) {
	return s.Repos.Catalog.ListSectors()
}

func (s *CatalogService) GetSector(id uint) (catalog.Sector, error) {
	sec, err := s.Repos.Catalog.GetSector(id)
	if repository.IsNotFound(err) {
		return sec, ErrSectorNotFound
	}
	return sec, err
}

func (s *CatalogService) CreateSector(ctx context.Context, admin *authz.Identity, in catalog.SectorInput) (catalog.Sector, error) {
	if !admin.IsAdmin() {
		return catalog.Sector{}, ErrPermissionDenied
	}
	sec := catalog.Sector{Name: strings.TrimSpace(in.Name), Description: in.Description}
	if err := s.Repos.Catalog.CreateSector(&sec); err != nil {
		if repository.IsUniqueViolation(err) {
			return catalog.Sector{}, ErrDuplicateSector
		}
		return catalog.Sector{}, err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "create", "sector", fmt.Sprintf("id=%d", sec.ID), nil, sec, "", s.Repos.Audit)
	return sec, nil
}

func (s *CatalogService) UpdateSector(ctx context.Context, admin *authz.Identity, id uint, in catalog.SectorInput) (catalog.Sector, error) {
	if !admin.IsAdmin() {
		return catalog.Sector{}, ErrPermissionDenied
	}
	sec, err := s.GetSector(id)
	if err != nil {
		return catalog.Sector{}, err
	}
	before := sec
	sec.Name = strings.TrimSpace(in.Name)
	sec.Description = in.Description
	if err := s.Repos.Catalog.SaveSector(&sec); err != nil {
		if repository.IsUniqueViolation(err) {
			return catalog.Sector{}, ErrDuplicateSector
		}
		return catalog.Sector{}, err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "update", "sector", fmt.Sprintf("id=%d", sec.ID), before, sec, "", s.Repos.Audit)
	return sec, nil
}

func (s *CatalogService) DeleteSector(ctx context.Context, admin *authz.Identity, id uint) error {
	if !admin.IsAdmin() {
		return ErrPermissionDenied
	}
	sec, err := s.GetSector(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Catalog.DeleteSector(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "delete", "sector", fmt.Sprintf("id=%d", id), sec, nil, "", s.Repos.Audit)
	return nil
}

// Seed upserts programmes by code and sectors by name.
func (s *CatalogService) Seed(programs []catalog.ProgramInput, sectors []catalog.SectorInput) error {
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		for _, in := range programs {
			p := in.ToModel()
			p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
			if err := tx.Catalog.UpsertProgramByCode(&p); err != nil {
				return fmt.Errorf("seed program %s: %w", p.Code, err)
			}
		}
		for _, in := range sectors {
			sec := catalog.Sector{Name: strings.TrimSpace(in.Name), Description: in.Description}
			if err := tx.Catalog.UpsertSectorByName(&sec); err != nil {
				return fmt.Errorf("seed sector %s: %w", sec.Name, err)
			}
		}
		return nil
	})
}
