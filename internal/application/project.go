package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/observability/metrics"
	"github.com/linskybing/oasis/internal/observability/tracing"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/pkg/utils"
)

type ProjectService struct {
	Repos    *repository.Repos
	Profiles *ProfileService
}

func NewProjectService(repos *repository.Repos, profiles *ProfileService) *ProjectService {
	return &ProjectService{
		Repos:    repos,
		Profiles: profiles,
	}
}

func (s *ProjectService) checkProgram(programID *uint) error {
	if programID == nil {
		return nil
	}
	if _, err := s.Repos.Catalog.GetProgram(*programID); err != nil {
		if repository.IsNotFound(err) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}

func (s *ProjectService) loadProject(repos *repository.Repos, id uint) (project.Project, error) {
	p, err := repos.Project.GetProjectByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

// Submit files a new project for review. The owner is always the caller and
// the project always starts PENDING.
func (s *ProjectService) Submit(ctx context.Context, id *authz.Identity, in project.SubmitInput) (*project.Project, error) {
	if !id.Has(user.RoleCompany) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, NewValidationError("name", "el nombre es obligatorio")
	}
	if _, _, err := s.Profiles.GetOrCreate(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkProgram(in.ProgramID); err != nil {
		return nil, err
	}

	p := &project.Project{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Area:          in.Area,
		ProgramID:     in.ProgramID,
		DurationWeeks: in.DurationWeeks,
		Status:        project.StatusPending,
		CompanyID:     id.UserID,
	}
	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, id.UserID, "create", "project", fmt.Sprintf("p_id=%d", p.PID), nil, p, "", s.Repos.Audit)
	return p, nil
}

// Decide approves or rejects a pending project. The reason is mandatory and
// the write only lands while the project is still PENDING.
func (s *ProjectService) Decide(ctx context.Context, admin *authz.Identity, projectID uint, decision project.Decision, reason string) (*project.Project, error) {
	ctx, span := tracing.Start(ctx, "ProjectService.Decide")
	var err error
	defer func() {
		metrics.ObserveProjectDecision(string(decision), metrics.Result(err))
		tracing.End(span, err)
	}()

	if !admin.IsAdmin() {
		err = ErrPermissionDenied
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		err = ErrReasonRequired
		return nil, err
	}

	var target project.Status
	changes := map[string]any{}
	switch decision {
	case project.DecisionApprove:
		target = project.StatusApproved
		changes["approval_reason"] = reason
	case project.DecisionReject:
		target = project.StatusRejected
		changes["rejection_reason"] = reason
	default:
		err = NewValidationError("decision", "decision desconocida")
		return nil, err
	}
	now := time.Now()
	changes["status"] = target
	changes["decided_at"] = now
	changes["decided_by"] = admin.UserID

	var before, after project.Project
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		var txErr error
		before, txErr = s.loadProject(tx, projectID)
		if txErr != nil {
			return txErr
		}
		if before.Status != project.StatusPending {
			return ErrProjectNotPending
		}
		updated, txErr := tx.Project.UpdateStatusIf(projectID, project.StatusPending, changes)
		if txErr != nil {
			return txErr
		}
		if !updated {
			return ErrProjectNotPending
		}
		after = before
		after.Status = target
		after.DecidedAt = &now
		after.DecidedBy = &admin.UserID
		if decision == project.DecisionApprove {
			after.ApprovalReason = reason
		} else {
			after.RejectionReason = reason
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, admin.UserID, strings.ToLower(string(decision)), "project", fmt.Sprintf("p_id=%d", projectID), before, after, reason, s.Repos.Audit)
	return &after, nil
}

// Edit changes the descriptive fields of a project the caller owns. Status is
// never touched.
func (s *ProjectService) Edit(ctx context.Context, id *authz.Identity, projectID uint, in project.EditInput) (*project.Project, error) {
	p, err := s.loadProject(s.Repos, projectID)
	if err != nil {
		return nil, err
	}
	if !id.Has(user.RoleCompany) || !p.OwnedBy(id.UserID) {
		return nil, ErrPermissionDenied
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, NewValidationError("name", "el nombre es obligatorio")
	}
	if err := s.checkProgram(in.ProgramID); err != nil {
		return nil, err
	}

	before := p
	in.Apply(&p)
	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}
	utils.LogAuditWithConsole(ctx, id.UserID, "update", "project", fmt.Sprintf("p_id=%d", p.PID), before, p, "", s.Repos.Audit)
	return &p, nil
}

// Advance records bookkeeping progress on an approved project.
func (s *ProjectService) Advance(ctx context.Context, admin *authz.Identity, projectID uint, to project.Status) (*project.Project, error) {
	if !admin.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	var p project.Project
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var txErr error
		p, txErr = s.loadProject(tx, projectID)
		if txErr != nil {
			return txErr
		}
		next, ok := p.Status.NextBookkeeping()
		if !ok || next != to {
			return ErrInvalidTransition
		}
		updated, txErr := tx.Project.UpdateStatusIf(projectID, p.Status, map[string]any{"status": to})
		if txErr != nil {
			return txErr
		}
		if !updated {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	from := p.Status
	p.Status = to
	utils.LogAuditWithConsole(ctx, admin.UserID, "advance", "project", fmt.Sprintf("p_id=%d", projectID), map[string]any{"status": from}, map[string]any{"status": to}, "", s.Repos.Audit)
	return &p, nil
}

func (s *ProjectService) Delete(ctx context.Context, admin *authz.Identity, projectID uint) error {
	if !admin.IsAdmin() {
		return ErrPermissionDenied
	}
	p, err := s.loadProject(s.Repos, projectID)
	if err != nil {
		return err
	}
	if err := s.Repos.Project.DeleteProject(projectID); err != nil {
		return err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "delete", "project", fmt.Sprintf("p_id=%d", projectID), p, nil, "", s.Repos.Audit)
	return nil
}

func (s *ProjectService) Detail(id uint) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectDetail(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DetailFor is Detail as the caller may see it. Admins and the owning company
// see every state; apprentices and instructors see approved projects and the
// ones they work on. Other companies see nothing.
func (s *ProjectService) DetailFor(id *authz.Identity, projectID uint) (*project.Project, error) {
	if id == nil {
		return nil, ErrPermissionDenied
	}
	p, err := s.Detail(projectID)
	if err != nil {
		return nil, err
	}
	if id.IsAdmin() {
		return p, nil
	}

	switch id.Role {
	case user.RoleCompany:
		if p.OwnedBy(id.UserID) {
			return p, nil
		}
		return nil, ErrPermissionDenied
	case user.RoleApprentice:
		if p.Status == project.StatusApproved || p.HasApprentice(id.UserID) {
			return p, nil
		}
	case user.RoleInstructor:
		if p.Status == project.StatusApproved || p.SupervisedBy(id.UserID) {
			return p, nil
		}
	default:
		return nil, ErrPermissionDenied
	}
	return nil, ErrProjectNotEligible
}

func (s *ProjectService) ListByCompany(id *authz.Identity) ([]project.Project, error) {
	if !id.Has(user.RoleCompany) {
		return nil, ErrPermissionDenied
	}
	return s.Repos.Project.ListProjectsByCompany(id.UserID)
}

// ListPending is the admin review queue, newest first.
func (s *ProjectService) ListPending() ([]project.Project, error) {
	status := project.StatusPending
	return s.Repos.Project.ListProjects(project.ListFilter{Status: &status})
}

func (s *ProjectService) ListAll(status *project.Status) ([]project.Project, error) {
	if status != nil && !status.Valid() {
		return nil, NewValidationError("status", "estado desconocido")
	}
	return s.Repos.Project.ListProjects(project.ListFilter{Status: status})
}

// EligibleForApprentice lists approved projects of the apprentice's programme
// they have not applied to yet.
func (s *ProjectService) EligibleForApprentice(ctx context.Context, id *authz.Identity) ([]project.Project, error) {
	prof, _, err := s.Profiles.GetOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}
	if prof.Apprentice == nil {
		return nil, ErrPermissionDenied
	}
	return s.Repos.Project.ListEligibleForApprentice(id.UserID, prof.Apprentice.ProgramID)
}

// EligibleForInstructor lists every approved project, flagging the ones the
// instructor already applied to.
func (s *ProjectService) EligibleForInstructor(id *authz.Identity) ([]project.InstructorView, error) {
	if !id.Has(user.RoleInstructor) {
		return nil, ErrPermissionDenied
	}
	projects, err := s.Repos.Project.ListEligibleForInstructor()
	if err != nil {
		return nil, err
	}
	applied, err := s.appliedSet(postulation.KindInstructor, id.UserID)
	if err != nil {
		return nil, err
	}
	views := make([]project.InstructorView, 0, len(projects))
	for _, p := range projects {
		_, done := applied[p.PID]
		views = append(views, project.InstructorView{Project: p, AlreadyApplied: done})
	}
	return views, nil
}

// ApprenticeView shows one approved project to an apprentice.
func (s *ProjectService) ApprenticeView(ctx context.Context, id *authz.Identity, projectID uint) (*project.ApprenticeView, error) {
	p, err := s.Detail(projectID)
	if err != nil {
		return nil, err
	}
	if p.Status != project.StatusApproved {
		return nil, ErrProjectNotEligible
	}
	prof, _, err := s.Profiles.GetOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}
	if prof.Apprentice == nil {
		return nil, ErrPermissionDenied
	}
	applied, err := s.Repos.Postulation.Exists(postulation.KindApprentice, id.UserID, projectID)
	if err != nil {
		return nil, err
	}
	return &project.ApprenticeView{
		Project:        *p,
		AlreadyApplied: applied,
		ProgramMatches: p.MatchesProgram(prof.Apprentice.ProgramID),
	}, nil
}

func (s *ProjectService) InstructorView(id *authz.Identity, projectID uint) (*project.InstructorView, error) {
	if !id.Has(user.RoleInstructor) {
		return nil, ErrPermissionDenied
	}
	p, err := s.Detail(projectID)
	if err != nil {
		return nil, err
	}
	if p.Status != project.StatusApproved {
		return nil, ErrProjectNotEligible
	}
	applied, err := s.Repos.Postulation.Exists(postulation.KindInstructor, id.UserID, projectID)
	if err != nil {
		return nil, err
	}
	return &project.InstructorView{Project: *p, AlreadyApplied: applied}, nil
}

func (s *ProjectService) AssignedToApprentice(id *authz.Identity) ([]project.Project, error) {
	return s.Repos.Project.ListAssignedToApprentice(id.UserID)
}

func (s *ProjectService) SupervisedByInstructor(id *authz.Identity) ([]project.Project, error) {
	if !id.Has(user.RoleInstructor) {
		return nil, ErrPermissionDenied
	}
	return s.Repos.Project.ListSupervisedBy(id.UserID)
}

func (s *ProjectService) appliedSet(kind postulation.Kind, actorID uint) (map[uint]struct{}, error) {
	ids, err := s.Repos.Postulation.AppliedProjectIDs(kind, actorID)
	if err != nil {
		return nil, err
	}
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}
