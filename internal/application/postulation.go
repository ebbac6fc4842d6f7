package application

import (
	"context"
	"fmt"
	"time"

	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/postulation"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/project"
	"github.com/linskybing/oasis/internal/logging"
	"github.com/linskybing/oasis/internal/observability/metrics"
	"github.com/linskybing/oasis/internal/observability/tracing"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/pkg/utils"
)

type PostulationService struct {
	Repos    *repository.Repos
	Profiles *ProfileService
}

func NewPostulationService(repos *repository.Repos, profiles *ProfileService) *PostulationService {
	return &PostulationService{
		Repos:    repos,
		Profiles: profiles,
	}
}

// Apply files a PENDING postulation of the given kind for the caller.
// Checks run in order: role, project, profile, programme, duplicate, status.
func (s *PostulationService) Apply(ctx context.Context, id *authz.Identity, kind postulation.Kind, projectID uint) (*postulation.Postulation, error) {
	ctx, span := tracing.Start(ctx, "PostulationService.Apply")
	var err error
	defer func() {
		metrics.ObservePostulation(string(kind), metrics.Result(err))
		tracing.End(span, err)
	}()

	if !id.Has(kind.Role()) {
		err = ErrPermissionDenied
		return nil, err
	}

	var p project.Project
	p, err = s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if repository.IsNotFound(err) {
			err = ErrProjectNotFound
		}
		return nil, err
	}

	var prof profile.Profile
	prof, _, err = s.Profiles.GetOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	if kind == postulation.KindApprentice && !p.MatchesProgram(prof.Apprentice.ProgramID) {
		err = ErrProgramMismatch
		return nil, err
	}

	var exists bool
	exists, err = s.Repos.Postulation.Exists(kind, id.UserID, projectID)
	if err != nil {
		return nil, err
	}
	if exists {
		err = ErrDuplicateApplication
		return nil, err
	}
	if p.Status != project.StatusApproved {
		err = ErrProjectNotEligible
		return nil, err
	}

	var created postulation.Postulation
	created, err = s.Repos.Postulation.Create(kind, id.UserID, projectID)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			err = ErrDuplicateApplication
		}
		return nil, err
	}
	created.ProjectName = p.Name
	created.CompanyID = p.CompanyID

	utils.LogAuditWithConsole(ctx, id.UserID, "apply", string(kind)+"_postulation", fmt.Sprintf("id=%d", created.ID), nil, created, "", s.Repos.Audit)
	return &created, nil
}

// Decide accepts or rejects a pending postulation on a project the company
// owns. Accepting an apprentice assigns them to the project; accepting an
// instructor replaces the current one.
func (s *PostulationService) Decide(ctx context.Context, company *authz.Identity, kind postulation.Kind, postulationID uint, outcome postulation.Outcome) (*postulation.Postulation, error) {
	ctx, span := tracing.Start(ctx, "PostulationService.Decide")
	var err error
	defer func() {
		metrics.ObservePostulationDecision(string(kind), string(outcome), metrics.Result(err))
		tracing.End(span, err)
	}()

	var before, after postulation.Postulation
	var previousInstructor *uint
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		var txErr error
		before, txErr = tx.Postulation.GetByID(kind, postulationID)
		if txErr != nil {
			if repository.IsNotFound(txErr) {
				return ErrPostulationNotFound
			}
			return txErr
		}
		if company == nil || before.CompanyID != company.UserID {
			return ErrPermissionDenied
		}
		if !before.Pending() {
			return ErrAlreadyDecided
		}

		now := time.Now()
		to := outcome.Status()
		moved, txErr := tx.Postulation.TransitionStatus(kind, postulationID, postulation.StatusPending, to, now)
		if txErr != nil {
			return txErr
		}
		if !moved {
			return ErrAlreadyDecided
		}
		after = before
		after.Status = to
		after.DecidedAt = &now

		if outcome != postulation.OutcomeAccept {
			return nil
		}
		if kind == postulation.KindApprentice {
			return tx.Project.AssignApprentice(before.ProjectID, before.ActorID)
		}
		p, txErr := tx.Project.GetProjectByID(before.ProjectID)
		if txErr != nil {
			return txErr
		}
		previousInstructor = p.InstructorID
		return tx.Project.SetInstructor(before.ProjectID, before.ActorID)
	})
	if err != nil {
		return nil, err
	}

	if previousInstructor != nil && *previousInstructor != after.ActorID {
		logging.L().WithFields(map[string]interface{}{
			"project_id":     after.ProjectID,
			"previous":       *previousInstructor,
			"new_instructor": after.ActorID,
		}).Warn("project instructor replaced")
	}

	utils.LogAuditWithConsole(ctx, company.UserID, "decide", string(kind)+"_postulation", fmt.Sprintf("id=%d", postulationID), before, after, string(outcome), s.Repos.Audit)
	return &after, nil
}

// ListForProject returns both kinds of postulations for a project owned by
// the caller. Admins may read any project.
func (s *PostulationService) ListForProject(id *authz.Identity, projectID uint) ([]postulation.Postulation, []postulation.Postulation, error) {
	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, err
	}
	if !id.IsAdmin() && !p.OwnedBy(id.UserID) {
		return nil, nil, ErrPermissionDenied
	}
	apprentices, err := s.Repos.Postulation.ListByProject(postulation.KindApprentice, projectID)
	if err != nil {
		return nil, nil, err
	}
	instructors, err := s.Repos.Postulation.ListByProject(postulation.KindInstructor, projectID)
	if err != nil {
		return nil, nil, err
	}
	return apprentices, instructors, nil
}

// ListMine returns the caller's own postulations, newest first.
func (s *PostulationService) ListMine(id *authz.Identity, kind postulation.Kind) ([]postulation.Postulation, error) {
	if !id.Has(kind.Role()) {
		return nil, ErrPermissionDenied
	}
	return s.Repos.Postulation.ListByActor(kind, id.UserID)
}
