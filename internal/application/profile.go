package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/logging"
	"github.com/linskybing/oasis/internal/observability/metrics"
	"github.com/linskybing/oasis/internal/observability/tracing"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/internal/storage"
	"github.com/linskybing/oasis/pkg/utils"
)

var (
	ErrUnsupportedImage = NewValidationError("file", "solo se permiten imagenes JPG, PNG o WEBP")
	ErrImageTooLarge    = NewValidationError("file", "la imagen supera el tamano maximo permitido")
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type ProfileService struct {
	Repos *repository.Repos
	Blobs storage.BlobStore
}

func NewProfileService(repos *repository.Repos, blobs storage.BlobStore) *ProfileService {
	return &ProfileService{
		Repos: repos,
		Blobs: blobs,
	}
}

// getOrCreate loads a profile row, inserting placeholder when none exists.
// A concurrent insert that wins the race is re-read instead of failing.
func getOrCreate[T any](uid uint, get func(uint) (T, error), create func(*T) error, placeholder T) (T, bool, error) {
	existing, err := get(uid)
	if err == nil {
		return existing, false, nil
	}
	if !repository.IsNotFound(err) {
		return existing, false, err
	}
	if err := create(&placeholder); err != nil {
		if repository.IsUniqueViolation(err) {
			existing, err = get(uid)
			return existing, false, err
		}
		return placeholder, false, err
	}
	return placeholder, true, nil
}

// GetOrCreate returns the caller's profile, provisioning a placeholder on first
// visit. created tells the caller to prompt for completion.
func (s *ProfileService) GetOrCreate(ctx context.Context, id *authz.Identity) (profile.Profile, bool, error) {
	ctx, span := tracing.Start(ctx, "ProfileService.GetOrCreate")
	var err error
	defer func() { tracing.End(span, err) }()

	u := user.User{UID: id.UserID, Username: id.Username}
	kind := id.Role.ProfileKind()
	out := profile.Profile{Kind: kind}
	var created bool

	switch kind {
	case user.ProfileCompany:
		var p profile.CompanyProfile
		p, created, err = getOrCreate(u.UID, s.Repos.Profile.GetCompany, s.Repos.Profile.CreateCompany, profile.NewCompanyPlaceholder(u))
		out.Company = &p
	case user.ProfileApprentice:
		var p profile.ApprenticeProfile
		p, created, err = getOrCreate(u.UID, s.Repos.Profile.GetApprentice, s.Repos.Profile.CreateApprentice, profile.NewApprenticePlaceholder(u))
		out.Apprentice = &p
	case user.ProfileInstructor:
		var p profile.InstructorProfile
		p, created, err = getOrCreate(u.UID, s.Repos.Profile.GetInstructor, s.Repos.Profile.CreateInstructor, profile.NewInstructorPlaceholder(u))
		out.Instructor = &p
	default:
		return out, false, nil
	}
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("get or create %s profile: %w", kind, err)
	}
	if created {
		metrics.ObserveProfileProvisioned(string(kind))
		logging.L().WithField("user_id", u.UID).WithField("kind", kind).Info("placeholder profile provisioned")
	}
	return out, created, nil
}

// Load reads the profile a user of role owns. A missing row is ErrProfileMissing.
func (s *ProfileService) Load(role user.Role, uid uint) (profile.Profile, error) {
	kind := role.ProfileKind()
	out := profile.Profile{Kind: kind}
	var err error
	switch kind {
	case user.ProfileCompany:
		var p profile.CompanyProfile
		p, err = s.Repos.Profile.GetCompany(uid)
		out.Company = &p
	case user.ProfileApprentice:
		var p profile.ApprenticeProfile
		p, err = s.Repos.Profile.GetApprentice(uid)
		out.Apprentice = &p
	case user.ProfileInstructor:
		var p profile.InstructorProfile
		p, err = s.Repos.Profile.GetInstructor(uid)
		out.Instructor = &p
	default:
		return out, nil
	}
	if repository.IsNotFound(err) {
		return profile.Profile{Kind: kind}, ErrProfileMissing
	}
	if err != nil {
		return profile.Profile{Kind: kind}, err
	}
	return out, nil
}

func (s *ProfileService) View(ctx context.Context, id *authz.Identity) (profile.Profile, error) {
	return s.Load(id.Role, id.UserID)
}

func (s *ProfileService) Update(ctx context.Context, id *authz.Identity, in profile.UpdateInput) (profile.Profile, error) {
	current, _, err := s.GetOrCreate(ctx, id)
	if err != nil {
		return profile.Profile{}, err
	}

	switch current.Kind {
	case user.ProfileCompany:
		if in.Company == nil {
			return profile.Profile{}, NewValidationError("profile", "formulario de empresa requerido")
		}
		if in.Company.SectorID != nil {
			if _, err := s.Repos.Catalog.GetSector(*in.Company.SectorID); err != nil {
				if repository.IsNotFound(err) {
					return profile.Profile{}, ErrSectorNotFound
				}
				return profile.Profile{}, err
			}
		}
		before := *current.Company
		in.Company.Apply(current.Company)
		current.Company.Sector = nil
		if err := s.Repos.Profile.SaveCompany(current.Company); err != nil {
			if repository.IsUniqueViolation(err) {
				return profile.Profile{}, ErrDuplicateTaxID
			}
			return profile.Profile{}, err
		}
		utils.LogAuditWithConsole(ctx, id.UserID, "update", "company_profile", fmt.Sprintf("user_id=%d", id.UserID), before, current.Company, "", s.Repos.Audit)
	case user.ProfileApprentice:
		if in.Apprentice == nil {
			return profile.Profile{}, NewValidationError("profile", "formulario de aprendiz requerido")
		}
		if in.Apprentice.ProgramID != nil {
			if err := s.requireActiveProgram(*in.Apprentice.ProgramID); err != nil {
				return profile.Profile{}, err
			}
		}
		before := *current.Apprentice
		in.Apprentice.Apply(current.Apprentice)
		current.Apprentice.Program = nil
		if err := s.Repos.Profile.SaveApprentice(current.Apprentice); err != nil {
			if repository.IsUniqueViolation(err) {
				return profile.Profile{}, ErrDuplicateDocument
			}
			return profile.Profile{}, err
		}
		utils.LogAuditWithConsole(ctx, id.UserID, "update", "apprentice_profile", fmt.Sprintf("user_id=%d", id.UserID), before, current.Apprentice, "", s.Repos.Audit)
	case user.ProfileInstructor:
		if in.Instructor == nil {
			return profile.Profile{}, NewValidationError("profile", "formulario de instructor requerido")
		}
		before := *current.Instructor
		in.Instructor.Apply(current.Instructor)
		if err := s.Repos.Profile.SaveInstructor(current.Instructor); err != nil {
			if repository.IsUniqueViolation(err) {
				return profile.Profile{}, ErrDuplicateDocument
			}
			return profile.Profile{}, err
		}
		utils.LogAuditWithConsole(ctx, id.UserID, "update", "instructor_profile", fmt.Sprintf("user_id=%d", id.UserID), before, current.Instructor, "", s.Repos.Audit)
	default:
		return profile.Profile{}, ErrPermissionDenied
	}
	return current, nil
}

func (s *ProfileService) requireActiveProgram(programID uint) error {
	prog, err := s.Repos.Catalog.GetProgram(programID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrProgramNotFound
		}
		return err
	}
	if !prog.Active {
		return ErrInactiveProgram
	}
	return nil
}

// UploadPhoto stores an image and records its key on the caller's profile:
// the logo for companies, the photo otherwise.
func (s *ProfileService) UploadPhoto(ctx context.Context, id *authz.Identity, filename, contentType string, r io.Reader, size int64) (string, error) {
	if s.Blobs == nil {
		return "", errors.New("blob storage not configured")
	}
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", ErrUnsupportedImage
	}
	if size <= 0 || size > config.MaxUploadBytes {
		return "", ErrImageTooLarge
	}
	if fe := strings.ToLower(filepath.Ext(filename)); fe == ".jpeg" || fe == ".jpg" || fe == ".png" || fe == ".webp" {
		ext = fe
	}

	current, _, err := s.GetOrCreate(ctx, id)
	if err != nil {
		return "", err
	}
	if current.Kind == user.ProfileNone {
		return "", ErrPermissionDenied
	}

	key := fmt.Sprintf("profiles/%s/%d/%s%s", current.Kind, id.UserID, uuid.NewString(), ext)
	if err := s.Blobs.Put(ctx, key, contentType, r, size); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	var previous string
	switch current.Kind {
	case user.ProfileCompany:
		previous, current.Company.LogoKey = current.Company.LogoKey, key
		current.Company.Sector = nil
		err = s.Repos.Profile.SaveCompany(current.Company)
	case user.ProfileApprentice:
		previous, current.Apprentice.PhotoKey = current.Apprentice.PhotoKey, key
		current.Apprentice.Program = nil
		err = s.Repos.Profile.SaveApprentice(current.Apprentice)
	case user.ProfileInstructor:
		previous, current.Instructor.PhotoKey = current.Instructor.PhotoKey, key
		err = s.Repos.Profile.SaveInstructor(current.Instructor)
	}
	if err != nil {
		_ = s.Blobs.Delete(ctx, key)
		return "", err
	}
	if previous != "" {
		if err := s.Blobs.Delete(ctx, previous); err != nil {
			logging.L().WithError(err).WithField("key", previous).Warn("failed to remove replaced image")
		}
	}
	return key, nil
}
