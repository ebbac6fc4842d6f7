package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/oasis/internal/api/middleware"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/logging"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/linskybing/oasis/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("usuario o contrasena incorrectos")
	ErrInactiveUser        = errors.New("la cuenta esta desactivada")
	ErrIncorrectPassword   = NewValidationError("old_password", "la contrasena actual es incorrecta")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = NewValidationError("username", "el nombre de usuario ya existe")
	ErrReservedAdminUser   = errors.New("cannot delete or deactivate reserved admin user")
	ErrProgramRequired     = NewValidationError("program_id", "selecciona un programa de formacion")
)

// RegisterCompanyInput is the public sign-up form for companies.
type RegisterCompanyInput struct {
	user.RegisterInput
	profile.CompanyInput
}

type RegisterApprenticeInput struct {
	user.RegisterInput
	profile.ApprenticeInput
}

type RegisterInstructorInput struct {
	user.RegisterInput
	profile.InstructorInput
}

// UserDetail is the admin view of one account with its role profile.
type UserDetail struct {
	User    user.UserDTO    `json:"user"`
	Profile profile.Profile `json:"profile"`
}

type UserService struct {
	Repos    *repository.Repos
	Profiles *ProfileService
}

func NewUserService(repos *repository.Repos, profiles *ProfileService) *UserService {
	return &UserService{
		Repos:    repos,
		Profiles: profiles,
	}
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrPasswordHashFailure
	}
	return string(hashed), nil
}

func (s *UserService) newAccount(in user.RegisterInput, role user.Role) (user.User, error) {
	hashed, err := hashPassword(in.Password)
	if err != nil {
		return user.User{}, err
	}
	return user.User{
		Username:  strings.TrimSpace(in.Username),
		Email:     in.Email,
		Password:  hashed,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      role,
		IsActive:  true,
	}, nil
}

func (s *UserService) createAccount(tx *repository.Repos, u *user.User) error {
	_, err := tx.User.GetUserByUsername(u.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !repository.IsNotFound(err) {
		return err
	}
	if err := tx.User.CreateUser(u); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Register creates an account of role together with its completed profile in
// one transaction. in must carry the form matching role.
func (s *UserService) Register(ctx context.Context, role user.Role, account user.RegisterInput, in profile.UpdateInput) (user.User, error) {
	if role == user.RoleAdmin || !role.Valid() {
		return user.User{}, ErrPermissionDenied
	}
	u, err := s.newAccount(account, role)
	if err != nil {
		return user.User{}, err
	}

	switch role {
	case user.RoleCompany:
		if in.Company == nil {
			return user.User{}, NewValidationError("profile", "formulario de empresa requerido")
		}
	case user.RoleApprentice:
		if in.Apprentice == nil {
			return user.User{}, NewValidationError("profile", "formulario de aprendiz requerido")
		}
		if in.Apprentice.ProgramID == nil {
			return user.User{}, ErrProgramRequired
		}
		if err := s.Profiles.requireActiveProgram(*in.Apprentice.ProgramID); err != nil {
			return user.User{}, err
		}
	case user.RoleInstructor:
		if in.Instructor == nil {
			return user.User{}, NewValidationError("profile", "formulario de instructor requerido")
		}
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := s.createAccount(tx, &u); err != nil {
			return err
		}
		switch role {
		case user.RoleCompany:
			p := profile.NewCompanyPlaceholder(u)
			in.Company.Apply(&p)
			if err := tx.Profile.CreateCompany(&p); err != nil {
				if repository.IsUniqueViolation(err) {
					return ErrDuplicateTaxID
				}
				return err
			}
		case user.RoleApprentice:
			p := profile.NewApprenticePlaceholder(u)
			in.Apprentice.Apply(&p)
			if err := tx.Profile.CreateApprentice(&p); err != nil {
				if repository.IsUniqueViolation(err) {
					return ErrDuplicateDocument
				}
				return err
			}
		case user.RoleInstructor:
			p := profile.NewInstructorPlaceholder(u)
			in.Instructor.Apply(&p)
			if err := tx.Profile.CreateInstructor(&p); err != nil {
				if repository.IsUniqueViolation(err) {
					return ErrDuplicateDocument
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	utils.LogAuditWithConsole(ctx, u.UID, "register", "user", fmt.Sprintf("u_id=%d", u.UID), nil, user.ToDTO(u), string(role), s.Repos.Audit)
	return u, nil
}

// Login checks the credentials and issues a session token.
func (s *UserService) Login(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		if repository.IsNotFound(err) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !usr.IsActive {
		return user.User{}, "", ErrInactiveUser
	}

	token, err := middleware.GenerateToken(usr, config.TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id *authz.Identity, in user.ChangePasswordInput) error {
	usr, err := s.Repos.User.GetUserByID(id.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(in.OldPassword)); err != nil {
		return ErrIncorrectPassword
	}
	hashed, err := hashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	usr.Password = hashed
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return err
	}
	utils.LogAuditWithConsole(ctx, id.UserID, "change_password", "user", fmt.Sprintf("u_id=%d", usr.UID), nil, nil, "", s.Repos.Audit)
	return nil
}

// List pages through accounts for the admin listing.
func (s *UserService) List(q user.ListUsersQuery) ([]user.User, int64, error) {
	query := repository.UserQuery{
		Search: strings.TrimSpace(q.Search),
		Page:   q.Page,
		Limit:  config.UsersPageSize,
	}
	if q.Role != "" {
		role, err := user.ParseRole(q.Role)
		if err != nil {
			return nil, 0, NewValidationError("role", err.Error())
		}
		query.Role = &role
	}
	return s.Repos.User.ListUsers(query)
}

func (s *UserService) Detail(id uint) (UserDetail, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return UserDetail{}, ErrUserNotFound
		}
		return UserDetail{}, err
	}
	prof, err := s.Profiles.Load(usr.Role, usr.UID)
	if err != nil && !errors.Is(err, ErrProfileMissing) {
		return UserDetail{}, err
	}
	return UserDetail{User: user.ToDTO(usr), Profile: prof}, nil
}

// Create lets an admin open an account of any role. A placeholder profile is
// provisioned in the same transaction.
func (s *UserService) Create(ctx context.Context, admin *authz.Identity, in user.CreateUserInput) (user.User, error) {
	if !admin.IsAdmin() {
		return user.User{}, ErrPermissionDenied
	}
	if !in.Role.Valid() {
		return user.User{}, NewValidationError("role", "rol desconocido")
	}
	u, err := s.newAccount(in.RegisterInput, in.Role)
	if err != nil {
		return user.User{}, err
	}
	u.IsSuperuser = in.IsSuperuser
	u.Normalize()

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := s.createAccount(tx, &u); err != nil {
			return err
		}
		switch u.Role.ProfileKind() {
		case user.ProfileCompany:
			p := profile.NewCompanyPlaceholder(u)
			return tx.Profile.CreateCompany(&p)
		case user.ProfileApprentice:
			p := profile.NewApprenticePlaceholder(u)
			return tx.Profile.CreateApprentice(&p)
		case user.ProfileInstructor:
			p := profile.NewInstructorPlaceholder(u)
			return tx.Profile.CreateInstructor(&p)
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	utils.LogAuditWithConsole(ctx, admin.UserID, "create", "user", fmt.Sprintf("u_id=%d", u.UID), nil, user.ToDTO(u), "", s.Repos.Audit)
	return u, nil
}

// Update edits account fields. The role is fixed at creation.
func (s *UserService) Update(ctx context.Context, admin *authz.Identity, id uint, in user.UpdateUserInput) (user.User, error) {
	if !admin.IsAdmin() {
		return user.User{}, ErrPermissionDenied
	}
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	before := user.ToDTO(usr)

	if usr.Username == config.ReservedAdminUsername && in.IsActive != nil && !*in.IsActive {
		return user.User{}, ErrReservedAdminUser
	}
	if in.Email != nil {
		usr.Email = *in.Email
	}
	if in.FirstName != nil {
		usr.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		usr.LastName = *in.LastName
	}
	if in.IsActive != nil {
		usr.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hashed, err := hashPassword(*in.Password)
		if err != nil {
			return user.User{}, err
		}
		usr.Password = hashed
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "update", "user", fmt.Sprintf("u_id=%d", usr.UID), before, user.ToDTO(usr), "", s.Repos.Audit)
	return usr, nil
}

func (s *UserService) Delete(ctx context.Context, admin *authz.Identity, id uint) error {
	if !admin.IsAdmin() {
		return ErrPermissionDenied
	}
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if usr.Username == config.ReservedAdminUsername {
		return ErrReservedAdminUser
	}
	if err := s.Repos.User.DeleteUser(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(ctx, admin.UserID, "delete", "user", fmt.Sprintf("u_id=%d", id), user.ToDTO(usr), nil, "", s.Repos.Audit)
	return nil
}

// EnsureReservedAdmin creates the bootstrap superuser when a password is
// configured and the account does not exist yet.
func (s *UserService) EnsureReservedAdmin() error {
	if config.ReservedAdminPassword == "" {
		logging.L().Warn("RESERVED_ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}
	existing, err := s.Repos.User.GetUserByUsername(config.ReservedAdminUsername)
	if err == nil {
		if existing.IsSuperuser && existing.IsActive {
			return nil
		}
		existing.IsSuperuser = true
		existing.IsActive = true
		return s.Repos.User.SaveUser(&existing)
	}
	if !repository.IsNotFound(err) {
		return err
	}

	hashed, err := hashPassword(config.ReservedAdminPassword)
	if err != nil {
		return err
	}
	admin := user.User{
		Username:    config.ReservedAdminUsername,
		Password:    hashed,
		Role:        user.RoleAdmin,
		IsSuperuser: true,
		IsActive:    true,
	}
	if err := s.Repos.User.CreateUser(&admin); err != nil {
		return err
	}
	logging.L().WithField("username", admin.Username).Info("reserved admin created")
	return nil
}
