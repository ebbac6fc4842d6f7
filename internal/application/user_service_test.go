package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/oasis/internal/api/middleware"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/profile"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashed(t *testing.T, plain string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// --------------------- Register ---------------------
func TestRegisterCompany_CreatesAccountAndProfile(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().GetUserByUsername("acme").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.RoleCompany, u.Role)
		assert.NotEqual(t, "s3cretpass", u.Password)
		u.UID = 20
		return nil
	})
	m.profile.EXPECT().CreateCompany(gomock.Any()).DoAndReturn(func(p *profile.CompanyProfile) error {
		assert.Equal(t, uint(20), p.UserID)
		assert.Equal(t, "900123", p.TaxID)
		assert.Equal(t, "ACME SAS", p.LegalName)
		return nil
	})

	u, err := svc.User.Register(context.Background(), user.RoleCompany,
		user.RegisterInput{Username: "acme", Password: "s3cretpass"},
		profile.UpdateInput{Company: &profile.CompanyInput{LegalName: "ACME SAS", TaxID: "900123", Size: profile.SizeMicro}})
	require.NoError(t, err)
	assert.Equal(t, uint(20), u.UID)
	assert.True(t, u.IsActive)
}

func TestRegisterCompany_DuplicateTaxID(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().GetUserByUsername("acme").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().CreateUser(gomock.Any()).Return(nil)
	m.profile.EXPECT().CreateCompany(gomock.Any()).Return(repository.ErrDuplicate)

	_, err := svc.User.Register(context.Background(), user.RoleCompany,
		user.RegisterInput{Username: "acme", Password: "s3cretpass"},
		profile.UpdateInput{Company: &profile.CompanyInput{LegalName: "ACME", TaxID: "900123"}})
	assert.ErrorIs(t, err, application.ErrDuplicateTaxID)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().GetUserByUsername("maria").Return(user.User{UID: 1}, nil)

	_, err := svc.User.Register(context.Background(), user.RoleInstructor,
		user.RegisterInput{Username: "maria", Password: "s3cretpass"},
		profile.UpdateInput{Instructor: &profile.InstructorInput{DocumentNumber: "1"}})
	assert.ErrorIs(t, err, application.ErrUsernameTaken)
}

func TestRegisterApprentice_RequiresActiveProgram(t *testing.T) {
	ctx := context.Background()
	account := user.RegisterInput{Username: "ana", Password: "s3cretpass"}

	t.Run("no program", func(t *testing.T) {
		svc, _ := setupServices(t)
		_, err := svc.User.Register(ctx, user.RoleApprentice, account,
			profile.UpdateInput{Apprentice: &profile.ApprenticeInput{DocumentNumber: "1"}})
		assert.ErrorIs(t, err, application.ErrProgramRequired)
	})

	t.Run("inactive program", func(t *testing.T) {
		svc, m := setupServices(t)
		m.catalog.EXPECT().GetProgram(uint(2)).Return(catalogProgram(2, false), nil)
		_, err := svc.User.Register(ctx, user.RoleApprentice, account,
			profile.UpdateInput{Apprentice: &profile.ApprenticeInput{DocumentNumber: "1", ProgramID: ptr(uint(2))}})
		assert.ErrorIs(t, err, application.ErrInactiveProgram)
	})
}

func TestRegister_AdminRoleRefused(t *testing.T) {
	svc, _ := setupServices(t)
	_, err := svc.User.Register(context.Background(), user.RoleAdmin, user.RegisterInput{Username: "x", Password: "s3cretpass"}, profile.UpdateInput{})
	assert.ErrorIs(t, err, application.ErrPermissionDenied)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, m := setupServices(t)

	usr := user.User{UID: 1, Username: "bob", Password: hashed(t, "123456"), Role: user.RoleCompany, IsActive: true}
	m.user.EXPECT().GetUserByUsername("bob").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u user.User, exp time.Duration) (string, error) {
		assert.Equal(t, config.TokenTTL, exp)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.User.Login("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, m := setupServices(t)
	m.user.EXPECT().GetUserByUsername("bob").Return(user.User{Username: "bob", Password: hashed(t, "123456"), IsActive: true}, nil)

	_, _, err := svc.User.Login("bob", "nope")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, m := setupServices(t)
	m.user.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.User.Login("ghost", "x")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestLogin_Inactive(t *testing.T) {
	svc, m := setupServices(t)
	m.user.EXPECT().GetUserByUsername("bob").Return(user.User{Username: "bob", Password: hashed(t, "123456")}, nil)

	_, _, err := svc.User.Login("bob", "123456")
	assert.ErrorIs(t, err, application.ErrInactiveUser)
}

// --------------------- ChangePassword ---------------------
func TestChangePassword(t *testing.T) {
	svc, m := setupServices(t)
	id := identity(5, user.RoleApprentice)

	m.user.EXPECT().GetUserByID(uint(5)).Return(user.User{UID: 5, Password: hashed(t, "oldpass12")}, nil).Times(2)
	m.user.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpass12")))
		return nil
	})

	err := svc.User.ChangePassword(context.Background(), id, user.ChangePasswordInput{OldPassword: "oldpass12", NewPassword: "newpass12"})
	assert.NoError(t, err)

	err = svc.User.ChangePassword(context.Background(), id, user.ChangePasswordInput{OldPassword: "wrong", NewPassword: "newpass12"})
	assert.ErrorIs(t, err, application.ErrIncorrectPassword)
}

// --------------------- Admin management ---------------------
func TestListUsers_FiltersAndPages(t *testing.T) {
	svc, m := setupServices(t)
	role := user.RoleCompany

	m.user.EXPECT().ListUsers(repository.UserQuery{Search: "ac", Role: &role, Page: 2, Limit: config.UsersPageSize}).
		Return([]user.User{{UID: 1}}, int64(11), nil)

	users, total, err := svc.User.List(user.ListUsersQuery{Search: " ac ", Role: "COMPANY", Page: 2})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(11), total)
}

func TestCreateUser_ProvisionsPlaceholder(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().GetUserByUsername("inst").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.UID = 30
		return nil
	})
	m.profile.EXPECT().CreateInstructor(gomock.Any()).DoAndReturn(func(p *profile.InstructorProfile) error {
		assert.Equal(t, "TEMP-30", p.DocumentNumber)
		return nil
	})

	u, err := svc.User.Create(context.Background(), adminIdentity(), user.CreateUserInput{
		RegisterInput: user.RegisterInput{Username: "inst", Password: "s3cretpass"},
		Role:          user.RoleInstructor,
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleInstructor, u.Role)
}

func TestCreateUser_SuperuserForcedAdmin(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().GetUserByUsername("root2").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().CreateUser(gomock.Any()).Return(nil)

	u, err := svc.User.Create(context.Background(), adminIdentity(), user.CreateUserInput{
		RegisterInput: user.RegisterInput{Username: "root2", Password: "s3cretpass"},
		Role:          user.RoleCompany,
		IsSuperuser:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)
}

func TestUpdateUser_KeepsRole(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().GetUserByID(uint(9)).Return(user.User{UID: 9, Username: "ana", Role: user.RoleApprentice, IsActive: true}, nil)
	m.user.EXPECT().SaveUser(gomock.Any()).Return(nil)

	u, err := svc.User.Update(context.Background(), adminIdentity(), 9, user.UpdateUserInput{
		Email:    ptr("ana@example.com"),
		IsActive: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleApprentice, u.Role)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.False(t, u.IsActive)
}

func TestReservedAdminProtected(t *testing.T) {
	svc, m := setupServices(t)
	reserved := user.User{UID: 1, Username: config.ReservedAdminUsername, Role: user.RoleAdmin, IsSuperuser: true, IsActive: true}

	m.user.EXPECT().GetUserByID(uint(1)).Return(reserved, nil).Times(2)

	err := svc.User.Delete(context.Background(), adminIdentity(), 1)
	assert.ErrorIs(t, err, application.ErrReservedAdminUser)

	_, err = svc.User.Update(context.Background(), adminIdentity(), 1, user.UpdateUserInput{IsActive: ptr(false)})
	assert.ErrorIs(t, err, application.ErrReservedAdminUser)
}

func TestDeleteUser(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().GetUserByID(uint(9)).Return(user.User{UID: 9, Username: "ana"}, nil)
	m.user.EXPECT().DeleteUser(uint(9)).Return(nil)

	assert.NoError(t, svc.User.Delete(context.Background(), adminIdentity(), 9))
}

func TestUserDetail_MissingProfileIsNotAnError(t *testing.T) {
	svc, m := setupServices(t)

	m.user.EXPECT().GetUserByID(uint(9)).Return(user.User{UID: 9, Username: "ana", Role: user.RoleApprentice}, nil)
	m.profile.EXPECT().GetApprentice(uint(9)).Return(profile.ApprenticeProfile{}, gorm.ErrRecordNotFound)

	d, err := svc.User.Detail(9)
	require.NoError(t, err)
	assert.Equal(t, user.ProfileApprentice, d.Profile.Kind)
	assert.Nil(t, d.Profile.Apprentice)
}

func TestEnsureReservedAdmin(t *testing.T) {
	orig := config.ReservedAdminPassword
	t.Cleanup(func() { config.ReservedAdminPassword = orig })

	t.Run("skipped without password", func(t *testing.T) {
		config.ReservedAdminPassword = ""
		svc, _ := setupServices(t)
		assert.NoError(t, svc.User.EnsureReservedAdmin())
	})

	t.Run("creates superuser", func(t *testing.T) {
		config.ReservedAdminPassword = "bootstrap1"
		svc, m := setupServices(t)
		m.user.EXPECT().GetUserByUsername(config.ReservedAdminUsername).Return(user.User{}, gorm.ErrRecordNotFound)
		m.user.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
			assert.True(t, u.IsSuperuser)
			assert.Equal(t, user.RoleAdmin, u.Role)
			return nil
		})
		assert.NoError(t, svc.User.EnsureReservedAdmin())
	})

	t.Run("lookup failure", func(t *testing.T) {
		config.ReservedAdminPassword = "bootstrap1"
		svc, m := setupServices(t)
		m.user.EXPECT().GetUserByUsername(config.ReservedAdminUsername).Return(user.User{}, errors.New("db down"))
		assert.Error(t, svc.User.EnsureReservedAdmin())
	})
}
