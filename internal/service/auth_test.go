package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/security"
	"desqworx-backend/internal/service"
)

func newTestTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret", time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &domain.User{
		ID:           uuid.New(),
		Email:        "admin@acme.test",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tm := newTestTokenManager()
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), tm, service.BootstrapAdmin{})

		userRepo.On("GetByEmail", ctx, "admin@acme.test").Return(account, nil)

		user, token, err := svc.Login(ctx, "admin@acme.test", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, account.ID, user.ID)

		actor, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, account.ID, actor.UserID)
		assert.Equal(t, domain.RoleAdmin, actor.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		userRepo.On("GetByEmail", ctx, "admin@acme.test").Return(account, nil)

		_, _, err := svc.Login(ctx, "admin@acme.test", "wrong")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("UnknownEmailLooksLikeBadCredentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		userRepo.On("GetByEmail", ctx, "nobody@acme.test").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@acme.test", "whatever")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestAuthService_EnsureSuperAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("NoopWhenSuperAdminExists", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		userRepo.On("CountByRole", ctx, domain.RoleSuperAdmin).Return(int32(1), nil)

		err := svc.EnsureSuperAdmin(ctx)
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("BootstrapsCompanyAndAccount", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		svc := service.NewAuthService(userRepo, companyRepo, newTestTokenManager(), service.BootstrapAdmin{
			FullName: "Root Admin",
			Email:    "root@desqworx.test",
			Password: "bootstrap-pass",
		})

		userRepo.On("CountByRole", ctx, domain.RoleSuperAdmin).Return(int32(0), nil)
		companyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).Return(nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "root@desqworx.test" &&
				u.Role == domain.RoleSuperAdmin &&
				u.PasswordHash != "" &&
				u.PasswordHash != "bootstrap-pass"
		})).Return(nil)

		err := svc.EnsureSuperAdmin(ctx)
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		companyRepo.AssertExpectations(t)
	})

	t.Run("FailsWithoutBootstrapCredentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		userRepo.On("CountByRole", ctx, domain.RoleSuperAdmin).Return(int32(0), nil)

		err := svc.EnsureSuperAdmin(ctx)
		assert.Error(t, err)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	account := &domain.User{
		ID:       uuid.New(),
		FullName: "Old Name",
		Email:    "old@acme.test",
		Phone:    "555-0100",
		Role:     domain.RoleAdmin,
	}
	actor := domain.Actor{UserID: account.ID, Role: domain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		stored := *account
		userRepo.On("GetByID", ctx, account.ID).Return(&stored, nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == account.ID && u.FullName == "New Name" && u.Email == "new@acme.test"
		})).Return(nil)

		user, err := svc.UpdateProfile(ctx, actor, "New Name", "new@acme.test", "555-0101")
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.FullName)
		assert.Equal(t, "555-0101", user.Phone)
		userRepo.AssertExpectations(t)
	})

	t.Run("RejectsEmptyFields", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		_, err := svc.UpdateProfile(ctx, actor, "", "new@acme.test", "555-0101")
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
		userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("UnauthenticatedActor", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		_, err := svc.UpdateProfile(ctx, domain.Actor{}, "New Name", "new@acme.test", "555-0101")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &domain.User{
		ID:           uuid.New(),
		Email:        "admin@acme.test",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	actor := domain.Actor{UserID: account.ID, Role: domain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		userRepo.On("GetByID", ctx, account.ID).Return(account, nil)
		userRepo.On("UpdatePassword", ctx, account.ID, mock.MatchedBy(func(h string) bool {
			return bcrypt.CompareHashAndPassword([]byte(h), []byte("battery-staple")) == nil
		})).Return(nil)

		err := svc.ChangePassword(ctx, actor, "correct-horse", "battery-staple")
		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		userRepo.On("GetByID", ctx, account.ID).Return(account, nil)

		err := svc.ChangePassword(ctx, actor, "wrong", "battery-staple")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		userRepo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("TooShort", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockCompanyRepo), newTestTokenManager(), service.BootstrapAdmin{})

		err := svc.ChangePassword(ctx, actor, "correct-horse", "short")
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
		userRepo.AssertNotCalled(t, "GetByID")
	})
}
