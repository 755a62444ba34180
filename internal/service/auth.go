package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/logger"
	"desqworx-backend/internal/repository"
	"desqworx-backend/internal/security"
)

// BootstrapAdmin holds the initial super-admin credentials created on first
// startup when no super admin exists yet.
type BootstrapAdmin struct {
	FullName string
	Email    string
	Password string
}

type authService struct {
	userRepo     repository.UserRepository
	companyRepo  repository.CompanyRepository
	tokenManager security.TokenManager
	bootstrap    BootstrapAdmin
}

func NewAuthService(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	tokenManager security.TokenManager,
	bootstrap BootstrapAdmin,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		tokenManager: tokenManager,
		bootstrap:    bootstrap,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}

	token, err := s.tokenManager.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) GetProfile(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, actor.UserID)
}

// UpdateProfile lets any authenticated user change their own name, email and
// phone. Role and company assignment are not self-service.
func (s *authService) UpdateProfile(ctx context.Context, actor domain.Actor, fullName, email, phone string) (*domain.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if fullName == "" || email == "" || phone == "" {
		return nil, fmt.Errorf("%w: full name, email and phone are required", domain.ErrConstraintViolation)
	}
	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	user.FullName = fullName
	user.Email = email
	user.Phone = phone
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *authService) ChangePassword(ctx context.Context, actor domain.Actor, current, next string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if len(next) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrConstraintViolation)
	}
	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", domain.ErrUnauthenticated)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

// EnsureSuperAdmin creates the management company and the initial super-admin
// account when the users table has none. Safe to call on every startup.
func (s *authService) EnsureSuperAdmin(ctx context.Context) error {
	count, err := s.userRepo.CountByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if s.bootstrap.Email == "" || s.bootstrap.Password == "" {
		return fmt.Errorf("no super admin exists and no bootstrap credentials configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.bootstrap.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		FullName: s.bootstrap.FullName,
		Email:    s.bootstrap.Email,
		Role:     domain.RoleSuperAdmin,
	}
	company := &domain.Company{
		Name:   "DesqWorx Management",
		Status: domain.CompanyStatusActive,
	}

	// The management company and its admin reference each other, so ids are
	// assigned up front.
	user.ID = uuid.New()
	company.AdminID = user.ID
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return err
	}
	user.CompanyID = company.ID
	user.PasswordHash = string(hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("Bootstrap super admin created", "email", user.Email)
	return nil
}
