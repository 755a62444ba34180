package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/service"
)

func superAdmin() domain.Actor {
	return domain.Actor{UserID: uuid.New(), Role: domain.RoleSuperAdmin}
}

func TestCreditService_AddCredits(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		creditRepo := new(MockCreditRepo)
		svc := service.NewCreditService(creditRepo, new(MockCompanyRepo), new(MockUserRepo), new(MockEmailService))
		actor := superAdmin()

		creditRepo.On("RecordTransaction", ctx, companyID, int32(100), domain.CreditActionAssigned, "Quarterly top-up", actor.UserID).
			Return(int32(150), nil)

		balance, err := svc.AddCredits(ctx, actor, companyID, 100, "Quarterly top-up")
		assert.NoError(t, err)
		assert.Equal(t, int32(150), balance)
	})

	t.Run("DefaultDescription", func(t *testing.T) {
		creditRepo := new(MockCreditRepo)
		svc := service.NewCreditService(creditRepo, new(MockCompanyRepo), new(MockUserRepo), new(MockEmailService))
		actor := superAdmin()

		creditRepo.On("RecordTransaction", ctx, companyID, int32(50), domain.CreditActionAssigned, "Credits assigned by admin", actor.UserID).
			Return(int32(50), nil)

		_, err := svc.AddCredits(ctx, actor, companyID, 50, "")
		assert.NoError(t, err)
		creditRepo.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		creditRepo := new(MockCreditRepo)
		svc := service.NewCreditService(creditRepo, new(MockCompanyRepo), new(MockUserRepo), new(MockEmailService))

		_, err := svc.AddCredits(ctx, superAdmin(), companyID, 0, "noop")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = svc.AddCredits(ctx, superAdmin(), companyID, -5, "negative")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		creditRepo.AssertNotCalled(t, "RecordTransaction")
	})

	t.Run("ForbiddenForCompanyAdmin", func(t *testing.T) {
		creditRepo := new(MockCreditRepo)
		svc := service.NewCreditService(creditRepo, new(MockCompanyRepo), new(MockUserRepo), new(MockEmailService))

		actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}
		_, err := svc.AddCredits(ctx, actor, companyID, 100, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCreditService_Deduct(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		creditRepo := new(MockCreditRepo)
		companyRepo := new(MockCompanyRepo)
		svc := service.NewCreditService(creditRepo, companyRepo, new(MockUserRepo), new(MockEmailService))
		actor := superAdmin()

		creditRepo.On("GetBalance", ctx, companyID).Return(int32(100), nil)
		creditRepo.On("RecordTransaction", ctx, companyID, int32(30), domain.CreditActionUsed, "Manual adjustment", actor.UserID).
			Return(int32(70), nil)
		companyRepo.On("GetByID", ctx, companyID).
			Return(&domain.Company{ID: companyID, SeatPrice: 10}, nil)

		balance, err := svc.Deduct(ctx, actor, companyID, 30, "Manual adjustment")
		assert.NoError(t, err)
		assert.Equal(t, int32(70), balance)
	})

	t.Run("InsufficientBalanceShortCircuits", func(t *testing.T) {
		creditRepo := new(MockCreditRepo)
		svc := service.NewCreditService(creditRepo, new(MockCompanyRepo), new(MockUserRepo), new(MockEmailService))

		creditRepo.On("GetBalance", ctx, companyID).Return(int32(20), nil)

		_, err := svc.Deduct(ctx, superAdmin(), companyID, 30, "too much")
		assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
		creditRepo.AssertNotCalled(t, "RecordTransaction")
	})

	t.Run("LowBalanceTriggersAlert", func(t *testing.T) {
		creditRepo := new(MockCreditRepo)
		companyRepo := new(MockCompanyRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewCreditService(creditRepo, companyRepo, userRepo, emailSvc)
		actor := superAdmin()
		adminID := uuid.New()

		creditRepo.On("GetBalance", ctx, companyID).Return(int32(12), nil)
		creditRepo.On("RecordTransaction", ctx, companyID, int32(7), domain.CreditActionUsed, "adjustment", actor.UserID).
			Return(int32(5), nil)
		companyRepo.On("GetByID", ctx, companyID).
			Return(&domain.Company{ID: companyID, Name: "Acme", AdminID: adminID, SeatPrice: 10}, nil)
		userRepo.On("GetByID", ctx, adminID).
			Return(&domain.User{ID: adminID, Email: "admin@acme.test"}, nil)
		emailSvc.On("SendLowCreditAlert", ctx, "admin@acme.test", "Acme", int32(5), int32(10)).
			Return(nil)

		_, err := svc.Deduct(ctx, actor, companyID, 7, "adjustment")
		assert.NoError(t, err)
		emailSvc.AssertExpectations(t)
	})
}

func TestCreditService_SetCredits(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("OverrideSkipsLedger", func(t *testing.T) {
		creditRepo := new(MockCreditRepo)
		companyRepo := new(MockCompanyRepo)
		svc := service.NewCreditService(creditRepo, companyRepo, new(MockUserRepo), new(MockEmailService))

		companyRepo.On("SetCredits", ctx, companyID, int32(500)).Return(nil)

		err := svc.SetCredits(ctx, superAdmin(), companyID, 500)
		assert.NoError(t, err)
		creditRepo.AssertNotCalled(t, "RecordTransaction")
	})

	t.Run("RejectsNegativeBalance", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		svc := service.NewCreditService(new(MockCreditRepo), companyRepo, new(MockUserRepo), new(MockEmailService))

		err := svc.SetCredits(ctx, superAdmin(), companyID, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		companyRepo.AssertNotCalled(t, "SetCredits")
	})

	t.Run("ForbiddenForEmployee", func(t *testing.T) {
		svc := service.NewCreditService(new(MockCreditRepo), new(MockCompanyRepo), new(MockUserRepo), new(MockEmailService))

		actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleEmployee}
		err := svc.SetCredits(ctx, actor, companyID, 100)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCreditService_GetHistory(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	creditRepo := new(MockCreditRepo)
	svc := service.NewCreditService(creditRepo, new(MockCompanyRepo), new(MockUserRepo), new(MockEmailService))

	entries := []domain.CreditEntry{{Amount: 10, Action: domain.CreditActionUsed}}
	// Page and page size below 1 normalize to the defaults.
	creditRepo.On("ListEntries", ctx, companyID, int32(1), int32(10)).Return(entries, int32(1), nil)

	res, total, err := svc.GetHistory(ctx, companyID, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, res, 1)
}
