package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/repository"
)

type visitorService struct {
	visitorRepo repository.VisitorRepository
}

func NewVisitorService(visitorRepo repository.VisitorRepository) VisitorService {
	return &visitorService{visitorRepo: visitorRepo}
}

func validateVisitor(visitor *domain.Visitor) error {
	if visitor.Name == "" {
		return fmt.Errorf("%w: visitor name is required", domain.ErrConstraintViolation)
	}
	if visitor.Phone == "" {
		return fmt.Errorf("%w: visitor phone is required", domain.ErrConstraintViolation)
	}
	if visitor.Purpose == "" {
		return fmt.Errorf("%w: visit purpose is required", domain.ErrConstraintViolation)
	}
	return nil
}

func (s *visitorService) LogVisitor(ctx context.Context, actor domain.Actor, visitor *domain.Visitor) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	if err := validateVisitor(visitor); err != nil {
		return err
	}
	return s.visitorRepo.Create(ctx, visitor)
}

func (s *visitorService) GetVisitor(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Visitor, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	return s.visitorRepo.GetByID(ctx, id)
}

func (s *visitorService) ListVisitors(ctx context.Context, actor domain.Actor) ([]domain.Visitor, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	return s.visitorRepo.List(ctx)
}

func (s *visitorService) UpdateVisitor(ctx context.Context, actor domain.Actor, visitor *domain.Visitor) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	if err := validateVisitor(visitor); err != nil {
		return err
	}
	return s.visitorRepo.Update(ctx, visitor)
}

func (s *visitorService) DeleteVisitor(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	return s.visitorRepo.Delete(ctx, id)
}
