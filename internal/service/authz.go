package service

import (
	"github.com/google/uuid"

	"desqworx-backend/internal/domain"
)

// requireActor rejects calls that arrive without an authenticated identity.
func requireActor(actor domain.Actor) error {
	if actor.UserID == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	switch actor.Role {
	case domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleEmployee:
		return nil
	}
	return domain.ErrUnauthenticated
}

func requireSuperAdmin(actor domain.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	switch actor.Role {
	case domain.RoleSuperAdmin:
		return nil
	case domain.RoleAdmin, domain.RoleEmployee:
		return domain.ErrForbidden
	}
	return domain.ErrUnauthenticated
}

// requireCompanyAdmin allows the super admin everywhere and a company admin
// only on their own company.
func requireCompanyAdmin(actor domain.Actor, company *domain.Company) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	switch actor.Role {
	case domain.RoleSuperAdmin:
		return nil
	case domain.RoleAdmin:
		if company.AdminID == actor.UserID {
			return nil
		}
		return domain.ErrForbidden
	case domain.RoleEmployee:
		return domain.ErrForbidden
	}
	return domain.ErrUnauthenticated
}
