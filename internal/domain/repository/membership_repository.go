package repository

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// MembershipRepository define el puerto de persistencia para Membership.
type MembershipRepository interface {
	Create(m *entity.Membership) error
	// GetActiveByUser devuelve la membresía activa del usuario (nil si no tiene).
	// Para usuarios de cliente se espera una sola; se toma la más antigua.
	GetActiveByUser(userID string) (*entity.Membership, error)
	ListByCompany(companyID string) ([]*entity.Membership, error)
	// SetStatusByCompany cambia el estado de todas las membresías de la empresa.
	SetStatusByCompany(companyID, status string) error
}
