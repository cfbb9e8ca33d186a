package repository

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	Create(service *entity.Service) error
	ListByCompany(companyID string) ([]*entity.Service, error)
	// CancelActiveByCompany pasa a cancelled los servicios active/pending de
	// la empresa (baja del tenant).
	CancelActiveByCompany(companyID string) error
}
