package repository

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(id string) (*entity.Contact, error)
	Update(contact *entity.Contact) error
	ListByCompany(companyID string) ([]*entity.Contact, error)
	// DeleteByCompanyExcept elimina los contactos de la empresa cuyo ID no
	// está en keepIDs (reconciliación del PATCH de cliente).
	DeleteByCompanyExcept(companyID string, keepIDs []string) error
}
