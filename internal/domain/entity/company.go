package entity

import "time"

// Estados válidos para Company (y Membership).
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Company representa un tenant del sistema: la empresa cliente que se factura.
// Nunca se elimina físicamente; la baja es un cambio de Status a inactive.
type Company struct {
	ID                    string
	Name                  string
	TaxID                 string // identificador fiscal, único global (CNPJ/NIT)
	MunicipalRegistration string
	AddressStreet         string
	AddressNumber         string
	AddressComplement     string
	AddressNeighborhood   string
	AddressCity           string
	AddressState          string
	AddressZipCode        string
	Status                string // active, inactive, suspended
	CreatedByID           string // actor que la creó ("" en signup público)
	UpdatedByID           string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
