package entity

import "time"

// Tipos de contacto de una empresa.
const (
	ContactTypeGeneral = "GENERAL"
	ContactTypeBilling = "BILLING"
)

// Contact es un punto de contacto de una Company. Tras el onboarding toda
// empresa tiene al menos un GENERAL y un BILLING primarios.
type Contact struct {
	ID        string
	CompanyID string
	Type      string // GENERAL, BILLING
	FullName  string
	Email     string
	Phone     string
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
