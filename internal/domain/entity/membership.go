package entity

import "time"

// Roles de empresa (ámbito de un solo tenant).
const (
	CompanyRoleOwner  = "OWNER"
	CompanyRoleMember = "MEMBER"
)

// Membership vincula un User con una Company y el rol que ejerce en ella.
// El par (UserID, CompanyID) es único; un usuario puede tener membresías
// en varias empresas.
type Membership struct {
	ID        string
	UserID    string
	CompanyID string
	Role      string // OWNER, MEMBER
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
