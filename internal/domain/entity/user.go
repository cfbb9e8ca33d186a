package entity

import "time"

// Roles de sistema (a nivel plataforma, no atados a una empresa).
const (
	SystemRoleSuperAdmin = "SUPER_ADMIN"
	SystemRoleAdmin      = "ADMIN"
)

// User representa un usuario de la plataforma. A diferencia de Company,
// no pertenece a un tenant: la relación con empresas se resuelve vía Membership.
type User struct {
	ID           string
	Name         string
	Email        string // único global, credencial de login
	PasswordHash string // bcrypt, nunca sale del dominio hacia las respuestas
	Phone        string
	SystemRole   string // SUPER_ADMIN, ADMIN o "" si es usuario de cliente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSystemUser informa si el usuario tiene un rol de plataforma.
func (u *User) IsSystemUser() bool {
	return u.SystemRole != ""
}
