package entity

import "time"

// Acciones auditables.
const (
	AuditActionCreate       = "CREATE"
	AuditActionUpdate       = "UPDATE"
	AuditActionDelete       = "DELETE"
	AuditActionLoginSuccess = "LOGIN_SUCCESS"
	AuditActionLoginFailure = "LOGIN_FAILURE"
)

// AuditLog es un registro inmutable de seguridad: quién hizo qué, sobre qué
// y desde dónde. La aplicación solo inserta; nunca actualiza ni borra filas.
type AuditLog struct {
	ID         string
	Action     string
	ActorID    *string // nil cuando el actor es desconocido (login fallido)
	TargetType string  // "Company", "User"
	TargetID   *string
	Details    map[string]any // JSONB en PostgreSQL
	IPAddress  string
	CreatedAt  time.Time
}
