package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// AuditLogRepository define el puerto del registro de auditoría.
// Solo inserción: el log es append-only por contrato.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entity.AuditLog) error
}
