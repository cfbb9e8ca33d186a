package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo inserta entradas en audit_logs. Solo INSERT: no existe Update
// ni Delete en este adaptador a propósito.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador del registro de auditoría.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Append inserta una entrada. Details se serializa como JSONB (pgx codifica map[string]any directo).
func (r *AuditLogRepo) Append(ctx context.Context, entry *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, action, actor_id, target_type, target_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.Action, entry.ActorID, entry.TargetType, entry.TargetID,
		entry.Details, entry.IPAddress, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
