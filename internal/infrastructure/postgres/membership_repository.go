package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

const membershipColumns = `id, user_id, company_id, role, status, created_at, updated_at`

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador de persistencia para membresías.
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

// Create persiste una membresía. UNIQUE(user_id, company_id) -> domain.ErrDuplicate.
func (r *MembershipRepo) Create(m *entity.Membership) error {
	query := `
		INSERT INTO memberships (` + membershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.UserID, m.CompanyID, m.Role, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetActiveByUser devuelve la membresía activa más antigua del usuario (nil si no tiene).
func (r *MembershipRepo) GetActiveByUser(userID string) (*entity.Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM memberships WHERE user_id = $1 AND status = $2
		ORDER BY created_at ASC LIMIT 1`
	var m entity.Membership
	err := r.q.QueryRow(context.Background(), query, userID, entity.StatusActive).Scan(
		&m.ID, &m.UserID, &m.CompanyID, &m.Role, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership by user: %w", err)
	}
	return &m, nil
}

// ListByCompany lista las membresías de una empresa.
func (r *MembershipRepo) ListByCompany(companyID string) ([]*entity.Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM memberships WHERE company_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.CompanyID, &m.Role, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SetStatusByCompany cambia el estado de todas las membresías de la empresa.
func (r *MembershipRepo) SetStatusByCompany(companyID, status string) error {
	query := `UPDATE memberships SET status = $2, updated_at = now() WHERE company_id = $1`
	_, err := r.q.Exec(context.Background(), query, companyID, status)
	if err != nil {
		return fmt.Errorf("set membership status: %w", err)
	}
	return nil
}
