package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `id, company_id, type, full_name, email, phone, is_primary, created_at, updated_at`

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador de persistencia para contactos.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un contacto.
func (r *ContactRepo) Create(contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.CompanyID, contact.Type, contact.FullName,
		contact.Email, contact.Phone, contact.IsPrimary,
		contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto por ID.
func (r *ContactRepo) GetByID(id string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	var c entity.Contact
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Type, &c.FullName, &c.Email, &c.Phone, &c.IsPrimary,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// Update actualiza un contacto existente.
func (r *ContactRepo) Update(contact *entity.Contact) error {
	query := `
		UPDATE contacts SET type = $2, full_name = $3, email = $4, phone = $5, is_primary = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.Type, contact.FullName, contact.Email, contact.Phone,
		contact.IsPrimary, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista los contactos de una empresa.
func (r *ContactRepo) ListByCompany(companyID string) ([]*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE company_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Type, &c.FullName, &c.Email, &c.Phone, &c.IsPrimary, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// DeleteByCompanyExcept elimina los contactos de la empresa no referenciados
// en keepIDs. Con keepIDs vacío elimina todos los de la empresa.
func (r *ContactRepo) DeleteByCompanyExcept(companyID string, keepIDs []string) error {
	var err error
	if len(keepIDs) == 0 {
		_, err = r.q.Exec(context.Background(),
			`DELETE FROM contacts WHERE company_id = $1`, companyID)
	} else {
		_, err = r.q.Exec(context.Background(),
			`DELETE FROM contacts WHERE company_id = $1 AND NOT (id = ANY($2))`, companyID, keepIDs)
	}
	if err != nil {
		return fmt.Errorf("delete contacts: %w", err)
	}
	return nil
}
