package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, company_id, name, status, monthly_price, created_at, updated_at`

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
// monthly_price es NUMERIC y viaja como decimal.Decimal gracias al codec
// registrado en el pool.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador de persistencia para servicios.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un servicio contratado.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.CompanyID, service.Name, service.Status,
		service.MonthlyPrice, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// ListByCompany lista los servicios de una empresa.
func (r *ServiceRepo) ListByCompany(companyID string) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE company_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Status, &s.MonthlyPrice, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CancelActiveByCompany pasa a cancelled los servicios active/pending de la empresa.
func (r *ServiceRepo) CancelActiveByCompany(companyID string) error {
	query := `
		UPDATE services SET status = $2, updated_at = now()
		WHERE company_id = $1 AND status IN ($3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		companyID, entity.ServiceStatusCancelled, entity.ServiceStatusActive, entity.ServiceStatusPending,
	)
	if err != nil {
		return fmt.Errorf("cancel services: %w", err)
	}
	return nil
}
