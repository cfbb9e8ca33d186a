package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, tax_id, municipal_registration,
		address_street, address_number, address_complement, address_neighborhood,
		address_city, address_state, address_zip_code,
		status, created_by_id, updated_by_id, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx vía Querier).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa. Devuelve domain.ErrTaxIDAlreadyExists si
// el constraint único de tax_id atrapa una carrera que el pre-check no vio.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.MunicipalRegistration,
		company.AddressStreet, company.AddressNumber, company.AddressComplement, company.AddressNeighborhood,
		company.AddressCity, company.AddressState, company.AddressZipCode,
		company.Status, company.CreatedByID, company.UpdatedByID,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTaxIDAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get company")
}

// GetByTaxID obtiene una empresa por identificador fiscal.
func (r *CompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE tax_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, taxID), "get company by tax_id")
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, tax_id = $3, municipal_registration = $4,
			address_street = $5, address_number = $6, address_complement = $7, address_neighborhood = $8,
			address_city = $9, address_state = $10, address_zip_code = $11,
			status = $12, updated_by_id = $13, updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.MunicipalRegistration,
		company.AddressStreet, company.AddressNumber, company.AddressComplement, company.AddressNeighborhood,
		company.AddressCity, company.AddressState, company.AddressZipCode,
		company.Status, company.UpdatedByID, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTaxIDAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve empresas ordenadas por fecha de creación descendente, con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + `
		FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve el total de empresas, independiente de la paginación.
func (r *CompanyRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM companies`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner, c *entity.Company) error {
	return row.Scan(
		&c.ID, &c.Name, &c.TaxID, &c.MunicipalRegistration,
		&c.AddressStreet, &c.AddressNumber, &c.AddressComplement, &c.AddressNeighborhood,
		&c.AddressCity, &c.AddressState, &c.AddressZipCode,
		&c.Status, &c.CreatedByID, &c.UpdatedByID, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *CompanyRepo) scanOne(row rowScanner, op string) (*entity.Company, error) {
	var c entity.Company
	if err := scanCompany(row, &c); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
