package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/clientes-api/internal/application/clients"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// Ensure TxRunner implements clients.TxRunner.
var _ clients.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El onboarding, el PATCH con reconciliación de contactos y la baja del
// tenant son multi-tabla y deben ser atómicos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	contactRepo repository.ContactRepository,
	serviceRepo repository.ServiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	userRepo := NewUserRepository(tx)
	membershipRepo := NewMembershipRepository(tx)
	contactRepo := NewContactRepository(tx)
	serviceRepo := NewServiceRepository(tx)

	if err := fn(companyRepo, userRepo, membershipRepo, contactRepo, serviceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
