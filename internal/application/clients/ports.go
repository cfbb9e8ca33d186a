package clients

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a
// ella. Lo implementa postgres.TxRunner; los tests usan un runner en memoria.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		membershipRepo repository.MembershipRepository,
		contactRepo repository.ContactRepository,
		serviceRepo repository.ServiceRepository,
	) error) error
}

// SummaryPDFGenerator genera la hoja resumen de un cliente en PDF.
type SummaryPDFGenerator interface {
	GenerateClientSummary(details dto.ClientDetails) ([]byte, error)
}
