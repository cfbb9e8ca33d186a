package clients

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// ClientUseCase casos de uso de gestión de clientes (tenants): onboarding,
// actualización con reconciliación de contactos, baja lógica y consultas.
type ClientUseCase struct {
	tx          TxRunner
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	contactRepo repository.ContactRepository
	serviceRepo repository.ServiceRepository
	auditRepo   repository.AuditLogRepository
	log         *logger.Logger
}

// NewClientUseCase construye el caso de uso. Los repos recibidos van atados
// al pool (lecturas y pre-checks); las escrituras multi-tabla pasan por tx.
func NewClientUseCase(
	tx TxRunner,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	contactRepo repository.ContactRepository,
	serviceRepo repository.ServiceRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *ClientUseCase {
	return &ClientUseCase{
		tx:          tx,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		contactRepo: contactRepo,
		serviceRepo: serviceRepo,
		auditRepo:   auditRepo,
		log:         log,
	}
}

// List devuelve la página pedida (created_at DESC) y el total independiente
// de la paginación.
func (uc *ClientUseCase) List(page dto.PageRequest) (*dto.ClientListResponse, int, error) {
	page.DefaultPage()
	list, err := uc.companyRepo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.companyRepo.Count()
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.ClientListItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ClientListItem{
			ID:        c.ID,
			Name:      c.Name,
			TaxID:     c.TaxID,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}
	return &dto.ClientListResponse{Clients: items}, total, nil
}

// Details devuelve el detalle de un cliente con contactos y servicios
// anidados. domain.ErrNotFound si el ID no resuelve.
func (uc *ClientUseCase) Details(id string) (*dto.ClientDetailsResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	contacts, err := uc.contactRepo.ListByCompany(id)
	if err != nil {
		return nil, err
	}
	services, err := uc.serviceRepo.ListByCompany(id)
	if err != nil {
		return nil, err
	}
	return &dto.ClientDetailsResponse{Client: toClientDetails(company, contacts, services)}, nil
}

// Deactivate aplica la baja lógica del tenant: empresa inactive, membresías
// inactive y servicios active/pending cancelados, todo en una transacción.
func (uc *ClientUseCase) Deactivate(ctx context.Context, id, actorID string) error {
	var companyName string
	err := uc.tx.Run(ctx, func(
		companyRepo repository.CompanyRepository,
		_ repository.UserRepository,
		membershipRepo repository.MembershipRepository,
		_ repository.ContactRepository,
		serviceRepo repository.ServiceRepository,
	) error {
		company, err := companyRepo.GetByID(id)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}
		companyName = company.Name

		company.Status = entity.StatusInactive
		company.UpdatedByID = actorID
		company.UpdatedAt = time.Now()
		if err := companyRepo.Update(company); err != nil {
			return err
		}
		if err := membershipRepo.SetStatusByCompany(id, entity.StatusInactive); err != nil {
			return err
		}
		return serviceRepo.CancelActiveByCompany(id)
	})
	if err != nil {
		return err
	}

	uc.audit(ctx, &entity.AuditLog{
		Action:     entity.AuditActionDelete,
		ActorID:    &actorID,
		TargetType: "Company",
		TargetID:   &id,
		Details: map[string]any{
			"message": "cliente \"" + companyName + "\" dado de baja (inactive)",
		},
	})
	return nil
}

// audit inserta una entrada de auditoría best-effort: un fallo se registra en
// el log y nunca reemplaza la respuesta del negocio.
func (uc *ClientUseCase) audit(ctx context.Context, entry *entity.AuditLog) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.log.Error().Err(err).Str("action", entry.Action).Msg("fallo al escribir audit log")
	}
}

func toClientDetails(c *entity.Company, contacts []*entity.Contact, services []*entity.Service) dto.ClientDetails {
	d := dto.ClientDetails{
		ID:                    c.ID,
		Name:                  c.Name,
		TaxID:                 c.TaxID,
		Status:                c.Status,
		MunicipalRegistration: c.MunicipalRegistration,
		AddressStreet:         c.AddressStreet,
		AddressNumber:         c.AddressNumber,
		AddressComplement:     c.AddressComplement,
		AddressNeighborhood:   c.AddressNeighborhood,
		AddressCity:           c.AddressCity,
		AddressState:          c.AddressState,
		AddressZipCode:        c.AddressZipCode,
		CreatedAt:             c.CreatedAt,
		Contacts:              make([]dto.ContactResponse, 0, len(contacts)),
		Services:              make([]dto.ServiceResponse, 0, len(services)),
	}
	for _, ct := range contacts {
		d.Contacts = append(d.Contacts, dto.ContactResponse{
			ID:        ct.ID,
			Type:      ct.Type,
			FullName:  ct.FullName,
			Email:     ct.Email,
			Phone:     ct.Phone,
			IsPrimary: ct.IsPrimary,
		})
	}
	for _, s := range services {
		d.Services = append(d.Services, dto.ServiceResponse{
			ID:           s.ID,
			Name:         s.Name,
			Status:       s.Status,
			MonthlyPrice: s.MonthlyPrice,
		})
	}
	return d
}
