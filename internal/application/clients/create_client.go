package clients

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Create ejecuta el onboarding de un cliente: Company + User dueño +
// Membership(OWNER) + contacto GENERAL + contacto BILLING, en una sola
// transacción. actorID es el admin que lo ejecuta; vacío significa signup
// público y el audit se atribuye al dueño recién creado.
//
// Los pre-checks de unicidad son consultivos: la fuente de verdad son los
// constraints únicos de tax_id y email, cuya violación llega aquí como el
// mismo error de conflicto que habría producido el pre-check.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest, actorID string) (*dto.CreateClientResponse, error) {
	if !in.BillingContactIsSameAsGeneral && in.BillingContact == nil {
		return nil, domain.ErrInvalidInput
	}

	existingCompany, err := uc.companyRepo.GetByTaxID(in.Company.TaxID)
	if err != nil {
		return nil, err
	}
	if existingCompany != nil {
		return nil, domain.ErrTaxIDAlreadyExists
	}
	existingUser, err := uc.userRepo.GetByEmail(in.Owner.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Owner.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	companyID := uuid.New().String()
	ownerID := uuid.New().String()

	// En signup público el dueño es su propio creador.
	createdBy := actorID
	if createdBy == "" {
		createdBy = ownerID
	}

	billing := in.GeneralContact
	if !in.BillingContactIsSameAsGeneral {
		billing = *in.BillingContact
	}

	err = uc.tx.Run(ctx, func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		membershipRepo repository.MembershipRepository,
		contactRepo repository.ContactRepository,
		_ repository.ServiceRepository,
	) error {
		company := &entity.Company{
			ID:                    companyID,
			Name:                  in.Company.Name,
			TaxID:                 in.Company.TaxID,
			MunicipalRegistration: in.Company.MunicipalRegistration,
			Status:                entity.StatusActive,
			CreatedByID:           createdBy,
			UpdatedByID:           createdBy,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := companyRepo.Create(company); err != nil {
			return err
		}

		owner := &entity.User{
			ID:           ownerID,
			Name:         in.Owner.Name,
			Email:        in.Owner.Email,
			PasswordHash: string(hash),
			Phone:        in.Owner.Phone,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(owner); err != nil {
			return err
		}

		membership := &entity.Membership{
			ID:        uuid.New().String(),
			UserID:    ownerID,
			CompanyID: companyID,
			Role:      entity.CompanyRoleOwner,
			Status:    entity.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := membershipRepo.Create(membership); err != nil {
			return err
		}

		general := &entity.Contact{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Type:      entity.ContactTypeGeneral,
			FullName:  in.GeneralContact.FullName,
			Email:     in.GeneralContact.Email,
			Phone:     in.GeneralContact.Phone,
			IsPrimary: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := contactRepo.Create(general); err != nil {
			return err
		}

		billingContact := &entity.Contact{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Type:      entity.ContactTypeBilling,
			FullName:  billing.FullName,
			Email:     billing.Email,
			Phone:     billing.Phone,
			IsPrimary: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return contactRepo.Create(billingContact)
	})
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, &entity.AuditLog{
		Action:     entity.AuditActionCreate,
		ActorID:    &createdBy,
		TargetType: "Company",
		TargetID:   &companyID,
		Details: map[string]any{
			"message": "empresa \"" + in.Company.Name + "\" creada con dueño \"" + in.Owner.Name + "\"",
		},
	})

	return &dto.CreateClientResponse{CompanyID: companyID, OwnerID: ownerID}, nil
}
