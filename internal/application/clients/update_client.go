package clients

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// Update aplica un patch parcial sobre la empresa y reconcilia su conjunto
// de contactos: con ID se actualiza, sin ID se crea, y los existentes no
// referenciados se eliminan. Todo dentro de una transacción; el audit lleva
// un snapshot de los cambios aplicados.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest, actorID string) (*dto.ClientDetailsResponse, error) {
	now := time.Now()

	err := uc.tx.Run(ctx, func(
		companyRepo repository.CompanyRepository,
		_ repository.UserRepository,
		_ repository.MembershipRepository,
		contactRepo repository.ContactRepository,
		_ repository.ServiceRepository,
	) error {
		company, err := companyRepo.GetByID(id)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}

		applyCompanyPatch(company, in)
		company.UpdatedByID = actorID
		company.UpdatedAt = now
		if err := companyRepo.Update(company); err != nil {
			return err
		}

		// Contacts == nil deja el conjunto como está; una lista (aunque
		// vacía) es la descripción completa del estado deseado.
		if in.Contacts == nil {
			return nil
		}

		keepIDs := make([]string, 0, len(in.Contacts))
		for _, c := range in.Contacts {
			if c.ID != nil {
				existing, err := contactRepo.GetByID(*c.ID)
				if err != nil {
					return err
				}
				if existing == nil || existing.CompanyID != id {
					return domain.ErrNotFound
				}
				existing.Type = c.Type
				existing.FullName = c.FullName
				existing.Email = c.Email
				existing.Phone = c.Phone
				existing.IsPrimary = c.IsPrimary
				existing.UpdatedAt = now
				if err := contactRepo.Update(existing); err != nil {
					return err
				}
				keepIDs = append(keepIDs, existing.ID)
				continue
			}
			created := &entity.Contact{
				ID:        uuid.New().String(),
				CompanyID: id,
				Type:      c.Type,
				FullName:  c.FullName,
				Email:     c.Email,
				Phone:     c.Phone,
				IsPrimary: c.IsPrimary,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := contactRepo.Create(created); err != nil {
				return err
			}
			keepIDs = append(keepIDs, created.ID)
		}
		return contactRepo.DeleteByCompanyExcept(id, keepIDs)
	})
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, &entity.AuditLog{
		Action:     entity.AuditActionUpdate,
		ActorID:    &actorID,
		TargetType: "Company",
		TargetID:   &id,
		Details: map[string]any{
			"message": "cliente actualizado",
			"changes": in,
		},
	})

	return uc.Details(id)
}

func applyCompanyPatch(company *entity.Company, in dto.UpdateClientRequest) {
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.MunicipalRegistration != nil {
		company.MunicipalRegistration = *in.MunicipalRegistration
	}
	if in.AddressStreet != nil {
		company.AddressStreet = *in.AddressStreet
	}
	if in.AddressNumber != nil {
		company.AddressNumber = *in.AddressNumber
	}
	if in.AddressComplement != nil {
		company.AddressComplement = *in.AddressComplement
	}
	if in.AddressNeighborhood != nil {
		company.AddressNeighborhood = *in.AddressNeighborhood
	}
	if in.AddressCity != nil {
		company.AddressCity = *in.AddressCity
	}
	if in.AddressState != nil {
		company.AddressState = *in.AddressState
	}
	if in.AddressZipCode != nil {
		company.AddressZipCode = *in.AddressZipCode
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
}
