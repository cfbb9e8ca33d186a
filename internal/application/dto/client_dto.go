package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyInput datos de la empresa en el onboarding.
type CompanyInput struct {
	Name                  string `json:"name" validate:"required,min=3,max=200"`
	TaxID                 string `json:"taxId" validate:"required,min=1,max=20"`
	MunicipalRegistration string `json:"municipalRegistration"`
}

// OwnerInput datos del usuario dueño en el onboarding. Password viaja en
// texto plano y se hashea en el caso de uso, nunca se persiste plano.
type OwnerInput struct {
	Name     string `json:"name" validate:"required,min=3,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

// ContactInput datos de un contacto en el onboarding.
type ContactInput struct {
	FullName string `json:"fullName" validate:"required,min=3,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
}

// CreateClientRequest cuerpo de POST /api/clients (y, con la clave "user" en
// lugar de "owner", del signup público).
type CreateClientRequest struct {
	Company                       CompanyInput  `json:"company" validate:"required"`
	Owner                         OwnerInput    `json:"owner" validate:"required"`
	GeneralContact                ContactInput  `json:"generalContact" validate:"required"`
	BillingContactIsSameAsGeneral bool          `json:"billingContactIsSameAsGeneral"`
	BillingContact                *ContactInput `json:"billingContact"`
}

// SignUpRequest cuerpo de POST /api/auth/signup. Mismo onboarding, pero el
// dueño llega bajo la clave "user" y el actor del audit es el propio dueño.
type SignUpRequest struct {
	Company                       CompanyInput  `json:"company" validate:"required"`
	User                          OwnerInput    `json:"user" validate:"required"`
	GeneralContact                ContactInput  `json:"generalContact" validate:"required"`
	BillingContactIsSameAsGeneral bool          `json:"billingContactIsSameAsGeneral"`
	BillingContact                *ContactInput `json:"billingContact"`
}

// AsCreateClient convierte el signup al request de onboarding compartido.
func (r SignUpRequest) AsCreateClient() CreateClientRequest {
	return CreateClientRequest{
		Company:                       r.Company,
		Owner:                         r.User,
		GeneralContact:                r.GeneralContact,
		BillingContactIsSameAsGeneral: r.BillingContactIsSameAsGeneral,
		BillingContact:                r.BillingContact,
	}
}

// CreateClientResponse salida del onboarding.
type CreateClientResponse struct {
	CompanyID string `json:"companyId"`
	OwnerID   string `json:"ownerId"`
}

// ClientListItem elemento del listado paginado.
type ClientListItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientListResponse cuerpo de GET /api/clients. El total y los datos de
// página van en los headers x-total-count / x-per-page / x-current-page.
type ClientListResponse struct {
	Clients []ClientListItem `json:"clients"`
}

// ContactResponse contacto dentro del detalle de cliente.
type ContactResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

// ServiceResponse servicio contratado dentro del detalle de cliente.
type ServiceResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Status       string          `json:"status"`
	MonthlyPrice decimal.Decimal `json:"monthlyPrice"`
}

// ClientDetails detalle completo de un cliente.
type ClientDetails struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	TaxID                 string            `json:"taxId"`
	Status                string            `json:"status"`
	MunicipalRegistration string            `json:"municipalRegistration,omitempty"`
	AddressStreet         string            `json:"addressStreet,omitempty"`
	AddressNumber         string            `json:"addressNumber,omitempty"`
	AddressComplement     string            `json:"addressComplement,omitempty"`
	AddressNeighborhood   string            `json:"addressNeighborhood,omitempty"`
	AddressCity           string            `json:"addressCity,omitempty"`
	AddressState          string            `json:"addressState,omitempty"`
	AddressZipCode        string            `json:"addressZipCode,omitempty"`
	CreatedAt             time.Time         `json:"createdAt"`
	Contacts              []ContactResponse `json:"contacts"`
	Services              []ServiceResponse `json:"services"`
}

// ClientDetailsResponse cuerpo de GET /api/clients/:id.
type ClientDetailsResponse struct {
	Client ClientDetails `json:"client"`
}

// UpdateContactInput contacto dentro del PATCH. Con ID se actualiza; sin ID
// se crea; los contactos existentes no referenciados se eliminan.
type UpdateContactInput struct {
	ID        *string `json:"id"`
	Type      string  `json:"type" validate:"required,oneof=GENERAL BILLING"`
	FullName  string  `json:"fullName" validate:"required,min=3,max=200"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone"`
	IsPrimary bool    `json:"isPrimary"`
}

// UpdateClientRequest cuerpo de PATCH /api/clients/:id. Campos nil no se tocan;
// Contacts nil deja el conjunto de contactos como está.
type UpdateClientRequest struct {
	Name                  *string              `json:"name" validate:"omitempty,min=3,max=200"`
	MunicipalRegistration *string              `json:"municipalRegistration"`
	AddressStreet         *string              `json:"addressStreet"`
	AddressNumber         *string              `json:"addressNumber"`
	AddressComplement     *string              `json:"addressComplement"`
	AddressNeighborhood   *string              `json:"addressNeighborhood"`
	AddressCity           *string              `json:"addressCity"`
	AddressState          *string              `json:"addressState"`
	AddressZipCode        *string              `json:"addressZipCode"`
	Status                *string              `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Contacts              []UpdateContactInput `json:"contacts"`
}
