package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/jwt"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, resolución de rol
// efectivo y perfil del usuario autenticado.
type AuthUseCase struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	auditRepo      repository.AuditLogRepository
	jwtCfg         JWTConfig
	log            *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	auditRepo repository.AuditLogRepository,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		auditRepo:      auditRepo,
		jwtCfg:         jwtCfg,
		log:            log,
	}
}

// Login verifica credenciales y resuelve el rol efectivo del usuario.
//
// Email desconocido y contraseña incorrecta devuelven el mismo
// domain.ErrUnauthorized para no permitir enumeración de usuarios. Un usuario
// con contraseña válida pero sin rol de sistema ni membresía falla con
// domain.ErrNoRole: es un modo de fallo distinto (403, no 401).
//
// Todo intento, exitoso o no, deja una entrada de auditoría con la IP origen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, ip string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.auditFailure(ctx, in.Email, ip, "credenciales inválidas")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.auditFailure(ctx, in.Email, ip, "credenciales inválidas")
		return nil, domain.ErrUnauthorized
	}

	membership, err := uc.membershipRepo.GetActiveByUser(user.ID)
	if err != nil {
		return nil, err
	}
	effective, ok := entity.ResolveEffectiveRole(user, membership)
	if !ok {
		uc.auditFailure(ctx, in.Email, ip, "usuario sin rol ni membresía")
		return nil, domain.ErrNoRole
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, effective.CompanyID, effective.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, &entity.AuditLog{
		Action:     entity.AuditActionLoginSuccess,
		ActorID:    &user.ID,
		TargetType: "User",
		TargetID:   &user.ID,
		IPAddress:  ip,
	})

	return &dto.LoginResponse{Token: token}, nil
}

// Profile devuelve los campos públicos del usuario (nunca el hash).
// domain.ErrUserNotFound si el token refiere a un usuario ya eliminado.
func (uc *AuthUseCase) Profile(userID string) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	var systemRole *string
	if user.SystemRole != "" {
		systemRole = &user.SystemRole
	}
	return &dto.ProfileResponse{User: dto.UserProfile{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		SystemRole: systemRole,
	}}, nil
}

// auditFailure registra un intento de login fallido. El email intentado se
// guarda en details; el audit log es una superficie interna solo-sistema.
func (uc *AuthUseCase) auditFailure(ctx context.Context, attemptedEmail, ip, reason string) {
	uc.audit(ctx, &entity.AuditLog{
		Action:     entity.AuditActionLoginFailure,
		TargetType: "User",
		IPAddress:  ip,
		Details: map[string]any{
			"attemptedEmail": attemptedEmail,
			"reason":         reason,
		},
	})
}

// audit inserta la entrada best-effort: un fallo del registro de auditoría se
// loguea y no aborta el flujo de la petición.
func (uc *AuthUseCase) audit(ctx context.Context, entry *entity.AuditLog) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.log.Error().Err(err).Str("action", entry.Action).Msg("fallo al escribir audit log")
	}
}
