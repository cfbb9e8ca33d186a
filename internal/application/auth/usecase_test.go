package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/clientes-api/internal/application/auth"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/clientes-api/pkg/jwt"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct{ users map[string]entity.User }

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = *u; return nil }
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = *u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeMembershipRepo struct{ byUser map[string]entity.Membership }

func (r *fakeMembershipRepo) Create(m *entity.Membership) error { return nil }
func (r *fakeMembershipRepo) ListByCompany(string) ([]*entity.Membership, error) {
	return nil, nil
}
func (r *fakeMembershipRepo) SetStatusByCompany(string, string) error { return nil }

func (r *fakeMembershipRepo) GetActiveByUser(userID string) (*entity.Membership, error) {
	if m, ok := r.byUser[userID]; ok && m.Status == entity.StatusActive {
		cp := m
		return &cp, nil
	}
	return nil, nil
}

type fakeAuditRepo struct {
	entries []entity.AuditLog
	failErr error
}

func (r *fakeAuditRepo) Append(_ context.Context, entry *entity.AuditLog) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "auth-test-secret"
	testIP       = "203.0.113.7"
	testPassword = "clave-correcta-123"
)

type fixture struct {
	users       *fakeUserRepo
	memberships *fakeMembershipRepo
	audit       *fakeAuditRepo
	uc          *auth.AuthUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:       &fakeUserRepo{users: make(map[string]entity.User)},
		memberships: &fakeMembershipRepo{byUser: make(map[string]entity.Membership)},
		audit:       &fakeAuditRepo{},
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	f.uc = auth.NewAuthUseCase(f.users, f.memberships, f.audit, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "clientes-pro-test",
	}, log)
	return f
}

// addUser registra un usuario con la contraseña de test ya hasheada.
func (f *fixture) addUser(t *testing.T, id, email, systemRole string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.users[id] = entity.User{
		ID:           id,
		Name:         "Usuario " + id,
		Email:        email,
		PasswordHash: string(hash),
		SystemRole:   systemRole,
		CreatedAt:    time.Now(),
	}
}

func (f *fixture) addMembership(userID, companyID, role string) {
	f.memberships.byUser[userID] = entity.Membership{
		ID:        "m-" + userID,
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		Status:    entity.StatusActive,
		CreatedAt: time.Now(),
	}
}

func (f *fixture) lastAudit(t *testing.T) entity.AuditLog {
	t.Helper()
	require.NotEmpty(t, f.audit.entries)
	return f.audit.entries[len(f.audit.entries)-1]
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ConMembresia_EmiteTokenConRolDeEmpresa(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "ana@acme.com", "")
	f.addMembership("u1", "empresa-1", entity.CompanyRoleOwner)

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@acme.com", Password: testPassword,
	}, testIP)
	require.NoError(t, err)

	userID, companyID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "empresa-1", companyID)
	assert.Equal(t, entity.CompanyRoleOwner, role)

	entry := f.lastAudit(t)
	assert.Equal(t, entity.AuditActionLoginSuccess, entry.Action)
	require.NotNil(t, entry.ActorID)
	assert.Equal(t, "u1", *entry.ActorID)
	assert.Equal(t, testIP, entry.IPAddress)
}

// El rol de sistema manda aunque exista una membresía.
func TestLogin_RolDeSistemaPrevaleceSobreMembresia(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "admin@plataforma.com", entity.SystemRoleAdmin)
	f.addMembership("u1", "empresa-1", entity.CompanyRoleMember)

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@plataforma.com", Password: testPassword,
	}, testIP)
	require.NoError(t, err)

	_, companyID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.SystemRoleAdmin, role)
	assert.Equal(t, "empresa-1", companyID,
		"el admin conserva el contexto de empresa de su membresía")
}

func TestLogin_RolDeSistemaSinMembresia(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "root@plataforma.com", entity.SystemRoleSuperAdmin)

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email: "root@plataforma.com", Password: testPassword,
	}, testIP)
	require.NoError(t, err)

	_, companyID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.SystemRoleSuperAdmin, role)
	assert.Empty(t, companyID)
}

// Email desconocido y contraseña incorrecta fallan igual: sin pista de cuál fue.
func TestLogin_CredencialesInvalidas_SeAplanan(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "ana@acme.com", "")
	f.addMembership("u1", "empresa-1", entity.CompanyRoleOwner)

	_, errEmail := f.uc.Login(context.Background(), dto.LoginRequest{
		Email: "no-existe@acme.com", Password: testPassword,
	}, testIP)
	_, errPass := f.uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@acme.com", Password: "contraseña-mala",
	}, testIP)

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
	assert.Equal(t, errEmail, errPass, "ambos fallos deben ser indistinguibles")
}

// Contraseña correcta pero sin rol ni membresía: 403, no 401.
func TestLogin_SinRolNiMembresia_ErrNoRole(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "huerfano@acme.com", "")

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email: "huerfano@acme.com", Password: testPassword,
	}, testIP)
	assert.ErrorIs(t, err, domain.ErrNoRole)

	entry := f.lastAudit(t)
	assert.Equal(t, entity.AuditActionLoginFailure, entry.Action)
	assert.Nil(t, entry.ActorID)
}

// Todo intento fallido deja LOGIN_FAILURE con el email intentado y la IP.
func TestLogin_FalloDejaAuditConEmailIntentado(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email: "fantasma@acme.com", Password: "lo-que-sea",
	}, testIP)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	entry := f.lastAudit(t)
	assert.Equal(t, entity.AuditActionLoginFailure, entry.Action)
	assert.Equal(t, testIP, entry.IPAddress)
	assert.Equal(t, "fantasma@acme.com", entry.Details["attemptedEmail"])
}

// El audit es best-effort también en el login.
func TestLogin_AuditFalla_NoAfectaElLogin(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "ana@acme.com", "")
	f.addMembership("u1", "empresa-1", entity.CompanyRoleOwner)
	f.audit.failErr = errors.New("audit caído")

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@acme.com", Password: testPassword,
	}, testIP)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Profile
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_ExponeSoloCamposPublicos(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "ana@acme.com", "")

	out, err := f.uc.Profile("u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, "ana@acme.com", out.User.Email)
	assert.Nil(t, out.User.SystemRole, "usuario de cliente no tiene rol de sistema")
}

func TestProfile_RolDeSistemaVisible(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", "admin@plataforma.com", entity.SystemRoleAdmin)

	out, err := f.uc.Profile("u1")
	require.NoError(t, err)
	require.NotNil(t, out.User.SystemRole)
	assert.Equal(t, entity.SystemRoleAdmin, *out.User.SystemRole)
}

func TestProfile_UsuarioInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Profile("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
