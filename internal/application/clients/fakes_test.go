package clients_test

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/clientes-api/internal/application/clients"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria + repos fake
//
// memStore guarda copias por valor; los repos devuelven punteros a copias para
// que los tests no muten el estado por accidente. memTxRunner clona el store,
// ejecuta fn sobre el clon y solo hace commit si fn no falla: eso permite
// verificar la atomicidad del onboarding sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

var errInjected = errors.New("fallo inyectado")

type memStore struct {
	companies   map[string]entity.Company
	users       map[string]entity.User
	memberships map[string]entity.Membership
	contacts    map[string]entity.Contact
	services    map[string]entity.Service

	// failContactType: si no es "", Create de un contacto de ese tipo falla.
	failContactType string
}

func newMemStore() *memStore {
	return &memStore{
		companies:   make(map[string]entity.Company),
		users:       make(map[string]entity.User),
		memberships: make(map[string]entity.Membership),
		contacts:    make(map[string]entity.Contact),
		services:    make(map[string]entity.Service),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.failContactType = s.failContactType
	for k, v := range s.companies {
		c.companies[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.memberships {
		c.memberships[k] = v
	}
	for k, v := range s.contacts {
		c.contacts[k] = v
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	return c
}

func (s *memStore) commit(from *memStore) {
	s.companies = from.companies
	s.users = from.users
	s.memberships = from.memberships
	s.contacts = from.contacts
	s.services = from.services
}

// ── CompanyRepository ─────────────────────────────────────────────────────────

type memCompanyRepo struct{ s *memStore }

func (r *memCompanyRepo) Create(c *entity.Company) error {
	for _, ex := range r.s.companies {
		if ex.TaxID == c.TaxID {
			return domain.ErrTaxIDAlreadyExists
		}
	}
	r.s.companies[c.ID] = *c
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if c, ok := r.s.companies[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.TaxID == taxID {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	if _, ok := r.s.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.companies[c.ID] = *c
	return nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	all := make([]entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		all = append(all, c)
	}
	// created_at DESC, como el repo real
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	out := make([]*entity.Company, 0, end-offset)
	for i := offset; i < end; i++ {
		cp := all[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCompanyRepo) Count() (int, error) { return len(r.s.companies), nil }

// ── UserRepository ────────────────────────────────────────────────────────────

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error {
	for _, ex := range r.s.users {
		if ex.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.s.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.users[u.ID] = *u
	return nil
}

// ── MembershipRepository ──────────────────────────────────────────────────────

type memMembershipRepo struct{ s *memStore }

func (r *memMembershipRepo) Create(m *entity.Membership) error {
	for _, ex := range r.s.memberships {
		if ex.UserID == m.UserID && ex.CompanyID == m.CompanyID {
			return domain.ErrDuplicate
		}
	}
	r.s.memberships[m.ID] = *m
	return nil
}

func (r *memMembershipRepo) GetActiveByUser(userID string) (*entity.Membership, error) {
	var found *entity.Membership
	for _, m := range r.s.memberships {
		if m.UserID != userID || m.Status != entity.StatusActive {
			continue
		}
		cp := m
		if found == nil || cp.CreatedAt.Before(found.CreatedAt) {
			found = &cp
		}
	}
	return found, nil
}

func (r *memMembershipRepo) ListByCompany(companyID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range r.s.memberships {
		if m.CompanyID == companyID {
			cp := m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMembershipRepo) SetStatusByCompany(companyID, status string) error {
	for id, m := range r.s.memberships {
		if m.CompanyID == companyID {
			m.Status = status
			r.s.memberships[id] = m
		}
	}
	return nil
}

// ── ContactRepository ─────────────────────────────────────────────────────────

type memContactRepo struct{ s *memStore }

func (r *memContactRepo) Create(c *entity.Contact) error {
	if r.s.failContactType != "" && c.Type == r.s.failContactType {
		return errInjected
	}
	r.s.contacts[c.ID] = *c
	return nil
}

func (r *memContactRepo) GetByID(id string) (*entity.Contact, error) {
	if c, ok := r.s.contacts[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *memContactRepo) Update(c *entity.Contact) error {
	if _, ok := r.s.contacts[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.contacts[c.ID] = *c
	return nil
}

func (r *memContactRepo) ListByCompany(companyID string) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, c := range r.s.contacts {
		if c.CompanyID == companyID {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memContactRepo) DeleteByCompanyExcept(companyID string, keepIDs []string) error {
	keep := make(map[string]bool, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = true
	}
	for id, c := range r.s.contacts {
		if c.CompanyID == companyID && !keep[id] {
			delete(r.s.contacts, id)
		}
	}
	return nil
}

// ── ServiceRepository ─────────────────────────────────────────────────────────

type memServiceRepo struct{ s *memStore }

func (r *memServiceRepo) Create(sv *entity.Service) error {
	r.s.services[sv.ID] = *sv
	return nil
}

func (r *memServiceRepo) ListByCompany(companyID string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, sv := range r.s.services {
		if sv.CompanyID == companyID {
			cp := sv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memServiceRepo) CancelActiveByCompany(companyID string) error {
	for id, sv := range r.s.services {
		if sv.CompanyID == companyID &&
			(sv.Status == entity.ServiceStatusActive || sv.Status == entity.ServiceStatusPending) {
			sv.Status = entity.ServiceStatusCancelled
			r.s.services[id] = sv
		}
	}
	return nil
}

// ── AuditLogRepository ────────────────────────────────────────────────────────

type memAuditRepo struct {
	entries []entity.AuditLog
	failErr error
}

func (r *memAuditRepo) Append(_ context.Context, entry *entity.AuditLog) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memAuditRepo) lastAction() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1].Action
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	contactRepo repository.ContactRepository,
	serviceRepo repository.ServiceRepository,
) error) error {
	work := t.s.clone()
	err := fn(
		&memCompanyRepo{s: work},
		&memUserRepo{s: work},
		&memMembershipRepo{s: work},
		&memContactRepo{s: work},
		&memServiceRepo{s: work},
	)
	if err != nil {
		return err // rollback: el clon se descarta
	}
	t.s.commit(work)
	return nil
}

var _ clients.TxRunner = (*memTxRunner)(nil)
