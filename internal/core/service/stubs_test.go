package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = user.Clone()
	return user.Clone(), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = user.Clone()
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubSessionStore struct {
	sessions map[string]*domain.User
	revoked  []string

	// revokeErr makes DeleteForUser fail without touching any session.
	revokeErr error
	// afterCreate runs once a session is stored.
	afterCreate func()
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.User)}
}

func (s *stubSessionStore) Create(_ context.Context, id string, user *domain.User, _ time.Duration) error {
	s.sessions[id] = user.Clone()
	if s.afterCreate != nil {
		s.afterCreate()
	}
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return u.Clone(), nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *stubSessionStore) DeleteForUser(_ context.Context, userID string) error {
	if s.revokeErr != nil {
		return s.revokeErr
	}
	for id, u := range s.sessions {
		if u.ID == userID {
			delete(s.sessions, id)
		}
	}
	s.revoked = append(s.revoked, userID)
	return nil
}

type stubAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (a *stubAudit) Record(e domain.AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, e)
}

func (a *stubAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Resource + ":" + e.Action
	}
	return out
}

type stubPatientRepo struct {
	patients map[string]*domain.Patient
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[string]*domain.Patient)}
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) error {
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id string) (*domain.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPatientRepo) Discharge(_ context.Context, id string, at time.Time, notes string) error {
	p, ok := r.patients[id]
	if !ok {
		return domain.ErrNotFound
	}
	return p.Discharge(at, notes)
}

func (r *stubPatientRepo) List(_ context.Context, f ports.ListPatientsFilter) ([]*domain.Patient, int64, error) {
	var out []*domain.Patient
	for _, p := range r.patients {
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *stubPatientRepo) CountAdmittedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, p := range r.patients {
		if !p.AdmittedAt.Before(from) && !p.AdmittedAt.After(to) {
			n++
		}
	}
	return n, nil
}

func (r *stubPatientRepo) CountDischargedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, p := range r.patients {
		if p.DischargedAt != nil && !p.DischargedAt.Before(from) && !p.DischargedAt.After(to) {
			n++
		}
	}
	return n, nil
}

func (r *stubPatientRepo) CountByStatus(_ context.Context, status domain.PatientStatus) (int64, error) {
	var n int64
	for _, p := range r.patients {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

type stubStaffRepo struct {
	staff []*domain.StaffMember
}

func (r *stubStaffRepo) Create(_ context.Context, s *domain.StaffMember) error {
	r.staff = append(r.staff, s)
	return nil
}

func (r *stubStaffRepo) FindByID(_ context.Context, id string) (*domain.StaffMember, error) {
	for _, s := range r.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubStaffRepo) List(_ context.Context, department string) ([]*domain.StaffMember, error) {
	var out []*domain.StaffMember
	for _, s := range r.staff {
		if department == "" || s.Department == department {
			out = append(out, s)
		}
	}
	return out, nil
}

type stubPayrollRepo struct {
	adjustments []*domain.PayrollAdjustment
}

func (r *stubPayrollRepo) Create(_ context.Context, a *domain.PayrollAdjustment) error {
	r.adjustments = append(r.adjustments, a)
	return nil
}

func (r *stubPayrollRepo) List(_ context.Context, f ports.PayrollFilter) ([]*domain.PayrollAdjustment, error) {
	var out []*domain.PayrollAdjustment
	for _, a := range r.adjustments {
		if (f.StaffID == "" || a.StaffID == f.StaffID) && (f.Period == "" || a.Period == f.Period) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubPayrollRepo) Totals(_ context.Context, fromPeriod, toPeriod string) (ports.PayrollTotals, error) {
	var t ports.PayrollTotals
	for _, a := range r.adjustments {
		if a.Period < fromPeriod || a.Period > toPeriod {
			continue
		}
		if a.Kind == domain.AdjustmentBonus {
			t.BonusCents += a.AmountCents
		} else {
			t.DeductionCents += a.AmountCents
		}
	}
	return t, nil
}

type stubExpenseRepo struct {
	expenses []*domain.Expense
}

func (r *stubExpenseRepo) Create(_ context.Context, e *domain.Expense) error {
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *stubExpenseRepo) List(_ context.Context, f ports.ExpenseFilter) ([]*domain.Expense, error) {
	var out []*domain.Expense
	for _, e := range r.expenses {
		if f.Category == "" || e.Category == f.Category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubExpenseRepo) Total(_ context.Context, from, to time.Time) (int64, error) {
	var sum int64
	for _, e := range r.expenses {
		if !e.SpentAt.Before(from) && !e.SpentAt.After(to) {
			sum += e.AmountCents
		}
	}
	return sum, nil
}

type stubPaymentRepo struct {
	payments []*domain.Payment
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}

func (r *stubPaymentRepo) List(_ context.Context, patientID string) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range r.payments {
		if patientID == "" || p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) Total(_ context.Context, from, to time.Time) (int64, error) {
	var sum int64
	for _, p := range r.payments {
		if !p.ReceivedAt.Before(from) && !p.ReceivedAt.After(to) {
			sum += p.AmountCents
		}
	}
	return sum, nil
}

type stubSettingsRepo struct {
	saved  *domain.Settings
	getErr error
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.saved == nil {
		return nil, domain.ErrNotFound
	}
	cp := *r.saved
	return &cp, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s *domain.Settings) error {
	cp := *s
	r.saved = &cp
	return nil
}
