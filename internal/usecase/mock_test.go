//go:build !integration

package usecase_test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"

	"daycare-backend/internal/domain"
	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/domain/ports/repository"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

// =============================
// Transaction manager
// =============================

type MockTxManager struct {
	WithTxFunc func(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error
}

func NewMockTxManager() *MockTxManager { return &MockTxManager{} }

var _ repository.TransactionManager = (*MockTxManager)(nil)

// WithTx runs the function immediately with NoTX by default. Assign
// WithTxFunc to exercise custom transaction behavior.
func (m *MockTxManager) WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, txOpt, fn)
	}
	return fn(ctx, repository.NoTX)
}

// =============================
// Users
// =============================

type MockUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User

	SaveFunc        func(ctx context.Context, tx repository.Tx, u *model.User) error
	FindByIDFunc    func(ctx context.Context, tx repository.Tx, id string) (*model.User, error)
	FindByEmailFunc func(ctx context.Context, tx repository.Tx, email string) (*model.User, error)
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{users: map[string]*model.User{}}
}

var _ repository.UserRepository = (*MockUserRepo)(nil)

func (m *MockUserRepo) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx, u)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *MockUserRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, tx repository.Tx, email string) (*model.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, tx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// =============================
// Daycares and groups
// =============================

type MockDaycareRepo struct {
	mu       sync.Mutex
	daycares map[string]*model.Daycare

	FindByIDFunc func(ctx context.Context, tx repository.Tx, id string) (*model.Daycare, error)
}

func NewMockDaycareRepo() *MockDaycareRepo {
	return &MockDaycareRepo{daycares: map[string]*model.Daycare{}}
}

var _ repository.DaycareRepository = (*MockDaycareRepo)(nil)

func (m *MockDaycareRepo) Save(ctx context.Context, tx repository.Tx, d *model.Daycare) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	m.daycares[d.ID] = &cp
	return nil
}

func (m *MockDaycareRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Daycare, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.daycares[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

type MockGroupRepo struct {
	mu     sync.Mutex
	groups map[string]*model.DaycareGroup
}

func NewMockGroupRepo() *MockGroupRepo {
	return &MockGroupRepo{groups: map[string]*model.DaycareGroup{}}
}

var _ repository.DaycareGroupRepository = (*MockGroupRepo)(nil)

func (m *MockGroupRepo) Save(ctx context.Context, tx repository.Tx, g *model.DaycareGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *g
	m.groups[g.ID] = &cp
	return nil
}

func (m *MockGroupRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.DaycareGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.groups[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockGroupRepo) ListByDaycare(ctx context.Context, tx repository.Tx, daycareID string) ([]*model.DaycareGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.DaycareGroup
	for _, g := range m.groups {
		if g.DaycareID == daycareID {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

// =============================
// Memberships
// =============================

type membershipKey struct{ guardianID, daycareID string }

type MockMembershipRepo struct {
	mu    sync.Mutex
	links map[membershipKey]bool
	// LinkCalls counts actual inserts so tests can assert idempotency.
	LinkCalls int

	IsLinkedFunc func(ctx context.Context, tx repository.Tx, guardianID, daycareID string) (bool, error)
	LinkFunc     func(ctx context.Context, tx repository.Tx, guardianID, daycareID string) error
}

func NewMockMembershipRepo() *MockMembershipRepo {
	return &MockMembershipRepo{links: map[membershipKey]bool{}}
}

var _ repository.MembershipRepository = (*MockMembershipRepo)(nil)

func (m *MockMembershipRepo) IsLinked(ctx context.Context, tx repository.Tx, guardianID, daycareID string) (bool, error) {
	if m.IsLinkedFunc != nil {
		return m.IsLinkedFunc(ctx, tx, guardianID, daycareID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.links[membershipKey{guardianID, daycareID}], nil
}

func (m *MockMembershipRepo) Link(ctx context.Context, tx repository.Tx, guardianID, daycareID string) error {
	if m.LinkFunc != nil {
		return m.LinkFunc(ctx, tx, guardianID, daycareID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := membershipKey{guardianID, daycareID}
	if !m.links[key] {
		m.links[key] = true
		m.LinkCalls++
	}
	return nil
}

func (m *MockMembershipRepo) ListDaycaresByGuardian(ctx context.Context, tx repository.Tx, guardianID string) ([]*model.Daycare, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Daycare
	for key := range m.links {
		if key.guardianID == guardianID {
			out = append(out, &model.Daycare{ID: key.daycareID})
		}
	}
	return out, nil
}

// LinkCount returns the number of distinct memberships held.
func (m *MockMembershipRepo) LinkCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.links)
}

// =============================
// Access codes
// =============================

type MockAccessCodeRepo struct {
	mu    sync.Mutex
	codes map[string]*model.AccessCode

	CreateFunc     func(ctx context.Context, tx repository.Tx, code *model.AccessCode) error
	FindByCodeFunc func(ctx context.Context, tx repository.Tx, code string) (*model.AccessCode, error)
	ConsumeFunc    func(ctx context.Context, tx repository.Tx, code string) error
}

func NewMockAccessCodeRepo() *MockAccessCodeRepo {
	return &MockAccessCodeRepo{codes: map[string]*model.AccessCode{}}
}

var _ repository.AccessCodeRepository = (*MockAccessCodeRepo)(nil)

func (m *MockAccessCodeRepo) Create(ctx context.Context, tx repository.Tx, code *model.AccessCode) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, code)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.codes[code.Code]; ok {
		return domain.ErrAlreadyExists
	}
	cp := *code
	m.codes[code.Code] = &cp
	return nil
}

func (m *MockAccessCodeRepo) FindByCode(ctx context.Context, tx repository.Tx, code string) (*model.AccessCode, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, tx, code)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.codes[code]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

// Consume mirrors the store's conditional update: the check and the
// increment happen under one lock so concurrent redemptions serialize here.
func (m *MockAccessCodeRepo) Consume(ctx context.Context, tx repository.Tx, code string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, tx, code)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.codes[code]
	if !ok {
		return domain.ErrNotFound
	}
	if c.UsedCount >= c.MaxUses {
		return domain.ErrCodeExhausted
	}
	c.UsedCount++
	c.Active = c.Active && c.UsedCount < c.MaxUses
	return nil
}

func (m *MockAccessCodeRepo) Deactivate(ctx context.Context, tx repository.Tx, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.codes[code]
	if !ok {
		return domain.ErrNotFound
	}
	c.Active = false
	return nil
}

func (m *MockAccessCodeRepo) ListByDaycare(ctx context.Context, tx repository.Tx, daycareID string) ([]*model.AccessCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.AccessCode
	for _, c := range m.codes {
		if c.DaycareID == daycareID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Get returns the stored record for assertions.
func (m *MockAccessCodeRepo) Get(code string) *model.AccessCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.codes[code]; ok {
		cp := *c
		return &cp
	}
	return nil
}

// Seed inserts a record directly, bypassing Create semantics.
func (m *MockAccessCodeRepo) Seed(code *model.AccessCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *code
	m.codes[code.Code] = &cp
}

// =============================
// Children and attendance
// =============================

type MockChildRepo struct {
	mu        sync.Mutex
	children  map[string]*model.Child
	guardians map[membershipKey]bool // guardianID, childID
}

func NewMockChildRepo() *MockChildRepo {
	return &MockChildRepo{children: map[string]*model.Child{}, guardians: map[membershipKey]bool{}}
}

var _ repository.ChildRepository = (*MockChildRepo)(nil)

func (m *MockChildRepo) Save(ctx context.Context, tx repository.Tx, c *model.Child) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.children[c.ID] = &cp
	return nil
}

func (m *MockChildRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.children[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockChildRepo) ListByGuardian(ctx context.Context, tx repository.Tx, guardianID string) ([]*model.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Child
	for key := range m.guardians {
		if key.guardianID == guardianID {
			if c, ok := m.children[key.daycareID]; ok {
				cp := *c
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (m *MockChildRepo) ListByGroup(ctx context.Context, tx repository.Tx, groupID string) ([]*model.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Child
	for _, c := range m.children {
		if c.GroupID != nil && *c.GroupID == groupID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockChildRepo) LinkGuardian(ctx context.Context, tx repository.Tx, guardianID, childID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guardians[membershipKey{guardianID, childID}] = true
	return nil
}

type MockAttendanceRepo struct {
	mu     sync.Mutex
	events []*model.Attendance
}

func NewMockAttendanceRepo() *MockAttendanceRepo { return &MockAttendanceRepo{} }

var _ repository.AttendanceRepository = (*MockAttendanceRepo)(nil)

func (m *MockAttendanceRepo) Save(ctx context.Context, tx repository.Tx, a *model.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.events = append(m.events, &cp)
	return nil
}

func (m *MockAttendanceRepo) ListByChildAndDay(ctx context.Context, tx repository.Tx, childID string, day time.Time) ([]*model.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	var out []*model.Attendance
	for _, a := range m.events {
		if a.ChildID == childID && !a.EventTime.Before(dayStart) && a.EventTime.Before(dayEnd) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockAttendanceRepo) LastEvent(ctx context.Context, tx repository.Tx, childID string) (*model.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var last *model.Attendance
	for _, a := range m.events {
		if a.ChildID != childID {
			continue
		}
		if last == nil || a.EventTime.After(last.EventTime) {
			last = a
		}
	}
	if last == nil {
		return nil, domain.ErrNotFound
	}
	cp := *last
	return &cp, nil
}
