// Package testutil provides in-memory implementations of the domain
// repositories for application layer tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/domain/statement"
	"github.com/lrsproject/lrs/internal/domain/tenant"
	"github.com/lrsproject/lrs/internal/domain/user"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

// MockStatementRepository is a mock implementation of statement.Repository.
type MockStatementRepository struct {
	mu         sync.RWMutex
	statements map[string]*statement.Statement
	voided     map[string]bool
	creds      map[uint]string

	// Error injection for testing
	CreateError error
	GetError    error
	ListError   error
}

func NewMockStatementRepository() *MockStatementRepository {
	return &MockStatementRepository{
		statements: make(map[string]*statement.Statement),
		voided:     make(map[string]bool),
		creds:      make(map[uint]string),
	}
}

// NameCredential sets the credential name returned with reads.
func (m *MockStatementRepository) NameCredential(id uint, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds[id] = name
}

// Void marks a stored statement as voided.
func (m *MockStatementRepository) Void(uuid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voided[uuid] = true
}

// Add stores a statement without the duplicate check.
func (m *MockStatementRepository) Add(s *statement.Statement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statements[s.UUID()] = s
}

func (m *MockStatementRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.statements)
}

func (m *MockStatementRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return false, m.GetError
	}
	_, ok := m.statements[uuid]
	return ok, nil
}

func (m *MockStatementRepository) GetByUUID(ctx context.Context, uuid string) (*statement.Statement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	s, ok := m.statements[uuid]
	if !ok {
		return nil, nil
	}
	return m.withCredentialName(s), nil
}

func (m *MockStatementRepository) Create(ctx context.Context, s *statement.Statement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	if _, ok := m.statements[s.UUID()]; ok {
		return statement.ErrDuplicate
	}
	m.statements[s.UUID()] = s
	return nil
}

func (m *MockStatementRepository) ListRecent(ctx context.Context, owner statement.Owner, limit, offset int) ([]*statement.Statement, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, 0, m.ListError
	}

	owned := m.owned(owner)
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].Timestamp().After(owned[j].Timestamp())
	})

	total := int64(len(owned))
	if offset >= len(owned) {
		return []*statement.Statement{}, total, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], total, nil
}

func (m *MockStatementRepository) MonthlyTotals(ctx context.Context, owner statement.Owner) ([]statement.MonthlyCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}

	type month struct {
		year  int
		month time.Month
	}
	counts := make(map[month]int64)
	for _, s := range m.owned(owner) {
		ts := s.Timestamp()
		counts[month{ts.Year(), ts.Month()}]++
	}

	result := make([]statement.MonthlyCount, 0, len(counts))
	for k, total := range counts {
		result = append(result, statement.MonthlyCount{Year: k.year, Month: k.month, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})
	return result, nil
}

func (m *MockStatementRepository) TopActivities(ctx context.Context, owner statement.Owner) ([]statement.ActivityCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}

	counts := make(map[string]int64)
	for _, s := range m.owned(owner) {
		counts[s.ActivityType()]++
	}
	result := make([]statement.ActivityCount, 0, len(counts))
	for activity, total := range counts {
		result = append(result, statement.ActivityCount{Activity: activity, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Activity < result[j].Activity
	})
	return result, nil
}

func (m *MockStatementRepository) DataSources(ctx context.Context, owner statement.Owner) ([]statement.SourceCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}

	counts := make(map[string]int64)
	for _, s := range m.owned(owner) {
		counts[m.creds[s.CredentialID()]]++
	}
	result := make([]statement.SourceCount, 0, len(counts))
	for name, total := range counts {
		result = append(result, statement.SourceCount{Name: name, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *MockStatementRepository) owned(owner statement.Owner) []*statement.Statement {
	var result []*statement.Statement
	for uuid, s := range m.statements {
		if m.voided[uuid] || s.TenantID() != owner.TenantID || s.UserID() == nil || *s.UserID() != owner.UserID {
			continue
		}
		result = append(result, m.withCredentialName(s))
	}
	return result
}

func (m *MockStatementRepository) withCredentialName(s *statement.Statement) *statement.Statement {
	return statement.ReconstructStatement(
		s.UUID(), s.Raw(), s.Verb(), s.Timestamp(), s.ActivityType(), s.ActorType(),
		s.Type(), s.Version(), m.voided[s.UUID()], s.TenantID(), s.UserID(), s.CredentialID(),
		m.creds[s.CredentialID()], s.CreatedAt(),
	)
}

// MockUserRepository is a mock implementation of user.Repository.
type MockUserRepository struct {
	mu     sync.RWMutex
	users  map[userKey]*user.User
	nextID uint

	GetError    error
	UpsertError error
}

type userKey struct {
	tenantID   uint
	externalID string
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[userKey]*user.User)}
}

// Add stores a user and returns it with an assigned ID.
func (m *MockUserRepository) Add(tenantID uint, externalID, name string) *user.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insert(tenantID, externalID, name)
}

func (m *MockUserRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

func (m *MockUserRepository) GetByExternalID(ctx context.Context, tenantID uint, externalID string) (*user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.users[userKey{tenantID, externalID}], nil
}

func (m *MockUserRepository) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertError != nil {
		return nil, m.UpsertError
	}

	key := userKey{u.TenantID(), u.ExternalID()}
	existing, ok := m.users[key]
	if !ok {
		return m.insert(u.TenantID(), u.ExternalID(), u.Name()), nil
	}
	updated := user.ReconstructUser(existing.ID(), existing.TenantID(), existing.ExternalID(),
		u.Name(), existing.CreatedAt(), time.Now().UTC())
	m.users[key] = updated
	return updated, nil
}

func (m *MockUserRepository) GetOrCreate(ctx context.Context, u *user.User) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertError != nil {
		return nil, m.UpsertError
	}
	if existing, ok := m.users[userKey{u.TenantID(), u.ExternalID()}]; ok {
		return existing, nil
	}
	return m.insert(u.TenantID(), u.ExternalID(), u.Name()), nil
}

func (m *MockUserRepository) insert(tenantID uint, externalID, name string) *user.User {
	m.nextID++
	now := time.Now().UTC()
	u := user.ReconstructUser(m.nextID, tenantID, externalID, name, now, now)
	m.users[userKey{tenantID, externalID}] = u
	return u
}

// MockOptOutRepository is a mock implementation of optout.Repository.
type MockOptOutRepository struct {
	mu      sync.RWMutex
	optOuts map[[2]uint]bool

	Error error
}

func NewMockOptOutRepository() *MockOptOutRepository {
	return &MockOptOutRepository{optOuts: make(map[[2]uint]bool)}
}

func (m *MockOptOutRepository) Exists(ctx context.Context, userID, credentialID uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Error != nil {
		return false, m.Error
	}
	return m.optOuts[[2]uint{userID, credentialID}], nil
}

func (m *MockOptOutRepository) Add(ctx context.Context, userID, credentialID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Error != nil {
		return m.Error
	}
	m.optOuts[[2]uint{userID, credentialID}] = true
	return nil
}

func (m *MockOptOutRepository) Remove(ctx context.Context, userID, credentialID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Error != nil {
		return m.Error
	}
	delete(m.optOuts, [2]uint{userID, credentialID})
	return nil
}

func (m *MockOptOutRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.optOuts)
}

// MockCredentialRepository is a mock implementation of credential.Repository.
type MockCredentialRepository struct {
	mu          sync.RWMutex
	credentials map[uint]*credential.Credential
	optOuts     *MockOptOutRepository
	nextID      uint

	Error error
}

// NewMockCredentialRepository creates a repository whose data uses reflect
// the given opt-outs. optOuts may be nil.
func NewMockCredentialRepository(optOuts *MockOptOutRepository) *MockCredentialRepository {
	return &MockCredentialRepository{
		credentials: make(map[uint]*credential.Credential),
		optOuts:     optOuts,
	}
}

func (m *MockCredentialRepository) Create(ctx context.Context, c *credential.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Error != nil {
		return m.Error
	}
	for _, existing := range m.credentials {
		if existing.Key() == c.Key() {
			return credentialKeyTaken
		}
	}
	if c.ID() == 0 {
		m.nextID++
		if err := c.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.credentials[c.ID()] = c
	return nil
}

func (m *MockCredentialRepository) GetByKey(ctx context.Context, key string) (*credential.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Error != nil {
		return nil, m.Error
	}
	for _, c := range m.credentials {
		if c.Key() == key {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockCredentialRepository) GetByID(ctx context.Context, id uint) (*credential.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Error != nil {
		return nil, m.Error
	}
	return m.credentials[id], nil
}

func (m *MockCredentialRepository) List(ctx context.Context, tenantID *uint) ([]*credential.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Error != nil {
		return nil, m.Error
	}
	var result []*credential.Credential
	for _, c := range m.sorted() {
		if tenantID == nil || (c.TenantID() != nil && *c.TenantID() == *tenantID) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockCredentialRepository) ListDataUses(ctx context.Context, tenantID, userID uint) ([]*credential.DataUse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Error != nil {
		return nil, m.Error
	}

	var result []*credential.DataUse
	for _, c := range m.sorted() {
		perms := c.Permissions()
		sameTenant := c.TenantID() != nil && *c.TenantID() == tenantID && perms.Read && perms.Datashare
		if !c.IsGlobal() && !sameTenant {
			continue
		}
		share := true
		if m.optOuts != nil {
			optedOut, _ := m.optOuts.Exists(ctx, userID, c.ID())
			share = !optedOut
		}
		result = append(result, &credential.DataUse{
			ID:          c.ID(),
			Name:        c.Name(),
			Description: c.Description(),
			Anonymous:   perms.Anonymous,
			Share:       share,
		})
	}
	return result, nil
}

func (m *MockCredentialRepository) sorted() []*credential.Credential {
	result := make([]*credential.Credential, 0, len(m.credentials))
	for _, c := range m.credentials {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

type mockError string

func (e mockError) Error() string { return string(e) }

const credentialKeyTaken = mockError("UNIQUE constraint failed: credentials.key")

// MockTenantRepository is a mock implementation of tenant.Repository.
type MockTenantRepository struct {
	mu      sync.RWMutex
	tenants map[uint]*tenant.Tenant
	nextID  uint

	Error error
}

func NewMockTenantRepository() *MockTenantRepository {
	return &MockTenantRepository{tenants: make(map[uint]*tenant.Tenant)}
}

func (m *MockTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Error != nil {
		return m.Error
	}
	m.nextID++
	if err := t.SetID(m.nextID); err != nil {
		return err
	}
	m.tenants[t.ID()] = t
	return nil
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Error != nil {
		return nil, m.Error
	}
	return m.tenants[id], nil
}

func (m *MockTenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Error != nil {
		return nil, m.Error
	}
	result := make([]*tenant.Tenant, 0, len(m.tenants))
	for _, t := range m.tenants {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result, nil
}

// MockTxManager runs the callback inline.
type MockTxManager struct {
	Calls int
}

func (m *MockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// MockLogger is a mock implementation of logger.Interface that records
// every entry.
type MockLogger struct {
	mu      sync.RWMutex
	entries []LogEntry
}

// LogEntry records a log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]any
}

func NewMockLogger() *MockLogger {
	return &MockLogger{entries: make([]LogEntry, 0)}
}

func (m *MockLogger) With(args ...any) logger.Interface  { return m }
func (m *MockLogger) Named(name string) logger.Interface { return m }

func (m *MockLogger) Debugw(msg string, keysAndValues ...any) { m.log("DEBUG", msg, keysAndValues...) }
func (m *MockLogger) Infow(msg string, keysAndValues ...any)  { m.log("INFO", msg, keysAndValues...) }
func (m *MockLogger) Warnw(msg string, keysAndValues ...any)  { m.log("WARN", msg, keysAndValues...) }
func (m *MockLogger) Errorw(msg string, keysAndValues ...any) { m.log("ERROR", msg, keysAndValues...) }
func (m *MockLogger) Fatalw(msg string, keysAndValues ...any) { m.log("FATAL", msg, keysAndValues...) }

func (m *MockLogger) log(level, msg string, keysAndValues ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fields := make(map[string]any)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	m.entries = append(m.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}

// Entries returns the entries logged at level.
func (m *MockLogger) Entries(level string) []LogEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []LogEntry
	for _, e := range m.entries {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}
