package browse

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/skybi/symbolist/internal/hashmap"
	"github.com/skybi/symbolist/internal/paginate"
	"github.com/skybi/symbolist/internal/symbol"
)

var (
	ErrSessionNotFound    = errors.New("the browsing session does not exist or has expired")
	ErrPageSizeOutOfRange = errors.New("the page size is out of the allowed range")
)

// Options configures a Manager
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	Lifetime        time.Duration
}

// Manager keeps track of browsing sessions.
// A session expires once it was not accessed for the configured lifetime.
type Manager struct {
	repo     symbol.Repository
	options  Options
	sessions *hashmap.ExpiringMap[uuid.UUID, *Session]
}

// NewManager creates a new browsing session manager serving symbols out of repo
func NewManager(repo symbol.Repository, options Options) *Manager {
	return &Manager{
		repo:     repo,
		options:  options,
		sessions: hashmap.NewSliding[uuid.UUID, *Session](options.Lifetime),
	}
}

// Start schedules the task removing expired sessions
func (manager *Manager) Start(tick time.Duration) {
	manager.sessions.ScheduleCleanupTask(tick)
}

// Stop stops the cleanup task
func (manager *Manager) Stop() {
	manager.sessions.StopCleanupTask()
}

// Expire removes all expired sessions and returns their amount
func (manager *Manager) Expire() int {
	return manager.sessions.Expire()
}

// OnExpire registers a hook called for every removed session
func (manager *Manager) OnExpire(hook func(session *Session)) {
	manager.sessions.OnExpire = func(_ uuid.UUID, session *Session) {
		hook(session)
	}
}

// Count returns the amount of tracked sessions
func (manager *Manager) Count() int {
	return manager.sessions.Size()
}

// PageSize resolves a requested page size; 0 selects the default one
func (manager *Manager) PageSize(requested int) (int, error) {
	if requested == 0 {
		requested = manager.options.DefaultPageSize
	}
	if requested < 1 || requested > manager.options.MaxPageSize {
		return 0, ErrPageSizeOutOfRange
	}
	return requested, nil
}

// Create creates a new session showing the first page of the symbols matching query
func (manager *Manager) Create(ctx context.Context, query string, pageSize int) (*Session, error) {
	size, err := manager.PageSize(pageSize)
	if err != nil {
		return nil, err
	}
	symbols, err := manager.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	paginator, err := paginate.New(symbols, size)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        uuid.New(),
		repo:      manager.repo,
		query:     query,
		paginator: paginator,
	}
	manager.sessions.Set(session.ID, session)
	return session, nil
}

// Get retrieves a session by its ID and extends its lifetime
func (manager *Manager) Get(id uuid.UUID) (*Session, error) {
	session, ok := manager.sessions.Lookup(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete terminates a session
func (manager *Manager) Delete(id uuid.UUID) error {
	if !manager.sessions.Has(id) {
		return ErrSessionNotFound
	}
	manager.sessions.Unset(id)
	return nil
}
