package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver
)

// State describes the lifecycle of the shared database handle.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

// ErrNotConnected is returned by Manager.DB when no connection has been
// established. Handlers never see it in practice: the connection gate runs
// Ensure before any store is touched.
var ErrNotConnected = errors.New("database connection not established")

// attempt is a single in-flight connection attempt. All concurrent callers
// of Ensure share it and read db/err only after done is closed.
type attempt struct {
	done chan struct{}
	db   *sql.DB
	err  error
}

// Manager owns the process-wide database handle. Connection establishment
// is lazy, idempotent, and single-flight: concurrent requests arriving
// while a connection attempt is in progress all await the same attempt
// instead of dialing again. A failed attempt resets the state to
// disconnected so a later request may retry.
type Manager struct {
	// open dials and verifies a connection; injectable for tests.
	open func(ctx context.Context) (*sql.DB, error)

	mu       sync.Mutex
	state    State
	db       *sql.DB
	inflight *attempt
}

// NewManager creates a Manager that connects to url on first use.
func NewManager(url string) *Manager {
	return &Manager{
		open: func(ctx context.Context) (*sql.DB, error) {
			return openAndPing(ctx, url)
		},
	}
}

// NewManagerWithOpener creates a Manager with a custom dial function.
// Used by tests to observe and control connection attempts.
func NewManagerWithOpener(open func(ctx context.Context) (*sql.DB, error)) *Manager {
	return &Manager{open: open}
}

// Ensure returns the shared database handle, establishing the connection
// if necessary. It never re-dials an already connected handle: a request
// that starts with a live connection assumes it stays live for the
// request's duration.
func (m *Manager) Ensure(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	switch m.state {
	case StateConnected:
		db := m.db
		m.mu.Unlock()
		return db, nil

	case StateConnecting:
		att := m.inflight
		m.mu.Unlock()
		select {
		case <-att.done:
			return att.db, att.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// Disconnected: this caller performs the attempt.
	att := &attempt{done: make(chan struct{})}
	m.state = StateConnecting
	m.inflight = att
	m.mu.Unlock()

	db, err := m.open(ctx)

	m.mu.Lock()
	if err != nil {
		m.state = StateDisconnected
	} else {
		m.state = StateConnected
		m.db = db
	}
	m.inflight = nil
	m.mu.Unlock()

	att.db, att.err = db, err
	close(att.done)

	return db, err
}

// DB returns the established handle without triggering a connection.
func (m *Manager) DB() (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateConnected {
		return nil, ErrNotConnected
	}
	return m.db, nil
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close tears down the handle and resets the state.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateConnected {
		return nil
	}
	m.state = StateDisconnected
	db := m.db
	m.db = nil
	return db.Close()
}

// openAndPing opens a pooled connection and verifies it with a bounded ping.
func openAndPing(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
