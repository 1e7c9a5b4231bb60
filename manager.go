package adbcpool

import (
	"context"

	"go.uber.org/zap"
)

// Database is the narrow capability the manager requires from an ADBC
// driver: construct a connection, with or without connection options.
// Implementations must be safe for concurrent use, since a pool opens
// several connections at once to fill its slots.
type Database interface {
	OpenConnection(ctx context.Context) (Connection, error)
	OpenConnectionWithOptions(ctx context.Context, options []OptionPair) (Connection, error)
}

// Connection is a live, driver-owned session handle. The manager never
// inspects it beyond creating a probe statement.
type Connection interface {
	NewStatement() (Statement, error)
	Close() error
}

// Statement exists here only as a health probe: created by IsValid and
// closed immediately.
type Statement interface {
	Close() error
}

// ConnectionManager implements the three lifecycle callbacks a generic
// blocking connection pool requires: Connect, IsValid and HasBroken.
//
// The option list is append-only. Populate it before the manager is
// registered with a pool; Connect reads it from multiple pool workers
// without locking.
type ConnectionManager struct {
	database Database
	options  []OptionPair
	logger   *zap.Logger
}

// NewConnectionManager returns a manager that creates connections without
// any pre-initialization options.
func NewConnectionManager(database Database) *ConnectionManager {
	return &ConnectionManager{
		database: database,
		logger:   zap.NewNop(),
	}
}

// NewConnectionManagerWithOptions returns a manager that applies the given
// options, in order, to every connection it creates.
func NewConnectionManagerWithOptions(database Database, options []OptionPair) *ConnectionManager {
	return &ConnectionManager{
		database: database,
		options:  append([]OptionPair(nil), options...),
		logger:   zap.NewNop(),
	}
}

// SetLogger replaces the manager's logger (a nop logger by default).
// Call it before the manager is handed to a pool.
func (m *ConnectionManager) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	m.logger = logger
}

// AddOption appends an option applied to every connection created from now
// on. A key already present is not overwritten: both pairs are kept and
// passed to the driver in insertion order.
func (m *ConnectionManager) AddOption(key, value string) {
	m.options = append(m.options, OptionPair{Key: key, Value: value})
}

// ClearOptions drops all connection options.
func (m *ConnectionManager) ClearOptions() {
	m.options = nil
}

// Options returns a copy of the current connection options in insertion
// order.
func (m *ConnectionManager) Options() []OptionPair {
	return append([]OptionPair(nil), m.options...)
}

// Connect opens a new connection through the database capability. With an
// empty option list the plain constructor is used; otherwise every stored
// pair is converted (key canonicalized via ConnectionOptionKey, value
// verbatim) and handed to the options-aware constructor. Options are never
// dropped or validated here; a key or value the driver rejects surfaces as
// the driver's error.
func (m *ConnectionManager) Connect(ctx context.Context) (Connection, error) {
	m.logger.Debug("open connection", zap.Int("options", len(m.options)))

	if len(m.options) == 0 {
		conn, err := m.database.OpenConnection(ctx)
		if err != nil {
			return nil, &Error{Message: "open connection", Cause: err}
		}

		return conn, nil
	}

	options := make([]OptionPair, 0, len(m.options))
	for _, opt := range m.options {
		options = append(options, OptionPair{Key: ConnectionOptionKey(opt.Key), Value: opt.Value})
	}

	conn, err := m.database.OpenConnectionWithOptions(ctx, options)
	if err != nil {
		return nil, &Error{Message: "open connection with options", Cause: err}
	}

	return conn, nil
}

// IsValid reports connection health by creating a statement and discarding
// it. Statement creation is the cheapest driver operation guaranteed to
// fail on a dead session, without touching application data. A failure to
// close the probe statement is logged but does not invalidate the
// connection.
func (m *ConnectionManager) IsValid(conn Connection) error {
	stmt, err := conn.NewStatement()
	if err != nil {
		return &Error{Message: "new statement", Cause: err}
	}

	logCloserError(m.logger, stmt, "close probe statement")

	return nil
}

// HasBroken always reports false. ADBC drivers surface broken connections
// through failed operations, so a synchronous pre-check has no signal to
// read; pools are expected to rely on IsValid instead. This is the
// contract, not a placeholder.
func (m *ConnectionManager) HasBroken(Connection) bool {
	return false
}
