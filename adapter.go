package adbcpool

import (
	"context"

	"github.com/apache/arrow-adbc/go/adbc"
	"go.uber.org/zap"
)

var _ Database = (*adbcDatabase)(nil)

// WrapDatabase adapts a real adbc.Database to the Database capability.
// Returns nil if db is nil; a nil logger is replaced with a nop one.
//
// The ADBC Go binding has no options-aware connection constructor, so
// OpenConnectionWithOptions opens the connection first and applies each
// option through adbc.PostInitOptions, in order. A driver whose
// connections do not support post-init options yields a NotImplemented
// error, and the half-open connection is closed.
func WrapDatabase(db adbc.Database, logger *zap.Logger) Database {
	if db == nil {
		return nil
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &adbcDatabase{db: db, logger: logger}
}

type adbcDatabase struct {
	db     adbc.Database
	logger *zap.Logger
}

func (d *adbcDatabase) OpenConnection(ctx context.Context) (Connection, error) {
	conn, err := d.db.Open(ctx)
	if err != nil {
		return nil, err
	}

	return adbcConnection{conn}, nil
}

func (d *adbcDatabase) OpenConnectionWithOptions(ctx context.Context, options []OptionPair) (Connection, error) {
	conn, err := d.db.Open(ctx)
	if err != nil {
		return nil, err
	}

	post, ok := conn.(adbc.PostInitOptions)
	if !ok {
		logCloserError(d.logger, conn, "close connection that rejects options")

		return nil, adbc.Error{
			Code: adbc.StatusNotImplemented,
			Msg:  "connection does not support post-init options",
		}
	}

	for _, opt := range options {
		if err := post.SetOption(opt.Key, opt.Value); err != nil {
			logCloserError(d.logger, conn, "close half-configured connection")

			return nil, err
		}
	}

	return adbcConnection{conn}, nil
}

var _ Connection = adbcConnection{}

// adbcConnection narrows adbc.Connection's statement constructor to the
// Statement interface.
type adbcConnection struct {
	adbc.Connection
}

func (c adbcConnection) NewStatement() (Statement, error) {
	return c.Connection.NewStatement()
}
