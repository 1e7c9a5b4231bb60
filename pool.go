package adbcpool

import (
	"context"

	"github.com/jackc/puddle/v2"
)

// NewPool wires the manager into a puddle pool: the pool's constructor is
// the manager's Connect, its destructor closes the connection. Slot
// accounting, blocking acquisition and eviction stay with puddle.
//
// Validity checking is the caller's cadence to choose: acquire a resource,
// run the manager's IsValid on its value, and Destroy it on failure.
func NewPool(manager *ConnectionManager, maxSize int32) (*puddle.Pool[Connection], error) {
	return puddle.NewPool(&puddle.Config[Connection]{
		Constructor: func(ctx context.Context) (Connection, error) {
			return manager.Connect(ctx)
		},
		Destructor: func(conn Connection) {
			logCloserError(manager.logger, conn, "close pooled connection")
		},
		MaxSize: maxSize,
	})
}
