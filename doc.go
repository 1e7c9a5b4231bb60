// Package adbcpool supplies the connection lifecycle callbacks a generic
// blocking connection pool needs in order to manage ADBC (Arrow Database
// Connectivity) connections.
//
// The package pools nothing itself. Slot accounting, blocking acquisition,
// idle and lifetime eviction all belong to the pool; query execution and
// the wire protocol belong to the ADBC driver. What lives here is the thin
// translation between the two: create a connection (applying an ordered
// list of string options), probe its validity, and wrap driver failures so
// the original cause stays reachable.
//
// A typical setup over the Flight SQL driver and a puddle pool:
//
//	drv := flightsql.NewDriver(memory.DefaultAllocator)
//	db, err := drv.NewDatabase(map[string]string{"uri": "grpc://localhost:32010"})
//	if err != nil {
//		return err
//	}
//
//	manager := adbcpool.NewConnectionManagerWithOptions(
//		adbcpool.WrapDatabase(db, logger),
//		[]adbcpool.OptionPair{
//			{Key: "autocommit", Value: "true"},
//			{Key: "current_schema", Value: "analytics"},
//		},
//	)
//
//	pool, err := adbcpool.NewPool(manager, 10)
//	if err != nil {
//		return err
//	}
//
//	res, err := pool.Acquire(ctx)
//	if err != nil {
//		return err
//	}
//	defer res.Release()
//
// Populate options before the manager is handed to a pool: Connect is
// called from several pool workers at once and reads the option list
// without locking.
package adbcpool
