package adbcpool

// Error wraps a failure reported by the underlying ADBC driver. It is the
// only error kind this package produces: the manager performs no local
// validation, so every failure originates in the driver and is passed
// through with its cause intact. Callers can reach the driver error with
// errors.As (adbc.Error is not comparable, so errors.Is only matches
// sentinel causes) to tell transient I/O failures from configuration ones
// (e.g. an option key the driver rejects).
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}
