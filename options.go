package adbcpool

import "github.com/apache/arrow-adbc/go/adbc"

// OptionPair is one driver-interpreted connection setting. Pairs are
// opaque to the manager: no validation, no type coercion, no
// deduplication. Whether a later duplicate key overrides an earlier one
// is up to the driver.
type OptionPair struct {
	Key   string
	Value string
}

// Logical option keys recognized by ConnectionOptionKey. Any other key is
// handed to the driver verbatim.
const (
	OptionKeyAutocommit     = "autocommit"
	OptionKeyIsolationLevel = "isolation_level"
	OptionKeyCurrentCatalog = "current_catalog"
	OptionKeyCurrentSchema  = "current_schema"
	OptionKeyReadOnly       = "read_only"
)

// ConnectionOptionKey maps a logical option key to the canonical ADBC
// connection option identifier. Unrecognized keys, including keys that
// are already canonical and driver-specific ones, pass through unchanged.
func ConnectionOptionKey(key string) string {
	switch key {
	case OptionKeyAutocommit:
		return adbc.OptionKeyAutoCommit
	case OptionKeyIsolationLevel:
		return adbc.OptionKeyIsolationLevel
	case OptionKeyCurrentCatalog:
		return adbc.OptionKeyCurrentCatalog
	case OptionKeyCurrentSchema:
		return adbc.OptionKeyCurrentDbSchema
	case OptionKeyReadOnly:
		return adbc.OptionKeyReadOnly
	}

	return key
}
