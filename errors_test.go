package adbcpool

import (
	"errors"
	"testing"

	"github.com/apache/arrow-adbc/go/adbc"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	cause := adbc.Error{Code: adbc.StatusInternal, Msg: "test error"}
	err := &Error{Message: "open connection", Cause: cause}

	require.Contains(t, err.Error(), "open connection")
	require.Contains(t, err.Error(), "test error")
}

func TestErrorChain(t *testing.T) {
	t.Run("driver cause stays reachable", func(t *testing.T) {
		cause := adbc.Error{Code: adbc.StatusIO, Msg: "network unreachable"}
		err := &Error{Message: "open connection", Cause: cause}

		// adbc.Error carries a Details slice, so it is not comparable and
		// errors.Is cannot match it; errors.As is the way through the chain.
		var adbcErr adbc.Error
		require.ErrorAs(t, err, &adbcErr)
		require.Equal(t, adbc.StatusIO, adbcErr.Code)
		require.Equal(t, "network unreachable", adbcErr.Msg)
	})

	t.Run("no cause", func(t *testing.T) {
		err := &Error{Message: "open connection"}

		require.Equal(t, "open connection", err.Error())
		require.Nil(t, errors.Unwrap(err))
	})
}
