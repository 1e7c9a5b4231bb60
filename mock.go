package adbcpool

import (
	"context"

	"github.com/stretchr/testify/mock"
)

var _ Database = (*DatabaseMock)(nil)

type DatabaseMock struct {
	mock.Mock
}

func (m *DatabaseMock) OpenConnection(_ context.Context) (Connection, error) {
	args := m.Called()

	if conn := args.Get(0); conn != nil {
		return conn.(Connection), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *DatabaseMock) OpenConnectionWithOptions(_ context.Context, options []OptionPair) (Connection, error) {
	args := m.Called(options)

	if conn := args.Get(0); conn != nil {
		return conn.(Connection), args.Error(1)
	}

	return nil, args.Error(1)
}

var _ Connection = (*ConnectionMock)(nil)

type ConnectionMock struct {
	mock.Mock
}

func (m *ConnectionMock) NewStatement() (Statement, error) {
	args := m.Called()

	if stmt := args.Get(0); stmt != nil {
		return stmt.(Statement), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ConnectionMock) Close() error {
	return m.Called().Error(0)
}

var _ Statement = (*StatementMock)(nil)

type StatementMock struct {
	mock.Mock
}

func (m *StatementMock) Close() error {
	return m.Called().Error(0)
}
