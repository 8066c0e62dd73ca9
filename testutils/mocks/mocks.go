// Package mocks provides mock implementations for testing
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDataSource is a mock implementation of todo.DataSource. It also
// implements AddTodo so it satisfies the HTTP layer's TodoStore.
type MockDataSource struct {
	mock.Mock
}

// RetrieveTodos returns the mocked snapshot of a user's items
func (m *MockDataSource) RetrieveTodos(ctx context.Context, user string) ([]string, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// DeleteTodo removes one item by exact text using the mocked source
func (m *MockDataSource) DeleteTodo(ctx context.Context, item string) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// AddTodo stores one item for a user using the mocked source
func (m *MockDataSource) AddTodo(ctx context.Context, user, text string) error {
	args := m.Called(ctx, user, text)
	return args.Error(0)
}

// MockNotifier is a mock implementation of notify.Notifier
type MockNotifier struct {
	mock.Mock
}

// SendPurgeReport reports a purge outcome using the mocked notifier
func (m *MockNotifier) SendPurgeReport(user string, deleted []string) error {
	args := m.Called(user, deleted)
	return args.Error(0)
}
