package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockManager stands in for the trm transaction manager. Tests either
// .Run the closure and Return an error, or Return a
// func(context.Context, func(context.Context) error) error that decides.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) Do(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)

	if rf, ok := args.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}
