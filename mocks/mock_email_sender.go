package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstdesk/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDocument(ctx context.Context, email port.DocumentEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
