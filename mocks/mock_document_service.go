package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"gstdesk/internal/domain"
	"gstdesk/internal/gst"
	"gstdesk/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Create(ctx context.Context, tenantID, userID uuid.UUID, input service.CreateDocumentInput) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, tenantID, docID uuid.UUID) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, tenantID uuid.UUID, kind domain.DocumentKind, offset, limit int) ([]domain.Document, int, error) {
	args := m.Called(ctx, tenantID, kind, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) AddLine(ctx context.Context, tenantID, docID uuid.UUID, draft service.LineDraft) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) AddItem(ctx context.Context, tenantID, docID, itemID uuid.UUID, quantity decimal.Decimal) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) UpdateLine(ctx context.Context, tenantID, docID, lineID uuid.UUID, draft service.LineDraft) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID, lineID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) RemoveLine(ctx context.Context, tenantID, docID, lineID uuid.UUID) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) SetCounterpartyState(ctx context.Context, tenantID, docID uuid.UUID, state string) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) SetDiscount(ctx context.Context, tenantID, docID uuid.UUID, discount gst.Discount) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID, discount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) Issue(ctx context.Context, tenantID, docID uuid.UUID) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) Void(ctx context.Context, tenantID, docID uuid.UUID) (*service.DocumentDetail, error) {
	args := m.Called(ctx, tenantID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentDetail), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, tenantID, docID uuid.UUID) error {
	args := m.Called(ctx, tenantID, docID)
	return args.Error(0)
}
