package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstdesk/internal/domain"
	"gstdesk/internal/service"
	"gstdesk/mocks"
)

func TestItemServiceCreateDefaultsToActive(t *testing.T) {
	repo := new(mocks.MockItemRepo)
	svc := service.NewItemService(repo)
	tenantID := uuid.New()

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	item, err := svc.Create(context.Background(), tenantID, service.ItemInput{
		Name:    "Steel Bracket",
		HSNCode: "7326",
		Unit:    "pcs",
		Rate:    dec("118"),
		TaxRate: dec("18"),
	})
	require.NoError(t, err)

	assert.Equal(t, tenantID, item.TenantID)
	assert.True(t, item.IsActive)
	assert.True(t, item.Rate.Equal(dec("118")))
}

func TestItemServiceUpdateOverwritesFields(t *testing.T) {
	repo := new(mocks.MockItemRepo)
	svc := service.NewItemService(repo)
	tenantID := uuid.New()
	itemID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, itemID).Return(&domain.Item{
		ID:       itemID,
		TenantID: tenantID,
		Name:     "Old Name",
		Rate:     dec("100"),
		TaxRate:  dec("12"),
		IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	item, err := svc.Update(context.Background(), tenantID, itemID, service.ItemInput{
		Name:    "New Name",
		HSNCode: "7318",
		Unit:    "box",
		Rate:    dec("236"),
		TaxRate: dec("18"),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", item.Name)
	assert.Equal(t, "7318", item.HSNCode)
	assert.True(t, item.Rate.Equal(dec("236")))
	assert.True(t, item.TaxRate.Equal(dec("18")))
	assert.True(t, item.IsActive, "activity flag is not touched by Update")
}

func TestItemServiceSetActive(t *testing.T) {
	repo := new(mocks.MockItemRepo)
	svc := service.NewItemService(repo)
	tenantID := uuid.New()
	itemID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, itemID).Return(&domain.Item{
		ID: itemID, TenantID: tenantID, IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(it *domain.Item) bool {
		return !it.IsActive
	})).Return(nil)

	item, err := svc.SetActive(context.Background(), tenantID, itemID, false)
	require.NoError(t, err)
	assert.False(t, item.IsActive)
	repo.AssertExpectations(t)
}

func TestItemServiceGetUnknownItem(t *testing.T) {
	repo := new(mocks.MockItemRepo)
	svc := service.NewItemService(repo)
	tenantID := uuid.New()
	itemID := uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, itemID).Return(nil, domain.ErrNotFound)

	_, err := svc.Get(context.Background(), tenantID, itemID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
