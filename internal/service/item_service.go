package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstdesk/internal/domain"
	"gstdesk/internal/port"
)

// ItemInput is the DTO for creating or updating a catalog item.
type ItemInput struct {
	Name    string          `json:"name" binding:"required"`
	HSNCode string          `json:"hsn_code"`
	Unit    string          `json:"unit"`
	Rate    decimal.Decimal `json:"rate"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// ItemService manages the tenant's item catalog.
type ItemService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input ItemInput) (*domain.Item, error)
	Get(ctx context.Context, tenantID, itemID uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Item, int, error)
	Update(ctx context.Context, tenantID, itemID uuid.UUID, input ItemInput) (*domain.Item, error)
	SetActive(ctx context.Context, tenantID, itemID uuid.UUID, active bool) (*domain.Item, error)
	Delete(ctx context.Context, tenantID, itemID uuid.UUID) error
}

type itemService struct {
	itemRepo port.ItemRepository
}

// NewItemService creates a new ItemService implementation.
func NewItemService(itemRepo port.ItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

func (s *itemService) Create(ctx context.Context, tenantID uuid.UUID, input ItemInput) (*domain.Item, error) {
	item := &domain.Item{
		TenantID: tenantID,
		Name:     input.Name,
		HSNCode:  input.HSNCode,
		Unit:     input.Unit,
		Rate:     input.Rate,
		TaxRate:  input.TaxRate,
		IsActive: true,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, tenantID, itemID uuid.UUID) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, tenantID, itemID)
}

func (s *itemService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Item, int, error) {
	return s.itemRepo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *itemService) Update(ctx context.Context, tenantID, itemID uuid.UUID, input ItemInput) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}
	item.Name = input.Name
	item.HSNCode = input.HSNCode
	item.Unit = input.Unit
	item.Rate = input.Rate
	item.TaxRate = input.TaxRate
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) SetActive(ctx context.Context, tenantID, itemID uuid.UUID, active bool) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}
	item.IsActive = active
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, tenantID, itemID uuid.UUID) error {
	return s.itemRepo.Delete(ctx, tenantID, itemID)
}
