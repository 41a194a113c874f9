package usecase

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

// InventoryUseCase controle de estoque do balcão.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create cadastra um item. Quantidades e preço não podem ser negativos.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.MinStock.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.InventoryItem{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Quantity: in.Quantity,
		MinStock: in.MinStock,
		Unit:     in.Unit,
		Price:    in.Price,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	out := toInventoryItemResponse(item)
	return &out, nil
}

// Update patch parcial dos dados do item.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.MinStock = *in.MinStock
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	out := toInventoryItemResponse(item)
	return &out, nil
}

func (uc *InventoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// SetQuantity ajusta o estoque por valor absoluto ou por delta, nunca os
// dois ao mesmo tempo. Saída maior que o estoque zera em vez de negativar.
func (uc *InventoryUseCase) SetQuantity(id string, in dto.SetQuantityRequest) (*dto.InventoryItemResponse, error) {
	if (in.Quantity == nil) == (in.Delta == nil) {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var next decimal.Decimal
	if in.Quantity != nil {
		next = *in.Quantity
	} else {
		next = item.Quantity.Add(*in.Delta)
	}
	if next.IsNegative() {
		next = decimal.Zero
	}
	item.Quantity = next

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	out := toInventoryItemResponse(item)
	return &out, nil
}

// List filtra por situação de estoque (ALL, LOW, OK) e ordena. A ordenação
// default é por nome sem distinguir maiúsculas.
func (uc *InventoryUseCase) List(in dto.ListInventoryRequest) (*dto.InventoryListResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	lowCount := 0
	filtered := make([]*entity.InventoryItem, 0, len(all))
	for _, item := range all {
		low := item.LowStock()
		if low {
			lowCount++
		}
		switch in.Status {
		case "LOW":
			if !low {
				continue
			}
		case "OK":
			if low {
				continue
			}
		}
		filtered = append(filtered, item)
	}

	sortInventory(filtered, in.SortBy, in.Order)

	items := make([]dto.InventoryItemResponse, 0, len(filtered))
	for _, item := range filtered {
		items = append(items, toInventoryItemResponse(item))
	}
	return &dto.InventoryListResponse{Items: items, LowCount: lowCount}, nil
}

func sortInventory(items []*entity.InventoryItem, sortBy, order string) {
	desc := order == "desc"

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case "quantity":
			return a.Quantity.LessThan(b.Quantity)
		case "min_stock":
			return a.MinStock.LessThan(b.MinStock)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	})
}
