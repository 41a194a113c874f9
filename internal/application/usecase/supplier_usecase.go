package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

// SupplierUseCase cadastro de fornecedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create cadastra fornecedor sem histórico de compras e estoque OK.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	s := &entity.Supplier{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Category:       in.Category,
		TotalPurchased: decimal.Zero,
		StockStatus:    entity.StockOK,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// Update patch parcial. O status de estoque é informativo e pode ser
// alternado à mão aqui.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		s.Name = *in.Name
	}
	if in.Category != nil {
		s.Category = *in.Category
	}
	if in.StockStatus != nil {
		if *in.StockStatus != entity.StockOK && *in.StockStatus != entity.StockLow {
			return nil, domain.ErrInvalidInput
		}
		s.StockStatus = *in.StockStatus
	}

	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	out := toSupplierResponse(s)
	return &out, nil
}

func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *SupplierUseCase) Get(id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	out := toSupplierResponse(s)
	return &out, nil
}

func (uc *SupplierUseCase) List() (*dto.SupplierListResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.SupplierResponse, 0, len(all))
	for _, s := range all {
		items = append(items, toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items}, nil
}
