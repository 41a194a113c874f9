package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/infrastructure/memory"
)

func newSupplierUC(t *testing.T) (*SupplierUseCase, *memory.SupplierRepository) {
	t.Helper()
	store := memory.New()
	repo := memory.NewSupplierRepository(store)
	return NewSupplierUseCase(repo), repo
}

func TestSupplierCreate(t *testing.T) {
	uc, _ := newSupplierUC(t)

	out, err := uc.Create(dto.CreateSupplierRequest{Name: "Distribuidora Imperial", Category: "Bebidas"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.TotalPurchased.IsZero(), "fornecedor novo começa sem histórico")
	assert.Equal(t, entity.StockOK, out.StockStatus)
	assert.True(t, out.LastDelivery.IsZero(), "sem entrega registrada ainda")

	_, err = uc.Create(dto.CreateSupplierRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierUpdateStatus(t *testing.T) {
	uc, repo := newSupplierUC(t)

	require.NoError(t, repo.Create(&entity.Supplier{ID: "s1", Name: "Hortifruti Frescor", StockStatus: entity.StockOK}))

	low := entity.StockLow
	out, err := uc.Update("s1", dto.UpdateSupplierRequest{StockStatus: &low})
	require.NoError(t, err)
	assert.Equal(t, entity.StockLow, out.StockStatus)

	invalido := entity.StockStatus("EMPTY")
	_, err = uc.Update("s1", dto.UpdateSupplierRequest{StockStatus: &invalido})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierUpdateInexistente(t *testing.T) {
	uc, _ := newSupplierUC(t)

	out, err := uc.Update("fantasma", dto.UpdateSupplierRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSupplierList(t *testing.T) {
	uc, repo := newSupplierUC(t)

	require.NoError(t, repo.Create(&entity.Supplier{ID: "s1", Name: "Adega Central"}))
	require.NoError(t, repo.Create(&entity.Supplier{ID: "s2", Name: "Açougue do Bairro"}))

	out, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}
