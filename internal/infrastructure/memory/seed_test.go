package memory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/infrastructure/memory"
)

func seededStore(t *testing.T, days int) (*memory.Store, time.Time) {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2025-08-30T18:00:00-03:00")
	require.NoError(t, err)
	return memory.NewSeeded(memory.SeedOptions{
		Now:  now,
		Days: days,
		Rand: rand.New(rand.NewSource(42)),
	}), now
}

func TestNewSeeded_Colecoes(t *testing.T) {
	store, now := seededStore(t, 30)

	clients, err := memory.NewClientRepository(store).List()
	require.NoError(t, err)
	require.Len(t, clients, 5)

	inactive := 0
	for _, c := range clients {
		if c.Inactive(now) {
			inactive++
		}
	}
	assert.Equal(t, 1, inactive, "só o Seu Zé deve estar sumido")

	suppliers, err := memory.NewSupplierRepository(store).List()
	require.NoError(t, err)
	require.Len(t, suppliers, 3)

	items, err := memory.NewInventoryRepository(store).List()
	require.NoError(t, err)
	require.Len(t, items, 5)

	low := 0
	for _, i := range items {
		if i.LowStock() {
			low++
		}
	}
	assert.Equal(t, 2, low, "Coca-Cola (no mínimo) e Carne Seca (abaixo) estão baixos")
}

func TestNewSeeded_LancamentosOrdenadosDoMaisRecente(t *testing.T) {
	store, now := seededStore(t, 60)

	txs, err := memory.NewTransactionRepository(store).List()
	require.NoError(t, err)
	require.NotEmpty(t, txs)

	assert.Equal(t, now.Format("2006-01-02"), txs[0].Date.Format("2006-01-02"),
		"o primeiro lançamento é de hoje")
	for i := 1; i < len(txs); i++ {
		assert.False(t, txs[i].Date.After(txs[i-1].Date),
			"as datas nunca crescem ao percorrer a lista")
	}
}

func TestNewSeeded_ComposicaoDoHistorico(t *testing.T) {
	store, _ := seededStore(t, 90)

	txs, err := memory.NewTransactionRepository(store).List()
	require.NoError(t, err)

	var bar, quentinhas, supplier, fixed int
	for _, tx := range txs {
		switch tx.Category {
		case entity.CategoryBarSales:
			bar++
		case entity.CategoryQuentinhas:
			quentinhas++
		case entity.CategorySupplier:
			supplier++
			assert.NotEmpty(t, tx.SupplierID, "reposição referencia um fornecedor")
		case entity.CategoryFixedCost:
			fixed++
			assert.Equal(t, 5, tx.Date.Day(), "custo fixo cai no dia 5")
		}
		assert.False(t, tx.Amount.IsNegative(), "nenhum valor gerado é negativo")
	}

	assert.Equal(t, 90, bar, "uma venda de bar por dia")
	assert.Equal(t, 90, quentinhas, "uma venda de quentinhas por dia")
	assert.Equal(t, 30, supplier, "reposição a cada 3 dias")
	assert.Equal(t, 3, fixed, "um custo fixo por mês no horizonte de 90 dias")
}
