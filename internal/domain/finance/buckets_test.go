package finance_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// DailySeries
// ──────────────────────────────────────────────────────────────────────────────

// A série diária tem exatamente uma linha por dia do calendário, em ordem
// crescente, com zeros nos dias sem movimento.
func TestDailySeries_UmaLinhaPorDiaDoMes(t *testing.T) {
	txs := []*entity.Transaction{
		tx("2025-02-01", entity.TypeIncome, entity.CategoryBarSales, 100),
		tx("2025-02-01", entity.TypeIncome, entity.CategoryQuentinhas, 50),
		tx("2025-02-14", entity.TypeExpense, entity.CategorySupplier, 30),
		tx("2025-03-01", entity.TypeIncome, entity.CategoryBarSales, 999), // fora do mês
	}

	points, err := finance.DailySeries(txs, "2025-02")
	require.NoError(t, err)

	require.Len(t, points, 28, "fevereiro de 2025 tem 28 dias")
	for i, p := range points {
		assert.Equal(t, i+1, p.Day, "os dias devem vir em ordem crescente")
	}

	eq(t, 150, points[0].Income, "entradas do dia 1")
	eq(t, 0, points[0].Expense, "saídas do dia 1")
	eq(t, 30, points[13].Expense, "saídas do dia 14")
	eq(t, 0, points[27].Income, "dia sem movimento fica zerado")
}

func TestDailySeries_AnoBissexto(t *testing.T) {
	points, err := finance.DailySeries(nil, "2024-02")
	require.NoError(t, err)
	assert.Len(t, points, 29, "fevereiro de 2024 tem 29 dias")
}

func TestDailySeries_MesInvalido(t *testing.T) {
	_, err := finance.DailySeries(nil, "fevereiro")
	assert.Error(t, err, "chave de mês fora do formato YYYY-MM deve falhar")
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthlyHistory
// ──────────────────────────────────────────────────────────────────────────────

// A série mensal agrupa por YYYY-MM, ordena cronologicamente e mantém só os
// últimos 12 meses distintos presentes nos dados.
func TestMonthlyHistory_Ultimos12MesesOrdenados(t *testing.T) {
	var txs []*entity.Transaction
	// 14 meses de movimento: out/2024 a nov/2025
	for m := 0; m < 14; m++ {
		year, month := 2024, 10+m
		if month > 12 {
			year, month = 2025, month-12
		}
		day := fmt.Sprintf("%04d-%02d-10", year, month)
		txs = append(txs,
			tx(day, entity.TypeIncome, entity.CategoryBarSales, 100),
			tx(day, entity.TypeExpense, entity.CategoryFixedCost, 40),
		)
	}

	points := finance.MonthlyHistory(txs)

	require.Len(t, points, 12, "somente os últimos 12 meses devem permanecer")
	assert.Equal(t, "2024-12", points[0].Month, "o mês mais antigo da janela")
	assert.Equal(t, "2025-11", points[11].Month, "o mês mais recente")
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Month, points[i].Month, "ordem cronológica")
	}
	for _, p := range points {
		eq(t, 60, p.Profit, "lucro do mês = entradas - saídas")
	}
}

func TestMonthlyHistory_MenosDe12Meses(t *testing.T) {
	txs := []*entity.Transaction{
		tx("2025-05-01", entity.TypeIncome, entity.CategoryBarSales, 10),
		tx("2025-07-01", entity.TypeExpense, entity.CategorySupplier, 4),
	}

	points := finance.MonthlyHistory(txs)

	require.Len(t, points, 2, "meses sem movimento não geram linha")
	assert.Equal(t, "2025-05", points[0].Month)
	assert.Equal(t, "2025-07", points[1].Month)
	eq(t, -4, points[1].Profit, "mês só com despesa tem lucro negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// IncomeBreakdown
// ──────────────────────────────────────────────────────────────────────────────

func TestIncomeBreakdown_OmiteCategoriasZeradas(t *testing.T) {
	txs := []*entity.Transaction{
		tx("2025-06-01", entity.TypeIncome, entity.CategoryBarSales, 300),
		tx("2025-06-02", entity.TypeIncome, entity.CategoryBarSales, 200),
		tx("2025-06-02", entity.TypeIncome, entity.CategoryQuentinhas, 450),
		tx("2025-06-03", entity.TypeIncome, entity.CategoryDebtPayment, 80), // não é origem de receita
		tx("2025-06-04", entity.TypeExpense, entity.CategorySupplier, 120),
	}

	got := finance.IncomeBreakdown(txs)

	require.Len(t, got, 2, "OTHER_INCOME zerado deve ser omitido")
	assert.Equal(t, entity.CategoryBarSales, got[0].Category)
	eq(t, 500, got[0].Total, "total do bar")
	assert.Equal(t, entity.CategoryQuentinhas, got[1].Category)
	eq(t, 450, got[1].Total, "total de quentinhas")
}

func TestIncomeBreakdown_SemReceitaResultadoVazio(t *testing.T) {
	txs := []*entity.Transaction{
		tx("2025-06-04", entity.TypeExpense, entity.CategorySupplier, 120),
	}
	assert.Empty(t, finance.IncomeBreakdown(txs), "sem entradas não há origens")
}
