package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barsilva/bar-erp/internal/application/analytics"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/finance"
	"github.com/barsilva/bar-erp/internal/infrastructure/memory"
)

func fixedNow() time.Time {
	return time.Date(2025, 8, 30, 18, 0, 0, 0, time.UTC)
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func setup(t *testing.T) (*analytics.DashboardUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	uc := analytics.NewDashboardUseCase(
		memory.NewTransactionRepository(store),
		memory.NewClientRepository(store),
		fixedNow,
	)
	return uc, store
}

func TestSummaryDREeKPIs(t *testing.T) {
	uc, store := setup(t)
	txRepo := memory.NewTransactionRepository(store)
	clientRepo := memory.NewClientRepository(store)

	txs := []*entity.Transaction{
		{ID: "t1", Date: fixedNow(), Type: entity.TypeIncome, Category: entity.CategoryBarSales, Amount: dec(500)},
		{ID: "t2", Date: fixedNow().AddDate(0, 0, -10), Type: entity.TypeIncome, Category: entity.CategoryQuentinhas, Amount: dec(300)},
		{ID: "t3", Date: fixedNow().AddDate(0, 0, -10), Type: entity.TypeExpense, Category: entity.CategorySupplier, Amount: dec(200)},
		{ID: "t4", Date: fixedNow().AddDate(0, 0, -25), Type: entity.TypeExpense, Category: entity.CategoryFixedCost, Amount: dec(100)},
		// mês anterior: fora do DRE, dentro do histórico
		{ID: "t5", Date: fixedNow().AddDate(0, -1, 0), Type: entity.TypeIncome, Category: entity.CategoryBarSales, Amount: dec(50)},
	}
	for _, tx := range txs {
		require.NoError(t, txRepo.Create(tx))
	}

	require.NoError(t, clientRepo.Create(&entity.Client{
		ID: "c1", Name: "João", Debt: dec(40), LastPurchase: fixedNow(),
	}))
	require.NoError(t, clientRepo.Create(&entity.Client{
		ID: "c2", Name: "Seu Zé", Debt: dec(10), LastPurchase: fixedNow().AddDate(0, 0, -45),
	}))

	out, err := uc.Summary("", "")
	require.NoError(t, err)

	assert.Equal(t, "2025-08", out.Month, "mês vazio usa o corrente")
	assert.Equal(t, analytics.ScopeMonth, out.BreakdownScope)

	// DRE de agosto: 800 de receita, 200 variável, 100 fixo
	assert.True(t, dec(800).Equal(out.Statement.GrossRevenue))
	assert.True(t, dec(600).Equal(out.Statement.ContributionMargin))
	assert.True(t, dec(500).Equal(out.Statement.NetProfit))

	assert.Len(t, out.Daily, 31, "agosto tem 31 linhas, com ou sem movimento")
	assert.Len(t, out.History, 2, "julho e agosto têm movimento")
	assert.Equal(t, "2025-07", out.History[0].Month, "histórico em ordem cronológica")

	require.Len(t, out.Breakdown, 2)
	assert.Equal(t, string(entity.CategoryBarSales), out.Breakdown[0].Category)
	assert.True(t, dec(500).Equal(out.Breakdown[0].Total))

	assert.True(t, dec(500).Equal(out.KPIs.RevenueToday), "só o lançamento de hoje")
	assert.True(t, dec(50).Equal(out.KPIs.TotalReceivable))
	assert.True(t, dec(500).Equal(out.KPIs.NetProfit))
	assert.Equal(t, 1, out.KPIs.InactiveClients)
}

func TestSummaryBreakdownAnual(t *testing.T) {
	uc, store := setup(t)
	txRepo := memory.NewTransactionRepository(store)

	require.NoError(t, txRepo.Create(&entity.Transaction{
		ID: "velho", Date: fixedNow().AddDate(-2, 0, 0), Type: entity.TypeIncome, Category: entity.CategoryBarSales, Amount: dec(999),
	}))
	require.NoError(t, txRepo.Create(&entity.Transaction{
		ID: "recente", Date: fixedNow().AddDate(0, -3, 0), Type: entity.TypeIncome, Category: entity.CategoryQuentinhas, Amount: dec(120),
	}))

	out, err := uc.Summary("2025-08", analytics.ScopeYear)
	require.NoError(t, err)

	require.Len(t, out.Breakdown, 1, "a janela anual corta o lançamento de dois anos atrás")
	assert.Equal(t, string(entity.CategoryQuentinhas), out.Breakdown[0].Category)
}

func TestSummaryMesSemMovimento(t *testing.T) {
	uc, _ := setup(t)

	out, err := uc.Summary("2024-02", "")
	require.NoError(t, err)

	assert.True(t, out.Statement.GrossRevenue.IsZero())
	assert.True(t, out.Statement.MarginPercent.IsZero(), "sem receita a margem é zero, não divisão por zero")
	assert.Len(t, out.Daily, 29, "fevereiro bissexto")
	assert.Empty(t, out.Breakdown)
}

func TestSummaryEntradaInvalida(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Summary("agosto", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Summary("2025-08", "WEEK")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─────────────────────────────────────────────
// ReportUseCase
// ─────────────────────────────────────────────

type fakeGenerator struct {
	month string
	st    finance.Statement
}

func (g *fakeGenerator) GenerateDRE(month string, st finance.Statement) ([]byte, error) {
	g.month = month
	g.st = st
	return []byte("%PDF-fake"), nil
}

func TestMonthlyDRE(t *testing.T) {
	store := memory.New()
	txRepo := memory.NewTransactionRepository(store)
	require.NoError(t, txRepo.Create(&entity.Transaction{
		ID: "t1", Date: fixedNow(), Type: entity.TypeIncome, Category: entity.CategoryBarSales, Amount: dec(100),
	}))

	gen := &fakeGenerator{}
	uc := analytics.NewReportUseCase(txRepo, gen, fixedNow)

	doc, err := uc.MonthlyDRE("")
	require.NoError(t, err)

	assert.NotEmpty(t, doc)
	assert.Equal(t, "2025-08", gen.month)
	assert.True(t, dec(100).Equal(gen.st.GrossRevenue))

	_, err = uc.MonthlyDRE("2025/08")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
