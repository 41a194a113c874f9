// Package analytics deriva o dashboard e o DRE do livro-caixa. Nada aqui é
// materializado: cada chamada recalcula tudo a partir dos lançamentos.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/finance"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

const (
	ScopeMonth = "MONTH"
	ScopeYear  = "YEAR"

	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// DashboardUseCase monta o resumo gerencial de um mês de referência.
type DashboardUseCase struct {
	txRepo     repository.TransactionRepository
	clientRepo repository.ClientRepository
	now        func() time.Time
}

func NewDashboardUseCase(txRepo repository.TransactionRepository, clientRepo repository.ClientRepository, nowFn func() time.Time) *DashboardUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &DashboardUseCase{txRepo: txRepo, clientRepo: clientRepo, now: nowFn}
}

// Summary calcula o DRE do mês, a série diária, o histórico de 12 meses, a
// origem da receita e os KPIs. month vazio usa o mês corrente; scope controla
// a janela do breakdown (MONTH é o default, YEAR usa os últimos 12 meses
// corridos a partir de agora).
func (uc *DashboardUseCase) Summary(month, scope string) (*dto.DashboardSummaryResponse, error) {
	now := uc.now()
	if month == "" {
		month = now.Format(monthLayout)
	}
	if scope == "" {
		scope = ScopeMonth
	}
	if scope != ScopeMonth && scope != ScopeYear {
		return nil, domain.ErrInvalidInput
	}

	all, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}

	monthTxs := finance.FilterMonth(all, month)
	statement := finance.ComputeStatement(monthTxs)

	daily, err := finance.DailySeries(all, month)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	breakdownTxs := monthTxs
	if scope == ScopeYear {
		breakdownTxs = finance.FilterSince(all, now.AddDate(-1, 0, 0))
	}

	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	receivable := decimal.Zero
	inactive := 0
	for _, c := range clients {
		receivable = receivable.Add(c.Debt)
		if c.Inactive(now) {
			inactive++
		}
	}

	return &dto.DashboardSummaryResponse{
		Month:          month,
		Statement:      toStatementDTO(statement),
		Daily:          toDailyDTOs(daily),
		History:        toMonthlyDTOs(finance.MonthlyHistory(all)),
		Breakdown:      toBreakdownDTOs(finance.IncomeBreakdown(breakdownTxs)),
		BreakdownScope: scope,
		KPIs: dto.KPIsDTO{
			RevenueToday:    finance.SumIncome(finance.FilterDay(all, now.Format(dayLayout))),
			TotalReceivable: receivable,
			NetProfit:       statement.NetProfit,
			InactiveClients: inactive,
		},
	}, nil
}

func toStatementDTO(st finance.Statement) dto.StatementDTO {
	return dto.StatementDTO{
		GrossRevenue:       st.GrossRevenue,
		VariableCosts:      st.VariableCosts,
		ContributionMargin: st.ContributionMargin,
		FixedCosts:         st.FixedCosts,
		OtherCosts:         st.OtherCosts,
		TotalExpenses:      st.TotalExpenses,
		NetProfit:          st.NetProfit,
		MarginPercent:      st.MarginPercent,
	}
}

func toDailyDTOs(points []finance.DailyPoint) []dto.DailyPointDTO {
	out := make([]dto.DailyPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.DailyPointDTO{Day: p.Day, Income: p.Income, Expense: p.Expense})
	}
	return out
}

func toMonthlyDTOs(points []finance.MonthlyPoint) []dto.MonthlyPointDTO {
	out := make([]dto.MonthlyPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.MonthlyPointDTO{Month: p.Month, Income: p.Income, Expense: p.Expense, Profit: p.Profit})
	}
	return out
}

func toBreakdownDTOs(totals []finance.CategoryTotal) []dto.CategoryTotalDTO {
	out := make([]dto.CategoryTotalDTO, 0, len(totals))
	for _, c := range totals {
		out = append(out, dto.CategoryTotalDTO{Category: string(c.Category), Total: c.Total})
	}
	return out
}
