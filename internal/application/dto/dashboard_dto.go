package dto

import "github.com/shopspring/decimal"

// StatementDTO o DRE de um período (Demonstrativo do Resultado).
type StatementDTO struct {
	GrossRevenue       decimal.Decimal `json:"gross_revenue"`
	VariableCosts      decimal.Decimal `json:"variable_costs"`
	ContributionMargin decimal.Decimal `json:"contribution_margin"`
	FixedCosts         decimal.Decimal `json:"fixed_costs"`
	OtherCosts         decimal.Decimal `json:"other_costs"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	MarginPercent      decimal.Decimal `json:"margin_percent"`
}

// DailyPointDTO totais de um dia do mês de referência.
type DailyPointDTO struct {
	Day     int             `json:"day"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyPointDTO totais de um mês da série histórica.
type MonthlyPointDTO struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// CategoryTotalDTO total de receita por origem.
type CategoryTotalDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// KPIsDTO indicadores do topo do dashboard.
type KPIsDTO struct {
	RevenueToday    decimal.Decimal `json:"revenue_today"`    // faturamento de hoje
	TotalReceivable decimal.Decimal `json:"total_receivable"` // fiado a receber (soma das dívidas)
	NetProfit       decimal.Decimal `json:"net_profit"`       // lucro líquido do mês de referência
	InactiveClients int             `json:"inactive_clients"` // clientes sumidos (>30 dias)
}

// DashboardSummaryResponse resposta de GET /api/dashboard/summary.
// Tudo é recalculado do livro-caixa completo a cada chamada.
type DashboardSummaryResponse struct {
	Month          string             `json:"month"`           // mês de referência YYYY-MM
	Statement      StatementDTO       `json:"statement"`       // DRE do mês
	Daily          []DailyPointDTO    `json:"daily"`           // uma linha por dia do mês
	History        []MonthlyPointDTO  `json:"history"`         // últimos 12 meses com movimento
	Breakdown      []CategoryTotalDTO `json:"breakdown"`       // origem da receita
	BreakdownScope string             `json:"breakdown_scope"` // MONTH | YEAR
	KPIs           KPIsDTO            `json:"kpis"`
}
