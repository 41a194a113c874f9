// Package finance contém as funções puras de agregação do livro-caixa:
// filtros por período, DRE (Demonstrativo do Resultado do Exercício),
// séries por dia/mês e quebra de receita por categoria.
//
// Todas as funções são totais e determinísticas sobre a coleção recebida,
// nunca mutam a entrada e recalculam tudo do zero a cada chamada — não existe
// agregado incremental para manter em sincronia.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/domain/entity"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// Statement o DRE de um conjunto de lançamentos.
//
// Identidades garantidas por construção:
//
//	ContributionMargin = GrossRevenue - VariableCosts
//	TotalExpenses      = VariableCosts + FixedCosts + OtherCosts
//	NetProfit          = GrossRevenue - TotalExpenses
//	MarginPercent      = NetProfit / GrossRevenue * 100 (0 se GrossRevenue = 0)
type Statement struct {
	GrossRevenue       decimal.Decimal
	VariableCosts      decimal.Decimal
	ContributionMargin decimal.Decimal
	FixedCosts         decimal.Decimal
	OtherCosts         decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetProfit          decimal.Decimal
	MarginPercent      decimal.Decimal
}

// FilterMonth seleciona os lançamentos do mês indicado (formato YYYY-MM).
// Equivale ao prefix-match sobre a data ISO.
func FilterMonth(txs []*entity.Transaction, month string) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.Format(monthLayout) == month {
			out = append(out, t)
		}
	}
	return out
}

// FilterDay seleciona os lançamentos do dia indicado (formato YYYY-MM-DD).
func FilterDay(txs []*entity.Transaction, day string) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.Format(dayLayout) == day {
			out = append(out, t)
		}
	}
	return out
}

// FilterSince seleciona os lançamentos com data igual ou posterior ao corte.
// Usado para o escopo de 12 meses (corte = agora menos um ano).
func FilterSince(txs []*entity.Transaction, cutoff time.Time) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if !t.Date.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// ComputeStatement reduz um conjunto já filtrado de lançamentos ao DRE.
//
// Receita bruta = soma de todas as entradas; custo variável = saídas SUPPLIER;
// custo fixo = saídas FIXED_COST; outros custos = saídas OTHER_EXPENSE.
func ComputeStatement(txs []*entity.Transaction) Statement {
	var gross, variable, fixed, other decimal.Decimal

	for _, t := range txs {
		switch {
		case t.Type == entity.TypeIncome:
			gross = gross.Add(t.Amount)
		case t.Category == entity.CategorySupplier:
			variable = variable.Add(t.Amount)
		case t.Category == entity.CategoryFixedCost:
			fixed = fixed.Add(t.Amount)
		case t.Category == entity.CategoryOtherExpense:
			other = other.Add(t.Amount)
		}
	}

	total := variable.Add(fixed).Add(other)
	net := gross.Sub(total)

	margin := decimal.Zero
	if gross.IsPositive() {
		margin = net.Div(gross).Mul(decimal.NewFromInt(100))
	}

	return Statement{
		GrossRevenue:       gross,
		VariableCosts:      variable,
		ContributionMargin: gross.Sub(variable),
		FixedCosts:         fixed,
		OtherCosts:         other,
		TotalExpenses:      total,
		NetProfit:          net,
		MarginPercent:      margin,
	}
}

// SumIncome soma as entradas do conjunto. Conveniência usada nos KPIs
// (faturamento do dia) sobre um conjunto já filtrado.
func SumIncome(txs []*entity.Transaction) decimal.Decimal {
	var sum decimal.Decimal
	for _, t := range txs {
		if t.Type == entity.TypeIncome {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}
