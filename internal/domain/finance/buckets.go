package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/domain/entity"
)

// DailyPoint totais de um dia do mês selecionado.
type DailyPoint struct {
	Day     int // dia do calendário, 1..31
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyPoint totais de um mês (chave YYYY-MM).
type MonthlyPoint struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// CategoryTotal total de receita de uma categoria de entrada.
type CategoryTotal struct {
	Category entity.TransactionCategory
	Total    decimal.Decimal
}

// historyMonths tamanho da janela da série mensal do dashboard.
const historyMonths = 12

// DailySeries agrupa os lançamentos por dia do mês indicado (YYYY-MM),
// somando entradas e saídas separadamente. Devolve exatamente uma linha por
// dia do calendário, incluindo dias sem movimento (valores zero), em ordem
// crescente de dia. Lançamentos fora do mês são ignorados.
func DailySeries(txs []*entity.Transaction, month string) ([]DailyPoint, error) {
	ref, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("mês inválido %q: %w", month, err)
	}
	// dia zero do mês seguinte = último dia do mês de referência
	daysInMonth := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	points := make([]DailyPoint, daysInMonth)
	for i := range points {
		points[i] = DailyPoint{Day: i + 1, Income: decimal.Zero, Expense: decimal.Zero}
	}

	for _, t := range txs {
		if t.Date.Format(monthLayout) != month {
			continue
		}
		p := &points[t.Date.Day()-1]
		if t.Type == entity.TypeIncome {
			p.Income = p.Income.Add(t.Amount)
		} else {
			p.Expense = p.Expense.Add(t.Amount)
		}
	}
	return points, nil
}

// MonthlyHistory agrupa todos os lançamentos por mês (chave YYYY-MM) e devolve
// os últimos 12 meses distintos presentes nos dados, em ordem cronológica.
// Profit de cada ponto é Income - Expense do próprio mês.
func MonthlyHistory(txs []*entity.Transaction) []MonthlyPoint {
	byMonth := make(map[string]*MonthlyPoint)
	for _, t := range txs {
		key := t.Date.Format(monthLayout)
		p, ok := byMonth[key]
		if !ok {
			p = &MonthlyPoint{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = p
		}
		if t.Type == entity.TypeIncome {
			p.Income = p.Income.Add(t.Amount)
		} else {
			p.Expense = p.Expense.Add(t.Amount)
		}
	}

	out := make([]MonthlyPoint, 0, len(byMonth))
	for _, p := range byMonth {
		p.Profit = p.Income.Sub(p.Expense)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })

	if len(out) > historyMonths {
		out = out[len(out)-historyMonths:]
	}
	return out
}

// IncomeBreakdown soma as entradas por origem (BAR_SALES, QUENTINHAS,
// OTHER_INCOME) sobre o conjunto recebido. Categorias com soma zero são
// omitidas; sem nenhuma receita o resultado é vazio.
func IncomeBreakdown(txs []*entity.Transaction) []CategoryTotal {
	sources := []entity.TransactionCategory{
		entity.CategoryBarSales,
		entity.CategoryQuentinhas,
		entity.CategoryOtherIncome,
	}

	totals := make(map[entity.TransactionCategory]decimal.Decimal, len(sources))
	for _, t := range txs {
		if t.Type != entity.TypeIncome {
			continue
		}
		for _, src := range sources {
			if t.Category == src {
				totals[src] = totals[src].Add(t.Amount)
			}
		}
	}

	out := make([]CategoryTotal, 0, len(sources))
	for _, src := range sources {
		if total, ok := totals[src]; ok && total.IsPositive() {
			out = append(out, CategoryTotal{Category: src, Total: total})
		}
	}
	return out
}
