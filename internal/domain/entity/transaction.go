package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indica se o lançamento é entrada ou saída de caixa.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// TransactionCategory categoria do lançamento no fluxo de caixa.
type TransactionCategory string

const (
	CategoryBarSales     TransactionCategory = "BAR_SALES"     // vendas do bar (inclui fiado)
	CategoryQuentinhas   TransactionCategory = "QUENTINHAS"    // vendas de quentinhas
	CategorySupplier     TransactionCategory = "SUPPLIER"      // compras de fornecedor (custo variável)
	CategoryFixedCost    TransactionCategory = "FIXED_COST"    // aluguel, luz, internet
	CategoryDebtPayment  TransactionCategory = "DEBT_PAYMENT"  // recebimento de fiado
	CategoryOtherIncome  TransactionCategory = "OTHER_INCOME"
	CategoryOtherExpense TransactionCategory = "OTHER_EXPENSE"
)

// IncomeCategories categorias válidas para lançamentos de entrada.
var IncomeCategories = []TransactionCategory{
	CategoryBarSales, CategoryQuentinhas, CategoryDebtPayment, CategoryOtherIncome,
}

// ExpenseCategories categorias válidas para lançamentos de saída.
var ExpenseCategories = []TransactionCategory{
	CategorySupplier, CategoryFixedCost, CategoryOtherExpense,
}

// ValidCategory informa se a categoria pertence ao conjunto conhecido.
func ValidCategory(c TransactionCategory) bool {
	for _, known := range append(append([]TransactionCategory{}, IncomeCategories...), ExpenseCategories...) {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction um lançamento do livro-caixa. O sinal do valor é dado por Type;
// Amount nunca é negativo. ClientID e SupplierID são referências opcionais que
// podem ficar pendentes após a remoção da entidade referenciada (comportamento
// aceito, sem cascata).
type Transaction struct {
	ID          string
	Date        time.Time
	Type        TransactionType
	Category    TransactionCategory
	Amount      decimal.Decimal
	Description string
	ClientID    string // opcional: lançamento ligado ao fiado de um cliente
	SupplierID  string // opcional: lançamento ligado a um pedido de fornecedor
}
