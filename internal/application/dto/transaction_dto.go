package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/domain/entity"
)

// CreateTransactionRequest lançamento manual no livro-caixa.
// ID e data são atribuídos pelo servidor.
type CreateTransactionRequest struct {
	Type        entity.TransactionType     `json:"type"`
	Category    entity.TransactionCategory `json:"category"`
	Amount      decimal.Decimal            `json:"amount"`
	Description string                     `json:"description"`
	ClientID    string                     `json:"client_id,omitempty"`
	SupplierID  string                     `json:"supplier_id,omitempty"`
}

// UpdateTransactionRequest patch parcial por ID; campos nil ficam como estão.
type UpdateTransactionRequest struct {
	Date        *time.Time                  `json:"date"`
	Type        *entity.TransactionType     `json:"type"`
	Category    *entity.TransactionCategory `json:"category"`
	Amount      *decimal.Decimal            `json:"amount"`
	Description *string                     `json:"description"`
	ClientID    *string                     `json:"client_id"`
	SupplierID  *string                     `json:"supplier_id"`
}

// ListTransactionsRequest filtros do fluxo de caixa.
// Day restringe a um dia (YYYY-MM-DD) e tem prioridade sobre Month (YYYY-MM);
// os dois vazios significam o histórico inteiro.
type ListTransactionsRequest struct {
	Type     string `query:"type"`     // ALL | INCOME | EXPENSE
	Category string `query:"category"` // ALL ou uma categoria
	Month    string `query:"month"`    // YYYY-MM
	Day      string `query:"day"`      // YYYY-MM-DD
	SortBy   string `query:"sort_by"`  // date | amount (default date)
	Order    string `query:"order"`    // asc | desc (default desc)
}

// TransactionResponse um lançamento do livro-caixa.
type TransactionResponse struct {
	ID          string                     `json:"id"`
	Date        time.Time                  `json:"date"`
	Type        entity.TransactionType     `json:"type"`
	Category    entity.TransactionCategory `json:"category"`
	Amount      decimal.Decimal            `json:"amount"`
	Description string                     `json:"description"`
	ClientID    string                     `json:"client_id,omitempty"`
	SupplierID  string                     `json:"supplier_id,omitempty"`
}

// ViewTotals totais do conjunto filtrado exibido (entradas, saídas, saldo).
type ViewTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// TransactionListResponse resposta de GET /api/transactions.
type TransactionListResponse struct {
	Items  []TransactionResponse `json:"items"`
	Totals ViewTotals            `json:"totals"`
}
