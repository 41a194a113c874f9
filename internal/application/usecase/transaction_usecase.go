package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/finance"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

// TransactionUseCase CRUD e consulta filtrada do livro-caixa.
type TransactionUseCase struct {
	repo repository.TransactionRepository
	now  func() time.Time
}

// NewTransactionUseCase constrói o caso de uso. nowFn nil usa time.Now.
func NewTransactionUseCase(repo repository.TransactionRepository, nowFn func() time.Time) *TransactionUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &TransactionUseCase{repo: repo, now: nowFn}
}

// Create registra um lançamento manual: ID novo, data de agora, topo da lista.
func (uc *TransactionUseCase) Create(in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TypeIncome && in.Type != entity.TypeExpense {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		Date:        uc.now(),
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		ClientID:    in.ClientID,
		SupplierID:  in.SupplierID,
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	out := toTransactionResponse(tx)
	return &out, nil
}

// Update aplica um patch parcial por ID. Devolve nil sem erro se não existir.
func (uc *TransactionUseCase) Update(id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}

	if in.Date != nil {
		tx.Date = *in.Date
	}
	if in.Type != nil {
		if *in.Type != entity.TypeIncome && *in.Type != entity.TypeExpense {
			return nil, domain.ErrInvalidInput
		}
		tx.Type = *in.Type
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		tx.Category = *in.Category
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		tx.Amount = *in.Amount
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	if in.ClientID != nil {
		tx.ClientID = *in.ClientID
	}
	if in.SupplierID != nil {
		tx.SupplierID = *in.SupplierID
	}

	if err := uc.repo.Update(tx); err != nil {
		return nil, err
	}
	out := toTransactionResponse(tx)
	return &out, nil
}

// Delete remove por ID. Não há validação de saldo nem cascata.
func (uc *TransactionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List aplica os filtros do fluxo de caixa (tipo, categoria, período),
// ordena e soma os totais do conjunto exibido.
func (uc *TransactionUseCase) List(in dto.ListTransactionsRequest) (*dto.TransactionListResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	// período: dia > mês > tudo
	switch {
	case in.Day != "":
		all = finance.FilterDay(all, in.Day)
	case in.Month != "":
		all = finance.FilterMonth(all, in.Month)
	}

	filtered := make([]*entity.Transaction, 0, len(all))
	for _, t := range all {
		if in.Type != "" && in.Type != "ALL" && string(t.Type) != in.Type {
			continue
		}
		if in.Category != "" && in.Category != "ALL" && string(t.Category) != in.Category {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTransactions(filtered, in.SortBy, in.Order)

	items := make([]dto.TransactionResponse, 0, len(filtered))
	totals := dto.ViewTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range filtered {
		items = append(items, toTransactionResponse(t))
		if t.Type == entity.TypeIncome {
			totals.Income = totals.Income.Add(t.Amount)
		} else {
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expense)

	return &dto.TransactionListResponse{Items: items, Totals: totals}, nil
}

// sortTransactions ordena por data ou valor; o default é data decrescente
// (mais recente primeiro, como a coleção).
func sortTransactions(txs []*entity.Transaction, sortBy, order string) {
	asc := order == "asc"
	byAmount := sortBy == "amount"

	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !asc {
			a, b = b, a
		}
		if byAmount {
			return a.Amount.LessThan(b.Amount)
		}
		return a.Date.Before(b.Date)
	})
}
