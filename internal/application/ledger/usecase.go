// Package ledger contém as operações compostas do caderno de fiado e dos
// pedidos de fornecedor: cada uma atualiza a entidade e lança o movimento
// correspondente no livro-caixa como um par atômico.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

// UseCase operações compostas sobre clientes e fornecedores.
//
// Valores devem ser estritamente positivos: valor zero ou negativo devolve
// domain.ErrInvalidInput antes de qualquer escrita.
type UseCase struct {
	runner Runner
	now    func() time.Time
}

// NewUseCase constrói o caso de uso. nowFn permite fixar o relógio nos testes;
// nil usa time.Now.
func NewUseCase(runner Runner, nowFn func() time.Time) *UseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &UseCase{runner: runner, now: nowFn}
}

// ChargeClient anota fiado: soma amount na dívida, marca a última compra e
// lança uma venda INCOME/BAR_SALES referenciando o cliente. Par atômico.
func (uc *UseCase) ChargeClient(clientID string, amount decimal.Decimal) (*dto.FiadoOperationResponse, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	var out dto.FiadoOperationResponse
	err := uc.runner.Run(func(
		txRepo repository.TransactionRepository,
		clientRepo repository.ClientRepository,
		_ repository.SupplierRepository,
	) error {
		client, err := clientRepo.GetByID(clientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}

		now := uc.now()
		client.Debt = client.Debt.Add(amount)
		client.LastPurchase = now
		if err := clientRepo.Update(client); err != nil {
			return err
		}

		tx := &entity.Transaction{
			ID:          uuid.New().String(),
			Date:        now,
			Type:        entity.TypeIncome,
			Category:    entity.CategoryBarSales,
			Amount:      amount,
			Description: "Fiado - " + client.Name,
			ClientID:    client.ID,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}

		out = dto.FiadoOperationResponse{
			Client:      toClientResponse(client, now),
			Transaction: toTransactionResponse(tx),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PayDebt abate a dívida, travada em zero por baixo: pagamento acima do saldo
// perdoa o excedente em vez de gerar crédito. O lançamento DEBT_PAYMENT
// registra o valor pago integral, não o abatido. Não marca última compra.
func (uc *UseCase) PayDebt(clientID string, amount decimal.Decimal) (*dto.FiadoOperationResponse, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	var out dto.FiadoOperationResponse
	err := uc.runner.Run(func(
		txRepo repository.TransactionRepository,
		clientRepo repository.ClientRepository,
		_ repository.SupplierRepository,
	) error {
		client, err := clientRepo.GetByID(clientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}

		client.Debt = client.Debt.Sub(amount)
		if client.Debt.IsNegative() {
			client.Debt = decimal.Zero
		}
		if err := clientRepo.Update(client); err != nil {
			return err
		}

		now := uc.now()
		tx := &entity.Transaction{
			ID:          uuid.New().String(),
			Date:        now,
			Type:        entity.TypeIncome,
			Category:    entity.CategoryDebtPayment,
			Amount:      amount,
			Description: "Pagamento Fiado - " + client.Name,
			ClientID:    client.ID,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}

		out = dto.FiadoOperationResponse{
			Client:      toClientResponse(client, now),
			Transaction: toTransactionResponse(tx),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordSupplierOrder registra um pedido: lança a despesa EXPENSE/SUPPLIER,
// acumula amount no total comprado e marca a entrega. Par atômico.
func (uc *UseCase) RecordSupplierOrder(supplierID string, amount decimal.Decimal, description string) (*dto.SupplierOrderResponse, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	var out dto.SupplierOrderResponse
	err := uc.runner.Run(func(
		txRepo repository.TransactionRepository,
		_ repository.ClientRepository,
		supplierRepo repository.SupplierRepository,
	) error {
		sup, err := supplierRepo.GetByID(supplierID)
		if err != nil {
			return err
		}
		if sup == nil {
			return domain.ErrNotFound
		}

		now := uc.now()
		sup.TotalPurchased = sup.TotalPurchased.Add(amount)
		sup.LastDelivery = now
		if err := supplierRepo.Update(sup); err != nil {
			return err
		}

		tx := &entity.Transaction{
			ID:          uuid.New().String(),
			Date:        now,
			Type:        entity.TypeExpense,
			Category:    entity.CategorySupplier,
			Amount:      amount,
			Description: description,
			SupplierID:  sup.ID,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}

		out = dto.SupplierOrderResponse{
			Supplier:    toSupplierResponse(sup),
			Transaction: toTransactionResponse(tx),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
		ClientID:    t.ClientID,
		SupplierID:  t.SupplierID,
	}
}

func toClientResponse(c *entity.Client, now time.Time) dto.ClientResponse {
	return dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Debt:         c.Debt,
		LastPurchase: c.LastPurchase,
		Inactive:     c.Inactive(now),
	}
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		Category:       s.Category,
		TotalPurchased: s.TotalPurchased,
		LastDelivery:   s.LastDelivery,
		StockStatus:    s.StockStatus,
	}
}
