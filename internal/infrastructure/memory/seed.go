package memory

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/domain/entity"
)

// SeedOptions controla a geração dos dados de demonstração.
type SeedOptions struct {
	Now  time.Time  // referência do "hoje"; zero usa time.Now()
	Days int        // horizonte de lançamentos gerados; <=0 usa 365
	Rand *rand.Rand // fonte de aleatoriedade; nil usa o relógio como semente
}

// NewSeeded cria um Store populado com os dados de demonstração do bar:
// 5 clientes, 3 fornecedores, 5 itens de estoque e um ano de lançamentos
// (vendas diárias de bar e quentinhas, reposição de estoque a cada 3 dias e
// custo fixo no dia 5 de cada mês).
func NewSeeded(opts SeedOptions) *Store {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	days := opts.Days
	if days <= 0 {
		days = 365
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	s := New()
	s.clients = seedClients(now)
	s.suppliers = seedSuppliers(now)
	s.items = seedInventory()
	s.transactions = seedTransactions(now, days, rng, s.suppliers[0].ID)
	return s
}

func seedClients(now time.Time) []*entity.Client {
	return []*entity.Client{
		{ID: uuid.New().String(), Name: `Carlos "O Mestre"`, Phone: "(11) 99999-0001", Debt: decimal.NewFromFloat(150.50), LastPurchase: now},
		{ID: uuid.New().String(), Name: "Dona Maria", Phone: "(11) 99999-0002", Debt: decimal.Zero, LastPurchase: now.AddDate(0, 0, -1)},
		{ID: uuid.New().String(), Name: "João da Obra", Phone: "(11) 99999-0003", Debt: decimal.NewFromFloat(420.00), LastPurchase: now.AddDate(0, 0, -2)},
		{ID: uuid.New().String(), Name: "Fernanda Fitness", Phone: "(11) 99999-0004", Debt: decimal.NewFromFloat(45.00), LastPurchase: now},
		// cliente sumido: bem além da janela de 30 dias
		{ID: uuid.New().String(), Name: "Seu Zé (Sumido)", Phone: "(11) 99999-0005", Debt: decimal.Zero, LastPurchase: now.AddDate(0, 0, -400)},
	}
}

func seedSuppliers(now time.Time) []*entity.Supplier {
	return []*entity.Supplier{
		{ID: uuid.New().String(), Name: "Distribuidora Imperial", Category: "Bebidas", TotalPurchased: decimal.NewFromInt(15000), LastDelivery: now.AddDate(0, 0, -2), StockStatus: entity.StockOK},
		{ID: uuid.New().String(), Name: "Hortifruti Frescor", Category: "Alimentos", TotalPurchased: decimal.NewFromInt(4500), LastDelivery: now.AddDate(0, 0, -1), StockStatus: entity.StockLow},
		{ID: uuid.New().String(), Name: "Adega Central", Category: "Destilados", TotalPurchased: decimal.NewFromInt(8200), LastDelivery: now.AddDate(0, 0, -7), StockStatus: entity.StockOK},
	}
}

func seedInventory() []*entity.InventoryItem {
	return []*entity.InventoryItem{
		{ID: uuid.New().String(), Name: "Cerveja Heineken 600ml", Quantity: decimal.NewFromInt(48), MinStock: decimal.NewFromInt(24), Unit: "un", Price: decimal.NewFromFloat(18.00)},
		{ID: uuid.New().String(), Name: "Cachaça 51", Quantity: decimal.NewFromInt(5), MinStock: decimal.NewFromInt(2), Unit: "un", Price: decimal.NewFromFloat(8.50)},
		{ID: uuid.New().String(), Name: "Arroz Tipo 1", Quantity: decimal.NewFromInt(10), MinStock: decimal.NewFromInt(5), Unit: "kg", Price: decimal.NewFromFloat(5.00)},
		{ID: uuid.New().String(), Name: "Coca-Cola 2L", Quantity: decimal.NewFromInt(12), MinStock: decimal.NewFromInt(12), Unit: "un", Price: decimal.NewFromFloat(12.00)},
		{ID: uuid.New().String(), Name: "Carne Seca", Quantity: decimal.NewFromFloat(2.5), MinStock: decimal.NewFromInt(5), Unit: "kg", Price: decimal.NewFromFloat(45.00)},
	}
}

// seedTransactions gera o histórico do mais recente para o mais antigo,
// mantendo o invariante de ordenação da coleção.
func seedTransactions(now time.Time, days int, rng *rand.Rand, supplierID string) []*entity.Transaction {
	txs := make([]*entity.Transaction, 0, days*3)

	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -i)
		// leve volatilidade para dar realismo às séries
		volatility := rng.Float64()*0.5 + 0.8

		txs = append(txs, &entity.Transaction{
			ID:          uuid.New().String(),
			Date:        date,
			Type:        entity.TypeIncome,
			Category:    entity.CategoryBarSales,
			Amount:      decimal.NewFromFloat(float64(rng.Intn(500)+200) * volatility).Round(2),
			Description: "Vendas diárias Bar",
		})
		txs = append(txs, &entity.Transaction{
			ID:          uuid.New().String(),
			Date:        date,
			Type:        entity.TypeIncome,
			Category:    entity.CategoryQuentinhas,
			Amount:      decimal.NewFromFloat(float64(rng.Intn(800)+300) * volatility).Round(2),
			Description: "Vendas diárias Quentinhas",
		})

		// reposição de estoque a cada 3 dias
		if i%3 == 0 {
			txs = append(txs, &entity.Transaction{
				ID:          uuid.New().String(),
				Date:        date,
				Type:        entity.TypeExpense,
				Category:    entity.CategorySupplier,
				Amount:      decimal.NewFromInt(int64(rng.Intn(800) + 200)),
				Description: "Reposição Estoque",
				SupplierID:  supplierID,
			})
		}

		// custo fixo mensal no dia 5
		if date.Day() == 5 {
			txs = append(txs, &entity.Transaction{
				ID:          uuid.New().String(),
				Date:        date,
				Type:        entity.TypeExpense,
				Category:    entity.CategoryFixedCost,
				Amount:      decimal.NewFromInt(3200),
				Description: "Aluguel, Luz e Internet",
			})
		}
	}
	return txs
}
