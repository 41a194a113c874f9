package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus situação de abastecimento informada para o fornecedor.
type StockStatus string

const (
	StockOK  StockStatus = "OK"
	StockLow StockStatus = "LOW"
)

// Supplier um fornecedor do bar. TotalPurchased é um acumulador que nunca
// diminui; junto com LastDelivery, só é atualizado como efeito de registrar
// um pedido.
type Supplier struct {
	ID             string
	Name           string
	Category       string // texto livre: Bebidas, Alimentos, Destilados...
	TotalPurchased decimal.Decimal
	LastDelivery   time.Time
	StockStatus    StockStatus
}
