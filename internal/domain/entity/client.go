package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InactivityWindow tempo sem compra a partir do qual o cliente é considerado sumido.
const InactivityWindow = 30 * 24 * time.Hour

// Client um cliente do caderno de fiado. Debt positivo significa que o cliente
// deve ao bar; o campo só muda via operações de fiado/pagamento, nunca por
// edição direta.
type Client struct {
	ID           string
	Name         string
	Phone        string
	Debt         decimal.Decimal
	LastPurchase time.Time
}

// Inactive indica se o cliente está há mais de 30 dias sem comprar,
// relativo ao instante informado. Predicado derivado, nunca armazenado.
func (c *Client) Inactive(now time.Time) bool {
	return now.Sub(c.LastPurchase) > InactivityWindow
}
