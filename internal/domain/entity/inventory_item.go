package entity

import "github.com/shopspring/decimal"

// InventoryItem um item do estoque. Quantity pode ser fracionária para
// unidades de peso (kg, l). Estoque baixo é um predicado derivado de
// Quantity x MinStock, nunca uma flag armazenada.
type InventoryItem struct {
	ID       string
	Name     string
	Quantity decimal.Decimal
	MinStock decimal.Decimal
	Unit     string // un, cx, kg, l
	Price    decimal.Decimal
}

// LowStock indica se a quantidade caiu até o mínimo configurado ou abaixo dele.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinStock)
}
