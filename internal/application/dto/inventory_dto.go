package dto

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest cadastro de item de estoque.
type CreateInventoryItemRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	MinStock decimal.Decimal `json:"min_stock"`
	Unit     string          `json:"unit"` // un, cx, kg, l
	Price    decimal.Decimal `json:"price"`
}

// UpdateInventoryItemRequest patch parcial por ID.
type UpdateInventoryItemRequest struct {
	Name     *string          `json:"name"`
	Quantity *decimal.Decimal `json:"quantity"`
	MinStock *decimal.Decimal `json:"min_stock"`
	Unit     *string          `json:"unit"`
	Price    *decimal.Decimal `json:"price"`
}

// SetQuantityRequest ajuste de quantidade. Exatamente um dos campos deve vir
// preenchido: Quantity define o valor absoluto; Delta soma (ou subtrai) sobre
// o atual. Nos dois casos o resultado é travado em zero por baixo.
type SetQuantityRequest struct {
	Quantity *decimal.Decimal `json:"quantity"`
	Delta    *decimal.Decimal `json:"delta"`
}

// ListInventoryRequest filtros e ordenação da listagem de estoque.
type ListInventoryRequest struct {
	Status string `query:"status"`  // ALL | LOW | OK
	SortBy string `query:"sort_by"` // name | quantity | min_stock (default name)
	Order  string `query:"order"`   // asc | desc (default asc)
}

// InventoryItemResponse um item de estoque. LowStock é derivado na leitura.
type InventoryItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	MinStock decimal.Decimal `json:"min_stock"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
	LowStock bool            `json:"low_stock"`
}

// InventoryListResponse resposta de GET /api/inventory.
type InventoryListResponse struct {
	Items    []InventoryItemResponse `json:"items"`
	LowCount int                     `json:"low_count"`
}
