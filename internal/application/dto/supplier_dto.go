package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/domain/entity"
)

// CreateSupplierRequest cadastro de fornecedor.
type CreateSupplierRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// UpdateSupplierRequest patch parcial. TotalPurchased e LastDelivery não são
// editáveis: só mudam como efeito de registrar um pedido.
type UpdateSupplierRequest struct {
	Name        *string             `json:"name"`
	Category    *string             `json:"category"`
	StockStatus *entity.StockStatus `json:"stock_status"`
}

// SupplierResponse um fornecedor.
type SupplierResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Category       string             `json:"category"`
	TotalPurchased decimal.Decimal    `json:"total_purchased"`
	LastDelivery   time.Time          `json:"last_delivery"`
	StockStatus    entity.StockStatus `json:"stock_status"`
}

// SupplierListResponse resposta de GET /api/suppliers.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
}

// SupplierOrderRequest registrar um pedido: lança a despesa no caixa e
// acumula no total comprado do fornecedor.
type SupplierOrderRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// SupplierOrderResponse resultado da operação composta de pedido.
type SupplierOrderResponse struct {
	Supplier    SupplierResponse    `json:"supplier"`
	Transaction TransactionResponse `json:"transaction"`
}
