package usecase

import (
	"time"

	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain/entity"
)

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

func toInventoryItemResponse(i *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:       i.ID,
		Name:     i.Name,
		Quantity: i.Quantity,
		MinStock: i.MinStock,
		Unit:     i.Unit,
		Price:    i.Price,
		LowStock: i.LowStock(),
	}
}
