package repository

import "github.com/barsilva/bar-erp/internal/domain/entity"

// InventoryRepository porta de acesso aos itens de estoque.
type InventoryRepository interface {
	Create(i *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
	Update(i *entity.InventoryItem) error
	Delete(id string) error
}
