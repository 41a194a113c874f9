package repository

import "github.com/barsilva/bar-erp/internal/domain/entity"

// SupplierRepository porta de acesso aos fornecedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(s *entity.Supplier) error
	Delete(id string) error
}
