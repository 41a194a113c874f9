package repository

import "github.com/barsilva/bar-erp/internal/domain/entity"

// ClientRepository porta de acesso ao caderno de clientes (fiado).
type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(c *entity.Client) error
	Delete(id string) error
}
