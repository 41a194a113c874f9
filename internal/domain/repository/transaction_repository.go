package repository

import "github.com/barsilva/bar-erp/internal/domain/entity"

// TransactionRepository porta de acesso ao livro-caixa.
// List devolve os lançamentos do mais recente para o mais antigo; Create
// insere no topo preservando essa ordem.
type TransactionRepository interface {
	Create(t *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	List() ([]*entity.Transaction, error)
	Update(t *entity.Transaction) error
	Delete(id string) error
}
