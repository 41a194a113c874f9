package memory

import (
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

// Compile-time check.
var _ repository.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository implementação em memória do livro-caixa.
type TransactionRepository struct {
	s  *Store
	mu rwLocker
}

// NewTransactionRepository constrói o repositório sobre o Store.
func NewTransactionRepository(s *Store) *TransactionRepository {
	return &TransactionRepository{s: s, mu: &s.mu}
}

// Create insere o lançamento no topo da coleção (mais recente primeiro).
func (r *TransactionRepository) Create(t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *t
	next := make([]*entity.Transaction, 0, len(r.s.transactions)+1)
	next = append(next, &clone)
	next = append(next, r.s.transactions...)
	r.s.transactions = next
	return nil
}

// GetByID devolve uma cópia do lançamento, ou nil se não existir.
func (r *TransactionRepository) GetByID(id string) (*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.s.transactions {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

// List devolve cópias de todos os lançamentos, do mais recente ao mais antigo.
func (r *TransactionRepository) List() ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Transaction, len(r.s.transactions))
	for i, t := range r.s.transactions {
		clone := *t
		out[i] = &clone
	}
	return out, nil
}

// Update substitui o lançamento de mesmo ID preservando a posição.
func (r *TransactionRepository) Update(t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cur := range r.s.transactions {
		if cur.ID == t.ID {
			next := make([]*entity.Transaction, len(r.s.transactions))
			copy(next, r.s.transactions)
			clone := *t
			next[i] = &clone
			r.s.transactions = next
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete remove por ID (filter-out). Remover um ID inexistente não é erro.
func (r *TransactionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*entity.Transaction, 0, len(r.s.transactions))
	for _, t := range r.s.transactions {
		if t.ID != id {
			next = append(next, t)
		}
	}
	r.s.transactions = next
	return nil
}
