package memory

import (
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository implementação em memória dos fornecedores.
type SupplierRepository struct {
	s  *Store
	mu rwLocker
}

// NewSupplierRepository constrói o repositório sobre o Store.
func NewSupplierRepository(s *Store) *SupplierRepository {
	return &SupplierRepository{s: s, mu: &s.mu}
}

// Create insere o fornecedor no topo da coleção.
func (r *SupplierRepository) Create(sup *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *sup
	next := make([]*entity.Supplier, 0, len(r.s.suppliers)+1)
	next = append(next, &clone)
	next = append(next, r.s.suppliers...)
	r.s.suppliers = next
	return nil
}

// GetByID devolve uma cópia do fornecedor, ou nil se não existir.
func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sup := range r.s.suppliers {
		if sup.ID == id {
			clone := *sup
			return &clone, nil
		}
	}
	return nil, nil
}

// List devolve cópias de todos os fornecedores na ordem da coleção.
func (r *SupplierRepository) List() ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Supplier, len(r.s.suppliers))
	for i, sup := range r.s.suppliers {
		clone := *sup
		out[i] = &clone
	}
	return out, nil
}

// Update substitui o fornecedor de mesmo ID preservando a posição.
func (r *SupplierRepository) Update(sup *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cur := range r.s.suppliers {
		if cur.ID == sup.ID {
			next := make([]*entity.Supplier, len(r.s.suppliers))
			copy(next, r.s.suppliers)
			clone := *sup
			next[i] = &clone
			r.s.suppliers = next
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete remove por ID, sem cascata sobre o livro-caixa.
func (r *SupplierRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sup := range r.s.suppliers {
		if sup.ID != id {
			next = append(next, sup)
		}
	}
	r.s.suppliers = next
	return nil
}
