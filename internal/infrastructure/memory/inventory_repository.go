package memory

import (
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

// InventoryRepository implementação em memória do estoque.
type InventoryRepository struct {
	s  *Store
	mu rwLocker
}

// NewInventoryRepository constrói o repositório sobre o Store.
func NewInventoryRepository(s *Store) *InventoryRepository {
	return &InventoryRepository{s: s, mu: &s.mu}
}

// Create insere o item no topo da coleção.
func (r *InventoryRepository) Create(i *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *i
	next := make([]*entity.InventoryItem, 0, len(r.s.items)+1)
	next = append(next, &clone)
	next = append(next, r.s.items...)
	r.s.items = next
	return nil
}

// GetByID devolve uma cópia do item, ou nil se não existir.
func (r *InventoryRepository) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.s.items {
		if item.ID == id {
			clone := *item
			return &clone, nil
		}
	}
	return nil, nil
}

// List devolve cópias de todos os itens na ordem da coleção.
func (r *InventoryRepository) List() ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.InventoryItem, len(r.s.items))
	for i, item := range r.s.items {
		clone := *item
		out[i] = &clone
	}
	return out, nil
}

// Update substitui o item de mesmo ID preservando a posição.
func (r *InventoryRepository) Update(i *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, cur := range r.s.items {
		if cur.ID == i.ID {
			next := make([]*entity.InventoryItem, len(r.s.items))
			copy(next, r.s.items)
			clone := *i
			next[idx] = &clone
			r.s.items = next
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete remove por ID.
func (r *InventoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*entity.InventoryItem, 0, len(r.s.items))
	for _, item := range r.s.items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	r.s.items = next
	return nil
}
