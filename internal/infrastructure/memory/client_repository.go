package memory

import (
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepository)(nil)

// ClientRepository implementação em memória do caderno de clientes.
type ClientRepository struct {
	s  *Store
	mu rwLocker
}

// NewClientRepository constrói o repositório sobre o Store.
func NewClientRepository(s *Store) *ClientRepository {
	return &ClientRepository{s: s, mu: &s.mu}
}

// Create insere o cliente no topo da coleção.
func (r *ClientRepository) Create(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *c
	next := make([]*entity.Client, 0, len(r.s.clients)+1)
	next = append(next, &clone)
	next = append(next, r.s.clients...)
	r.s.clients = next
	return nil
}

// GetByID devolve uma cópia do cliente, ou nil se não existir.
func (r *ClientRepository) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.s.clients {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

// List devolve cópias de todos os clientes na ordem da coleção.
func (r *ClientRepository) List() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Client, len(r.s.clients))
	for i, c := range r.s.clients {
		clone := *c
		out[i] = &clone
	}
	return out, nil
}

// Update substitui o cliente de mesmo ID preservando a posição.
func (r *ClientRepository) Update(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cur := range r.s.clients {
		if cur.ID == c.ID {
			next := make([]*entity.Client, len(r.s.clients))
			copy(next, r.s.clients)
			clone := *c
			next[i] = &clone
			r.s.clients = next
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete remove por ID. Não há cascata: lançamentos que referenciam o cliente
// permanecem no livro-caixa com a referência pendente.
func (r *ClientRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*entity.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		if c.ID != id {
			next = append(next, c)
		}
	}
	r.s.clients = next
	return nil
}
