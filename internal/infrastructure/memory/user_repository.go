package memory

import (
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository acesso à conta do dono.
type UserRepository struct {
	s *Store
}

// NewUserRepository constrói o repositório sobre o Store.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

// GetByUsername devolve a conta do dono se o username bater, ou nil.
func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.owner == nil || r.s.owner.Username != username {
		return nil, nil
	}
	clone := *r.s.owner
	return &clone, nil
}
