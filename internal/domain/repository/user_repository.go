package repository

import "github.com/barsilva/bar-erp/internal/domain/entity"

// UserRepository porta de acesso à conta do dono (única, criada no boot).
type UserRepository interface {
	GetByUsername(username string) (*entity.User, error)
}
