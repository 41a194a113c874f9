package entity

import "time"

// User a conta do dono do bar. Operação single-tenant: existe uma única conta,
// criada a partir da configuração no boot.
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca em claro depois do boot
	Name         string
	CreatedAt    time.Time
}
