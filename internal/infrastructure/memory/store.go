// Package memory implementa o armazenamento em memória do ERP: as quatro
// coleções (lançamentos, clientes, fornecedores, estoque) mais a conta do
// dono, sem nenhum backend de persistência. O estado vive durante o processo
// e é semeado com dados de demonstração no boot.
package memory

import (
	"sync"

	"github.com/barsilva/bar-erp/internal/domain/entity"
)

// Store dono das coleções. Os repositórios construídos sobre ele serializam o
// acesso com o RWMutex; dentro de LedgerRunner.Run o lock já está adquirido e
// as visões dos repositórios operam sem bloquear de novo.
//
// Mutações seguem o padrão de atualização imutável: cada escrita produz uma
// fatia nova, preservando a ordem relativa dos registros não afetados. A
// inserção é sempre no topo (mais recente primeiro).
type Store struct {
	mu           sync.RWMutex
	transactions []*entity.Transaction
	clients      []*entity.Client
	suppliers    []*entity.Supplier
	items        []*entity.InventoryItem
	owner        *entity.User
}

// New cria um Store vazio.
func New() *Store {
	return &Store{}
}

// SetOwner registra a conta única do dono (chamado no boot).
func (s *Store) SetOwner(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := *u
	s.owner = &owner
}

// rwLocker abstrai o bloqueio dos repositórios: fora de uma seção crítica é o
// RWMutex do Store; dentro de LedgerRunner.Run é um no-op, porque o lock já
// pertence à seção.
type rwLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// noLock guard no-op para repositórios atados a uma seção crítica em curso.
type noLock struct{}

func (noLock) Lock()    {}
func (noLock) Unlock()  {}
func (noLock) RLock()   {}
func (noLock) RUnlock() {}
