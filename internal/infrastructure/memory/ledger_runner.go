package memory

import (
	"github.com/barsilva/bar-erp/internal/application/ledger"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

// Compile-time check.
var _ ledger.Runner = (*LedgerRunner)(nil)

// LedgerRunner executa callbacks sob uma única seção crítica do Store.
// As visões de repositório entregues ao callback não bloqueiam de novo, então
// as escritas da operação composta são observadas juntas ou nenhuma é: nenhum
// leitor enxerga o estado intermediário entre a atualização da entidade e o
// lançamento no livro-caixa.
type LedgerRunner struct {
	s *Store
}

// NewLedgerRunner constrói o runner sobre o Store.
func NewLedgerRunner(s *Store) *LedgerRunner {
	return &LedgerRunner{s: s}
}

// Run adquire o lock de escrita e executa fn com visões sem bloqueio próprio.
func (r *LedgerRunner) Run(fn func(
	txRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return fn(
		&TransactionRepository{s: r.s, mu: noLock{}},
		&ClientRepository{s: r.s, mu: noLock{}},
		&SupplierRepository{s: r.s, mu: noLock{}},
	)
}
