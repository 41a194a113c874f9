package ledger

import "github.com/barsilva/bar-erp/internal/domain/repository"

// Runner executa o callback dentro de uma seção crítica única, com visões de
// repositório atadas a ela. É o contrato de tudo-ou-nada das operações
// compostas: as duas escritas (coleção principal + livro-caixa) são aplicadas
// juntas ou nenhuma é.
type Runner interface {
	Run(fn func(
		txRepo repository.TransactionRepository,
		clientRepo repository.ClientRepository,
		supplierRepo repository.SupplierRepository,
	) error) error
}
