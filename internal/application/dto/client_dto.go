package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest cadastro de cliente. A dívida inicia em zero.
type CreateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateClientRequest patch parcial. Debt nunca é editável diretamente:
// só muda via operações de fiado/pagamento.
type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// ListClientsRequest filtro da listagem de clientes.
type ListClientsRequest struct {
	Search string `query:"search"` // busca por nome, caso-insensitivo
}

// ClientResponse um cliente do caderno de fiado. Inactive é derivado no
// momento da leitura (mais de 30 dias sem compra).
type ClientResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Debt         decimal.Decimal `json:"debt"`
	LastPurchase time.Time       `json:"last_purchase"`
	Inactive     bool            `json:"inactive"`
}

// ClientListResponse resposta de GET /api/clients.
// TotalReceivable é a soma das dívidas de todos os clientes listados.
type ClientListResponse struct {
	Items           []ClientResponse `json:"items"`
	TotalReceivable decimal.Decimal  `json:"total_receivable"`
}

// ChargeRequest anotar fiado: aumenta a dívida e lança a venda no caixa.
type ChargeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PaymentRequest abater dívida. Pagamento acima da dívida zera o saldo
// (o excedente é perdoado, nunca vira crédito).
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// FiadoOperationResponse resultado de uma operação composta de fiado:
// o cliente atualizado e o lançamento gerado, aplicados juntos.
type FiadoOperationResponse struct {
	Client      ClientResponse      `json:"client"`
	Transaction TransactionResponse `json:"transaction"`
}

// ClientHistoryResponse histórico de lançamentos de um cliente, do mais
// recente ao mais antigo. ChargedTotal soma só as compras (exclui DEBT_PAYMENT).
type ClientHistoryResponse struct {
	Items        []TransactionResponse `json:"items"`
	ChargedTotal decimal.Decimal       `json:"charged_total"`
}
