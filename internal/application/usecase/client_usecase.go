package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barsilva/bar-erp/internal/application/dto"
	"github.com/barsilva/bar-erp/internal/domain"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/repository"
)

// ClientUseCase cadastro de clientes do caderno de fiado.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	txRepo     repository.TransactionRepository
	now        func() time.Time
}

func NewClientUseCase(clientRepo repository.ClientRepository, txRepo repository.TransactionRepository, nowFn func() time.Time) *ClientUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &ClientUseCase{clientRepo: clientRepo, txRepo: txRepo, now: nowFn}
}

// Create cadastra cliente novo sem dívida e com última compra agora.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	c := &entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        in.Phone,
		Debt:         decimal.Zero,
		LastPurchase: uc.now(),
	}
	if err := uc.clientRepo.Create(c); err != nil {
		return nil, err
	}
	out := toClientResponse(c, uc.now())
	return &out, nil
}

// Update altera apenas dados cadastrais. Dívida e última compra só mudam
// pelas operações de fiado.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Name = *in.Name
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}

	if err := uc.clientRepo.Update(c); err != nil {
		return nil, err
	}
	out := toClientResponse(c, uc.now())
	return &out, nil
}

// Delete remove o cliente. Os lançamentos dele no caixa ficam como estão.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.clientRepo.Delete(id)
}

// Get devolve um cliente por ID, ou nil quando não existe.
func (uc *ClientUseCase) Get(id string) (*dto.ClientResponse, error) {
	c, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := toClientResponse(c, uc.now())
	return &out, nil
}

// List devolve os clientes (com busca opcional por nome) e o total a
// receber somado sobre todos, não só os visíveis.
func (uc *ClientUseCase) List(in dto.ListClientsRequest) (*dto.ClientListResponse, error) {
	all, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	needle := strings.ToLower(strings.TrimSpace(in.Search))

	items := make([]dto.ClientResponse, 0, len(all))
	receivable := decimal.Zero
	for _, c := range all {
		receivable = receivable.Add(c.Debt)
		if needle != "" && !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		items = append(items, toClientResponse(c, now))
	}

	return &dto.ClientListResponse{Items: items, TotalReceivable: receivable}, nil
}

// History lista os lançamentos vinculados ao cliente, mais recentes
// primeiro, e soma o consumido (pagamentos de fiado ficam de fora).
func (uc *ClientUseCase) History(clientID string) (*dto.ClientHistoryResponse, error) {
	c, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	all, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.TransactionResponse, 0)
	charged := decimal.Zero
	for _, t := range all {
		if t.ClientID != clientID {
			continue
		}
		items = append(items, toTransactionResponse(t))
		if t.Category != entity.CategoryDebtPayment {
			charged = charged.Add(t.Amount)
		}
	}

	return &dto.ClientHistoryResponse{Items: items, ChargedTotal: charged}, nil
}
