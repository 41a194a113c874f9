package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/barsilva/bar-erp/internal/application/analytics"
	appauth "github.com/barsilva/bar-erp/internal/application/auth"
	"github.com/barsilva/bar-erp/internal/application/ledger"
	"github.com/barsilva/bar-erp/internal/application/usecase"
	"github.com/barsilva/bar-erp/internal/domain/entity"
	"github.com/barsilva/bar-erp/internal/domain/finance"
	"github.com/barsilva/bar-erp/internal/infrastructure/memory"
	apphttp "github.com/barsilva/bar-erp/internal/interfaces/http"
	pkgjwt "github.com/barsilva/bar-erp/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "bar-erp-test"
	testExpMin    = 60
	testPassword  = "segredo123"
)

func testNow() time.Time {
	return time.Date(2025, 8, 30, 18, 0, 0, 0, time.UTC)
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// buildTestApp monta a aplicação completa sobre um armazém vazio, com a
// conta do dono criada e todas as rotas registradas.
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	store := memory.New()
	store.SetOwner(&entity.User{
		ID:           "owner",
		Username:     "silva",
		PasswordHash: string(hash),
		Name:         "Bar do Silva",
		CreatedAt:    testNow(),
	})

	txRepo := memory.NewTransactionRepository(store)
	clientRepo := memory.NewClientRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	inventoryRepo := memory.NewInventoryRepository(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		TransactionUC: usecase.NewTransactionUseCase(txRepo, testNow),
		ClientUC:      usecase.NewClientUseCase(clientRepo, txRepo, testNow),
		SupplierUC:    usecase.NewSupplierUseCase(supplierRepo),
		InventoryUC:   usecase.NewInventoryUseCase(inventoryRepo),
		LedgerUC:      ledger.NewUseCase(memory.NewLedgerRunner(store), testNow),
		DashboardUC:   analytics.NewDashboardUseCase(txRepo, clientRepo, testNow),
		ReportUC:      analytics.NewReportUseCase(txRepo, stubGenerator{}, testNow),
		AuthUC: appauth.NewAuthUseCase(memory.NewUserRepository(store), appauth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app, store
}

type stubGenerator struct{}

func (stubGenerator) GenerateDRE(string, finance.Statement) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "owner", "Bar do Silva", testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doJSON lança uma requisição com corpo JSON opcional e token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, authHeader string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginEndpoint(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": "silva", "password": testPassword,
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.NotEmpty(t, body["token"], "o login devolve um JWT")
}

func TestLoginCredenciaisErradas(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": "silva", "password": "errada",
	}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRotasProtegidasExigemToken(t *testing.T) {
	app, _ := buildTestApp(t)

	paths := []string{"/api/transactions", "/api/clients", "/api/suppliers", "/api/inventory", "/api/dashboard/summary"}
	for _, p := range paths {
		resp := doJSON(t, app, http.MethodGet, p, nil, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, p)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo de fiado ponta a ponta
// ──────────────────────────────────────────────────────────────────────────────

func TestFluxoFiado(t *testing.T) {
	app, _ := buildTestApp(t)
	token := bearerToken(t)

	// cadastra o cliente
	resp := doJSON(t, app, http.MethodPost, "/api/clients", fiber.Map{
		"name": "João do Posto", "phone": "99999-1234",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	clientID := created["id"].(string)

	// anota fiado de 35
	resp = doJSON(t, app, http.MethodPost, "/api/clients/"+clientID+"/charges", fiber.Map{
		"amount": 35,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	charged := decode[map[string]any](t, resp)
	client := charged["client"].(map[string]any)
	assert.Equal(t, "35", client["debt"], "a dívida acumula o fiado")

	// paga 50: a dívida zera e o lançamento registra os 50 pagos
	resp = doJSON(t, app, http.MethodPost, "/api/clients/"+clientID+"/payments", fiber.Map{
		"amount": 50,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paid := decode[map[string]any](t, resp)
	client = paid["client"].(map[string]any)
	tx := paid["transaction"].(map[string]any)
	assert.Equal(t, "0", client["debt"], "pagamento acima do saldo zera sem crédito")
	assert.Equal(t, "50", tx["amount"])
	assert.Equal(t, string(entity.CategoryDebtPayment), tx["category"])

	// o histórico tem os dois lançamentos, consumo total 35
	resp = doJSON(t, app, http.MethodGet, "/api/clients/"+clientID+"/transactions", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[map[string]any](t, resp)
	assert.Len(t, history["items"], 2)
	assert.Equal(t, "35", history["charged_total"])
}

func TestFiadoValorInvalido(t *testing.T) {
	app, store := buildTestApp(t)
	token := bearerToken(t)

	require.NoError(t, memory.NewClientRepository(store).Create(&entity.Client{
		ID: "c1", Name: "Maria", LastPurchase: testNow(),
	}))

	resp := doJSON(t, app, http.MethodPost, "/api/clients/c1/charges", fiber.Map{"amount": 0}, token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFiadoClienteInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/clients/fantasma/charges", fiber.Map{"amount": 10}, bearerToken(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedido de fornecedor
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoFornecedor(t *testing.T) {
	app, store := buildTestApp(t)
	token := bearerToken(t)

	require.NoError(t, memory.NewSupplierRepository(store).Create(&entity.Supplier{
		ID: "s1", Name: "Distribuidora Imperial",
	}))

	resp := doJSON(t, app, http.MethodPost, "/api/suppliers/s1/orders", fiber.Map{
		"amount": 450, "description": "Reposição Estoque",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[map[string]any](t, resp)
	sup := out["supplier"].(map[string]any)
	tx := out["transaction"].(map[string]any)
	assert.Equal(t, "450", sup["total_purchased"])
	assert.Equal(t, string(entity.TypeExpense), tx["type"])
	assert.Equal(t, string(entity.CategorySupplier), tx["category"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Estoque
// ──────────────────────────────────────────────────────────────────────────────

func TestAjusteDeEstoque(t *testing.T) {
	app, store := buildTestApp(t)
	token := bearerToken(t)

	require.NoError(t, memory.NewInventoryRepository(store).Create(&entity.InventoryItem{
		ID: "i1", Name: "Carvão", Quantity: dec(10), MinStock: dec(3), Unit: "kg",
	}))

	resp := doJSON(t, app, http.MethodPatch, "/api/inventory/i1/quantity", fiber.Map{"delta": -4}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.Equal(t, "6", out["quantity"])

	// os dois campos juntos é rejeitado
	resp = doJSON(t, app, http.MethodPatch, "/api/inventory/i1/quantity", fiber.Map{
		"quantity": 5, "delta": 1,
	}, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard e DRE
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummaryEndpoint(t *testing.T) {
	app, store := buildTestApp(t)
	token := bearerToken(t)

	require.NoError(t, memory.NewTransactionRepository(store).Create(&entity.Transaction{
		ID: "t1", Date: testNow(), Type: entity.TypeIncome, Category: entity.CategoryBarSales, Amount: dec(500),
	}))

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[map[string]any](t, resp)
	assert.Equal(t, "2025-08", out["month"])
	statement := out["statement"].(map[string]any)
	assert.Equal(t, "500", statement["gross_revenue"])
	assert.Len(t, out["daily"], 31)
}

func TestDashboardSummaryMesInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary?month=agosto", nil, bearerToken(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDREPDFEndpoint(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/dre/pdf?month=2025-08", nil, bearerToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "dre-2025-08.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Livro-caixa
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionsEndpoint(t *testing.T) {
	app, _ := buildTestApp(t)
	token := bearerToken(t)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions", fiber.Map{
		"type": "INCOME", "category": "QUENTINHAS", "amount": 120, "description": "Almoço",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	id := created["id"].(string)

	// categoria inválida
	resp = doJSON(t, app, http.MethodPost, "/api/transactions", fiber.Map{
		"type": "INCOME", "category": "GORJETA", "amount": 10,
	}, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// listar com totais
	resp = doJSON(t, app, http.MethodGet, "/api/transactions?type=INCOME", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[map[string]any](t, resp)
	assert.Len(t, list["items"], 1)
	totals := list["totals"].(map[string]any)
	assert.Equal(t, "120", totals["income"])

	// excluir
	resp = doJSON(t, app, http.MethodDelete, "/api/transactions/"+id, nil, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
