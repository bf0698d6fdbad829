package http_test

import (
	"bytes"
	"context"
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

	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/biztime-api/internal/interfaces/http"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakePDF evita renderizar un PDF real en los tests de HTTP.
type fakePDF struct{}

func (fakePDF) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, _ *entity.Company) ([]byte, error) {
	return []byte("%PDF-fake " + inv.CompCode), nil
}

// clock reloj manipulable para add_date / paid_date.
type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

// testEnv app Fiber sobre el almacén en memoria con datos iniciales:
// empresa apple, industria tech, su asociación y la factura 1 (100, pendiente).
type testEnv struct {
	app   *fiber.App
	clock *clock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	ck := &clock{now: time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)}

	ctx := context.Background()
	desc := "Maker of OSX."
	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{Code: "apple", Name: "Apple", Description: &desc}))
	require.NoError(t, repos.Industries.Create(ctx, &entity.Industry{Code: "tech", Industry: "Technology"}))
	require.NoError(t, repos.CompanyIndustries.Create(ctx, &entity.CompanyIndustry{CompCode: "apple", IndCode: "tech"}))
	require.NoError(t, repos.Invoices.Create(ctx, &entity.Invoice{
		CompCode: "apple", Amt: decimal.NewFromInt(100), Payment: entity.Unpaid(),
		AddDate: entity.DateOf(ck.now),
	}))

	log := logger.Nop()
	app := apphttp.NewApp(fiber.Config{}, log)
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:  usecase.NewCompanyUseCase(repos, store),
		IndustryUC: usecase.NewIndustryUseCase(repos, store),
		InvoiceUC:  usecase.NewInvoiceUseCase(repos, store).WithClock(ck.Now),
		InvoicePDF: billing.NewPDFUseCase(store, fakePDF{}),
	})
	return &testEnv{app: app, clock: ck}
}

// do lanza la petición; body puede ser nil, un string (JSON crudo) o cualquier valor serializable.
func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func assertError(t *testing.T, resp *http.Response, raw []byte, status int, code string) {
	t.Helper()
	assert.Equal(t, status, resp.StatusCode, string(raw))
	assert.Equal(t, code, decode[dto.ErrorResponse](t, raw).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Companies
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_List(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodGet, "/companies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode[dto.CompanyListResponse](t, raw)
	require.Len(t, list.Companies, 1)
	assert.Equal(t, "apple", list.Companies[0].Code)
	assert.Equal(t, "Apple", list.Companies[0].Name)
	require.NotNil(t, list.Companies[0].Description)
	assert.Equal(t, "Maker of OSX.", *list.Companies[0].Description)
}

func TestCompanies_GetConFacturasEIndustrias(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodGet, "/companies/apple", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[dto.CompanyDetailEnvelope](t, raw).Company
	assert.Equal(t, "apple", got.Code)
	require.Len(t, got.Invoices, 1)
	assert.Equal(t, int64(1), got.Invoices[0].ID)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Invoices[0].Amt))
	assert.Equal(t, []string{"Technology"}, got.Industries)
}

func TestCompanies_GetInexistente(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodGet, "/companies/nope", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")
}

func TestCompanies_CreateDerivaCodigo(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/companies", map[string]any{
		"code": "ignored", "name": "IBM", "description": "Big blue.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	got := decode[dto.CompanyEnvelope](t, raw).Company
	assert.Equal(t, "ibm", got.Code)
	assert.Equal(t, "IBM", got.Name)

	resp, raw = env.do(t, http.MethodGet, "/companies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.CompanyListResponse](t, raw)
	require.Len(t, list.Companies, 2)
	assert.Equal(t, "apple", list.Companies[0].Code)
	assert.Equal(t, "ibm", list.Companies[1].Code)
}

func TestCompanies_CreateErrores(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/companies", map[string]any{"name": "Apple"})
	assertError(t, resp, raw, http.StatusConflict, "CONFLICT")

	resp, raw = env.do(t, http.MethodPost, "/companies", map[string]any{"description": "sin nombre"})
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodPost, "/companies", map[string]any{"name": "!!!"})
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodPost, "/companies", `{"name": `)
	assertError(t, resp, raw, http.StatusBadRequest, "INVALID_BODY")
}

func TestCompanies_Update(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPatch, "/companies/apple", map[string]any{"name": "Apple Inc."})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	got := decode[dto.CompanyEnvelope](t, raw).Company
	assert.Equal(t, "apple", got.Code)
	assert.Equal(t, "Apple Inc.", got.Name)
	assert.Nil(t, got.Description, "description ausente se escribe como null")
}

func TestCompanies_UpdateInexistenteAntesQueValidar(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPatch, "/companies/nope", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")

	resp, raw = env.do(t, http.MethodPatch, "/companies/apple", map[string]any{"name": ""})
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")
}

func TestCompanies_DeleteEnCascada(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodDelete, "/companies/apple", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.StatusDeleted, decode[dto.StatusResponse](t, raw).Status)

	resp, raw = env.do(t, http.MethodGet, "/companies/apple", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")

	resp, raw = env.do(t, http.MethodGet, "/invoices", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.InvoiceListResponse](t, raw).Invoices)

	resp, raw = env.do(t, http.MethodGet, "/companies/apple/industries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.CompanyIndustryListResponse](t, raw).CompaniesIndustries)

	resp, raw = env.do(t, http.MethodDelete, "/companies/apple", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Asociaciones empresa-industria
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyIndustries(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/industries", map[string]any{"code": "acct", "industry": "Accounting"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	resp, raw = env.do(t, http.MethodPost, "/companies/apple/industries", map[string]any{"ind_code": "acct"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	link := decode[dto.CompanyIndustryEnvelope](t, raw).CompanyIndustry
	assert.Equal(t, dto.CompanyIndustryResponse{ID: 2, CompCode: "apple", IndCode: "acct"}, link)

	resp, raw = env.do(t, http.MethodGet, "/companies/apple/industries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.CompanyIndustryListResponse](t, raw).CompaniesIndustries, 2)

	resp, raw = env.do(t, http.MethodGet, "/companies/apple", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.ElementsMatch(t, []string{"Technology", "Accounting"}, decode[dto.CompanyDetailEnvelope](t, raw).Company.Industries)

	resp, raw = env.do(t, http.MethodDelete, "/companies/apple/industries", map[string]any{"ind_code": "acct"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, dto.StatusDeleted, decode[dto.StatusResponse](t, raw).Status)

	resp, raw = env.do(t, http.MethodDelete, "/companies/apple/industries", map[string]any{"ind_code": "acct"})
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")
}

func TestCompanyIndustries_ClavesInexistentes(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/companies/apple/industries", map[string]any{"ind_code": "nope"})
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodPost, "/companies/nope/industries", map[string]any{"ind_code": "tech"})
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodPost, "/companies/apple/industries", nil)
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")
}

// ──────────────────────────────────────────────────────────────────────────────
// Industries
// ──────────────────────────────────────────────────────────────────────────────

func TestIndustries(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/industries", map[string]any{"code": "acct", "industry": "Accounting"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	assert.Equal(t, dto.IndustryResponse{Code: "acct", Industry: "Accounting"}, decode[dto.IndustryEnvelope](t, raw).Industry)

	resp, raw = env.do(t, http.MethodPost, "/industries", map[string]any{"code": "acct", "industry": "Otra"})
	assertError(t, resp, raw, http.StatusConflict, "CONFLICT")

	resp, raw = env.do(t, http.MethodPost, "/industries", map[string]any{"code": "x"})
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodGet, "/industries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.IndustryListResponse](t, raw).Industries, 2)

	resp, raw = env.do(t, http.MethodGet, "/industries/tech", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Technology", decode[dto.IndustryEnvelope](t, raw).Industry.Industry)

	resp, raw = env.do(t, http.MethodDelete, "/industries/tech", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = env.do(t, http.MethodGet, "/industries/tech", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")

	resp, raw = env.do(t, http.MethodDelete, "/industries/tech", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")

	// la asociación cae con la industria
	resp, raw = env.do(t, http.MethodGet, "/companies/apple", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.CompanyDetailEnvelope](t, raw).Company.Industries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invoices
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_Create(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":250.5}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	got := decode[dto.InvoiceEnvelope](t, raw).Invoice
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, "apple", got.CompCode)
	assert.True(t, decimal.RequireFromString("250.5").Equal(got.Amt))
	assert.False(t, got.Paid)
	assert.Equal(t, "2024-03-01", got.AddDate)
	assert.Nil(t, got.PaidDate)

	// amt como número JSON y paid_date null explícito
	assert.Contains(t, string(raw), `"amt":250.5`)
	assert.Contains(t, string(raw), `"paid_date":null`)
}

func TestInvoices_CreateErrores(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":0}`)
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":-5}`)
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodPost, "/invoices", `{"comp_code":"apple"}`)
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodPost, "/invoices", `{"comp_code":"nope","amt":10}`)
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")
}

// El monto debe caber en numeric(12,2) sin redondeo; si no, 400 y nada se guarda.
func TestInvoices_MontoFueraDeEscala(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`{"comp_code":"apple","amt":0.001}`,
		`{"comp_code":"apple","amt":100.555}`,
		`{"comp_code":"apple","amt":10000000000}`,
	} {
		resp, raw := env.do(t, http.MethodPost, "/invoices", body)
		assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")
	}

	resp, raw := env.do(t, http.MethodPatch, "/invoices/1", `{"amt":100.555}`)
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodGet, "/invoices", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.InvoiceListResponse](t, raw).Invoices
	require.Len(t, list, 1)
	assert.True(t, decimal.NewFromInt(100).Equal(list[0].Amt))

	// dos decimales: la respuesta coincide con lo que devuelve un GET posterior
	resp, raw = env.do(t, http.MethodPost, "/invoices", `{"comp_code":"apple","amt":100.55}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	created := decode[dto.InvoiceEnvelope](t, raw).Invoice

	resp, raw = env.do(t, http.MethodGet, "/invoices/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, created.Amt.Equal(decode[dto.InvoiceEnvelope](t, raw).Invoice.Amt))
}

func TestInvoices_Get(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodGet, "/invoices/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "apple", decode[dto.InvoiceEnvelope](t, raw).Invoice.CompCode)

	resp, raw = env.do(t, http.MethodGet, "/invoices/999", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")

	resp, raw = env.do(t, http.MethodGet, "/invoices/abc", nil)
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")
}

func TestInvoices_TransicionesDePago(t *testing.T) {
	env := newTestEnv(t)

	// paid=true: pagada hoy
	resp, raw := env.do(t, http.MethodPatch, "/invoices/1", `{"amt":150,"paid":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	got := decode[dto.InvoiceEnvelope](t, raw).Invoice
	assert.True(t, got.Paid)
	require.NotNil(t, got.PaidDate)
	assert.Equal(t, "2024-03-01", *got.PaidDate)
	assert.True(t, decimal.NewFromInt(150).Equal(got.Amt))

	// paid ausente: solo monto, el pago se conserva
	env.clock.now = env.clock.now.AddDate(0, 0, 3)
	resp, raw = env.do(t, http.MethodPatch, "/invoices/1", `{"amt":175}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	got = decode[dto.InvoiceEnvelope](t, raw).Invoice
	assert.True(t, got.Paid)
	require.NotNil(t, got.PaidDate)
	assert.Equal(t, "2024-03-01", *got.PaidDate)

	// paid=true otra vez: la fecha se refresca
	resp, raw = env.do(t, http.MethodPatch, "/invoices/1", `{"amt":175,"paid":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	got = decode[dto.InvoiceEnvelope](t, raw).Invoice
	require.NotNil(t, got.PaidDate)
	assert.Equal(t, "2024-03-04", *got.PaidDate)

	// paid=false: pendiente sin fecha
	resp, raw = env.do(t, http.MethodPatch, "/invoices/1", `{"amt":175,"paid":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	got = decode[dto.InvoiceEnvelope](t, raw).Invoice
	assert.False(t, got.Paid)
	assert.Nil(t, got.PaidDate)

	// persistido
	resp, raw = env.do(t, http.MethodGet, "/invoices/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got = decode[dto.InvoiceEnvelope](t, raw).Invoice
	assert.False(t, got.Paid)
	assert.True(t, decimal.NewFromInt(175).Equal(got.Amt))
	assert.Equal(t, "2024-03-01", got.AddDate)
}

func TestInvoices_PaidNuloEquivaleAAusente(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPatch, "/invoices/1", `{"amt":100,"paid":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	env.clock.now = env.clock.now.AddDate(0, 0, 1)
	resp, raw = env.do(t, http.MethodPatch, "/invoices/1", `{"amt":120,"paid":null}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	got := decode[dto.InvoiceEnvelope](t, raw).Invoice
	assert.True(t, got.Paid)
	require.NotNil(t, got.PaidDate)
	assert.Equal(t, "2024-03-01", *got.PaidDate)
	assert.True(t, decimal.NewFromInt(120).Equal(got.Amt))
}

func TestInvoices_UpdateErrores(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPatch, "/invoices/999", `{"amt":10}`)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")

	resp, raw = env.do(t, http.MethodPatch, "/invoices/1", `{"paid":true}`)
	assertError(t, resp, raw, http.StatusBadRequest, "VALIDATION")

	resp, raw = env.do(t, http.MethodPatch, "/invoices/1", `{"amt":"mucho"}`)
	assertError(t, resp, raw, http.StatusBadRequest, "INVALID_BODY")

	// nada cambió
	resp, raw = env.do(t, http.MethodGet, "/invoices/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.InvoiceEnvelope](t, raw).Invoice
	assert.False(t, got.Paid)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Amt))
}

func TestInvoices_Delete(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodDelete, "/invoices/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.StatusDeleted, decode[dto.StatusResponse](t, raw).Status)

	resp, raw = env.do(t, http.MethodGet, "/invoices/1", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")

	resp, raw = env.do(t, http.MethodDelete, "/invoices/1", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")
}

func TestInvoices_PDF(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodGet, "/invoices/1/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice_1.pdf", resp.Header.Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp, raw = env.do(t, http.MethodGet, "/invoices/42/pdf", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/companies", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestNewApp_PanicQuedaEnElLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	app := apphttp.NewApp(fiber.Config{}, log)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assertError(t, resp, raw, http.StatusInternalServerError, "INTERNAL")

	assert.Contains(t, buf.String(), `"path":"/boom"`)
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestRutaInexistente(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodGet, "/nada", nil)
	assertError(t, resp, raw, http.StatusNotFound, "NOT_FOUND")
}
