package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zefer1/desafio-db/internal/domain"
	"github.com/Zefer1/desafio-db/internal/repository"
)

type vendaRepoMock struct {
	vendas []domain.Venda
	venda  *domain.Venda
	err    error
}

func (m *vendaRepoMock) Create(_ context.Context, clienteID int64, itens []domain.ItemVenda) (*domain.Venda, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Venda{
		ID:        1,
		ClienteID: clienteID,
		Data:      time.Now(),
		Total:     domain.ComputeTotal(itens),
		Itens:     itens,
	}, nil
}

func (m *vendaRepoMock) List(context.Context) ([]domain.Venda, error) {
	return m.vendas, m.err
}

func (m *vendaRepoMock) GetByID(context.Context, int64) (*domain.Venda, error) {
	return m.venda, m.err
}

func vendaTestRouter(mock *vendaRepoMock) http.Handler {
	handler := NewVendaHandler(mock, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/vendas", handler.List)
	r.Post("/vendas", handler.Create)
	r.Get("/vendas/{id}", handler.Get)
	return r
}

func TestCreateVenda_ComputesTotal(t *testing.T) {
	body := `{"cliente_id":1,"itens":[
		{"produto_id":5,"quantidade":2,"preco_unitario":10.0},
		{"produto_id":6,"quantidade":1,"preco_unitario":7.5}]}`

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/vendas", strings.NewReader(body))
	vendaTestRouter(&vendaRepoMock{}).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp CreateVendaResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.VendaID)
	assert.Equal(t, int64(1), resp.ClienteID)
	assert.Equal(t, 27.5, resp.Total)
	require.Len(t, resp.Itens, 2)
	assert.Equal(t, int64(5), resp.Itens[0].ProdutoID)
	assert.Equal(t, 2, resp.Itens[0].Quantidade)
	assert.Equal(t, int64(6), resp.Itens[1].ProdutoID)
}

func TestCreateVenda_EmptyItens(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/vendas", strings.NewReader(`{"cliente_id":1,"itens":[]}`))
	vendaTestRouter(&vendaRepoMock{}).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateVenda_InvalidQuantidade(t *testing.T) {
	body := `{"cliente_id":1,"itens":[{"produto_id":5,"quantidade":0,"preco_unitario":10.0}]}`

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/vendas", strings.NewReader(body))
	vendaTestRouter(&vendaRepoMock{}).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateVenda_StoreError(t *testing.T) {
	mock := &vendaRepoMock{err: errors.New("deadlock detected")}

	body := `{"cliente_id":1,"itens":[{"produto_id":5,"quantidade":2,"preco_unitario":10.0}]}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/vendas", strings.NewReader(body))
	vendaTestRouter(mock).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Erro ao criar venda", resp.Error)
}

func TestListVendas_OmitsItens(t *testing.T) {
	mock := &vendaRepoMock{vendas: []domain.Venda{
		{ID: 1, ClienteID: 2, Data: time.Now(), Total: 27.5},
	}}

	recorder := httptest.NewRecorder()
	vendaTestRouter(mock).ServeHTTP(recorder, httptest.NewRequest("GET", "/vendas", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), `"itens"`)
}

func TestGetVenda_WithItens(t *testing.T) {
	mock := &vendaRepoMock{venda: &domain.Venda{
		ID:        7,
		ClienteID: 2,
		Data:      time.Now(),
		Total:     27.5,
		Itens: []domain.ItemVenda{
			{ProdutoID: 5, Quantidade: 2, PrecoUnitario: 10.0},
			{ProdutoID: 6, Quantidade: 1, PrecoUnitario: 7.5},
		},
	}}

	recorder := httptest.NewRecorder()
	vendaTestRouter(mock).ServeHTTP(recorder, httptest.NewRequest("GET", "/vendas/7", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var got domain.Venda
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	assert.Equal(t, int64(7), got.ID)
	assert.Len(t, got.Itens, 2)
	assert.Equal(t, 27.5, got.Total)
}

func TestGetVenda_NotFound(t *testing.T) {
	mock := &vendaRepoMock{err: repository.ErrVendaNotFound}

	recorder := httptest.NewRecorder()
	vendaTestRouter(mock).ServeHTTP(recorder, httptest.NewRequest("GET", "/vendas/999", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Venda não encontrada"}`, recorder.Body.String())
}
