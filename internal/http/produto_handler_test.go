package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Zefer1/desafio-db/internal/domain"
	"github.com/Zefer1/desafio-db/internal/repository"
)

type produtoRepoMock struct {
	produtos []domain.Produto
	produto  *domain.Produto
	err      error
}

func (m *produtoRepoMock) List(context.Context) ([]domain.Produto, error) {
	return m.produtos, m.err
}

func (m *produtoRepoMock) Create(_ context.Context, p domain.Produto) (*domain.Produto, error) {
	if m.err != nil {
		return nil, m.err
	}
	p.ID = 1
	return &p, nil
}

func (m *produtoRepoMock) GetByID(context.Context, int64) (*domain.Produto, error) {
	return m.produto, m.err
}

func (m *produtoRepoMock) Update(_ context.Context, id int64, p domain.Produto) (*domain.Produto, error) {
	if m.err != nil {
		return nil, m.err
	}
	p.ID = id
	return &p, nil
}

func (m *produtoRepoMock) Delete(context.Context, int64) error {
	return m.err
}

func produtoTestRouter(mock *produtoRepoMock) http.Handler {
	handler := NewProdutoHandler(mock, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/produtos", handler.List)
	r.Post("/produtos", handler.Create)
	r.Get("/produtos/{id}", handler.Get)
	r.Put("/produtos/{id}", handler.Update)
	r.Delete("/produtos/{id}", handler.Delete)
	return r
}

func TestListProdutos_Success(t *testing.T) {
	categoria := "informática"
	mock := &produtoRepoMock{produtos: []domain.Produto{
		{ID: 1, Nome: "Portátil", Preco: 899.99, Categoria: &categoria},
	}}

	recorder := httptest.NewRecorder()
	produtoTestRouter(mock).ServeHTTP(recorder, httptest.NewRequest("GET", "/produtos", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var got []domain.Produto
	if err := json.NewDecoder(recorder.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 produto, got %d", len(got))
	}
	if got[0].Nome != "Portátil" {
		t.Errorf("Expected nome 'Portátil', got '%s'", got[0].Nome)
	}
	if got[0].Preco != 899.99 {
		t.Errorf("Expected preco 899.99, got %f", got[0].Preco)
	}
}

func TestCreateProduto_Success(t *testing.T) {
	body := `{"nome":"Portátil","descricao":"15 polegadas","preco":899.99,"categoria":"informática"}`

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/produtos", strings.NewReader(body))
	produtoTestRouter(&produtoRepoMock{}).ServeHTTP(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	var got domain.Produto
	if err := json.NewDecoder(recorder.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("Expected ID 1, got %d", got.ID)
	}
}

func TestCreateProduto_MissingNome(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/produtos", strings.NewReader(`{"preco":10}`))
	produtoTestRouter(&produtoRepoMock{}).ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetProduto_NotFound(t *testing.T) {
	mock := &produtoRepoMock{err: repository.ErrProdutoNotFound}

	recorder := httptest.NewRecorder()
	produtoTestRouter(mock).ServeHTTP(recorder, httptest.NewRequest("GET", "/produtos/42", nil))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "Produto não encontrado" {
		t.Errorf("Expected error 'Produto não encontrado', got '%s'", resp.Error)
	}
}

func TestDeleteProduto_NotFound(t *testing.T) {
	mock := &produtoRepoMock{err: repository.ErrProdutoNotFound}

	recorder := httptest.NewRecorder()
	produtoTestRouter(mock).ServeHTTP(recorder, httptest.NewRequest("DELETE", "/produtos/42", nil))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}
}
