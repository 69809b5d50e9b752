package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Zefer1/desafio-db/internal/domain"
	"github.com/Zefer1/desafio-db/internal/repository"
)

type ProdutoHandler struct {
	repo   repository.ProdutoRepository
	logger zerolog.Logger
}

func NewProdutoHandler(repo repository.ProdutoRepository, logger zerolog.Logger) *ProdutoHandler {
	return &ProdutoHandler{repo: repo, logger: logger}
}

type ProdutoRequest struct {
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
	Preco     float64 `json:"preco"`
	Categoria *string `json:"categoria"`
}

func (req *ProdutoRequest) validate() bool {
	return req.Nome != "" && req.Preco >= 0
}

func (req *ProdutoRequest) toDomain() domain.Produto {
	return domain.Produto{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
		Categoria: req.Categoria,
	}
}

// GET /produtos
func (h *ProdutoHandler) List(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.repo.List(r.Context())
	if err != nil {
		h.logError(r, err, "list produtos")
		respondError(w, http.StatusInternalServerError, "Erro ao listar produtos")
		return
	}

	respondJSON(w, http.StatusOK, produtos)
}

// POST /produtos
func (h *ProdutoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Dados do produto inválidos")
		return
	}

	created, err := h.repo.Create(r.Context(), req.toDomain())
	if err != nil {
		h.logError(r, err, "create produto")
		respondError(w, http.StatusInternalServerError, "Erro ao criar produto")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GET /produtos/{id}
func (h *ProdutoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Produto não encontrado")
		return
	}

	produto, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProdutoNotFound) {
			respondError(w, http.StatusNotFound, "Produto não encontrado")
			return
		}
		h.logError(r, err, "get produto")
		respondError(w, http.StatusInternalServerError, "Erro ao buscar produto")
		return
	}

	respondJSON(w, http.StatusOK, produto)
}

// PUT /produtos/{id}
func (h *ProdutoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Produto não encontrado")
		return
	}

	var req ProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Dados do produto inválidos")
		return
	}

	updated, err := h.repo.Update(r.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, repository.ErrProdutoNotFound) {
			respondError(w, http.StatusNotFound, "Produto não encontrado")
			return
		}
		h.logError(r, err, "update produto")
		respondError(w, http.StatusInternalServerError, "Erro ao atualizar produto")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DELETE /produtos/{id}
func (h *ProdutoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Produto não encontrado")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProdutoNotFound) {
			respondError(w, http.StatusNotFound, "Produto não encontrado")
			return
		}
		h.logError(r, err, "delete produto")
		respondError(w, http.StatusInternalServerError, "Erro ao eliminar produto")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Produto eliminado"})
}

func (h *ProdutoHandler) logError(r *http.Request, err error, op string) {
	h.logger.Error().
		Err(err).
		Str("request_id", getRequestID(r.Context())).
		Msg(op)
}
