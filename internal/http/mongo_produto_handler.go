package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Zefer1/desafio-db/internal/docstore"
)

type MongoProdutoHandler struct {
	repo   docstore.ProdutoRepository
	logger zerolog.Logger
}

func NewMongoProdutoHandler(repo docstore.ProdutoRepository, logger zerolog.Logger) *MongoProdutoHandler {
	return &MongoProdutoHandler{repo: repo, logger: logger}
}

func (req *ProdutoRequest) toDoc() *docstore.Produto {
	return &docstore.Produto{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
		Categoria: req.Categoria,
	}
}

// GET /mongo/produtos
func (h *MongoProdutoHandler) List(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.repo.List(r.Context())
	if err != nil {
		h.logError(r, err, "list produtos (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao listar produtos (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, produtos)
}

// POST /mongo/produtos
func (h *MongoProdutoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Dados do produto inválidos")
		return
	}

	created, err := h.repo.Create(r.Context(), req.toDoc())
	if err != nil {
		h.logError(r, err, "create produto (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao criar produto (Mongo)")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GET /mongo/produtos/{id}
func (h *MongoProdutoHandler) Get(w http.ResponseWriter, r *http.Request) {
	produto, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, docstore.ErrProdutoNotFound) {
			respondError(w, http.StatusNotFound, "Produto não encontrado (Mongo)")
			return
		}
		h.logError(r, err, "get produto (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao buscar produto (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, produto)
}

// PUT /mongo/produtos/{id}
func (h *MongoProdutoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Dados do produto inválidos")
		return
	}

	updated, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), req.toDoc())
	if err != nil {
		if errors.Is(err, docstore.ErrProdutoNotFound) {
			respondError(w, http.StatusNotFound, "Produto não encontrado (Mongo)")
			return
		}
		h.logError(r, err, "update produto (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao atualizar produto (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DELETE /mongo/produtos/{id}
func (h *MongoProdutoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, docstore.ErrProdutoNotFound) {
			respondError(w, http.StatusNotFound, "Produto não encontrado (Mongo)")
			return
		}
		h.logError(r, err, "delete produto (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao eliminar produto (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Produto eliminado"})
}

func (h *MongoProdutoHandler) logError(r *http.Request, err error, op string) {
	h.logger.Error().
		Err(err).
		Str("request_id", getRequestID(r.Context())).
		Msg(op)
}
