package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Zefer1/desafio-db/internal/docstore"
)

type MongoClienteHandler struct {
	repo   docstore.ClienteRepository
	logger zerolog.Logger
}

func NewMongoClienteHandler(repo docstore.ClienteRepository, logger zerolog.Logger) *MongoClienteHandler {
	return &MongoClienteHandler{repo: repo, logger: logger}
}

// GET /mongo/clientes
func (h *MongoClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.repo.List(r.Context())
	if err != nil {
		h.logError(r, err, "list clientes (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao listar clientes (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, clientes)
}

// POST /mongo/clientes
func (h *MongoClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Campos nome e email são obrigatórios")
		return
	}

	created, err := h.repo.Create(r.Context(), &docstore.Cliente{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Morada:   req.Morada,
	})
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, "Email já existe (Mongo)")
			return
		}
		h.logError(r, err, "create cliente (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao criar cliente (Mongo)")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GET /mongo/clientes/{id}
func (h *MongoClienteHandler) Get(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, docstore.ErrClienteNotFound) {
			respondError(w, http.StatusNotFound, "Cliente não encontrado (Mongo)")
			return
		}
		h.logError(r, err, "get cliente (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao buscar cliente (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, cliente)
}

// PUT /mongo/clientes/{id}
func (h *MongoClienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Campos nome e email são obrigatórios")
		return
	}

	updated, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), &docstore.Cliente{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Morada:   req.Morada,
	})
	if err != nil {
		switch {
		case errors.Is(err, docstore.ErrClienteNotFound):
			respondError(w, http.StatusNotFound, "Cliente não encontrado (Mongo)")
		case errors.Is(err, docstore.ErrDuplicateEmail):
			respondError(w, http.StatusBadRequest, "Email já existe (Mongo)")
		default:
			h.logError(r, err, "update cliente (mongo)")
			respondError(w, http.StatusInternalServerError, "Erro ao atualizar cliente (Mongo)")
		}
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DELETE /mongo/clientes/{id}
func (h *MongoClienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, docstore.ErrClienteNotFound) {
			respondError(w, http.StatusNotFound, "Cliente não encontrado (Mongo)")
			return
		}
		h.logError(r, err, "delete cliente (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao eliminar cliente (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Cliente eliminado"})
}

func (h *MongoClienteHandler) logError(r *http.Request, err error, op string) {
	h.logger.Error().
		Err(err).
		Str("request_id", getRequestID(r.Context())).
		Msg(op)
}
