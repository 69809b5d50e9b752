package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Zefer1/desafio-db/internal/domain"
	"github.com/Zefer1/desafio-db/internal/repository"
)

type ClienteHandler struct {
	repo   repository.ClienteRepository
	logger zerolog.Logger
}

func NewClienteHandler(repo repository.ClienteRepository, logger zerolog.Logger) *ClienteHandler {
	return &ClienteHandler{repo: repo, logger: logger}
}

type ClienteRequest struct {
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	Telefone *string `json:"telefone"`
	Morada   *string `json:"morada"`
}

func (req *ClienteRequest) validate() bool {
	return req.Nome != "" && req.Email != ""
}

// GET /clientes
func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.repo.List(r.Context())
	if err != nil {
		h.logError(r, err, "list clientes")
		respondError(w, http.StatusInternalServerError, "Erro ao listar clientes")
		return
	}

	respondJSON(w, http.StatusOK, clientes)
}

// POST /clientes
func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Campos nome e email são obrigatórios")
		return
	}

	created, err := h.repo.Create(r.Context(), domain.Cliente{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Morada:   req.Morada,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, "Email já existe")
			return
		}
		h.logError(r, err, "create cliente")
		respondError(w, http.StatusInternalServerError, "Erro ao criar cliente")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GET /clientes/{id}
func (h *ClienteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Cliente não encontrado")
		return
	}

	cliente, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrClienteNotFound) {
			respondError(w, http.StatusNotFound, "Cliente não encontrado")
			return
		}
		h.logError(r, err, "get cliente")
		respondError(w, http.StatusInternalServerError, "Erro ao buscar cliente")
		return
	}

	respondJSON(w, http.StatusOK, cliente)
}

// PUT /clientes/{id}
func (h *ClienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Cliente não encontrado")
		return
	}

	var req ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Campos nome e email são obrigatórios")
		return
	}

	updated, err := h.repo.Update(r.Context(), id, domain.Cliente{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Morada:   req.Morada,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrClienteNotFound):
			respondError(w, http.StatusNotFound, "Cliente não encontrado")
		case errors.Is(err, repository.ErrDuplicateEmail):
			respondError(w, http.StatusBadRequest, "Email já existe")
		default:
			h.logError(r, err, "update cliente")
			respondError(w, http.StatusInternalServerError, "Erro ao atualizar cliente")
		}
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DELETE /clientes/{id}
func (h *ClienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Cliente não encontrado")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrClienteNotFound) {
			respondError(w, http.StatusNotFound, "Cliente não encontrado")
			return
		}
		h.logError(r, err, "delete cliente")
		respondError(w, http.StatusInternalServerError, "Erro ao eliminar cliente")
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Cliente eliminado"})
}

func (h *ClienteHandler) logError(r *http.Request, err error, op string) {
	h.logger.Error().
		Err(err).
		Str("request_id", getRequestID(r.Context())).
		Msg(op)
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
