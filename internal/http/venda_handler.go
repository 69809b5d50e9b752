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

type VendaHandler struct {
	repo   repository.VendaRepository
	logger zerolog.Logger
}

func NewVendaHandler(repo repository.VendaRepository, logger zerolog.Logger) *VendaHandler {
	return &VendaHandler{repo: repo, logger: logger}
}

type CreateVendaRequest struct {
	ClienteID int64              `json:"cliente_id"`
	Itens     []ItemVendaRequest `json:"itens"`
}

type ItemVendaRequest struct {
	ProdutoID     int64   `json:"produto_id"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
}

func (req *CreateVendaRequest) validate() bool {
	if req.ClienteID <= 0 || len(req.Itens) == 0 {
		return false
	}
	for _, item := range req.Itens {
		if item.ProdutoID <= 0 || item.Quantidade <= 0 || item.PrecoUnitario < 0 {
			return false
		}
	}
	return true
}

type CreateVendaResponse struct {
	VendaID   int64              `json:"venda_id"`
	ClienteID int64              `json:"cliente_id"`
	Total     float64            `json:"total"`
	Itens     []domain.ItemVenda `json:"itens"`
}

// POST /vendas
func (h *VendaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}
	if !req.validate() {
		respondError(w, http.StatusBadRequest, "Dados da venda inválidos")
		return
	}

	itens := make([]domain.ItemVenda, len(req.Itens))
	for i, item := range req.Itens {
		itens[i] = domain.ItemVenda{
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
		}
	}

	venda, err := h.repo.Create(r.Context(), req.ClienteID, itens)
	if err != nil {
		// the repository has already rolled the transaction back
		h.logError(r, err, "create venda")
		respondError(w, http.StatusInternalServerError, "Erro ao criar venda")
		return
	}

	respondJSON(w, http.StatusCreated, CreateVendaResponse{
		VendaID:   venda.ID,
		ClienteID: venda.ClienteID,
		Total:     venda.Total,
		Itens:     venda.Itens,
	})
}

// GET /vendas
func (h *VendaHandler) List(w http.ResponseWriter, r *http.Request) {
	vendas, err := h.repo.List(r.Context())
	if err != nil {
		h.logError(r, err, "list vendas")
		respondError(w, http.StatusInternalServerError, "Erro ao listar vendas")
		return
	}

	respondJSON(w, http.StatusOK, vendas)
}

// GET /vendas/{id}
func (h *VendaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "Venda não encontrada")
		return
	}

	venda, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVendaNotFound) {
			respondError(w, http.StatusNotFound, "Venda não encontrada")
			return
		}
		h.logError(r, err, "get venda")
		respondError(w, http.StatusInternalServerError, "Erro ao buscar venda")
		return
	}

	respondJSON(w, http.StatusOK, venda)
}

func (h *VendaHandler) logError(r *http.Request, err error, op string) {
	h.logger.Error().
		Err(err).
		Str("request_id", getRequestID(r.Context())).
		Msg(op)
}
