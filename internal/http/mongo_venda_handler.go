package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zefer1/desafio-db/internal/docstore"
)

type MongoVendaHandler struct {
	repo   docstore.VendaRepository
	logger zerolog.Logger
}

func NewMongoVendaHandler(repo docstore.VendaRepository, logger zerolog.Logger) *MongoVendaHandler {
	return &MongoVendaHandler{repo: repo, logger: logger}
}

type CreateMongoVendaRequest struct {
	Cliente string                  `json:"cliente"`
	Itens   []ItemMongoVendaRequest `json:"itens"`
}

type ItemMongoVendaRequest struct {
	Produto       string  `json:"produto"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
}

// parse validates the request and converts its hex ids. Referenced
// documents are not checked for existence, matching the write model.
func (req *CreateMongoVendaRequest) parse() (primitive.ObjectID, []docstore.ItemVenda, bool) {
	clienteID, err := primitive.ObjectIDFromHex(req.Cliente)
	if err != nil || len(req.Itens) == 0 {
		return primitive.NilObjectID, nil, false
	}

	itens := make([]docstore.ItemVenda, len(req.Itens))
	for i, item := range req.Itens {
		produtoID, err := primitive.ObjectIDFromHex(item.Produto)
		if err != nil || item.Quantidade <= 0 || item.PrecoUnitario < 0 {
			return primitive.NilObjectID, nil, false
		}
		itens[i] = docstore.ItemVenda{
			Produto:       produtoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
		}
	}

	return clienteID, itens, true
}

// POST /mongo/vendas
func (h *MongoVendaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMongoVendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Corpo do pedido inválido")
		return
	}

	clienteID, itens, ok := req.parse()
	if !ok {
		respondError(w, http.StatusBadRequest, "Dados da venda inválidos")
		return
	}

	venda, err := h.repo.Create(r.Context(), clienteID, itens)
	if err != nil {
		h.logError(r, err, "create venda (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao criar venda (Mongo)")
		return
	}

	respondJSON(w, http.StatusCreated, venda)
}

// GET /mongo/vendas
func (h *MongoVendaHandler) List(w http.ResponseWriter, r *http.Request) {
	vendas, err := h.repo.List(r.Context())
	if err != nil {
		h.logError(r, err, "list vendas (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao listar vendas (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, vendas)
}

// GET /mongo/vendas/{id} — cliente and produto references come back
// expanded inline.
func (h *MongoVendaHandler) Get(w http.ResponseWriter, r *http.Request) {
	venda, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, docstore.ErrVendaNotFound) {
			respondError(w, http.StatusNotFound, "Venda não encontrada (Mongo)")
			return
		}
		h.logError(r, err, "get venda (mongo)")
		respondError(w, http.StatusInternalServerError, "Erro ao buscar venda (Mongo)")
		return
	}

	respondJSON(w, http.StatusOK, venda)
}

func (h *MongoVendaHandler) logError(r *http.Request, err error, op string) {
	h.logger.Error().
		Err(err).
		Str("request_id", getRequestID(r.Context())).
		Msg(op)
}
