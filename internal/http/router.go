package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	Clientes       *ClienteHandler
	Produtos       *ProdutoHandler
	Vendas         *VendaHandler
	MongoClientes  *MongoClienteHandler
	MongoProdutos  *MongoProdutoHandler
	MongoVendas    *MongoVendaHandler
	RequestTimeout time.Duration
}

// NewRouter assembles the full HTTP surface: the relational routes at the
// root and the document-store routes under /mongo.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/clientes", func(r chi.Router) {
		r.Get("/", cfg.Clientes.List)
		r.Post("/", cfg.Clientes.Create)
		r.Get("/{id}", cfg.Clientes.Get)
		r.Put("/{id}", cfg.Clientes.Update)
		r.Delete("/{id}", cfg.Clientes.Delete)
	})

	r.Route("/produtos", func(r chi.Router) {
		r.Get("/", cfg.Produtos.List)
		r.Post("/", cfg.Produtos.Create)
		r.Get("/{id}", cfg.Produtos.Get)
		r.Put("/{id}", cfg.Produtos.Update)
		r.Delete("/{id}", cfg.Produtos.Delete)
	})

	r.Route("/vendas", func(r chi.Router) {
		r.Get("/", cfg.Vendas.List)
		r.Post("/", cfg.Vendas.Create)
		r.Get("/{id}", cfg.Vendas.Get)
	})

	r.Route("/mongo", func(r chi.Router) {
		r.Route("/clientes", func(r chi.Router) {
			r.Get("/", cfg.MongoClientes.List)
			r.Post("/", cfg.MongoClientes.Create)
			r.Get("/{id}", cfg.MongoClientes.Get)
			r.Put("/{id}", cfg.MongoClientes.Update)
			r.Delete("/{id}", cfg.MongoClientes.Delete)
		})

		r.Route("/produtos", func(r chi.Router) {
			r.Get("/", cfg.MongoProdutos.List)
			r.Post("/", cfg.MongoProdutos.Create)
			r.Get("/{id}", cfg.MongoProdutos.Get)
			r.Put("/{id}", cfg.MongoProdutos.Update)
			r.Delete("/{id}", cfg.MongoProdutos.Delete)
		})

		r.Route("/vendas", func(r chi.Router) {
			r.Get("/", cfg.MongoVendas.List)
			r.Post("/", cfg.MongoVendas.Create)
			r.Get("/{id}", cfg.MongoVendas.Get)
		})
	})

	return r
}
