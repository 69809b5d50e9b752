package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Zefer1/desafio-db/internal/config"
	"github.com/Zefer1/desafio-db/internal/docstore"
	h "github.com/Zefer1/desafio-db/internal/http"
	"github.com/Zefer1/desafio-db/internal/repository"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	db, err := repository.Connect(cfg.PGURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer db.Close()

	if err := repository.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}
	logger.Info().Msg("connected to PostgreSQL")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	mongoDB, err := docstore.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect MongoDB")
		}
	}()

	if err := docstore.EnsureIndexes(context.Background(), mongoDB); err != nil {
		logger.Fatal().Err(err).Msg("failed to create MongoDB indexes")
	}
	logger.Info().Str("database", cfg.MongoDBName).Msg("connected to MongoDB")

	router := h.NewRouter(h.RouterConfig{
		Clientes:       h.NewClienteHandler(repository.NewClienteRepository(db), logger),
		Produtos:       h.NewProdutoHandler(repository.NewProdutoRepository(db), logger),
		Vendas:         h.NewVendaHandler(repository.NewVendaRepository(db), logger),
		MongoClientes:  h.NewMongoClienteHandler(docstore.NewClienteRepository(mongoDB), logger),
		MongoProdutos:  h.NewMongoProdutoHandler(docstore.NewProdutoRepository(mongoDB), logger),
		MongoVendas:    h.NewMongoVendaHandler(docstore.NewVendaRepository(mongoDB), logger),
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
