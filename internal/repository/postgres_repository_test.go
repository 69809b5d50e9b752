package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Zefer1/desafio-db/internal/domain"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	uri, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Connect(uri)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, "./migrations"))

	cleanup := func() {
		db.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return db, cleanup
}

func newTestCliente(email string) domain.Cliente {
	telefone := "912345678"
	morada := "Rua das Flores 1, Lisboa"
	return domain.Cliente{
		Nome:     "Ana Silva",
		Email:    email,
		Telefone: &telefone,
		Morada:   &morada,
	}
}

func TestCreateCliente_RoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewClienteRepository(db)

	created, err := repo.Create(ctx, newTestCliente("ana@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Ana Silva", fetched.Nome)
	assert.Equal(t, "ana@example.com", fetched.Email)
	require.NotNil(t, fetched.Telefone)
	assert.Equal(t, "912345678", *fetched.Telefone)
}

func TestCreateCliente_DuplicateEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewClienteRepository(db)

	first, err := repo.Create(ctx, newTestCliente("dup@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestCliente("dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// the first record is untouched
	fetched, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "dup@example.com", fetched.Email)
}

func TestUpdateCliente_NotFoundDoesNotUpsert(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewClienteRepository(db)

	_, err := repo.Update(ctx, 9999, newTestCliente("ghost@example.com"))
	assert.ErrorIs(t, err, ErrClienteNotFound)

	clientes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clientes)
}

func TestDeleteCliente_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewClienteRepository(db)
	err := repo.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrClienteNotFound)
}

func TestListClientes_OrderedByID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewClienteRepository(db)

	_, err := repo.Create(ctx, newTestCliente("a@example.com"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestCliente("b@example.com"))
	require.NoError(t, err)

	clientes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clientes, 2)
	assert.Less(t, clientes[0].ID, clientes[1].ID)
}

func TestProdutoCRUD(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProdutoRepository(db)

	descricao := "Portátil de 15 polegadas"
	categoria := "informática"
	created, err := repo.Create(ctx, domain.Produto{
		Nome:      "Portátil",
		Descricao: &descricao,
		Preco:     899.99,
		Categoria: &categoria,
	})
	require.NoError(t, err)

	created.Nome = "Portátil Pro"
	updated, err := repo.Update(ctx, created.ID, *created)
	require.NoError(t, err)
	assert.Equal(t, "Portátil Pro", updated.Nome)
	assert.Equal(t, 899.99, updated.Preco)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProdutoNotFound)
}

func seedVendaFixtures(t *testing.T, db *sql.DB) (clienteID int64, produtoIDs []int64) {
	ctx := context.Background()

	cliente, err := NewClienteRepository(db).Create(ctx, newTestCliente("venda@example.com"))
	require.NoError(t, err)

	produtos := NewProdutoRepository(db)
	for _, nome := range []string{"Teclado", "Rato"} {
		p, err := produtos.Create(ctx, domain.Produto{Nome: nome, Preco: 10.0})
		require.NoError(t, err)
		produtoIDs = append(produtoIDs, p.ID)
	}

	return cliente.ID, produtoIDs
}

func TestCreateVenda_WithItens(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	clienteID, produtoIDs := seedVendaFixtures(t, db)
	repo := NewVendaRepository(db)

	itens := []domain.ItemVenda{
		{ProdutoID: produtoIDs[0], Quantidade: 2, PrecoUnitario: 10.0},
		{ProdutoID: produtoIDs[1], Quantidade: 1, PrecoUnitario: 7.5},
	}

	venda, err := repo.Create(ctx, clienteID, itens)
	require.NoError(t, err)
	assert.NotZero(t, venda.ID)
	assert.Equal(t, 27.5, venda.Total)
	assert.False(t, venda.Data.IsZero())

	fetched, err := repo.GetByID(ctx, venda.ID)
	require.NoError(t, err)
	assert.Equal(t, clienteID, fetched.ClienteID)
	assert.InDelta(t, 27.5, fetched.Total, 1e-9)
	require.Len(t, fetched.Itens, 2)
}

// A line item referencing a nonexistent product trips the foreign key after
// the sale header was already inserted; the whole sale must vanish.
func TestCreateVenda_RollbackLeavesNoPartialSale(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	clienteID, produtoIDs := seedVendaFixtures(t, db)
	repo := NewVendaRepository(db)

	itens := []domain.ItemVenda{
		{ProdutoID: produtoIDs[0], Quantidade: 1, PrecoUnitario: 10.0},
		{ProdutoID: 999999, Quantidade: 1, PrecoUnitario: 5.0},
	}

	_, err := repo.Create(ctx, clienteID, itens)
	require.Error(t, err)

	vendas, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, vendas)
}

func TestGetVenda_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewVendaRepository(db)
	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrVendaNotFound)
}
