package postgres_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/order"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/postgres"
)

// testPool abre TEST_DATABASE_URL sobre un schema propio con migrations/001_schema.sql aplicado.
// Sin la variable los tests se omiten.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	schema := "inv_test_" + uuid.NewString()[:8]

	admin, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		_ = admin.Close(context.Background())
	})

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	cfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ddl, err := os.ReadFile(filepath.Join("migrations", "001_schema.sql"))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(ddl))
	require.NoError(t, err)
	return pool
}

func insertOrder(t *testing.T, repo *postgres.OrderRepo, number string, createdAt time.Time) string {
	t.Helper()
	o := &entity.Order{
		ID:          uuid.NewString(),
		OrderNumber: number,
		OrderDate:   createdAt,
		Status:      entity.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("10.00"),
		CreatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), o))
	return o.ID
}

func TestPostgres_TransitionStatusConcurrente(t *testing.T) {
	pool := testPool(t)
	repo := postgres.NewOrderRepository(pool)
	id := insertOrder(t, repo, "PO-2025-001", time.Now())
	from := order.SourceStatesFor(entity.OrderStatusReceived)

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.TransitionStatus(context.Background(), id, from, entity.OrderStatusReceived)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins, "solo una transición desde pending puede ganar")

	ok, err := repo.TransitionStatus(context.Background(), id,
		order.SourceStatesFor(entity.OrderStatusCancelled), entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.False(t, ok, "received es terminal")

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.OrderStatusReceived, got.Status)
}

func TestPostgres_LastOrderNumberOrden(t *testing.T) {
	pool := testPool(t)
	repo := postgres.NewOrderRepository(pool)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertOrder(t, repo, "PO-2025-999", base)
	insertOrder(t, repo, "PO-2025-1000", base)
	insertOrder(t, repo, "PO-2025-998", base)
	insertOrder(t, repo, "XX-2026-005", base.Add(time.Hour))

	// Mismo created_at: gana el número más largo (1000 > 999 aunque ordene antes como texto).
	last, err := repo.LastOrderNumber(ctx, "PO-")
	require.NoError(t, err)
	assert.Equal(t, "PO-2025-1000", last)

	// El más reciente por created_at manda sobre la longitud.
	insertOrder(t, repo, "PO-2026-001", base.Add(24*time.Hour))
	last, err = repo.LastOrderNumber(ctx, "PO-")
	require.NoError(t, err)
	assert.Equal(t, "PO-2026-001", last)

	// GetByID con texto que no es UUID: ausencia, no error.
	missing, err := repo.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgres_NumeracionConcurrenteSinRepetidos(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	suppliers := postgres.NewSupplierRepository(pool)
	supplierID := uuid.NewString()
	require.NoError(t, suppliers.Create(ctx, &entity.Supplier{ID: supplierID, Name: "Acme", CreatedAt: time.Now()}))

	orders := postgres.NewOrderRepository(pool)
	uc := usecase.NewOrderUseCase(orders, postgres.NewTxRunner(pool), suppliers, nil, nil, order.ModeContinuous).
		WithClock(func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) })

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []string
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := uc.Create(ctx, "", dto.OrderRequest{SupplierID: supplierID, OrderDate: "2025-03-10", TotalAmount: "5"})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			numbers = append(numbers, o.OrderNumber)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Strings(numbers)
	want := make([]string, 0, workers)
	for i := 1; i <= workers; i++ {
		want = append(want, order.FormatNumber(2025, i))
	}
	assert.Equal(t, want, numbers)
}
