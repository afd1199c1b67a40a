package sales_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antiquehaven/antique-haven-api/internal/application/sales"
	"github.com/antiquehaven/antique-haven-api/internal/domain"
	"github.com/antiquehaven/antique-haven-api/internal/domain/entity"
	"github.com/antiquehaven/antique-haven-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeTxRunner serializa las transacciones con un mutex (equivalente al
// bloqueo de fila de PostgreSQL) y aplica semántica commit/rollback: los
// cambios se acumulan en un staging y solo se aplican si fn retorna nil.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu    sync.Mutex
	items map[string]*entity.InventoryItem
	sales []entity.Sale
}

func newFakeStore(items ...*entity.InventoryItem) *fakeStore {
	s := &fakeStore{items: make(map[string]*entity.InventoryItem)}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

// fakeTx acumula las mutaciones de un intento; commit() las aplica.
type fakeTx struct {
	store      *fakeStore
	newSales   []entity.Sale
	decrements map[string]int
}

func (tx *fakeTx) commit() {
	for id, by := range tx.decrements {
		tx.store.items[id].Quantity -= by
	}
	tx.store.sales = append(tx.store.sales, tx.newSales...)
}

type txSaleRepo struct{ tx *fakeTx }

func (r *txSaleRepo) Create(sale *entity.Sale) error {
	r.tx.newSales = append(r.tx.newSales, *sale)
	return nil
}
func (r *txSaleRepo) GetByID(string) (*entity.Sale, error)      { return nil, nil }
func (r *txSaleRepo) List() ([]repository.SaleWithRefs, error)  { return nil, nil }
func (r *txSaleRepo) ListByDateRange(_, _ time.Time) ([]repository.SaleWithRefs, error) {
	return nil, nil
}

type txItemRepo struct{ tx *fakeTx }

func (r *txItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	it, ok := r.tx.store.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}
func (r *txItemRepo) DecrementQuantity(id string, by int) error {
	r.tx.decrements[id] += by
	return nil
}
func (r *txItemRepo) Create(*entity.InventoryItem) error                      { return nil }
func (r *txItemRepo) GetByID(string) (*entity.InventoryItem, error)           { return nil, nil }
func (r *txItemRepo) List() ([]*entity.InventoryItem, error)                  { return nil, nil }
func (r *txItemRepo) ListLowStock(int) ([]*entity.InventoryItem, error)       { return nil, nil }
func (r *txItemRepo) Update(*entity.InventoryItem) error                      { return nil }
func (r *txItemRepo) Delete(string) error                                     { return nil }

type fakeTxRunner struct {
	store *fakeStore
	// conflictsLeft fuerza los primeros N intentos a fallar con
	// ErrTransactionConflict, simulando fallos de serialización de la DB.
	conflictsLeft int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	itemRepo repository.InventoryRepository,
) error) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return domain.ErrTransactionConflict
	}

	tx := &fakeTx{store: f.store, decrements: make(map[string]int)}
	if err := fn(&txSaleRepo{tx: tx}, &txItemRepo{tx: tx}); err != nil {
		return err // rollback: staging descartado
	}
	tx.commit()
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func testItem(id string, qty int, buying, selling int64) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:           id,
		Name:         "Reloj de péndulo",
		Category:     "relojes",
		BuyingPrice:  decimal.NewFromInt(buying),
		SellingPrice: decimal.NewFromInt(selling),
		Quantity:     qty,
	}
}

func newUC(store *fakeStore) *sales.CreateSaleUseCase {
	return sales.NewCreateSaleUseCase(&fakeTxRunner{store: store}, sales.Config{
		LowMarginPct: 10,
		MaxRetries:   3,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateSale
// ──────────────────────────────────────────────────────────────────────────────

// Venta exitosa: qty 10, costo 100, precio 200, vende 2 → profit 200, quedan 8.
func TestCreateSale_Exitosa(t *testing.T) {
	store := newFakeStore(testItem("item-1", 10, 100, 200))
	uc := newUC(store)

	res, err := uc.CreateSale(context.Background(), sales.CreateSaleInput{
		ItemID:       "item-1",
		Quantity:     2,
		SellingPrice: decimal.NewFromInt(200),
		AttendantID:  "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, res.Sale.Profit.Equal(decimal.NewFromInt(200)),
		"profit = (200-100)×2 = 200, obtuvo %s", res.Sale.Profit)
	assert.Equal(t, 8, store.items["item-1"].Quantity, "deben quedar 8 unidades")
	assert.Len(t, store.sales, 1, "debe persistirse exactamente una venta")
	assert.NotEmpty(t, res.Sale.ID)
	assert.False(t, res.Sale.SaleDate.IsZero(), "el timestamp lo asigna el servidor")
	assert.False(t, res.BelowCost)
	assert.False(t, res.LowMargin, "margen del 50%% no es bajo")
}

// Stock insuficiente: qty 10, pide 15 → ErrInsufficientStock y todo intacto.
func TestCreateSale_StockInsuficiente(t *testing.T) {
	store := newFakeStore(testItem("item-1", 10, 100, 200))
	uc := newUC(store)

	res, err := uc.CreateSale(context.Background(), sales.CreateSaleInput{
		ItemID:       "item-1",
		Quantity:     15,
		SellingPrice: decimal.NewFromInt(200),
		AttendantID:  "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, res)
	assert.Equal(t, 10, store.items["item-1"].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, store.sales, "no debe quedar venta parcial")
}

// Pieza inexistente → ErrNotFound.
func TestCreateSale_PiezaInexistente(t *testing.T) {
	uc := newUC(newFakeStore())

	_, err := uc.CreateSale(context.Background(), sales.CreateSaleInput{
		ItemID:       "no-existe",
		Quantity:     1,
		SellingPrice: decimal.NewFromInt(50),
		AttendantID:  "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Entradas inválidas: se rechazan antes de tocar la transacción.
func TestCreateSale_EntradaInvalida(t *testing.T) {
	uc := newUC(newFakeStore(testItem("item-1", 10, 100, 200)))
	price := decimal.NewFromInt(200)

	cases := []struct {
		name  string
		input sales.CreateSaleInput
	}{
		{"sin itemID", sales.CreateSaleInput{Quantity: 1, SellingPrice: price, AttendantID: "u"}},
		{"sin attendant", sales.CreateSaleInput{ItemID: "item-1", Quantity: 1, SellingPrice: price}},
		{"cantidad cero", sales.CreateSaleInput{ItemID: "item-1", Quantity: 0, SellingPrice: price, AttendantID: "u"}},
		{"cantidad negativa", sales.CreateSaleInput{ItemID: "item-1", Quantity: -3, SellingPrice: price, AttendantID: "u"}},
		{"precio cero", sales.CreateSaleInput{ItemID: "item-1", Quantity: 1, AttendantID: "u"}},
		{"precio negativo", sales.CreateSaleInput{ItemID: "item-1", Quantity: 1, SellingPrice: decimal.NewFromInt(-5), AttendantID: "u"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := uc.CreateSale(context.Background(), c.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Venta bajo costo: permitida, con profit negativo y señales encendidas.
func TestCreateSale_BajoCostoPermitida(t *testing.T) {
	store := newFakeStore(testItem("item-1", 5, 100, 200))
	uc := newUC(store)

	res, err := uc.CreateSale(context.Background(), sales.CreateSaleInput{
		ItemID:       "item-1",
		Quantity:     1,
		SellingPrice: decimal.NewFromInt(60), // bajo el costo de 100
		AttendantID:  "user-1",
	})
	require.NoError(t, err, "vender bajo costo no es error, solo advertencia")

	assert.True(t, res.Sale.Profit.Equal(decimal.NewFromInt(-40)))
	assert.True(t, res.BelowCost)
	assert.True(t, res.LowMargin)
	assert.Equal(t, 4, store.items["item-1"].Quantity, "la venta sí se aplica")
}

// Margen bajo pero sobre costo: lowMargin sí, belowCost no.
func TestCreateSale_MargenBajo(t *testing.T) {
	store := newFakeStore(testItem("item-1", 5, 100, 200))
	uc := newUC(store)

	res, err := uc.CreateSale(context.Background(), sales.CreateSaleInput{
		ItemID:       "item-1",
		Quantity:     1,
		SellingPrice: decimal.NewFromInt(105), // margen ≈ 4.8% < 10%
		AttendantID:  "user-1",
	})
	require.NoError(t, err)
	assert.True(t, res.LowMargin)
	assert.False(t, res.BelowCost)
}

// Dos ventas concurrentes de 6 sobre stock 10: exactamente una gana y la
// otra recibe ErrInsufficientStock; la cantidad final es 4, nunca negativa.
func TestCreateSale_ConcurrenciaSinSobreventa(t *testing.T) {
	store := newFakeStore(testItem("item-1", 10, 100, 200))
	uc := newUC(store)

	input := sales.CreateSaleInput{
		ItemID:       "item-1",
		Quantity:     6,
		SellingPrice: decimal.NewFromInt(200),
		AttendantID:  "user-1",
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateSale(context.Background(), input)
		}(i)
	}
	wg.Wait()

	var okCount, stockErrCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, domain.ErrInsufficientStock):
			stockErrCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una venta debe ganar")
	assert.Equal(t, 1, stockErrCount, "la otra debe fallar por stock")
	assert.Equal(t, 4, store.items["item-1"].Quantity, "10 - 6 = 4, sin doble venta")
	assert.Len(t, store.sales, 1)
}

// Conflictos de serialización: reintenta y termina aplicando la venta.
func TestCreateSale_ReintentaTrasConflicto(t *testing.T) {
	store := newFakeStore(testItem("item-1", 10, 100, 200))
	runner := &fakeTxRunner{store: store, conflictsLeft: 2}
	uc := sales.NewCreateSaleUseCase(runner, sales.Config{LowMarginPct: 10, MaxRetries: 3})

	res, err := uc.CreateSale(context.Background(), sales.CreateSaleInput{
		ItemID:       "item-1",
		Quantity:     1,
		SellingPrice: decimal.NewFromInt(200),
		AttendantID:  "user-1",
	})
	require.NoError(t, err, "dos conflictos caben dentro de tres intentos")
	assert.NotNil(t, res)
	assert.Equal(t, 9, store.items["item-1"].Quantity)
}

// Conflictos persistentes: agota los reintentos y devuelve el error transitorio.
func TestCreateSale_ConflictoPersistenteAgotaReintentos(t *testing.T) {
	store := newFakeStore(testItem("item-1", 10, 100, 200))
	runner := &fakeTxRunner{store: store, conflictsLeft: 99}
	uc := sales.NewCreateSaleUseCase(runner, sales.Config{LowMarginPct: 10, MaxRetries: 3})

	_, err := uc.CreateSale(context.Background(), sales.CreateSaleInput{
		ItemID:       "item-1",
		Quantity:     1,
		SellingPrice: decimal.NewFromInt(200),
		AttendantID:  "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrTransactionConflict)
	assert.Equal(t, 10, store.items["item-1"].Quantity, "nada aplicado tras agotar reintentos")
	assert.Equal(t, 96, runner.conflictsLeft, "exactamente tres intentos consumidos")
}
