package inventory_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
	"github.com/jhoicas/inventario-alertas/internal/domain"
	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-alertas/internal/domain/inventory"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

// fakeAlertRepo devuelve candidatos fijos y registra los argumentos recibidos.
type fakeAlertRepo struct {
	mu         sync.Mutex
	candidates []repository.LowStockCandidate
	err        error
	gotCompany int64
	gotSince   time.Time
	calls      int
}

func (r *fakeAlertRepo) ListLowStockCandidates(_ context.Context, companyID int64, since time.Time) ([]repository.LowStockCandidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.gotCompany = companyID
	r.gotSince = since
	if r.err != nil {
		return nil, r.err
	}
	return r.candidates, nil
}

func (r *fakeAlertRepo) RunReadOnly(ctx context.Context, fn func(alertRepo repository.StockAlertRepository) error) error {
	return fn(r)
}

type recordingObserver struct {
	computed []int
	failed   int
}

func (o *recordingObserver) AlertsComputed(count int, _ time.Duration) { o.computed = append(o.computed, count) }
func (o *recordingObserver) AlertsFailed()                             { o.failed++ }

func candidate(productID int64, quantity, threshold int, recentSales int64, supplier *entity.Supplier) repository.LowStockCandidate {
	return repository.LowStockCandidate{
		Inventory: entity.Inventory{
			ID: productID * 10, WarehouseID: 1, ProductID: productID,
			Quantity: quantity, LowStockThreshold: threshold,
		},
		Product:     entity.Product{ID: productID, CompanyID: 1, Name: "Producto", SKU: "SKU"},
		Warehouse:   entity.Warehouse{ID: 1, CompanyID: 1, Name: "Central"},
		Supplier:    supplier,
		RecentSales: recentSales,
	}
}

func newUseCase(repo *fakeAlertRepo, obs inventory.AlertObserver) *inventory.LowStockAlertUseCase {
	return inventory.NewLowStockAlertUseCase(repo, logger.Nop(), obs,
		inventory.WithClock(func() time.Time { return fixedNow }))
}

func TestGetLowStockAlerts_VentanaDeTreintaDias(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newUseCase(repo, nil)

	_, err := uc.GetLowStockAlerts(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.gotCompany)
	assert.Equal(t, fixedNow.Add(-30*24*time.Hour), repo.gotSince)
}

// 2 unidades, 90 vendidas en 30 días → 3/día → 0 días.
func TestGetLowStockAlerts_StockCriticoConVentas(t *testing.T) {
	email := "ventas@acme.test"
	repo := &fakeAlertRepo{candidates: []repository.LowStockCandidate{
		candidate(5, 2, 10, 90, &entity.Supplier{ID: 3, CompanyID: 1, Name: "Acme", ContactEmail: &email}),
	}}
	uc := newUseCase(repo, nil)

	res, err := uc.GetLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, 1, res.TotalAlerts)

	a := res.Alerts[0]
	assert.Equal(t, int64(5), a.ProductID)
	assert.Equal(t, "Producto", a.ProductName)
	assert.Equal(t, "SKU", a.SKU)
	assert.Equal(t, int64(1), a.WarehouseID)
	assert.Equal(t, "Central", a.WarehouseName)
	assert.Equal(t, 2, a.CurrentStock)
	assert.Equal(t, 10, a.Threshold)
	assert.Equal(t, 0, a.DaysUntilStockout)
	require.NotNil(t, a.Supplier.ID)
	assert.Equal(t, int64(3), *a.Supplier.ID)
	assert.Equal(t, "Acme", a.Supplier.Name)
	assert.Equal(t, &email, a.Supplier.ContactEmail)
}

// Stock bajo sin ventas recientes no genera alerta.
func TestGetLowStockAlerts_SinVentasRecientesNoAlerta(t *testing.T) {
	repo := &fakeAlertRepo{candidates: []repository.LowStockCandidate{
		candidate(5, 2, 10, 0, nil),
		candidate(6, 0, 10, 0, nil),
	}}
	obs := &recordingObserver{}
	uc := newUseCase(repo, obs)

	res, err := uc.GetLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
	assert.Equal(t, 0, res.TotalAlerts)
	assert.Equal(t, []int{0}, obs.computed)
}

// Q=50, S=300 → 10/día → 5 días.
func TestGetLowStockAlerts_ProyeccionDeQuiebre(t *testing.T) {
	repo := &fakeAlertRepo{candidates: []repository.LowStockCandidate{
		candidate(1, 50, 60, 300, nil),
		candidate(2, 10, 10, 1, nil),
	}}
	uc := newUseCase(repo, nil)

	res, err := uc.GetLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 2)
	assert.Equal(t, 5, res.Alerts[0].DaysUntilStockout)
	assert.Equal(t, 300, res.Alerts[1].DaysUntilStockout, "10 unidades a 1/30 por día")
}

// Sin proveedor el bloque se reporta con id null, "Unknown" y email null.
func TestGetLowStockAlerts_SinProveedor(t *testing.T) {
	repo := &fakeAlertRepo{candidates: []repository.LowStockCandidate{
		candidate(5, 2, 10, 90, nil),
	}}
	uc := newUseCase(repo, nil)

	res, err := uc.GetLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)

	raw, err := json.Marshal(res.Alerts[0].Supplier)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":null,"name":"Unknown","contact_email":null}`, string(raw))
}

// Empresa sin bodegas bajo umbral → lista vacía (no null) y total 0.
func TestGetLowStockAlerts_EmpresaVacia(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newUseCase(repo, nil)

	res, err := uc.GetLowStockAlerts(context.Background(), 999)
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alerts":[],"total_alerts":0}`, string(raw))
}

func TestGetLowStockAlerts_ConservaOrdenDelRepositorio(t *testing.T) {
	repo := &fakeAlertRepo{candidates: []repository.LowStockCandidate{
		candidate(9, 1, 10, 30, nil),
		candidate(3, 1, 10, 0, nil),
		candidate(4, 1, 10, 30, nil),
	}}
	uc := newUseCase(repo, nil)

	res, err := uc.GetLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 2)
	assert.Equal(t, int64(9), res.Alerts[0].ProductID)
	assert.Equal(t, int64(4), res.Alerts[1].ProductID)
}

func TestGetLowStockAlerts_ErrorDePersistencia(t *testing.T) {
	repo := &fakeAlertRepo{err: errors.New("pq: relation \"inventory\" does not exist")}
	obs := &recordingObserver{}
	uc := newUseCase(repo, obs)

	res, err := uc.GetLowStockAlerts(context.Background(), 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.NotContains(t, err.Error(), "relation")
	assert.Equal(t, 1, obs.failed)
}

func TestGetLowStockAlerts_VentanaConfigurable(t *testing.T) {
	repo := &fakeAlertRepo{candidates: []repository.LowStockCandidate{
		candidate(1, 14, 20, 14, nil),
	}}
	uc := inventory.NewLowStockAlertUseCase(repo, nil, nil,
		inventory.WithClock(func() time.Time { return fixedNow }),
		inventory.WithSalesWindow(7))

	res, err := uc.GetLowStockAlerts(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(-7*24*time.Hour), repo.gotSince)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, 7, res.Alerts[0].DaysUntilStockout, "14 unidades a 2/día")
}

func TestBuildLowStockAlerts_DescartaFilasSobreElUmbral(t *testing.T) {
	alerts := inventory.BuildLowStockAlerts([]repository.LowStockCandidate{
		candidate(1, 11, 10, 90, nil),
		candidate(2, 10, 10, 90, nil),
	}, domaininv.DefaultSalesWindowDays)

	require.Len(t, alerts, 1)
	assert.Equal(t, int64(2), alerts[0].ProductID, "quantity == threshold sí es stock bajo")
}

func TestGetLowStockAlerts_LlamadasConcurrentes(t *testing.T) {
	repo := &fakeAlertRepo{candidates: []repository.LowStockCandidate{
		candidate(5, 2, 10, 90, nil),
	}}
	uc := newUseCase(repo, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := uc.GetLowStockAlerts(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, 1, res.TotalAlerts)
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, repo.calls)
}
