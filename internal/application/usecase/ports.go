package usecase

import (
	"context"

	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

// ProvisioningTxRunner ejecuta fn dentro de una transacción de lectura-escritura, pasando
// repositorios atados a esa tx. Commit si fn devuelve nil; Rollback en cualquier otro caso.
// Garantiza que producto e inventario inicial se persisten juntos o ninguno.
type ProvisioningTxRunner interface {
	RunProvisioning(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		warehouseRepo repository.WarehouseRepository,
		supplierRepo repository.SupplierRepository,
	) error) error
}

// ProvisioningObserver recibe eventos del alta de productos (métricas).
type ProvisioningObserver interface {
	ProductProvisioned()
	ProvisioningFailed(reason string)
}

type noopProvisioningObserver struct{}

func (noopProvisioningObserver) ProductProvisioned()       {}
func (noopProvisioningObserver) ProvisioningFailed(string) {}
