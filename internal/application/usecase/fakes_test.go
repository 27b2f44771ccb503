package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/inventario-alertas/internal/domain"
	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

// memStore simula la base de datos con transacciones serializadas: los cambios de fn
// se aplican en una copia y solo se publican si fn y el commit terminan sin error.
type memStore struct {
	mu         sync.Mutex
	nextID     int64
	warehouses map[int64]entity.Warehouse
	suppliers  map[int64]entity.Supplier
	products   map[int64]entity.Product
	inventory  []entity.Inventory

	failInventory error // error inyectado al insertar inventario
	failCommit    error // error inyectado en el commit
	failWarehouse error // error inyectado al leer la bodega
	skipSKUCheck  bool  // GetBySKU no encuentra nada (simula la carrera check-then-insert)
	txCount       int
}

func newMemStore() *memStore {
	return &memStore{
		nextID:     100,
		warehouses: map[int64]entity.Warehouse{},
		suppliers:  map[int64]entity.Supplier{},
		products:   map[int64]entity.Product{},
	}
}

func (s *memStore) productBySKU(sku string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.SKU == sku {
			p := p
			return &p
		}
	}
	return nil
}

func (s *memStore) productCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *memStore) inventoryFor(productID int64) []entity.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Inventory
	for _, inv := range s.inventory {
		if inv.ProductID == productID {
			out = append(out, inv)
		}
	}
	return out
}

func (s *memStore) RunProvisioning(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txCount++

	tx := &memTx{store: s, products: map[int64]entity.Product{}, nextID: s.nextID}
	for id, p := range s.products {
		tx.products[id] = p
	}
	tx.inventory = append(tx.inventory, s.inventory...)

	if err := fn(memProducts{tx}, memInventory{tx}, memWarehouses{s}, memSuppliers{s}); err != nil {
		return err
	}
	if s.failCommit != nil {
		return s.failCommit
	}
	s.products = tx.products
	s.inventory = tx.inventory
	s.nextID = tx.nextID
	return nil
}

// memTx estado aislado de una transacción en curso.
type memTx struct {
	store     *memStore
	nextID    int64
	products  map[int64]entity.Product
	inventory []entity.Inventory
}

type memProducts struct{ tx *memTx }

func (r memProducts) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.tx.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.tx.nextID++
	p.ID = r.tx.nextID
	r.tx.products[p.ID] = *p
	return nil
}

func (r memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if p, ok := r.tx.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r memProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	if r.tx.store.skipSKUCheck {
		return nil, nil
	}
	for _, p := range r.tx.products {
		if p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

type memInventory struct{ tx *memTx }

func (r memInventory) Create(_ context.Context, inv *entity.Inventory) error {
	if r.tx.store.failInventory != nil {
		return r.tx.store.failInventory
	}
	if _, ok := r.tx.products[inv.ProductID]; !ok {
		return errors.New("violates foreign key constraint inventory_product_id_fkey")
	}
	for _, existing := range r.tx.inventory {
		if existing.ProductID == inv.ProductID && existing.WarehouseID == inv.WarehouseID {
			return domain.ErrDuplicate
		}
	}
	r.tx.nextID++
	inv.ID = r.tx.nextID
	r.tx.inventory = append(r.tx.inventory, *inv)
	return nil
}

func (r memInventory) Get(_ context.Context, warehouseID, productID int64) (*entity.Inventory, error) {
	for _, inv := range r.tx.inventory {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			inv := inv
			return &inv, nil
		}
	}
	return nil, nil
}

type memWarehouses struct{ s *memStore }

func (r memWarehouses) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	if r.s.failWarehouse != nil {
		return nil, r.s.failWarehouse
	}
	if w, ok := r.s.warehouses[id]; ok {
		return &w, nil
	}
	return nil, nil
}

type memSuppliers struct{ s *memStore }

func (r memSuppliers) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	if sup, ok := r.s.suppliers[id]; ok {
		return &sup, nil
	}
	return nil, nil
}

// countingObserver registra los eventos del alta.
type countingObserver struct {
	mu       sync.Mutex
	created  int
	failures map[string]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{failures: map[string]int{}}
}

func (o *countingObserver) ProductProvisioned() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created++
}

func (o *countingObserver) ProvisioningFailed(reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures[reason]++
}
