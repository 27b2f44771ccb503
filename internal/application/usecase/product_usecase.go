package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/domain"
	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

// maxPrice límite de NUMERIC(10,2).
var maxPrice = decimal.RequireFromString("99999999.99")

// ProductUseCase alta de productos: producto + inventario inicial en una sola transacción.
type ProductUseCase struct {
	txRunner ProvisioningTxRunner
	validate *validator.Validate
	log      *logger.Logger
	observer ProvisioningObserver
}

// NewProductUseCase construye el caso de uso. observer puede ser nil.
func NewProductUseCase(txRunner ProvisioningTxRunner, log *logger.Logger, observer ProvisioningObserver) *ProductUseCase {
	if observer == nil {
		observer = noopProvisioningObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{
		txRunner: txRunner,
		validate: newValidator(),
		log:      log,
		observer: observer,
	}
}

// Create valida la entrada y crea el producto con su fila de inventario inicial.
// La empresa del producto es la de la bodega indicada; si se envía supplier_id,
// el proveedor debe pertenecer a esa misma empresa.
//
// Retorna:
//   - *domain.ValidationError (errors.Is ErrInvalidInput) si falta o es inválido un campo.
//   - domain.ErrDuplicate si el SKU ya existe (incluida la carrera entre dos altas concurrentes).
//   - domain.ErrInternal ante cualquier fallo de persistencia; la causa solo se registra en el log.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if err := validateStruct(uc.validate, in); err != nil {
		uc.observer.ProvisioningFailed("validation")
		return nil, err
	}

	price := decimal.Zero
	if in.Price != nil {
		if in.Price.IsNegative() || in.Price.GreaterThan(maxPrice) {
			uc.observer.ProvisioningFailed("validation")
			return nil, domain.NewValidationError("campos inválidos", "price")
		}
		price = in.Price.Round(2)
	}
	quantity := 0
	if in.InitialQuantity != nil {
		quantity = *in.InitialQuantity
	}
	threshold := entity.DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}

	product := &entity.Product{
		SupplierID: in.SupplierID,
		SKU:        in.SKU,
		Name:       in.Name,
		Price:      price,
		IsBundle:   in.IsBundle,
	}

	err := uc.txRunner.RunProvisioning(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		warehouseRepo repository.WarehouseRepository,
		supplierRepo repository.SupplierRepository,
	) error {
		warehouse, err := warehouseRepo.GetByID(ctx, in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.NewValidationError("la bodega no existe", "warehouse_id")
		}
		product.CompanyID = warehouse.CompanyID

		if in.SupplierID != nil {
			supplier, err := supplierRepo.GetByID(ctx, *in.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil || supplier.CompanyID != warehouse.CompanyID {
				return domain.NewValidationError("el proveedor no pertenece a la empresa de la bodega", "supplier_id")
			}
		}

		// Chequeo rápido para un mensaje claro; la garantía real es el UNIQUE de products.sku.
		existing, err := productRepo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}

		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return inventoryRepo.Create(ctx, &entity.Inventory{
			WarehouseID:       warehouse.ID,
			ProductID:         product.ID,
			Quantity:          quantity,
			LowStockThreshold: threshold,
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			uc.observer.ProvisioningFailed("validation")
			return nil, err
		case errors.Is(err, domain.ErrDuplicate):
			uc.observer.ProvisioningFailed("duplicate")
			return nil, domain.ErrDuplicate
		default:
			uc.observer.ProvisioningFailed("internal")
			uc.log.Ctx(ctx).Error().Err(err).
				Str("sku", in.SKU).
				Int64("warehouse_id", in.WarehouseID).
				Msg("alta de producto")
			return nil, domain.ErrInternal
		}
	}

	uc.observer.ProductProvisioned()
	uc.log.Ctx(ctx).Info().
		Int64("product_id", product.ID).
		Int64("company_id", product.CompanyID).
		Str("sku", product.SKU).
		Msg("producto creado")

	return &dto.CreateProductResponse{
		Message:   "Product created",
		ProductID: product.ID,
	}, nil
}
