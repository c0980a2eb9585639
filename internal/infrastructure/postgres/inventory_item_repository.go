package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación de InventoryItemRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador de insumos. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const inventoryItemColumns = `id, location_id, name, quantity, unit, min_stock, max_stock, cost_per_unit, supplier_id, last_updated, created_at`

// GetByID obtiene un insumo por ID, o nil si no existe.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory item")
}

// GetForUpdate obtiene el insumo y bloquea su fila (SELECT FOR UPDATE) para
// serializar la secuencia verificar-y-descontar.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get inventory item for update")
}

// List lista los insumos de una sucursal ordenados por nombre.
func (r *InventoryItemRepo) List(locationID string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items WHERE location_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListCritical lista los insumos con existencia <= stock mínimo.
func (r *InventoryItemRepo) ListCritical(locationID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items WHERE location_id = $1 AND quantity <= min_stock
		ORDER BY quantity - min_stock`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list critical items: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Create persiste un insumo nuevo.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, location_id, name, quantity, unit, min_stock, max_stock, cost_per_unit, supplier_id, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	supplierID := (*string)(nil)
	if item.SupplierID != "" {
		supplierID = &item.SupplierID
	}
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.LocationID, item.Name, item.Quantity, item.Unit,
		item.MinStock, item.MaxStock, item.CostPerUnit, supplierID,
		item.LastUpdated, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory item: %w", err)
	}
	return nil
}

// UpdateQuantity fija la existencia del insumo (solo la llama el libro de movimientos).
func (r *InventoryItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, at time.Time) error {
	query := `UPDATE inventory_items SET quantity = $2, last_updated = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, quantity, at)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventory quantity: insumo %s no existe", id)
	}
	return nil
}

// UpdateCost fija el costo promedio ponderado del insumo.
func (r *InventoryItemRepo) UpdateCost(id string, costPerUnit decimal.Decimal) error {
	query := `UPDATE inventory_items SET cost_per_unit = $2, last_updated = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, costPerUnit)
	if err != nil {
		return fmt.Errorf("update inventory cost: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	var supplierID *string
	err := row.Scan(
		&item.ID, &item.LocationID, &item.Name, &item.Quantity, &item.Unit,
		&item.MinStock, &item.MaxStock, &item.CostPerUnit, &supplierID,
		&item.LastUpdated, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if supplierID != nil {
		item.SupplierID = *supplierID
	}
	return &item, nil
}

func (r *InventoryItemRepo) scanAll(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		var supplierID *string
		if err := rows.Scan(
			&item.ID, &item.LocationID, &item.Name, &item.Quantity, &item.Unit,
			&item.MinStock, &item.MaxStock, &item.CostPerUnit, &supplierID,
			&item.LastUpdated, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		if supplierID != nil {
			item.SupplierID = *supplierID
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
