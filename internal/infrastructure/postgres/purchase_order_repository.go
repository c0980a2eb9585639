package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gastrosmart/gastrosmart-api/internal/domain/entity"
	"github.com/gastrosmart/gastrosmart-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes de compra.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseOrderColumns = `id, order_number, location_id, supplier_id, status, total, notes, created_by, created_at, received_at`

// Create persiste la orden con sus líneas.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.LocationID, nullable(order.SupplierID),
		order.Status, order.Total, order.Notes, order.CreatedBy,
		order.CreatedAt, order.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}
	itemQuery := `
		INSERT INTO purchase_order_items (id, purchase_order_id, inventory_item_id, quantity, unit_cost, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, line := range order.Items {
		if _, err := r.q.Exec(context.Background(), itemQuery,
			line.ID, order.ID, line.InventoryItemID, line.Quantity, line.UnitCost, line.Total,
		); err != nil {
			return fmt.Errorf("create purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la orden con sus líneas cargadas, o nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	order, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	items, err := r.listItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// GetForUpdate devuelve la orden con sus líneas bloqueando la fila hasta el fin
// de la transacción, o nil si no existe.
func (r *PurchaseOrderRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1 FOR UPDATE`
	order, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order for update: %w", err)
	}
	items, err := r.listItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// List lista las órdenes de una sucursal, más recientes primero (sin líneas).
func (r *PurchaseOrderRepo) List(locationID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders WHERE location_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		order, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// Update persiste el cambio de estado y la fecha de recepción.
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `UPDATE purchase_orders SET status = $2, received_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, order.ID, order.Status, order.ReceivedAt)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update purchase order: orden %s no existe", order.ID)
	}
	return nil
}

func (r *PurchaseOrderRepo) listItems(orderID string) ([]entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, purchase_order_id, inventory_item_id, quantity, unit_cost, total
		FROM purchase_order_items WHERE purchase_order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var line entity.PurchaseOrderItem
		if err := rows.Scan(&line.ID, &line.PurchaseOrderID, &line.InventoryItemID,
			&line.Quantity, &line.UnitCost, &line.Total); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, line)
	}
	return items, rows.Err()
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var supplierID *string
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.LocationID, &supplierID, &o.Status,
		&o.Total, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.ReceivedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplierID != nil {
		o.SupplierID = *supplierID
	}
	return &o, nil
}
