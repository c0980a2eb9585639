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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, sale_number, location_id, table_number, waiter_id, sale_type, delivery_service, customer_name, customer_phone, subtotal, discount_amount, tax, total, payment_method, notes, status, created_at`

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.SaleNumber, sale.LocationID, nullable(sale.TableNumber),
		sale.WaiterID, sale.SaleType, nullable(sale.DeliveryService),
		nullable(sale.CustomerName), nullable(sale.CustomerPhone),
		sale.Subtotal, sale.DiscountAmount, sale.Tax, sale.Total,
		sale.PaymentMethod, sale.Notes, sale.Status, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, recipe_id, item_name, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, nullable(item.RecipeID), item.ItemName,
		item.Quantity, item.UnitPrice, item.Total,
	)
	if err != nil {
		return fmt.Errorf("create sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la venta con sus items cargados, o nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.listItems(sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return sale, nil
}

// List lista ventas de una sucursal en un rango de fechas, más recientes primero.
// Los items NO se cargan en el listado.
func (r *SaleRepo) List(locationID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE location_id = $1`
	args := []any{locationID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}

// Delete elimina la venta y sus items (cascade explícito).
func (r *SaleRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete sale: venta %s no existe", id)
	}
	return nil
}

// SumCompletedTotals suma los totales COMPLETED del usuario en la sucursal
// dentro de la ventana dada (cuadre de caja).
func (r *SaleRepo) SumCompletedTotals(userID, locationID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE waiter_id = $1 AND location_id = $2 AND status = $3
		  AND created_at >= $4 AND created_at <= $5`
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(), query,
		userID, locationID, entity.SaleStatusCompleted, from, to,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum completed totals: %w", err)
	}
	return sum, nil
}

func (r *SaleRepo) listItems(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, recipe_id, item_name, quantity, unit_price, total
		FROM sale_items WHERE sale_id = $1 ORDER BY item_name`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		var recipeID *string
		if err := rows.Scan(&item.ID, &item.SaleID, &recipeID, &item.ItemName,
			&item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		if recipeID != nil {
			item.RecipeID = *recipeID
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var tableNumber, deliveryService, customerName, customerPhone *string
	err := row.Scan(
		&s.ID, &s.SaleNumber, &s.LocationID, &tableNumber, &s.WaiterID,
		&s.SaleType, &deliveryService, &customerName, &customerPhone,
		&s.Subtotal, &s.DiscountAmount, &s.Tax, &s.Total,
		&s.PaymentMethod, &s.Notes, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if tableNumber != nil {
		s.TableNumber = *tableNumber
	}
	if deliveryService != nil {
		s.DeliveryService = *deliveryService
	}
	if customerName != nil {
		s.CustomerName = *customerName
	}
	if customerPhone != nil {
		s.CustomerPhone = *customerPhone
	}
	return &s, nil
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
