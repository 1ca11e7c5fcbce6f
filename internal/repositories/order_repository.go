package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"delivery_backend/internal/analytics"
	"delivery_backend/internal/models"
)

// OrderRepository defines the interface for order database operations,
// including the raw-row fetches the reporting layer aggregates over.
type OrderRepository interface {
	CreateOrder(executor SQLExecutor, order *models.Order) (int64, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, int, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	UpdateOrderStatus(executor SQLExecutor, orderID int64, status string) error
	GetOrdersForPeriod(storeID int64, startDate, endDate string) ([]analytics.OrderRecord, error)
	GetMenuSalesForMonth(storeID int64, monthStart, monthEnd string) ([]analytics.SaleRecord, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(executor SQLExecutor, order *models.Order) (int64, error) {
	query := `INSERT INTO orders (store_id, customer_id, menu_id, menu_title, unit_price, quantity, total_price,
	                              status, customer_name, customer_phone, customer_address, payment_method, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	          RETURNING id`
	now := time.Now()
	var orderID int64
	err := executor.QueryRow(
		query,
		order.StoreID, order.CustomerID, order.MenuID, order.MenuTitle, order.UnitPrice, order.Quantity, order.TotalPrice,
		order.Status, order.CustomerName, order.CustomerPhone, order.CustomerAddress, order.PaymentMethod,
		now, now,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating order: %v", ErrDatabaseError, err)
	}
	return orderID, nil
}

const orderSelect = `
	SELECT o.id, o.store_id, s.name, o.customer_id, o.menu_id, o.menu_title, o.unit_price, o.quantity, o.total_price,
	       o.status, o.customer_name, o.customer_phone, o.customer_address, o.payment_method, o.created_at, o.updated_at
	FROM orders o
	JOIN stores s ON o.store_id = s.id`

func scanOrder(row scanner) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID, &order.StoreID, &order.StoreName, &order.CustomerID, &order.MenuID, &order.MenuTitle,
		&order.UnitPrice, &order.Quantity, &order.TotalPrice,
		&order.Status, &order.CustomerName, &order.CustomerPhone, &order.CustomerAddress, &order.PaymentMethod,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filters.StoreID != nil {
		conditions = append(conditions, "o.store_id = $"+strconv.Itoa(argIdx))
		args = append(args, *filters.StoreID)
		argIdx++
	}
	if filters.CustomerID != nil {
		conditions = append(conditions, "o.customer_id = $"+strconv.Itoa(argIdx))
		args = append(args, *filters.CustomerID)
		argIdx++
	}
	if filters.Status != nil {
		conditions = append(conditions, "o.status = $"+strconv.Itoa(argIdx))
		args = append(args, *filters.Status)
		argIdx++
	}
	if filters.Date != nil {
		conditions = append(conditions, "o.created_at::date = $"+strconv.Itoa(argIdx))
		args = append(args, *filters.Date)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM orders o" + whereClause
	if err := r.db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%w: counting orders: %v", ErrDatabaseError, err)
	}

	query := orderSelect + whereClause + " ORDER BY o.created_at DESC"
	if filters.PageSize > 0 {
		query += " LIMIT $" + strconv.Itoa(argIdx) + " OFFSET $" + strconv.Itoa(argIdx+1)
		args = append(args, filters.PageSize, (filters.Page-1)*filters.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		orders = append(orders, *order)
	}
	return orders, totalCount, rows.Err()
}

func (r *orderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	order, err := scanOrder(r.db.QueryRow(orderSelect+` WHERE o.id = $1`, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding order %d: %v", ErrDatabaseError, orderID, err)
	}
	return order, nil
}

func (r *orderRepository) UpdateOrderStatus(executor SQLExecutor, orderID int64, status string) error {
	result, err := executor.Exec(`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now(), orderID)
	if err != nil {
		return fmt.Errorf("%w: updating order %d status: %v", ErrDatabaseError, orderID, err)
	}
	return requireRowsAffected(result)
}

// GetOrdersForPeriod fetches the raw completed-order rows for one store over
// an inclusive date range. Rows come back as plain analytics records; all
// grouping and summing happens in the analytics package, not in SQL, so the
// aggregation policy lives in exactly one place.
func (r *orderRepository) GetOrdersForPeriod(storeID int64, startDate, endDate string) ([]analytics.OrderRecord, error) {
	query := `
		SELECT o.id, TO_CHAR(o.created_at, 'YYYY-MM-DD HH24:MI'), o.total_price, o.quantity, o.menu_id, o.menu_title, o.store_id
		FROM orders o
		WHERE o.store_id = $1
		  AND o.status = $2
		  AND o.created_at >= $3::date
		  AND o.created_at < ($4::date + INTERVAL '1 day')
		ORDER BY o.created_at ASC`

	rows, err := r.db.Query(query, storeID, models.OrderStatusCompleted, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: querying period orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	records := []analytics.OrderRecord{}
	for rows.Next() {
		var rec analytics.OrderRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.TotalPrice, &rec.Quantity, &rec.MenuID, &rec.MenuTitle, &rec.StoreID); err != nil {
			return nil, fmt.Errorf("%w: scanning period order: %v", ErrDatabaseError, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetMenuSalesForMonth fetches the raw sale lines for one store's settlement
// month. monthStart/monthEnd are half-open YYYY-MM-DD bounds supplied by the
// service.
func (r *orderRepository) GetMenuSalesForMonth(storeID int64, monthStart, monthEnd string) ([]analytics.SaleRecord, error) {
	query := `
		SELECT o.menu_id, o.menu_title, o.quantity, o.total_price
		FROM orders o
		WHERE o.store_id = $1
		  AND o.status = $2
		  AND o.created_at >= $3::date
		  AND o.created_at < $4::date
		ORDER BY o.created_at ASC`

	rows, err := r.db.Query(query, storeID, models.OrderStatusCompleted, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: querying settlement sales: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	sales := []analytics.SaleRecord{}
	for rows.Next() {
		var sale analytics.SaleRecord
		if err := rows.Scan(&sale.MenuID, &sale.MenuName, &sale.Quantity, &sale.LineTotal); err != nil {
			return nil, fmt.Errorf("%w: scanning settlement sale: %v", ErrDatabaseError, err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}
