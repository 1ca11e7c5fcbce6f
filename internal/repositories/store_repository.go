package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"delivery_backend/internal/models"

	"github.com/lib/pq"
)

// StoreRepository defines the interface for store database operations.
type StoreRepository interface {
	CreateStore(executor SQLExecutor, store *models.Store) (int64, error)
	GetStores(filters models.StoreFilters) ([]models.Store, int, error)
	GetStoreByID(storeID int64) (*models.Store, error)
	UpdateStore(executor SQLExecutor, store *models.Store) error
	DeleteStore(executor SQLExecutor, storeID int64) error
}

type storeRepository struct {
	db *sql.DB
}

// NewStoreRepository creates a new instance of StoreRepository.
func NewStoreRepository(db *sql.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) CreateStore(executor SQLExecutor, store *models.Store) (int64, error) {
	query := `INSERT INTO stores (owner_id, name, phone, address, description, min_order_price, delivery_tip, open_time, close_time, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id`

	now := time.Now()
	var storeID int64
	err := executor.QueryRow(
		query,
		store.OwnerID, store.Name, store.Phone, store.Address, store.Description,
		store.MinOrderPrice, store.DeliveryTip, nullableInt(store.OpenTime), nullableInt(store.CloseTime),
		now, now,
	).Scan(&storeID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating store: %v", ErrDatabaseError, err)
	}
	return storeID, nil
}

func (r *storeRepository) GetStores(filters models.StoreFilters) ([]models.Store, int, error) {
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filters.OwnerID != nil {
		conditions = append(conditions, "owner_id = $"+strconv.Itoa(argIdx))
		args = append(args, *filters.OwnerID)
		argIdx++
	}
	if filters.Keyword != nil {
		conditions = append(conditions, "(name ILIKE $"+strconv.Itoa(argIdx)+" OR address ILIKE $"+strconv.Itoa(argIdx)+")")
		args = append(args, "%"+*filters.Keyword+"%")
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM stores"+whereClause, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%w: counting stores: %v", ErrDatabaseError, err)
	}

	query := `SELECT id, owner_id, name, phone, address, description, min_order_price, delivery_tip, open_time, close_time, created_at, updated_at
	          FROM stores` + whereClause + ` ORDER BY id ASC`
	if filters.PageSize > 0 {
		query += " LIMIT $" + strconv.Itoa(argIdx) + " OFFSET $" + strconv.Itoa(argIdx+1)
		args = append(args, filters.PageSize, (filters.Page-1)*filters.PageSize)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying stores: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	stores := []models.Store{}
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning store: %v", ErrDatabaseError, err)
		}
		stores = append(stores, *store)
	}
	return stores, totalCount, rows.Err()
}

func (r *storeRepository) GetStoreByID(storeID int64) (*models.Store, error) {
	query := `SELECT id, owner_id, name, phone, address, description, min_order_price, delivery_tip, open_time, close_time, created_at, updated_at
	          FROM stores WHERE id = $1`
	store, err := scanStore(r.db.QueryRow(query, storeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding store %d: %v", ErrDatabaseError, storeID, err)
	}
	return store, nil
}

func (r *storeRepository) UpdateStore(executor SQLExecutor, store *models.Store) error {
	query := `UPDATE stores
	          SET name = $1, phone = $2, address = $3, description = $4, min_order_price = $5,
	              delivery_tip = $6, open_time = $7, close_time = $8, updated_at = $9
	          WHERE id = $10`
	result, err := executor.Exec(
		query,
		store.Name, store.Phone, store.Address, store.Description, store.MinOrderPrice,
		store.DeliveryTip, nullableInt(store.OpenTime), nullableInt(store.CloseTime), time.Now(), store.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating store %d: %v", ErrDatabaseError, store.ID, err)
	}
	return requireRowsAffected(result)
}

func (r *storeRepository) DeleteStore(executor SQLExecutor, storeID int64) error {
	result, err := executor.Exec(`DELETE FROM stores WHERE id = $1`, storeID)
	if err != nil {
		return fmt.Errorf("%w: deleting store %d: %v", ErrDatabaseError, storeID, err)
	}
	return requireRowsAffected(result)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanStore(row scanner) (*models.Store, error) {
	store := &models.Store{}
	var openTime, closeTime sql.NullInt64
	err := row.Scan(
		&store.ID, &store.OwnerID, &store.Name, &store.Phone, &store.Address, &store.Description,
		&store.MinOrderPrice, &store.DeliveryTip, &openTime, &closeTime,
		&store.CreatedAt, &store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if openTime.Valid {
		v := int(openTime.Int64)
		store.OpenTime = &v
	}
	if closeTime.Valid {
		v := int(closeTime.Int64)
		store.CloseTime = &v
	}
	return store, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func requireRowsAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: reading rows affected: %v", ErrDatabaseError, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
