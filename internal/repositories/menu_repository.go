package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery_backend/internal/models"
)

// MenuRepository defines the interface for menu database operations.
type MenuRepository interface {
	CreateMenu(executor SQLExecutor, menu *models.Menu) (int64, error)
	GetMenusByStore(storeID int64) ([]models.Menu, error)
	GetMenuByID(menuID int64) (*models.Menu, error)
	UpdateMenu(executor SQLExecutor, menu *models.Menu) error
	DeleteMenu(executor SQLExecutor, menuID int64) error
}

type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenu(executor SQLExecutor, menu *models.Menu) (int64, error) {
	query := `INSERT INTO menus (store_id, title, price, description, image_url, is_available, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`
	now := time.Now()
	var menuID int64
	err := executor.QueryRow(
		query,
		menu.StoreID, menu.Title, menu.Price, menu.Description, menu.ImageURL, menu.IsAvailable,
		now, now,
	).Scan(&menuID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating menu: %v", ErrDatabaseError, err)
	}
	return menuID, nil
}

func (r *menuRepository) GetMenusByStore(storeID int64) ([]models.Menu, error) {
	query := `SELECT id, store_id, title, price, description, image_url, is_available, created_at, updated_at
	          FROM menus WHERE store_id = $1 ORDER BY id ASC`
	rows, err := r.db.Query(query, storeID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying menus for store %d: %v", ErrDatabaseError, storeID, err)
	}
	defer rows.Close()

	menus := []models.Menu{}
	for rows.Next() {
		var menu models.Menu
		if err := rows.Scan(
			&menu.ID, &menu.StoreID, &menu.Title, &menu.Price, &menu.Description, &menu.ImageURL,
			&menu.IsAvailable, &menu.CreatedAt, &menu.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning menu: %v", ErrDatabaseError, err)
		}
		menus = append(menus, menu)
	}
	return menus, rows.Err()
}

func (r *menuRepository) GetMenuByID(menuID int64) (*models.Menu, error) {
	menu := &models.Menu{}
	query := `SELECT id, store_id, title, price, description, image_url, is_available, created_at, updated_at
	          FROM menus WHERE id = $1`
	err := r.db.QueryRow(query, menuID).Scan(
		&menu.ID, &menu.StoreID, &menu.Title, &menu.Price, &menu.Description, &menu.ImageURL,
		&menu.IsAvailable, &menu.CreatedAt, &menu.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding menu %d: %v", ErrDatabaseError, menuID, err)
	}
	return menu, nil
}

func (r *menuRepository) UpdateMenu(executor SQLExecutor, menu *models.Menu) error {
	query := `UPDATE menus
	          SET title = $1, price = $2, description = $3, image_url = $4, is_available = $5, updated_at = $6
	          WHERE id = $7`
	result, err := executor.Exec(query, menu.Title, menu.Price, menu.Description, menu.ImageURL, menu.IsAvailable, time.Now(), menu.ID)
	if err != nil {
		return fmt.Errorf("%w: updating menu %d: %v", ErrDatabaseError, menu.ID, err)
	}
	return requireRowsAffected(result)
}

func (r *menuRepository) DeleteMenu(executor SQLExecutor, menuID int64) error {
	result, err := executor.Exec(`DELETE FROM menus WHERE id = $1`, menuID)
	if err != nil {
		return fmt.Errorf("%w: deleting menu %d: %v", ErrDatabaseError, menuID, err)
	}
	return requireRowsAffected(result)
}
