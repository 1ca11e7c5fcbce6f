package services

import (
	"database/sql"
	"errors"
	"fmt"

	"delivery_backend/internal/models"
	"delivery_backend/internal/repositories"
)

// --- Custom Service Errors for Menus ---
var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrValidation   = errors.New("validation error")
)

// --- Menu DTOs ---
type CreateMenuRequest struct {
	Title       string  `json:"title" binding:"required"`
	Price       int64   `json:"price" binding:"required,gt=0"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsAvailable bool    `json:"is_available"`
}

type UpdateMenuRequest struct {
	Title       *string `json:"title"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

// --- MenuService Interface ---
type MenuService interface {
	CreateMenu(storeID, ownerID int64, req CreateMenuRequest) (*models.Menu, error)
	GetMenusByStore(storeID int64) ([]models.Menu, error)
	GetMenuByID(menuID int64) (*models.Menu, error)
	UpdateMenu(menuID, ownerID int64, req UpdateMenuRequest) (*models.Menu, error)
	DeleteMenu(menuID, ownerID int64) error
}

type menuService struct {
	menuRepo  repositories.MenuRepository
	storeRepo repositories.StoreRepository
	db        *sql.DB
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(menuRepo repositories.MenuRepository, storeRepo repositories.StoreRepository, db *sql.DB) MenuService {
	return &menuService{menuRepo: menuRepo, storeRepo: storeRepo, db: db}
}

func (s *menuService) CreateMenu(storeID, ownerID int64, req CreateMenuRequest) (*models.Menu, error) {
	if err := s.requireStoreOwnership(storeID, ownerID); err != nil {
		return nil, err
	}

	menu := models.Menu{
		StoreID:     storeID,
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}
	menuID, err := s.menuRepo.CreateMenu(s.db, &menu)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}
	return s.GetMenuByID(menuID)
}

func (s *menuService) GetMenusByStore(storeID int64) ([]models.Menu, error) {
	if _, err := s.storeRepo.GetStoreByID(storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to check store: %w", err)
	}
	menus, err := s.menuRepo.GetMenusByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menus: %w", err)
	}
	return menus, nil
}

func (s *menuService) GetMenuByID(menuID int64) (*models.Menu, error) {
	menu, err := s.menuRepo.GetMenuByID(menuID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return menu, nil
}

func (s *menuService) UpdateMenu(menuID, ownerID int64, req UpdateMenuRequest) (*models.Menu, error) {
	menu, err := s.GetMenuByID(menuID)
	if err != nil {
		return nil, err
	}
	if err := s.requireStoreOwnership(menu.StoreID, ownerID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		menu.Title = *req.Title
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		menu.Price = *req.Price
	}
	if req.Description != nil {
		menu.Description = req.Description
	}
	if req.ImageURL != nil {
		menu.ImageURL = req.ImageURL
	}
	if req.IsAvailable != nil {
		menu.IsAvailable = *req.IsAvailable
	}

	if err := s.menuRepo.UpdateMenu(s.db, menu); err != nil {
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	return s.GetMenuByID(menuID)
}

func (s *menuService) DeleteMenu(menuID, ownerID int64) error {
	menu, err := s.GetMenuByID(menuID)
	if err != nil {
		return err
	}
	if err := s.requireStoreOwnership(menu.StoreID, ownerID); err != nil {
		return err
	}
	if err := s.menuRepo.DeleteMenu(s.db, menuID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMenuNotFound
		}
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	return nil
}

func (s *menuService) requireStoreOwnership(storeID, ownerID int64) error {
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStoreNotFound
		}
		return fmt.Errorf("failed to check store ownership: %w", err)
	}
	if store.OwnerID != ownerID {
		return ErrNotStoreOwner
	}
	return nil
}
