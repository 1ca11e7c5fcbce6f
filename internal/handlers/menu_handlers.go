package handlers

import (
	"errors"
	"net/http"

	"delivery_backend/internal/services"
	"delivery_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler holds the menu service.
type MenuHandler struct {
	menuService services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ms services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: ms}
}

// CreateMenu adds a menu item to a store owned by the caller.
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	menu, err := h.menuService.CreateMenu(storeID, ownerID, req)
	if err != nil {
		respondMenuError(c, err, "CreateMenu")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, menu)
}

// GetMenusByStore lists a store's menu.
func (h *MenuHandler) GetMenusByStore(c *gin.Context) {
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	menus, err := h.menuService.GetMenusByStore(storeID)
	if err != nil {
		respondMenuError(c, err, "GetMenusByStore")
		return
	}
	utils.RespondWithData(c, http.StatusOK, menus)
}

// GetMenuByID fetches a single menu item.
func (h *MenuHandler) GetMenuByID(c *gin.Context) {
	menuID, ok := pathID(c, "id")
	if !ok {
		return
	}
	menu, err := h.menuService.GetMenuByID(menuID)
	if err != nil {
		respondMenuError(c, err, "GetMenuByID")
		return
	}
	utils.RespondWithData(c, http.StatusOK, menu)
}

// UpdateMenu applies partial updates to a menu item.
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	menuID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	menu, err := h.menuService.UpdateMenu(menuID, ownerID, req)
	if err != nil {
		respondMenuError(c, err, "UpdateMenu")
		return
	}
	utils.RespondWithData(c, http.StatusOK, menu)
}

// DeleteMenu removes a menu item.
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	menuID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.menuService.DeleteMenu(menuID, ownerID); err != nil {
		respondMenuError(c, err, "DeleteMenu")
		return
	}
	c.Status(http.StatusNoContent)
}

func respondMenuError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrMenuNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu not found.", ""))
	case errors.Is(err, services.ErrStoreNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", ""))
	case errors.Is(err, services.ErrNotStoreOwner):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Store does not belong to you.", ""))
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid menu data.", err.Error()))
	default:
		utils.LogError(err, operation+": menu service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Menu operation failed.", "Internal error"))
	}
}
