package handlers

import (
	"errors"
	"net/http"
	"time"

	"delivery_backend/internal/models"
	"delivery_backend/internal/services"
	"delivery_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StoreHandler holds the store service.
type StoreHandler struct {
	storeService services.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(ss services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: ss}
}

// CreateStore handles store creation by an owner.
func (h *StoreHandler) CreateStore(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	store, err := h.storeService.CreateStore(ownerID, req)
	if err != nil {
		utils.LogError(err, "CreateStore: Error from storeService.CreateStore")
		if errors.Is(err, services.ErrInvalidHours) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Operating hours out of range.", err.Error()))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create store.", "Internal error"))
		return
	}
	utils.RespondWithData(c, http.StatusCreated, store)
}

// GetStores handles listing stores with filters.
func (h *StoreHandler) GetStores(c *gin.Context) {
	var filters models.StoreFilters

	ownerID, ok := queryID(c, "owner_id")
	if !ok {
		return
	}
	filters.OwnerID = ownerID
	if keyword := c.Query("keyword"); keyword != "" {
		filters.Keyword = &keyword
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	filters.Page, filters.PageSize = page, pageSize

	stores, totalCount, err := h.storeService.GetStores(filters)
	if err != nil {
		utils.LogError(err, "GetStores: Error from storeService.GetStores")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stores.", "Internal error"))
		return
	}
	utils.RespondWithData(c, http.StatusOK, utils.PagedData{Items: stores, TotalCount: totalCount, Page: page, PageSize: pageSize})
}

// GetStoreByID handles fetching a single store.
func (h *StoreHandler) GetStoreByID(c *gin.Context) {
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	store, err := h.storeService.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", ""))
			return
		}
		utils.LogError(err, "GetStoreByID: Error from storeService.GetStoreByID")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch store.", "Internal error"))
		return
	}
	utils.RespondWithData(c, http.StatusOK, store)
}

// GetStoreStatus derives the store's current open/closed status.
func (h *StoreHandler) GetStoreStatus(c *gin.Context) {
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	status, err := h.storeService.GetBusinessStatus(storeID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", ""))
			return
		}
		utils.LogError(err, "GetStoreStatus: Error from storeService.GetBusinessStatus")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to derive store status.", "Internal error"))
		return
	}
	utils.RespondWithData(c, http.StatusOK, status)
}

// UpdateStore handles updates to a store's profile and operating hours.
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	store, err := h.storeService.UpdateStore(storeID, ownerID, req)
	if err != nil {
		respondStoreError(c, err, "UpdateStore")
		return
	}
	utils.RespondWithData(c, http.StatusOK, store)
}

// DeleteStore handles store deletion by its owner.
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.storeService.DeleteStore(storeID, ownerID); err != nil {
		respondStoreError(c, err, "DeleteStore")
		return
	}
	c.Status(http.StatusNoContent)
}

// respondStoreError maps store-service errors shared by several handlers.
func respondStoreError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrStoreNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", ""))
	case errors.Is(err, services.ErrNotStoreOwner):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Store does not belong to you.", ""))
	case errors.Is(err, services.ErrInvalidHours):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Operating hours out of range.", err.Error()))
	default:
		utils.LogError(err, operation+": store service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Store operation failed.", "Internal error"))
	}
}
