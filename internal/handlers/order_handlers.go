package handlers

import (
	"errors"
	"net/http"

	"delivery_backend/internal/models"
	"delivery_backend/internal/services"
	"delivery_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order service.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// CreateOrder places an order on behalf of the authenticated customer.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.orderService.CreateOrder(customerID, req)
	if err != nil {
		respondOrderError(c, err, "CreateOrder")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, order)
}

// GetOrders lists orders visible to the caller. The service scopes the
// listing by role: customers to their own orders, owners to their store.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filters models.OrderFilters
	storeID, ok := queryID(c, "store_id")
	if !ok {
		return
	}
	filters.StoreID = storeID
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}
	if date := c.Query("date"); date != "" {
		filters.Date = &date
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	filters.Page, filters.PageSize = page, pageSize

	orders, totalCount, err := h.orderService.GetOrders(userID, currentUserRole(c), filters)
	if err != nil {
		respondOrderError(c, err, "GetOrders")
		return
	}
	utils.RespondWithData(c, http.StatusOK, utils.PagedData{Items: orders, TotalCount: totalCount, Page: page, PageSize: pageSize})
}

// GetOrderByID fetches one order for a party to it.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrderByID(orderID, userID, currentUserRole(c))
	if err != nil {
		respondOrderError(c, err, "GetOrderByID")
		return
	}
	utils.RespondWithData(c, http.StatusOK, order)
}

// UpdateOrderStatus moves an order through its lifecycle. Only the owner of
// the order's store may call this.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.orderService.UpdateOrderStatus(orderID, ownerID, req)
	if err != nil {
		respondOrderError(c, err, "UpdateOrderStatus")
		return
	}
	utils.RespondWithData(c, http.StatusOK, order)
}

func respondOrderError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", ""))
	case errors.Is(err, services.ErrStoreNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", ""))
	case errors.Is(err, services.ErrMenuNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Menu not found for this store.", ""))
	case errors.Is(err, services.ErrMenuUnavailable):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Menu is currently unavailable.", err.Error()))
	case errors.Is(err, services.ErrBelowMinOrder):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Order total is below the store minimum.", err.Error()))
	case errors.Is(err, services.ErrInvalidOrderStatus), errors.Is(err, services.ErrInvalidPayment), errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order data.", err.Error()))
	case errors.Is(err, services.ErrNotOrderParty):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You are not a party to this order.", ""))
	case errors.Is(err, services.ErrNotStoreOwner):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Store does not belong to you.", ""))
	default:
		utils.LogError(err, operation+": order service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Order operation failed.", "Internal error"))
	}
}
