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

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetRevenueReport returns daily revenue aggregates for one store over an
// inclusive date range.
func (h *ReportHandler) GetRevenueReport(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	params := models.ReportRequestParams{
		StoreID:   storeID,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if params.StartDate == "" || params.EndDate == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "start_date and end_date are required.", ""))
		return
	}

	report, err := h.reportService.GetRevenueReport(ownerID, params)
	if err != nil {
		respondReportError(c, err, "GetRevenueReport")
		return
	}
	utils.RespondWithData(c, http.StatusOK, report)
}

// GetSettlementReport returns the per-menu payout breakdown for one store
// and calendar month.
func (h *ReportHandler) GetSettlementReport(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	params := models.ReportRequestParams{
		StoreID: storeID,
		Month:   c.Query("month"),
	}
	if params.Month == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "month is required.", ""))
		return
	}

	report, err := h.reportService.GetSettlementReport(ownerID, params)
	if err != nil {
		respondReportError(c, err, "GetSettlementReport")
		return
	}
	utils.RespondWithData(c, http.StatusOK, report)
}

// GetDashboardSummary returns today/this-week/this-month revenue aggregates.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	storeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := h.reportService.GetDashboardSummary(ownerID, storeID, time.Now())
	if err != nil {
		respondReportError(c, err, "GetDashboardSummary")
		return
	}
	utils.RespondWithData(c, http.StatusOK, summary)
}

func respondReportError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrStoreNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", ""))
	case errors.Is(err, services.ErrNotStoreOwner):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Store does not belong to you.", ""))
	case errors.Is(err, services.ErrInvalidDateRange), errors.Is(err, services.ErrInvalidMonth):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid report period.", err.Error()))
	default:
		utils.LogError(err, operation+": report service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Report generation failed.", "Internal error"))
	}
}
