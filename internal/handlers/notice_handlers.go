package handlers

import (
	"errors"
	"net/http"

	"delivery_backend/internal/services"
	"delivery_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NoticeHandler holds the notice service.
type NoticeHandler struct {
	noticeService services.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(ns services.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: ns}
}

// CreateNotice publishes a platform notice. Admin only, enforced by the route.
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	notice, err := h.noticeService.CreateNotice(authorID, req)
	if err != nil {
		utils.LogError(err, "CreateNotice: Error from noticeService.CreateNotice")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create notice.", "Internal error"))
		return
	}
	utils.RespondWithData(c, http.StatusCreated, notice)
}

// GetNotices lists notices, newest first.
func (h *NoticeHandler) GetNotices(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	notices, totalCount, err := h.noticeService.GetNotices(page, pageSize)
	if err != nil {
		utils.LogError(err, "GetNotices: Error from noticeService.GetNotices")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch notices.", "Internal error"))
		return
	}
	utils.RespondWithData(c, http.StatusOK, utils.PagedData{Items: notices, TotalCount: totalCount, Page: page, PageSize: pageSize})
}

// GetNoticeByID fetches one notice.
func (h *NoticeHandler) GetNoticeByID(c *gin.Context) {
	noticeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	notice, err := h.noticeService.GetNoticeByID(noticeID)
	if err != nil {
		respondNoticeError(c, err, "GetNoticeByID")
		return
	}
	utils.RespondWithData(c, http.StatusOK, notice)
}

// UpdateNotice edits a notice's title or content.
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	noticeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	notice, err := h.noticeService.UpdateNotice(noticeID, req)
	if err != nil {
		respondNoticeError(c, err, "UpdateNotice")
		return
	}
	utils.RespondWithData(c, http.StatusOK, notice)
}

// DeleteNotice removes a notice.
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	noticeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.noticeService.DeleteNotice(noticeID); err != nil {
		respondNoticeError(c, err, "DeleteNotice")
		return
	}
	c.Status(http.StatusNoContent)
}

func respondNoticeError(c *gin.Context, err error, operation string) {
	if errors.Is(err, services.ErrNoticeNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Notice not found.", ""))
		return
	}
	utils.LogError(err, operation+": notice service error")
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Notice operation failed.", "Internal error"))
}
