package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"delivery_backend/internal/models"
	"delivery_backend/internal/services"
	"delivery_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// QnaHandler holds the Q&A service.
type QnaHandler struct {
	qnaService services.QnaService
}

// NewQnaHandler creates a new QnaHandler.
func NewQnaHandler(qs services.QnaService) *QnaHandler {
	return &QnaHandler{qnaService: qs}
}

// CreateQuestion posts a question, optionally scoped to a store.
func (h *QnaHandler) CreateQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	question, err := h.qnaService.CreateQuestion(userID, req)
	if err != nil {
		respondQnaError(c, err, "CreateQuestion")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, question)
}

// GetQuestions lists questions with filters. Customers only see their own.
func (h *QnaHandler) GetQuestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filters models.QuestionFilters
	if currentUserRole(c) == models.RoleCustomer {
		filters.UserID = &userID
	} else {
		storeID, ok := queryID(c, "store_id")
		if !ok {
			return
		}
		filters.StoreID = storeID
	}
	if unansweredStr := c.Query("unanswered"); unansweredStr != "" {
		unanswered, err := strconv.ParseBool(unansweredStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid unanswered format.", "unanswered must be a boolean"))
			return
		}
		filters.Unanswered = &unanswered
	}
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}
	filters.Page, filters.PageSize = page, pageSize

	questions, totalCount, err := h.qnaService.GetQuestions(filters)
	if err != nil {
		utils.LogError(err, "GetQuestions: Error from qnaService.GetQuestions")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch questions.", "Internal error"))
		return
	}
	utils.RespondWithData(c, http.StatusOK, utils.PagedData{Items: questions, TotalCount: totalCount, Page: page, PageSize: pageSize})
}

// GetQuestionByID fetches one question.
func (h *QnaHandler) GetQuestionByID(c *gin.Context) {
	questionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	question, err := h.qnaService.GetQuestionByID(questionID)
	if err != nil {
		respondQnaError(c, err, "GetQuestionByID")
		return
	}
	utils.RespondWithData(c, http.StatusOK, question)
}

// AnswerQuestion attaches an answer to an open question.
func (h *QnaHandler) AnswerQuestion(c *gin.Context) {
	answererID, ok := currentUserID(c)
	if !ok {
		return
	}
	questionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	question, err := h.qnaService.AnswerQuestion(questionID, answererID, currentUserRole(c), req)
	if err != nil {
		respondQnaError(c, err, "AnswerQuestion")
		return
	}
	utils.RespondWithData(c, http.StatusOK, question)
}

// DeleteQuestion removes a question. Author or admin only.
func (h *QnaHandler) DeleteQuestion(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	questionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.qnaService.DeleteQuestion(questionID, requesterID, currentUserRole(c)); err != nil {
		respondQnaError(c, err, "DeleteQuestion")
		return
	}
	c.Status(http.StatusNoContent)
}

func respondQnaError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, services.ErrQuestionNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Question not found.", ""))
	case errors.Is(err, services.ErrStoreNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", ""))
	case errors.Is(err, services.ErrAlreadyAnswered):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Question has already been answered.", ""))
	case errors.Is(err, services.ErrNotAnswerParty):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You are not allowed to modify this question.", ""))
	default:
		utils.LogError(err, operation+": qna service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Question operation failed.", "Internal error"))
	}
}
