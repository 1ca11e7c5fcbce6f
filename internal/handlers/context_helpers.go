package handlers

import (
	"net/http"
	"strconv"

	"delivery_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
// Responds 401 and returns false when the request is not authenticated.
func currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("userID")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated", "Missing user ID in context"))
		return 0, false
	}
	userID, ok := value.(int64)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Invalid user ID in context", ""))
		return 0, false
	}
	return userID, true
}

// currentUserRole reads the authenticated user's role name from the context.
func currentUserRole(c *gin.Context) string {
	if value, exists := c.Get("userRole"); exists {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}

// pathID parses the named path parameter as an int64 ID. Responds 400 and
// returns false on malformed input.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := utils.StrToInt64(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+name+" format.", err.Error()))
		return 0, false
	}
	return id, true
}

// pagination parses page/page_size query parameters with the usual defaults.
func pagination(c *gin.Context) (page, pageSize int, ok bool) {
	page, pageSize = 1, 10
	if pageStr := c.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid page format.", "page must be a positive integer"))
			return 0, 0, false
		}
		page = parsed
	}
	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		parsed, err := strconv.Atoi(pageSizeStr)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid page_size format.", "page_size must be a positive integer"))
			return 0, 0, false
		}
		pageSize = parsed
	}
	return page, pageSize, true
}

// queryID parses an optional int64 query parameter. Responds 400 and returns
// false on malformed input; a missing parameter yields (nil, true).
func queryID(c *gin.Context, name string) (*int64, bool) {
	str := c.Query(name)
	if str == "" {
		return nil, true
	}
	id, err := utils.StrToInt64(str)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+name+" format.", err.Error()))
		return nil, false
	}
	return &id, true
}
