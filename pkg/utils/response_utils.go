package utils

import "github.com/gin-gonic/gin"

// ResponseTypeSuccess is the envelope tag for successful responses.
const ResponseTypeSuccess = "SUCCESS"

// Envelope is the canonical response wrapper. Every success response carries
// its payload under "data" so clients never need shape-tolerant unwrapping.
type Envelope struct {
	ResponseType string      `json:"responseType"`
	Data         interface{} `json:"data"`
}

// PagedData is the payload shape for paginated list responses.
type PagedData struct {
	Items      interface{} `json:"items"`
	TotalCount int         `json:"total_count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
}

// RespondWithData sends a payload wrapped in the canonical envelope.
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{ResponseType: ResponseTypeSuccess, Data: data})
}
