package utils

import (
	"acronym-finder/internal/schemas"

	"github.com/gin-gonic/gin"
)

// WriteAndLogResponse encodes the response object to JSON and writes it with the provided status code.
func WriteAndLogResponse(ctx *gin.Context, response interface{}, statusCode int) {
	LogMessageWithFields(ctx, "info", "Returning response")
	ctx.JSON(statusCode, response)
}

// WriteAndLogError logs the underlying error and aborts the request with the custom error as body.
// Only the custom error reaches the client, the underlying error stays in the log.
func WriteAndLogError(c *gin.Context, customErr *schemas.CustomError, statusCode int, err error) {
	LogMessageWithFieldsAndError(c, "error", "Error occurred", err)
	LogMessageWithFields(c, "error", "Returning "+customErr.Code+" / "+customErr.Message)
	c.AbortWithStatusJSON(statusCode, customErr)
}
