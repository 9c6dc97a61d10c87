package middleware

import (
	"errors"
	"io"
	"net/http"

	"acronym-finder/internal/schemas"
	"acronym-finder/internal/utils"

	"github.com/gin-gonic/gin"
)

// ValidateAndSanitizeStruct decodes the JSON body into a fresh T, rejects fields carrying markup,
// validates it and stores the result under utils.SanitizedPayloadKey for the handler.
// An empty body is treated like an empty object, so it reports the first missing field.
func ValidateAndSanitizeStruct[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := new(T)
		if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		validator := utils.GetValidator()
		if err := validator.SanitizeData(obj); err != nil {
			utils.WriteAndLogError(c, utils.ValidationErrorFor(err), http.StatusBadRequest, err)
			return
		}

		if err := validator.Validate.Struct(obj); err != nil {
			utils.WriteAndLogError(c, utils.ValidationErrorFor(err), http.StatusBadRequest, err)
			return
		}

		c.Set(utils.SanitizedPayloadKey.String(), obj)
		c.Next()
	}
}
