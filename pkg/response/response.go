package response

import (
	"errors"
	"log"
	"net/http"

	"anoa.com/useremployee/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		c.JSON(code, gin.H{"error": err.Error(), "fields": ve.Fields})
		return
	}

	var de *apperror.DuplicateKeyError
	if errors.As(err, &de) {
		c.JSON(code, gin.H{"error": err.Error(), "field": de.Field})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
