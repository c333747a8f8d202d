package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"langham-hms/apperror"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFromError picks the HTTP status from the error kind.
func JSONFromError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	c.JSON(StatusFor(kind), gin.H{"success": false, "error": err.Error(), "code": kind})
}

func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindInvalidArgument:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindDuplicateKey, apperror.KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
