package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// OK writes the standard success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// Created writes the standard success envelope with a 201 status.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the standard error envelope, deriving the HTTP status
// and error code from the error's kind.
func Error(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"success": false,
		"error": gin.H{
			"code":    apperrors.Code(err),
			"message": err.Error(),
		},
	})
}

// BadRequest writes a 400 error envelope for malformed payloads.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_REQUEST",
			"message": message,
		},
	})
}

// Unauthorized writes a 401 error envelope.
func Unauthorized(c *gin.Context, code, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
