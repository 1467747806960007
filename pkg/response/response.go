// Package response holds the JSON envelope helpers shared by all HTTP
// handlers. Every body carries an "ok" flag so webhook callers and the
// dashboard can branch without inspecting status codes.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with ok:true and the given payload fields merged in.
func OK(c *gin.Context, data gin.H) {
	body := gin.H{"ok": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Skip sends 200 with ok:true and an informational message. Used for
// webhook deliveries that were valid but not applicable.
func Skip(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": message})
}

// Error sends the given status with ok:false and an error message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"ok": false, "error": message})
}

// BadRequest sends 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// InternalError sends 500.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
