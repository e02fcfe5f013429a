package response

import (
	"github.com/gin-gonic/gin"
)

// The wire contract is deliberately bare: success bodies are the resource
// itself, failures are {"message": ...}. No envelope, so repeated reads of
// an unchanged resource return byte-identical JSON.

// Message writes a {"message": ...} body with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// AbortMessage writes a {"message": ...} body and aborts the handler chain.
// Used by middleware.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}
