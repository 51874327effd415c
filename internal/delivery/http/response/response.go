package response

import (
	"github.com/gin-gonic/gin"
)

// Message is the body of every error response and of plain confirmations.
type Message struct {
	Message string `json:"message"`
}

// JSON writes payload verbatim.
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Message{Message: message})
}
