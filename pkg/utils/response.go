package utils

import (
	"github.com/gin-gonic/gin"
)

// Formato de resposta padrão pra facilitar a vida do frontend
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"` // omitempty: se for null, nem aparece
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}
