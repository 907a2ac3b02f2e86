package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

func HealthCheck(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":    "ok",
		"message":   "Quotely is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
