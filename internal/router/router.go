package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"snarkify-prover/internal/handlers"
	"snarkify-prover/internal/middleware"
)

// SetupRouter wires the facade routes
func SetupRouter(proverHandler *handlers.ProverHandler) *gin.Engine {
	r := gin.Default()

	// ============ Check ============
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// ============ Health Check ============
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "snarkify-prover",
		})
	})

	// ============ Prometheus Metrics ============
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ============ Proving Service Contract ============
	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())
	{
		api.GET("/vks/versions/:version/types/:type", proverHandler.GetVk)
		api.POST("/prove", proverHandler.Prove)
		api.GET("/tasks/:task_id", proverHandler.QueryTask)
	}

	return r
}
