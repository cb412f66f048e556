package handlers

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter configura o router gin com todas as rotas.
// pix pode ser nil para expor apenas o webhook e o health check.
func SetupRouter(webhooks *WebhookHandler, pix *PixHandler, ginMode string) *gin.Engine {
	gin.SetMode(ginMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogger())

	// Health check
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	// Webhook PagSeguro
	if webhooks != nil {
		router.POST("/api/webhooks/pagseguro", webhooks.HandlePagSeguroWebhook)
		router.POST("/api/webhooks/pagseguro/pix", webhooks.HandlePagSeguroWebhook)
	}

	if pix != nil {
		v1 := router.Group("/api/v1/pix")
		{
			v1.POST("/charges", pix.CreateCharge)
			v1.GET("/charges/:txid", pix.GetCharge)
			v1.DELETE("/charges/:txid", pix.CancelCharge)
			v1.POST("/refunds", pix.RequestRefund)
		}
	}

	return router
}
