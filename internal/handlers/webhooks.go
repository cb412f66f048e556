// Package handlers contém os handlers HTTP da aplicação
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/magnani/pagseguro-pix/internal/domain"
	"github.com/magnani/pagseguro-pix/internal/logger"
	"github.com/magnani/pagseguro-pix/internal/ports"
)

// SignatureHeader é o header com a assinatura HMAC do corpo
const SignatureHeader = "X-Webhook-Signature"

// PixPaymentHandler processa um PIX notificado
type PixPaymentHandler func(ctx context.Context, pix ports.PixPayment) error

// WebhookHandler recebe as notificações de PIX da PagSeguro
type WebhookHandler struct {
	provider ports.PixProvider
	onPix    PixPaymentHandler
	logger   logrus.FieldLogger
}

// NewWebhookHandler cria um novo handler de webhooks.
// onPix pode ser nil; nesse caso os PIX são apenas registrados no log.
func NewWebhookHandler(provider ports.PixProvider, onPix PixPaymentHandler) *WebhookHandler {
	return &WebhookHandler{
		provider: provider,
		onPix:    onPix,
		logger:   logger.NewModuleLogger("pagseguro-webhook"),
	}
}

// HandlePagSeguroWebhook processa webhooks da PagSeguro
// Endpoint: POST /api/webhooks/pagseguro (e /pix, sufixo adicionado pelo PSP)
func (wh *WebhookHandler) HandlePagSeguroWebhook(c *gin.Context) {
	log := logger.LoggerWithContext(wh.logger, c)

	body, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Warn("Erro ao ler body")
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "erro ao ler requisição"})
		return
	}

	log.WithField("body", string(body)).Debug("Webhook recebido")

	if !wh.provider.ValidateWebhookSignature(body, c.GetHeader(SignatureHeader)) {
		log.Warn("Assinatura do webhook inválida")
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "assinatura inválida"})
		return
	}

	payments, err := wh.provider.ParseWebhookEvent(body)
	if err != nil {
		log.WithError(err).Warn("Erro ao processar webhook")
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "erro ao processar webhook"})
		return
	}

	requestID := c.GetString(logger.RequestIDKey)
	events := make([]*domain.WebhookEvent, 0, len(payments))
	failed := 0

	for _, pix := range payments {
		event := domain.NewWebhookEvent(requestID, pix.EndToEndID, pix.TxID, pix.Amount)
		events = append(events, event)

		entry := log.WithFields(logrus.Fields{
			"txid":       pix.TxID,
			"endToEndId": pix.EndToEndID,
			"valor":      pix.Amount,
		})
		entry.Info("PIX recebido")

		if wh.onPix == nil {
			event.MarkSkipped()
			continue
		}

		event.MarkProcessing()
		// Retornamos 200 mesmo com erro para evitar retentativas do PSP
		if err := wh.onPix(c.Request.Context(), pix); err != nil {
			event.MarkFailed(err.Error())
			failed++
			entry.WithError(err).Error("Erro no handler de PIX")
			continue
		}
		event.MarkProcessed()
		entry.WithField("duracao", event.ProcessingTime().String()).Debug("PIX processado")
	}

	// Retorna 200 OK para confirmar recebimento
	c.JSON(http.StatusOK, gin.H{
		"status": "received",
		"count":  len(payments),
		"failed": failed,
		"events": events,
	})
}

// HealthCheck endpoint para verificar se o servidor está funcionando
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pagseguro-pix",
	})
}
