package pagseguro

import (
	"context"
	"fmt"
	"net/http"
)

// ConfigureWebhook registra a URL que receberá as notificações da chave PIX
func (c *Client) ConfigureWebhook(ctx context.Context, pixKey, webhookURL string) error {
	payload := webhookPayload{WebhookURL: webhookURL}
	if err := c.doJSON(ctx, "configure_webhook", http.MethodPut, pathWebhook+"/"+pixKey, payload, nil); err != nil {
		return fmt.Errorf("erro ao configurar webhook: %w", err)
	}
	return nil
}

// GetWebhook consulta o webhook configurado para uma chave PIX
func (c *Client) GetWebhook(ctx context.Context, pixKey string) (*Webhook, error) {
	var webhook Webhook
	if err := c.doJSON(ctx, "get_webhook", http.MethodGet, pathWebhook+"/"+pixKey, nil, &webhook); err != nil {
		return nil, fmt.Errorf("erro ao consultar webhook: %w", err)
	}
	return &webhook, nil
}

// CancelWebhook remove o webhook de uma chave PIX
func (c *Client) CancelWebhook(ctx context.Context, pixKey string) error {
	if err := c.doJSON(ctx, "cancel_webhook", http.MethodDelete, pathWebhook+"/"+pixKey, nil, nil); err != nil {
		return fmt.Errorf("erro ao cancelar webhook: %w", err)
	}
	return nil
}
