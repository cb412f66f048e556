// Package domain contém as entidades de domínio da aplicação
package domain

import (
	"time"
)

// WebhookStatus representa o estado de processamento de um PIX notificado
type WebhookStatus string

const (
	WebhookStatusPending    WebhookStatus = "pending"
	WebhookStatusProcessing WebhookStatus = "processing"
	WebhookStatusProcessed  WebhookStatus = "processed"
	WebhookStatusFailed     WebhookStatus = "failed"
	WebhookStatusSkipped    WebhookStatus = "skipped"
)

// ValidWebhookStatuses lista todos os status válidos
var ValidWebhookStatuses = []WebhookStatus{
	WebhookStatusPending,
	WebhookStatusProcessing,
	WebhookStatusProcessed,
	WebhookStatusFailed,
	WebhookStatusSkipped,
}

// IsValid verifica se o status é válido
func (s WebhookStatus) IsValid() bool {
	for _, v := range ValidWebhookStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsFinal retorna true se o evento não será mais processado
func (s WebhookStatus) IsFinal() bool {
	return s == WebhookStatusProcessed || s == WebhookStatusFailed || s == WebhookStatusSkipped
}

// WebhookEvent registra o processamento de um PIX recebido via webhook.
// Cada PIX de uma notificação gera um evento; EventID é o endToEndId.
type WebhookEvent struct {
	RequestID string `json:"request_id,omitempty"`

	// Event info
	EventID string `json:"event_id"`
	TxID    string `json:"txid,omitempty"`
	Amount  string `json:"amount"`

	// Processing
	Status       WebhookStatus `json:"status"`
	ProcessedAt  *time.Time    `json:"processed_at,omitempty"`
	ErrorMessage *string       `json:"error_message,omitempty"`

	ReceivedAt time.Time `json:"received_at"`
}

// NewWebhookEvent cria um novo evento pendente
func NewWebhookEvent(requestID, endToEndID, txid, amount string) *WebhookEvent {
	return &WebhookEvent{
		RequestID:  requestID,
		EventID:    endToEndID,
		TxID:       txid,
		Amount:     amount,
		Status:     WebhookStatusPending,
		ReceivedAt: time.Now(),
	}
}

// MarkProcessing marca o evento como em processamento
func (w *WebhookEvent) MarkProcessing() {
	w.Status = WebhookStatusProcessing
}

// MarkProcessed marca o evento como processado com sucesso
func (w *WebhookEvent) MarkProcessed() {
	now := time.Now()
	w.Status = WebhookStatusProcessed
	w.ProcessedAt = &now
}

// MarkFailed marca o evento como falho. A PagSeguro não reenvia
// notificações confirmadas com 200, então a conciliação fica a cargo
// de uma consulta posterior (GET /instant-payments/pix).
func (w *WebhookEvent) MarkFailed(errMsg string) {
	now := time.Now()
	w.Status = WebhookStatusFailed
	w.ErrorMessage = &errMsg
	w.ProcessedAt = &now
}

// MarkSkipped marca o evento como pulado (sem handler ou cobrança desconhecida)
func (w *WebhookEvent) MarkSkipped() {
	w.Status = WebhookStatusSkipped
}

// ProcessingTime retorna o tempo entre o recebimento e o fim do processamento
func (w *WebhookEvent) ProcessingTime() time.Duration {
	if w.ProcessedAt == nil {
		return 0
	}
	return w.ProcessedAt.Sub(w.ReceivedAt)
}
