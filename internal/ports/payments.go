// Package ports define as interfaces (portas) para adaptadores externos
// Seguindo o padrão Hexagonal Architecture / Ports & Adapters
package ports

import "context"

//go:generate mockgen -source=payments.go -destination=mocks/mock_payments.go -package=mocks

// ──────────────────────────────────────────────
// PIX types
// ──────────────────────────────────────────────

// PixChargeRequest representa uma requisição para criar cobrança PIX
type PixChargeRequest struct {
	TxID        string // Identificador único da transação (opcional, será gerado se vazio)
	Amount      int64  // Valor em centavos
	Description string // Texto apresentado ao pagador
	ExpiresIn   int    // Tempo de expiração em segundos (ex: 3600 para 1 hora)

	// Dados do pagador
	PayerName     string
	PayerDocument string // CPF ou CNPJ
}

// PixChargeResponse representa uma cobrança PIX
type PixChargeResponse struct {
	TxID      string // Identificador da transação
	Revision  int    // Revisão atual da cobrança
	Status    string // ATIVA, CONCLUIDA, REMOVIDA_PELO_USUARIO_RECEBEDOR, REMOVIDA_PELO_PSP
	Location  string // Location do payload
	PixCode   string // Código PIX copia e cola
	QRCodeURL string // URL da imagem do QR Code (se disponível)
	CreatedAt string // Data/hora de criação
}

// PixRefundRequest representa um pedido de devolução
type PixRefundRequest struct {
	EndToEndID string
	RefundID   string // Opcional, será gerado se vazio
	Amount     int64  // Valor em centavos
}

// PixRefundResponse representa o estado de uma devolução
type PixRefundResponse struct {
	RefundID string
	Status   string // EM_PROCESSAMENTO, DEVOLVIDO, NAO_REALIZADO
	Amount   string
}

// PixPayment representa um PIX recebido notificado via webhook
type PixPayment struct {
	EndToEndID string
	TxID       string
	Amount     string
	PaidAt     string
	PayerName  string
	PayerInfo  string
}

// ──────────────────────────────────────────────
// Provider interfaces
// ──────────────────────────────────────────────

// PixProvider define a interface para o gateway PIX
type PixProvider interface {
	// CreatePixCharge cria uma nova cobrança PIX imediata
	CreatePixCharge(ctx context.Context, req *PixChargeRequest) (*PixChargeResponse, error)

	// GetPixCharge consulta uma cobrança PIX pelo txid
	GetPixCharge(ctx context.Context, txid string) (*PixChargeResponse, error)

	// CancelPixCharge cancela uma cobrança PIX pendente
	CancelPixCharge(ctx context.Context, txid string) error

	// RefundPix solicita devolução de um PIX recebido
	RefundPix(ctx context.Context, req *PixRefundRequest) (*PixRefundResponse, error)

	// RegisterWebhook registra a URL de webhook para receber notificações PIX
	RegisterWebhook(ctx context.Context, pixKey string, webhookURL string) error

	// ValidateWebhookSignature valida a assinatura de um webhook PIX
	ValidateWebhookSignature(payload []byte, signature string) bool

	// ParseWebhookEvent processa o payload de um webhook e retorna os PIX notificados
	ParseWebhookEvent(payload []byte) ([]PixPayment, error)
}
