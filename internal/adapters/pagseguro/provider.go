package pagseguro

import (
	"context"
	"fmt"

	"github.com/magnani/pagseguro-pix/internal/ports"
)

// Provider adapta o Client para ports.PixProvider, usando uma chave PIX fixa
// do recebedor e valores em centavos.
type Provider struct {
	client        *Client
	pixKey        string
	webhookSecret string
}

// NewProvider cria o adaptador. O client deve estar autenticado.
func NewProvider(client *Client, pixKey, webhookSecret string) *Provider {
	return &Provider{
		client:        client,
		pixKey:        pixKey,
		webhookSecret: webhookSecret,
	}
}

// CreatePixCharge cria uma nova cobrança PIX imediata
func (p *Provider) CreatePixCharge(ctx context.Context, req *ports.PixChargeRequest) (*ports.PixChargeResponse, error) {
	if req.Amount <= 0 {
		return nil, &UsageError{Op: "create_charge", Cause: fmt.Errorf("valor deve ser positivo")}
	}

	txid := req.TxID
	if txid == "" {
		txid = NewTxID()
	}

	// Monta o request para a API
	charge := CreateChargeRequest{
		Valor:              Amount{Original: FormatCents(req.Amount)},
		Chave:              p.pixKey,
		SolicitacaoPagador: req.Description,
	}
	if req.ExpiresIn > 0 {
		charge.Calendario = &Calendar{Expiracao: req.ExpiresIn}
	}

	// Adiciona dados do pagador se informados
	if req.PayerName != "" || req.PayerDocument != "" {
		charge.Devedor = &Debtor{Nome: req.PayerName}
		if len(req.PayerDocument) == 11 {
			charge.Devedor.CPF = req.PayerDocument
		} else if len(req.PayerDocument) == 14 {
			charge.Devedor.CNPJ = req.PayerDocument
		}
	}

	created, err := p.client.CreateCharge(ctx, txid, charge)
	if err != nil {
		return nil, err
	}
	if created.TxID == "" {
		created.TxID = txid
	}
	return toChargeResponse(created), nil
}

// GetPixCharge consulta uma cobrança PIX pelo txid, na última revisão conhecida
func (p *Provider) GetPixCharge(ctx context.Context, txid string) (*ports.PixChargeResponse, error) {
	charge, err := p.client.GetCharge(ctx, txid, nil)
	if err != nil {
		return nil, err
	}
	return toChargeResponse(charge), nil
}

// CancelPixCharge cancela uma cobrança PIX pendente
func (p *Provider) CancelPixCharge(ctx context.Context, txid string) error {
	_, err := p.client.CancelCharge(ctx, txid)
	return err
}

// RefundPix solicita devolução de um PIX recebido
func (p *Provider) RefundPix(ctx context.Context, req *ports.PixRefundRequest) (*ports.PixRefundResponse, error) {
	if req.Amount <= 0 {
		return nil, &UsageError{Op: "request_refund", Cause: fmt.Errorf("valor deve ser positivo")}
	}

	refundID := req.RefundID
	if refundID == "" {
		refundID = NewTxID()
	}

	refund, err := p.client.RequestRefundCharge(ctx, RefundRequest{
		EndToEndID: req.EndToEndID,
		ID:         refundID,
		Valor:      FormatCents(req.Amount),
	})
	if err != nil {
		return nil, err
	}

	resp := &ports.PixRefundResponse{
		RefundID: refund.ID,
		Status:   string(refund.Status),
		Amount:   refund.Valor,
	}
	if resp.RefundID == "" {
		resp.RefundID = refundID
	}
	return resp, nil
}

// RegisterWebhook registra a URL de webhook para uma chave PIX
func (p *Provider) RegisterWebhook(ctx context.Context, pixKey string, webhookURL string) error {
	if pixKey == "" {
		pixKey = p.pixKey
	}
	return p.client.ConfigureWebhook(ctx, pixKey, webhookURL)
}

// ValidateWebhookSignature valida a assinatura quando há secret configurado.
// Sem secret, toda notificação é aceita (a origem é garantida pelo mTLS).
func (p *Provider) ValidateWebhookSignature(payload []byte, signature string) bool {
	if p.webhookSecret == "" {
		return true
	}
	return ValidateSignature(payload, signature, p.webhookSecret)
}

// ParseWebhookEvent converte a notificação para o formato genérico
func (p *Provider) ParseWebhookEvent(payload []byte) ([]ports.PixPayment, error) {
	n, err := ParseNotification(payload)
	if err != nil {
		return nil, err
	}

	payments := make([]ports.PixPayment, 0, len(n.Pix))
	for _, pix := range n.Pix {
		payment := ports.PixPayment{
			EndToEndID: pix.EndToEndID,
			TxID:       pix.TxID,
			Amount:     pix.Valor,
			PaidAt:     pix.Horario,
			PayerInfo:  pix.InfoPagador,
		}
		if pix.Pagador != nil {
			payment.PayerName = pix.Pagador.Nome
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// FormatCents formata centavos no padrão da API ("1234" -> "12.34")
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func toChargeResponse(c *Charge) *ports.PixChargeResponse {
	resp := &ports.PixChargeResponse{
		TxID:      c.TxID,
		Revision:  c.Revisao,
		Status:    string(c.Status),
		Location:  c.Location,
		PixCode:   c.PixCopiaECola,
		QRCodeURL: c.URLImagemQRCode,
	}
	if c.Calendario != nil {
		resp.CreatedAt = c.Calendario.Criacao
	}
	return resp
}

// Garante que Provider implementa PixProvider
var _ ports.PixProvider = (*Provider)(nil)
