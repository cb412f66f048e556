package pagseguro

import (
	"context"
	"fmt"
	"net/http"
)

// RequestRefundCharge solicita devolução total ou parcial de um PIX recebido.
// Pode ser pedida em até 90 dias; várias devoluções são aceitas até o valor total.
func (c *Client) RequestRefundCharge(ctx context.Context, req RefundRequest) (*Refund, error) {
	path := refundPath(req.EndToEndID, req.ID)

	var refund Refund
	if err := c.doJSON(ctx, "request_refund", http.MethodPut, path, refundPayload{Valor: req.Valor}, &refund); err != nil {
		return nil, fmt.Errorf("erro ao solicitar devolução: %w", err)
	}
	return &refund, nil
}

// ConsultChargeRefund consulta uma devolução solicitada
func (c *Client) ConsultChargeRefund(ctx context.Context, endToEndID, refundID string) (*Refund, error) {
	var refund Refund
	if err := c.doJSON(ctx, "consult_refund", http.MethodGet, refundPath(endToEndID, refundID), nil, &refund); err != nil {
		return nil, fmt.Errorf("erro ao consultar devolução: %w", err)
	}
	return &refund, nil
}

// GetReceivedPix consulta um PIX pelo endToEndId
func (c *Client) GetReceivedPix(ctx context.Context, endToEndID string) (*ReceivedPix, error) {
	var pix ReceivedPix
	if err := c.doJSON(ctx, "get_received_pix", http.MethodGet, pathPix+"/"+endToEndID, nil, &pix); err != nil {
		return nil, fmt.Errorf("erro ao consultar PIX: %w", err)
	}
	return &pix, nil
}

// GetReceivedPixList consulta PIX recebidos por período, com paginação
func (c *Client) GetReceivedPixList(ctx context.Context, query ReceivedPixListQuery) (*ReceivedPixList, error) {
	path := pathPix + "?" + query.Params().Encode()

	var list ReceivedPixList
	if err := c.doJSON(ctx, "get_received_pix_list", http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("erro ao listar PIX recebidos: %w", err)
	}
	return &list, nil
}

// PayPix simula o pagamento de uma cobrança. Disponível apenas em sandbox;
// fora dele falha com UsageError sem fazer requisição.
func (c *Client) PayPix(ctx context.Context, txid string) error {
	if !c.sandbox {
		return &UsageError{Op: "pay_pix", Cause: ErrSandboxOnly}
	}

	payload := payPixPayload{Status: paidStatus, TxID: ""}
	if err := c.doJSON(ctx, "pay_pix", http.MethodPost, pathPayPix+"/"+txid, payload, nil); err != nil {
		return fmt.Errorf("erro ao simular pagamento: %w", err)
	}
	return nil
}

func refundPath(endToEndID, refundID string) string {
	return pathPix + "/" + endToEndID + "/devolucao/" + refundID
}
