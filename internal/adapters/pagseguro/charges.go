package pagseguro

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// CreateCharge cria uma cobrança imediata com txid definido pelo recebedor.
// O txid é único por CPF/CNPJ do recebedor.
func (c *Client) CreateCharge(ctx context.Context, txid string, charge CreateChargeRequest) (*Charge, error) {
	var created Charge
	if err := c.doJSON(ctx, "create_charge", http.MethodPut, pathCob+"/"+txid, charge, &created); err != nil {
		return nil, fmt.Errorf("erro ao criar cobrança: %w", err)
	}
	return &created, nil
}

// GetCharge consulta uma cobrança pelo txid. Se revision for nil, usa a
// última revisão conhecida por este cliente (LastRevision).
func (c *Client) GetCharge(ctx context.Context, txid string, revision *int) (*Charge, error) {
	rev := c.LastRevision()
	if revision != nil {
		rev = *revision
	}

	path := pathCob + "/" + txid + "?revisao=" + strconv.Itoa(rev)

	var charge Charge
	if err := c.doJSON(ctx, "get_charge", http.MethodGet, path, nil, &charge); err != nil {
		return nil, fmt.Errorf("erro ao consultar cobrança: %w", err)
	}
	return &charge, nil
}

// GetChargeList consulta cobranças por período e filtros opcionais
func (c *Client) GetChargeList(ctx context.Context, query ChargeListQuery) ([]Charge, error) {
	path := pathCob + "?" + query.Params().Encode()

	var charges []Charge
	if err := c.doJSON(ctx, "get_charge_list", http.MethodGet, path, nil, &charges); err != nil {
		return nil, fmt.Errorf("erro ao listar cobranças: %w", err)
	}
	return charges, nil
}

// ReviseCharge altera ou cancela uma cobrança. O contador local de revisões
// é incrementado em toda resposta 2xx, mesmo que o corpo não decodifique.
func (c *Client) ReviseCharge(ctx context.Context, txid string, update ReviseChargeRequest) (*Charge, error) {
	path := pathCob + "/" + txid
	respBody, err := c.doRequest(ctx, "revise_charge", http.MethodPatch, path, update)
	if err != nil {
		return nil, fmt.Errorf("erro ao revisar cobrança: %w", err)
	}
	c.chargeRevision.Add(1)

	var updated Charge
	if err := decodeBody(path, respBody, &updated); err != nil {
		return nil, fmt.Errorf("erro ao revisar cobrança: %w", err)
	}
	return &updated, nil
}

// CancelCharge remove a cobrança pelo recebedor (PATCH com status REMOVIDA_PELO_USUARIO_RECEBEDOR)
func (c *Client) CancelCharge(ctx context.Context, txid string) (*Charge, error) {
	status := ChargeRemovedByPayee
	return c.ReviseCharge(ctx, txid, ReviseChargeRequest{Status: &status})
}

// RecoveryCharge recupera o payload da cobrança a partir do location devolvido
// na criação. O location vem sem esquema; https:// é adicionado e um
// esquema informado (http ou https) é substituído por https.
func (c *Client) RecoveryCharge(ctx context.Context, location string) (string, error) {
	host := strings.TrimPrefix(strings.TrimPrefix(location, "https://"), "http://")
	target := "https://" + host

	body, err := c.doRequest(ctx, "recovery_charge", http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao recuperar payload da cobrança: %w", err)
	}
	return string(body), nil
}
