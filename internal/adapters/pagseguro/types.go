package pagseguro

import (
	"net/http"
	"time"
)

// Credentials contém o material de autenticação do integrador.
// Certificate e PrivateKey são PEM brutos; o cliente não lê arquivos.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Certificate  []byte
	PrivateKey   []byte
}

// TLSVerification define a política de verificação do certificado do servidor
type TLSVerification int

const (
	// TLSStrict valida a cadeia do servidor normalmente (padrão)
	TLSStrict TLSVerification = iota
	// TLSRelaxedSandbox desliga a verificação do certificado do servidor.
	// Inseguro: aceito apenas em modo sandbox.
	TLSRelaxedSandbox
)

func (v TLSVerification) String() string {
	switch v {
	case TLSStrict:
		return "strict"
	case TLSRelaxedSandbox:
		return "relaxed-sandbox"
	default:
		return "unknown"
	}
}

// ClientConfig configura o cliente PagSeguro
type ClientConfig struct {
	Credentials Credentials

	// Sandbox seleciona o ambiente de homologação. Padrão: produção.
	Sandbox bool

	// Timeout por requisição. Zero usa DefaultTimeout.
	Timeout time.Duration

	TLSVerification TLSVerification

	// Transport substitui o transporte HTTP base (proxies, testes).
	// Quando nil, um *http.Transport com o contexto mTLS é criado.
	Transport http.RoundTripper
}

// Scope é uma permissão OAuth2 da API PIX
type Scope string

const (
	ScopePixRead              Scope = "pix.read"
	ScopePixWrite             Scope = "pix.write"
	ScopeCobRead              Scope = "cob.read"
	ScopeCobWrite             Scope = "cob.write"
	ScopeWebhookRead          Scope = "webhook.read"
	ScopeWebhookWrite         Scope = "webhook.write"
	ScopePayloadLocationRead  Scope = "payloadlocation.read"
	ScopePayloadLocationWrite Scope = "payloadlocation.write"
)

// AllScopes lista todo o vocabulário de permissões
var AllScopes = []Scope{
	ScopePixRead,
	ScopePixWrite,
	ScopeCobRead,
	ScopeCobWrite,
	ScopeWebhookRead,
	ScopeWebhookWrite,
	ScopePayloadLocationRead,
	ScopePayloadLocationWrite,
}

// IsValid verifica se o escopo pertence ao vocabulário
func (s Scope) IsValid() bool {
	for _, v := range AllScopes {
		if s == v {
			return true
		}
	}
	return false
}

// TokenResponse representa a resposta do endpoint de autenticação OAuth2
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

// oauth2Request é o corpo enviado para /pix/oauth2
type oauth2Request struct {
	GrantType string `json:"grant_type"`
	Scope     string `json:"scope"`
}

// ChargeStatus representa o status de uma cobrança
type ChargeStatus string

const (
	// ChargeActive: cobrança criada
	ChargeActive ChargeStatus = "ATIVA"
	// ChargeCompleted: paga, não aceita outro pagamento
	ChargeCompleted ChargeStatus = "CONCLUIDA"
	// ChargeRemovedByPayee: removida pelo usuário recebedor
	ChargeRemovedByPayee ChargeStatus = "REMOVIDA_PELO_USUARIO_RECEBEDOR"
	// ChargeRemovedByProvider: removida pela PagSeguro
	ChargeRemovedByProvider ChargeStatus = "REMOVIDA_PELO_PSP"
)

// IsFinal retorna true se a cobrança não muda mais de estado
func (s ChargeStatus) IsFinal() bool {
	return s == ChargeCompleted || s == ChargeRemovedByPayee || s == ChargeRemovedByProvider
}

// IsPaid retorna true se a cobrança foi concluída
func (s ChargeStatus) IsPaid() bool {
	return s == ChargeCompleted
}

// IsRemoved retorna true se a cobrança foi removida por qualquer parte
func (s ChargeStatus) IsRemoved() bool {
	return s == ChargeRemovedByPayee || s == ChargeRemovedByProvider
}

// RefundStatus representa o status de uma devolução
type RefundStatus string

const (
	RefundProcessing RefundStatus = "EM_PROCESSAMENTO"
	RefundRefunded   RefundStatus = "DEVOLVIDO"
	RefundNotDone    RefundStatus = "NAO_REALIZADO"
)

// IsFinal retorna true se a devolução já foi liquidada ou recusada
func (s RefundStatus) IsFinal() bool {
	return s == RefundRefunded || s == RefundNotDone
}

// Calendar organiza criação e expiração da cobrança
type Calendar struct {
	Criacao   string `json:"criacao,omitempty"`
	Expiracao int    `json:"expiracao"` // Tempo de vida em segundos a partir da criação
}

// Debtor representa o devedor (ou o pagador, em PIX recebidos)
type Debtor struct {
	CPF  string `json:"cpf,omitempty"`
	CNPJ string `json:"cnpj,omitempty"`
	Nome string `json:"nome,omitempty"`
}

// Amount segue o formato da API: ponto como separador decimal, ex: "123.99"
type Amount struct {
	Original string `json:"original"`
}

// AdditionalInfo é um par nome/valor apresentado ao pagador
type AdditionalInfo struct {
	Nome  string `json:"nome"`
	Valor string `json:"valor"`
}

// CreateChargeRequest são os campos aceitos na criação de uma cobrança
type CreateChargeRequest struct {
	Calendario         *Calendar        `json:"calendario,omitempty"`
	Devedor            *Debtor          `json:"devedor,omitempty"`
	Valor              Amount           `json:"valor"`
	Chave              string           `json:"chave"` // Chave PIX do recebedor
	SolicitacaoPagador string           `json:"solicitacaoPagador,omitempty"`
	InfoAdicionais     []AdditionalInfo `json:"infoAdicionais,omitempty"`
}

// ReviseChargeRequest são os campos mutáveis de uma cobrança.
// Campos nil não são enviados.
type ReviseChargeRequest struct {
	Devedor            *Debtor       `json:"devedor,omitempty"`
	Valor              *Amount       `json:"valor,omitempty"`
	SolicitacaoPagador *string       `json:"solicitacaoPagador,omitempty"`
	Status             *ChargeStatus `json:"status,omitempty"`
}

// Charge representa uma cobrança imediata
type Charge struct {
	TxID               string           `json:"txid"`
	Calendario         *Calendar        `json:"calendario,omitempty"`
	Devedor            *Debtor          `json:"devedor,omitempty"`
	Valor              Amount           `json:"valor"`
	Chave              string           `json:"chave"`
	SolicitacaoPagador string           `json:"solicitacaoPagador,omitempty"`
	InfoAdicionais     []AdditionalInfo `json:"infoAdicionais,omitempty"`
	Revisao            int              `json:"revisao"`
	Location           string           `json:"location,omitempty"`
	Status             ChargeStatus     `json:"status"`
	PixCopiaECola      string           `json:"pixCopiaECola,omitempty"`
	URLImagemQRCode    string           `json:"urlImagemQrCode,omitempty"`
	Pix                []ReceivedPix    `json:"pix,omitempty"`
}

// RefundTimes guarda os horários de uma devolução
type RefundTimes struct {
	Solicitacao string `json:"solicitacao,omitempty"`
	Liquidacao  string `json:"liquidacao,omitempty"`
}

// Refund representa uma devolução. A API pode omitir qualquer campo.
type Refund struct {
	ID      string       `json:"id,omitempty"`
	RtrID   string       `json:"rtrId,omitempty"` // ReturnIdentification da PACS004
	Valor   string       `json:"valor,omitempty"`
	Horario *RefundTimes `json:"horario,omitempty"`
	Status  RefundStatus `json:"status,omitempty"`
	Motivo  string       `json:"motivo,omitempty"`
}

// RefundRequest identifica a devolução a solicitar
type RefundRequest struct {
	EndToEndID string
	ID         string // Criado pelo recebedor, único por devolução
	Valor      string
}

// refundPayload é o corpo enviado no PUT de devolução
type refundPayload struct {
	Valor string `json:"valor"`
}

// ReceivedPix representa um PIX recebido
type ReceivedPix struct {
	EndToEndID  string   `json:"endToEndId"`
	TxID        string   `json:"txid,omitempty"`
	Chave       string   `json:"chave,omitempty"`
	Valor       string   `json:"valor"`
	Horario     string   `json:"horario"`
	Pagador     *Debtor  `json:"pagador,omitempty"`
	InfoPagador string   `json:"infoPagador,omitempty"`
	Devolucoes  []Refund `json:"devolucoes,omitempty"`
}

// Pagination é o bloco de paginação das listagens
type Pagination struct {
	PaginaAtual            int `json:"paginaAtual"`
	ItensPorPagina         int `json:"itensPorPagina"`
	QuantidadeDePaginas    int `json:"quantidadeDePaginas"`
	QuantidadeTotalDeItens int `json:"quantidadeTotalDeItens"`
}

// ReceivedPixListParams ecoa os parâmetros da consulta junto com a paginação
type ReceivedPixListParams struct {
	Inicio    string     `json:"inicio"`
	Fim       string     `json:"fim"`
	CPF       string     `json:"cpf,omitempty"`
	CNPJ      string     `json:"cnpj,omitempty"`
	Paginacao Pagination `json:"paginacao"`
}

// ReceivedPixList é a resposta paginada de GET /instant-payments/pix
type ReceivedPixList struct {
	Parametros ReceivedPixListParams `json:"parametros"`
	Pix        []ReceivedPix         `json:"pix"`
}

// Webhook representa um webhook configurado para uma chave PIX
type Webhook struct {
	WebhookURL string `json:"webhookUrl"`
	Chave      string `json:"chave"`
	Criacao    string `json:"criacao,omitempty"`
}

// webhookPayload é o corpo do PUT de configuração
type webhookPayload struct {
	WebhookURL string `json:"webhookUrl"`
}

// payPixPayload é o corpo da simulação de pagamento (sandbox)
type payPixPayload struct {
	Status string `json:"status"`
	TxID   string `json:"tx_id"`
}
