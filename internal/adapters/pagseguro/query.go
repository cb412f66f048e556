package pagseguro

import (
	"strconv"
	"strings"
	"time"
)

// QueryParam é um par chave/valor da querystring
type QueryParam struct {
	Key   string
	Value string
}

// QueryParams é uma lista ordenada de parâmetros.
// Encode preserva a ordem e NÃO aplica percent-encoding: valores com
// '&', '=' ou espaço geram URL malformada e são responsabilidade do chamador.
type QueryParams []QueryParam

// Add retorna a lista com mais um par no final
func (q QueryParams) Add(key, value string) QueryParams {
	return append(q, QueryParam{Key: key, Value: value})
}

// Encode junta os pares como key=value separados por '&'
func (q QueryParams) Encode() string {
	parts := make([]string, 0, len(q))
	for _, p := range q {
		parts = append(parts, p.Key+"="+p.Value)
	}
	return strings.Join(parts, "&")
}

// FormatTime formata um instante no padrão aceito por inicio/fim (RFC 3339, UTC)
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ChargeListQuery filtra GET /instant-payments/cob.
// Os pares saem na ordem dos campos; opcionais vazios são omitidos.
type ChargeListQuery struct {
	Inicio string // Data início, ISO 8601
	Fim    string // Data fim, ISO 8601
	TxID   string
	Status ChargeStatus
	CPF    string
	CNPJ   string

	// Extra é anexado ao final, na ordem informada
	Extra QueryParams
}

// Params converte a consulta em pares ordenados
func (q ChargeListQuery) Params() QueryParams {
	params := QueryParams{}.
		Add("inicio", q.Inicio).
		Add("fim", q.Fim)
	if q.TxID != "" {
		params = params.Add("txid", q.TxID)
	}
	if q.Status != "" {
		params = params.Add("status", string(q.Status))
	}
	if q.CPF != "" {
		params = params.Add("cpf", q.CPF)
	}
	if q.CNPJ != "" {
		params = params.Add("cnpj", q.CNPJ)
	}
	return append(params, q.Extra...)
}

// ReceivedPixListQuery filtra GET /instant-payments/pix
type ReceivedPixListQuery struct {
	Inicio string
	Fim    string
	TxID   string
	CPF    string
	CNPJ   string

	// Paginação; zero omite o parâmetro
	PaginaAtual    int
	ItensPorPagina int

	Extra QueryParams
}

// Params converte a consulta em pares ordenados
func (q ReceivedPixListQuery) Params() QueryParams {
	params := QueryParams{}.
		Add("inicio", q.Inicio).
		Add("fim", q.Fim)
	if q.TxID != "" {
		params = params.Add("txid", q.TxID)
	}
	if q.CPF != "" {
		params = params.Add("cpf", q.CPF)
	}
	if q.CNPJ != "" {
		params = params.Add("cnpj", q.CNPJ)
	}
	if q.PaginaAtual > 0 {
		params = params.Add("paginacao.paginaAtual", strconv.Itoa(q.PaginaAtual))
	}
	if q.ItensPorPagina > 0 {
		params = params.Add("paginacao.itensPorPagina", strconv.Itoa(q.ItensPorPagina))
	}
	return append(params, q.Extra...)
}
