package pagseguro

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Erros sentinela, um por categoria de falha
var (
	// ErrConfiguration indica material de credencial ausente ou inválido
	ErrConfiguration = errors.New("pagseguro: erro de configuração")

	// ErrAuthentication indica falha ao obter o token OAuth2
	ErrAuthentication = errors.New("pagseguro: falha de autenticação")

	// ErrTransport indica falha de rede ou timeout
	ErrTransport = errors.New("pagseguro: erro de transporte")

	// ErrRemoteAPI indica resposta não-2xx da API
	ErrRemoteAPI = errors.New("pagseguro: erro da API")

	// ErrDecode indica resposta 2xx que não pôde ser decodificada
	ErrDecode = errors.New("pagseguro: erro ao decodificar resposta")

	// ErrUsage indica uso incorreto do cliente
	ErrUsage = errors.New("pagseguro: uso inválido")

	// ErrNotAuthenticated indica chamada de negócio antes de Authenticate
	ErrNotAuthenticated = errors.New("pagseguro: cliente não autenticado")

	// ErrSandboxOnly indica operação exclusiva do modo sandbox
	ErrSandboxOnly = errors.New("pagseguro: operação disponível apenas em sandbox")

	// ErrNotFound indica que o recurso não foi encontrado
	ErrNotFound = errors.New("pagseguro: recurso não encontrado")

	// ErrUnauthorized indica token inválido ou sem permissão
	ErrUnauthorized = errors.New("pagseguro: não autorizado")

	// ErrRateLimited indica rate limiting
	ErrRateLimited = errors.New("pagseguro: rate limit atingido")

	// ErrServerError indica erro interno do servidor PagSeguro
	ErrServerError = errors.New("pagseguro: erro do servidor")
)

// ConfigurationError é retornado por Authenticate e pelos loaders de credenciais
type ConfigurationError struct {
	Field string
	Msg   string
	Cause error
}

func (e *ConfigurationError) Error() string {
	msg := ErrConfiguration.Error()
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error        { return e.Cause }
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// AuthenticationError envolve qualquer falha durante a obtenção do token
type AuthenticationError struct {
	StatusCode int
	Cause      error
}

func (e *AuthenticationError) Error() string {
	msg := ErrAuthentication.Error()
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AuthenticationError) Unwrap() error        { return e.Cause }
func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// TransportError indica falha de rede ao chamar a API
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

func (e *TransportError) Error() string {
	parts := []string{ErrTransport.Error()}
	if e.Method != "" && e.URL != "" {
		parts = append(parts, e.Method+" "+e.URL)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *TransportError) Unwrap() error        { return e.Cause }
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Violation é um item de "violacoes" no corpo de erro da API PIX
type Violation struct {
	Razao       string `json:"razao"`
	Propriedade string `json:"propriedade"`
	Valor       string `json:"valor,omitempty"`
}

// APIError representa uma resposta não-2xx da API.
// Body guarda a resposta bruta; os demais campos são preenchidos quando possível.
type APIError struct {
	Method     string `json:"-"`
	Endpoint   string `json:"-"`
	StatusCode int    `json:"-"`
	Body       []byte `json:"-"`

	Type      string      `json:"type,omitempty"`
	Title     string      `json:"title,omitempty"`
	Detail    string      `json:"detail,omitempty"`
	Violacoes []Violation `json:"violacoes,omitempty"`
	Nome      string      `json:"nome,omitempty"`
	Mensagem  string      `json:"mensagem,omitempty"`
}

// Error implementa a interface error
func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s: status %d", ErrRemoteAPI.Error(), e.StatusCode)
	if e.Method != "" && e.Endpoint != "" {
		msg += " " + e.Method + " " + e.Endpoint
	}
	switch {
	case e.Mensagem != "":
		msg += " - " + e.Mensagem
	case e.Detail != "":
		msg += " - " + e.Detail
	case e.Title != "":
		msg += " - " + e.Title
	case len(e.Body) > 0:
		msg += " - " + strings.TrimSpace(string(trimBody(e.Body, 512)))
	}
	return msg
}

// Is permite errors.Is com ErrRemoteAPI e com o sentinela do status
func (e *APIError) Is(target error) bool {
	if target == ErrRemoteAPI {
		return true
	}
	kind := kindFromStatus(e.StatusCode)
	return kind != nil && target == kind
}

// newAPIError monta um APIError a partir da resposta bruta
func newAPIError(method, endpoint string, status int, body []byte) *APIError {
	apiErr := &APIError{}
	// Corpo fora do padrão não impede o erro; apenas fica só em Body
	_ = json.Unmarshal(body, apiErr)
	apiErr.Method = method
	apiErr.Endpoint = endpoint
	apiErr.StatusCode = status
	apiErr.Body = trimBody(body, 4096)
	return apiErr
}

// DecodeError indica uma resposta 2xx com corpo inesperado
type DecodeError struct {
	Endpoint string
	Body     []byte
	Cause    error
}

func (e *DecodeError) Error() string {
	msg := ErrDecode.Error()
	if e.Endpoint != "" {
		msg += ": " + e.Endpoint
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error        { return e.Cause }
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// UsageError indica violação de pré-condição local; nenhuma requisição é feita
type UsageError struct {
	Op    string
	Cause error
}

func (e *UsageError) Error() string {
	msg := ErrUsage.Error()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *UsageError) Unwrap() error        { return e.Cause }
func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// IsNotFound retorna true se o erro indica que o recurso não foi encontrado
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized retorna true se o erro indica token inválido ou escopo insuficiente
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimited retorna true se o erro indica rate limiting
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsServerError retorna true se o erro é do servidor (5xx)
func IsServerError(err error) bool {
	return errors.Is(err, ErrServerError)
}

func kindFromStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 500 && status <= 599:
		return ErrServerError
	}
	return nil
}

func trimBody(b []byte, max int) []byte {
	if max <= 0 || len(b) <= max {
		return b
	}
	out := make([]byte, max)
	copy(out, b[:max])
	return out
}
