package pagseguro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Client é o cliente da API PIX da PagSeguro. Um Client mantém uma única
// sessão OAuth2 e é seguro para uso concorrente após Authenticate.
type Client struct {
	credentials Credentials
	baseURL     string
	sandbox     bool
	timeout     time.Duration
	tlsMode     TLSVerification
	transport   http.RoundTripper

	mu      sync.RWMutex
	session *Session
	api     *http.Client

	// Última revisão conhecida, usada por GetCharge quando a revisão é omitida
	chargeRevision atomic.Int64
}

// NewClient cria um novo cliente. Não faz I/O nem valida as credenciais;
// isso acontece em Authenticate.
func NewClient(cfg ClientConfig) *Client {
	baseURL := BaseURLProd
	if cfg.Sandbox {
		baseURL = BaseURLSandbox
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		credentials: cfg.Credentials,
		baseURL:     baseURL,
		sandbox:     cfg.Sandbox,
		timeout:     timeout,
		tlsMode:     cfg.TLSVerification,
		transport:   cfg.Transport,
	}
}

// BaseURL retorna a URL base selecionada na construção
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Sandbox retorna true se o cliente aponta para o ambiente de homologação
func (c *Client) Sandbox() bool {
	return c.sandbox
}

// LastRevision retorna o contador local de revisões
func (c *Client) LastRevision() int {
	return int(c.chargeRevision.Load())
}

// authenticated retorna o cliente HTTP e o token da sessão, ou erro se não houver sessão
func (c *Client) authenticated(op string) (*http.Client, string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.api == nil || c.session == nil {
		return nil, "", &UsageError{Op: op, Cause: ErrNotAuthenticated}
	}
	return c.api, c.session.AccessToken, nil
}

// doRequest executa uma requisição autenticada e retorna o corpo da resposta.
// target pode ser um path relativo à URL base ou uma URL absoluta.
func (c *Client) doRequest(ctx context.Context, op, method, target string, body interface{}) ([]byte, error) {
	api, token, err := c.authenticated(op)
	if err != nil {
		return nil, err
	}

	endpoint := target
	if !strings.HasPrefix(target, "https://") && !strings.HasPrefix(target, "http://") {
		endpoint = c.baseURL + target
	}

	// Prepara o body se houver
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, &UsageError{Op: op, Cause: fmt.Errorf("erro ao serializar body: %w", err)}
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, &UsageError{Op: op, Cause: fmt.Errorf("erro ao criar requisição: %w", err)}
	}
	// Header por requisição: o http.Client o remove em redirects para outro domínio
	req.Header.Set("Authorization", bearerPrefix+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := api.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: endpoint, Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: endpoint, Cause: fmt.Errorf("erro ao ler resposta: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(method, target, resp.StatusCode, respBody)
	}

	return respBody, nil
}

// doJSON executa a requisição e decodifica a resposta em out (quando não nil)
func (c *Client) doJSON(ctx context.Context, op, method, target string, body, out interface{}) error {
	respBody, err := c.doRequest(ctx, op, method, target, body)
	if err != nil {
		return err
	}
	return decodeBody(target, respBody, out)
}

// decodeBody decodifica uma resposta 2xx. Corpo vazio (201/204) deixa out
// com o valor zero.
func decodeBody(target string, respBody []byte, out interface{}) error {
	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &DecodeError{Endpoint: target, Body: trimBody(respBody, 4096), Cause: err}
	}
	return nil
}
