package pagseguro

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Session guarda o resultado da autenticação OAuth2.
// Não há refresh: o token vale até o cliente ser descartado ou expirar no servidor.
type Session struct {
	AccessToken  string
	TokenType    string
	ExpiresIn    int
	RefreshToken string
	Scope        string
	ObtainedAt   time.Time
}

// ExpiresAt retorna o instante estimado de expiração do token (não é verificado localmente)
func (s Session) ExpiresAt() time.Time {
	return s.ObtainedAt.Add(time.Duration(s.ExpiresIn) * time.Second)
}

// Authenticate obtém o token de acesso e prepara o transporte autenticado.
// É obrigatório antes de qualquer outro método. Retorna o próprio cliente
// para permitir encadeamento:
//
//	client, err := pagseguro.NewClient(cfg).Authenticate(ctx, pagseguro.ScopeCobWrite, pagseguro.ScopeCobRead)
func (c *Client) Authenticate(ctx context.Context, scopes ...Scope) (*Client, error) {
	// Sessão anterior é descartada: qualquer falha deixa o cliente sem transporte
	c.mu.Lock()
	c.session = nil
	c.api = nil
	c.mu.Unlock()

	names := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if !s.IsValid() {
			return nil, &UsageError{Op: "authenticate", Cause: fmt.Errorf("escopo desconhecido %q", s)}
		}
		names = append(names, string(s))
	}

	tlsConfig, err := c.tlsConfig()
	if err != nil {
		return nil, err
	}
	transport := c.baseTransport(tlsConfig)

	token, err := c.requestToken(ctx, transport, strings.Join(names, " "))
	if err != nil {
		return nil, err
	}

	api := &http.Client{
		Timeout:   c.timeout,
		Transport: transport,
	}

	c.mu.Lock()
	c.session = &Session{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		ExpiresIn:    token.ExpiresIn,
		RefreshToken: token.RefreshToken,
		Scope:        token.Scope,
		ObtainedAt:   time.Now(),
	}
	c.api = api
	c.mu.Unlock()

	return c, nil
}

// Session retorna uma cópia da sessão atual, sem os tokens
func (c *Client) Session() (Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return Session{}, false
	}
	s := *c.session
	s.AccessToken = ""
	s.RefreshToken = ""
	return s, true
}

// IsAuthenticated retorna true se há uma sessão ativa
func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.api != nil
}

// tlsConfig monta o contexto mTLS a partir do material PEM
func (c *Client) tlsConfig() (*tls.Config, error) {
	if c.credentials.ClientID == "" {
		return nil, &ConfigurationError{Field: "client_id", Msg: "obrigatório"}
	}
	if c.credentials.ClientSecret == "" {
		return nil, &ConfigurationError{Field: "client_secret", Msg: "obrigatório"}
	}
	if len(c.credentials.Certificate) == 0 || len(c.credentials.PrivateKey) == 0 {
		return nil, &ConfigurationError{Field: "certificate", Msg: "certificado e chave privada são obrigatórios"}
	}

	cert, err := tls.X509KeyPair(c.credentials.Certificate, c.credentials.PrivateKey)
	if err != nil {
		return nil, &ConfigurationError{Field: "certificate", Msg: "par certificado/chave inválido", Cause: err}
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	switch c.tlsMode {
	case TLSStrict:
	case TLSRelaxedSandbox:
		if !c.sandbox {
			return nil, &ConfigurationError{Field: "tls_verification", Msg: "verificação relaxada só é permitida em sandbox"}
		}
		// Homologação da PagSeguro usa certificado que não valida na cadeia pública
		cfg.InsecureSkipVerify = true
	default:
		return nil, &ConfigurationError{Field: "tls_verification", Msg: fmt.Sprintf("modo desconhecido %d", c.tlsMode)}
	}

	return cfg, nil
}

// baseTransport retorna o transporte configurado ou um novo com o contexto mTLS.
// Um *http.Transport informado sem TLSClientConfig recebe o contexto mTLS.
func (c *Client) baseTransport(tlsConfig *tls.Config) http.RoundTripper {
	switch tr := c.transport.(type) {
	case nil:
		def := http.DefaultTransport.(*http.Transport).Clone()
		def.TLSClientConfig = tlsConfig
		return def
	case *http.Transport:
		if tr.TLSClientConfig != nil {
			return tr
		}
		clone := tr.Clone()
		clone.TLSClientConfig = tlsConfig
		return clone
	default:
		return tr
	}
}

// requestToken chama /pix/oauth2 com Basic Auth
func (c *Client) requestToken(ctx context.Context, transport http.RoundTripper, scope string) (*TokenResponse, error) {
	body, err := json.Marshal(oauth2Request{GrantType: grantType, Scope: scope})
	if err != nil {
		return nil, &AuthenticationError{Cause: fmt.Errorf("erro ao serializar body: %w", err)}
	}

	authURL := c.baseURL + pathOAuth2
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, bytes.NewReader(body))
	if err != nil {
		return nil, &AuthenticationError{Cause: fmt.Errorf("erro ao criar requisição de auth: %w", err)}
	}

	// Basic Auth com client_id:client_secret
	credentials := base64.StdEncoding.EncodeToString(
		[]byte(c.credentials.ClientID + ":" + c.credentials.ClientSecret),
	)
	req.Header.Set("Authorization", basicPrefix+credentials)
	req.Header.Set("Content-Type", "application/json")

	hc := &http.Client{Timeout: c.timeout, Transport: transport}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, &AuthenticationError{Cause: &TransportError{Method: http.MethodPost, URL: authURL, Cause: err}}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthenticationError{Cause: fmt.Errorf("erro ao ler resposta de auth: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AuthenticationError{
			StatusCode: resp.StatusCode,
			Cause:      newAPIError(http.MethodPost, pathOAuth2, resp.StatusCode, respBody),
		}
	}

	var token TokenResponse
	if err := json.Unmarshal(respBody, &token); err != nil {
		return nil, &AuthenticationError{Cause: &DecodeError{Endpoint: pathOAuth2, Body: trimBody(respBody, 4096), Cause: err}}
	}
	if token.AccessToken == "" {
		return nil, &AuthenticationError{Cause: fmt.Errorf("resposta sem access_token")}
	}

	return &token, nil
}
