// Package config gerencia as configurações do aplicativo
// carregando variáveis de ambiente do arquivo .env
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/magnani/pagseguro-pix/internal/adapters/pagseguro"
)

// Config armazena todas as configurações da aplicação
type Config struct {
	// Servidor
	Port     string
	Env      string
	LogLevel string

	// PagSeguro
	PagSeguro PagSeguroConfig

	// Webhook
	Webhook WebhookConfig
}

// PagSeguroConfig armazena configurações específicas da PagSeguro
type PagSeguroConfig struct {
	ClientID     string
	ClientSecret string

	// Certificado PEM (.crt + .key) ou bundle .p12
	CertificatePath string
	KeyPath         string
	P12Path         string
	P12Password     string

	Sandbox    bool
	TLSRelaxed bool
	Timeout    time.Duration
	Scopes     []pagseguro.Scope
	PixKey     string
}

// WebhookConfig armazena configurações de webhook
type WebhookConfig struct {
	URL    string
	Secret string
}

// Load carrega as configurações do arquivo .env e variáveis de ambiente
// O arquivo .env é opcional - variáveis de ambiente têm prioridade
func Load() (*Config, error) {
	// Tenta carregar .env (ignora erro se não existir)
	_ = godotenv.Load()

	scopes, err := ParseScopes(getEnv("PAGSEGURO_SCOPES", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		PagSeguro: PagSeguroConfig{
			ClientID:        getEnv("PAGSEGURO_CLIENT_ID", ""),
			ClientSecret:    getEnv("PAGSEGURO_CLIENT_SECRET", ""),
			CertificatePath: getEnv("PAGSEGURO_CERTIFICATE_PATH", ""),
			KeyPath:         getEnv("PAGSEGURO_KEY_PATH", ""),
			P12Path:         getEnv("PAGSEGURO_P12_PATH", ""),
			P12Password:     getEnv("PAGSEGURO_P12_PASSWORD", ""),
			Sandbox:         getEnvBool("PAGSEGURO_SANDBOX", true),
			TLSRelaxed:      getEnvBool("PAGSEGURO_TLS_RELAXED", false),
			Timeout:         time.Duration(getEnvInt("PAGSEGURO_TIMEOUT_MS", 3000)) * time.Millisecond,
			Scopes:          scopes,
			PixKey:          getEnv("PAGSEGURO_PIX_KEY", ""),
		},
		Webhook: WebhookConfig{
			URL:    getEnv("WEBHOOK_URL", ""),
			Secret: getEnv("WEBHOOK_SECRET", ""),
		},
	}

	// Validação básica
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate verifica se as configurações obrigatórias estão presentes
func (c *Config) validate() error {
	p := c.PagSeguro
	if p.ClientID == "" {
		return fmt.Errorf("PAGSEGURO_CLIENT_ID é obrigatório")
	}
	if p.ClientSecret == "" {
		return fmt.Errorf("PAGSEGURO_CLIENT_SECRET é obrigatório")
	}
	if p.P12Path == "" && (p.CertificatePath == "" || p.KeyPath == "") {
		return fmt.Errorf("informe PAGSEGURO_P12_PATH ou PAGSEGURO_CERTIFICATE_PATH e PAGSEGURO_KEY_PATH")
	}
	if p.TLSRelaxed && !p.Sandbox {
		return fmt.Errorf("PAGSEGURO_TLS_RELAXED só é permitido com PAGSEGURO_SANDBOX=true")
	}
	return nil
}

// Credentials lê o material de autenticação do disco. O .p12 tem prioridade
// sobre o par .crt/.key quando ambos estão configurados.
func (p PagSeguroConfig) Credentials() (pagseguro.Credentials, error) {
	if p.P12Path != "" {
		return pagseguro.LoadPKCS12Credentials(p.P12Path, p.P12Password, p.ClientID, p.ClientSecret)
	}
	return pagseguro.LoadCredentials(p.CertificatePath, p.KeyPath, p.ClientID, p.ClientSecret)
}

// ClientConfig monta a configuração do cliente PagSeguro
func (p PagSeguroConfig) ClientConfig() (pagseguro.ClientConfig, error) {
	creds, err := p.Credentials()
	if err != nil {
		return pagseguro.ClientConfig{}, err
	}

	tlsMode := pagseguro.TLSStrict
	if p.TLSRelaxed {
		tlsMode = pagseguro.TLSRelaxedSandbox
	}

	return pagseguro.ClientConfig{
		Credentials:     creds,
		Sandbox:         p.Sandbox,
		Timeout:         p.Timeout,
		TLSVerification: tlsMode,
	}, nil
}

// ParseScopes converte uma lista separada por vírgula ou espaço em escopos.
// Vazio retorna todos os escopos.
func ParseScopes(raw string) ([]pagseguro.Scope, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) == 0 {
		return append([]pagseguro.Scope(nil), pagseguro.AllScopes...), nil
	}

	scopes := make([]pagseguro.Scope, 0, len(fields))
	for _, f := range fields {
		s := pagseguro.Scope(f)
		if !s.IsValid() {
			return nil, fmt.Errorf("escopo inválido em PAGSEGURO_SCOPES: %q", f)
		}
		scopes = append(scopes, s)
	}
	return scopes, nil
}

// IsDevelopment retorna true se estiver em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction retorna true se estiver em ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv obtém uma variável de ambiente ou retorna o valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool obtém uma variável de ambiente como bool
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvInt obtém uma variável de ambiente como int
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}
