package pagseguro

import "time"

const (
	// Produção
	BaseURLProd = "https://secure.api.pagseguro.com"

	// Sandbox/Homologação
	BaseURLSandbox = "https://secure.sandbox.api.pagseguro.com"
)

const (
	pathOAuth2   = "/pix/oauth2"
	pathCob      = "/instant-payments/cob"
	pathPix      = "/instant-payments/pix"
	pathWebhook  = "/instant-payments/webhook"
	pathPayPix   = "/pix/pay"
	grantType    = "client_credentials"
	paidStatus   = "PAID"
	bearerPrefix = "Bearer "
	basicPrefix  = "Basic "
)

// DefaultTimeout é usado quando ClientConfig.Timeout não é informado
const DefaultTimeout = 3000 * time.Millisecond
