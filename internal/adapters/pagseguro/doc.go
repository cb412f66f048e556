// Package pagseguro implementa o cliente da API PIX da PagSeguro.
//
// Este pacote implementa:
//   - Autenticação OAuth2 (client credentials) sobre mTLS
//   - Cobranças imediatas (cob): criação, consulta, listagem, revisão
//   - Devoluções (devolucao) de PIX recebidos
//   - Consulta de PIX recebidos
//   - Configuração de webhooks e parsing das notificações
//   - Simulação de pagamento (apenas sandbox)
//
// # Autenticação
//
// Você precisa de:
//   - Client ID e Client Secret (obtidos com a equipe de homologação da PagSeguro)
//   - Certificado e chave privada (.crt/.key ou .p12)
//
// O token é obtido uma única vez em Authenticate e usado até o cliente ser
// descartado. Não há refresh automático: expires_in é guardado na sessão
// mas não é verificado localmente.
//
// # Início Rápido
//
//	creds, err := pagseguro.LoadCredentials("cert.crt", "cert.key", clientID, clientSecret)
//	client, err := pagseguro.NewClient(pagseguro.ClientConfig{
//	    Credentials: creds,
//	    Sandbox:     true,
//	}).Authenticate(ctx, pagseguro.ScopeCobWrite, pagseguro.ScopeCobRead)
//
//	charge, err := client.CreateCharge(ctx, pagseguro.NewTxID(), pagseguro.CreateChargeRequest{
//	    Calendario: &pagseguro.Calendar{Expiracao: 3600},
//	    Valor:      pagseguro.Amount{Original: "10.00"},
//	    Chave:      "sua-chave-pix",
//	})
//
// # Segurança
//
// TLSRelaxedSandbox desliga a verificação do certificado do servidor e só é
// aceito com Sandbox=true. Em produção use sempre TLSStrict (padrão).
//
// # Querystring
//
// As listagens montam a querystring sem percent-encoding, na ordem dos
// parâmetros. Datas RFC 3339 e documentos numéricos não precisam de escape.
//
// # Tratamento de Erros
//
// Todos os erros são tipados e podem ser testados com errors.Is / errors.As:
//
//	if errors.Is(err, pagseguro.ErrNotAuthenticated) {
//	    // Authenticate não foi chamado ou falhou
//	}
//	if pagseguro.IsNotFound(err) {
//	    // Recurso não existe
//	}
//	var apiErr *pagseguro.APIError
//	if errors.As(err, &apiErr) {
//	    log.Println(apiErr.StatusCode, string(apiErr.Body))
//	}
package pagseguro
