// Package main é o ponto de entrada da API PIX PagSeguro
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/magnani/pagseguro-pix/internal/adapters/pagseguro"
	"github.com/magnani/pagseguro-pix/internal/config"
	"github.com/magnani/pagseguro-pix/internal/handlers"
	"github.com/magnani/pagseguro-pix/internal/logger"
	"github.com/magnani/pagseguro-pix/internal/ports"
)

func main() {
	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configurações")
	}
	if err := logger.Setup(cfg.LogLevel, cfg.IsProduction()); err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar logs")
	}

	log := logger.NewModuleLogger("api")
	log.WithFields(logrus.Fields{
		"env":     cfg.Env,
		"sandbox": cfg.PagSeguro.Sandbox,
	}).Info("Iniciando API PIX PagSeguro")

	// Autentica o cliente PagSeguro
	clientCfg, err := cfg.PagSeguro.ClientConfig()
	if err != nil {
		log.WithError(err).Fatal("Erro ao carregar credenciais")
	}

	authCtx, cancel := context.WithTimeout(context.Background(), 2*cfg.PagSeguro.Timeout)
	client, err := pagseguro.NewClient(clientCfg).Authenticate(authCtx, cfg.PagSeguro.Scopes...)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("Erro ao autenticar na PagSeguro")
	}
	log.WithField("base_url", client.BaseURL()).Info("Cliente PagSeguro autenticado")

	provider := pagseguro.NewProvider(client, cfg.PagSeguro.PixKey, cfg.Webhook.Secret)

	// Registra o webhook quando a URL pública está configurada
	if cfg.Webhook.URL != "" && cfg.PagSeguro.PixKey != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.PagSeguro.Timeout)
		if err := provider.RegisterWebhook(ctx, cfg.PagSeguro.PixKey, cfg.Webhook.URL); err != nil {
			log.WithError(err).Warn("Não foi possível registrar o webhook")
		} else {
			log.WithField("url", cfg.Webhook.URL).Info("Webhook registrado")
		}
		cancel()
	}

	webhookHandler := handlers.NewWebhookHandler(provider, handlePixReceived)
	pixHandler := handlers.NewPixHandler(provider)
	router := handlers.SetupRouter(webhookHandler, pixHandler, routerMode(cfg))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("Servidor HTTP iniciado")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Erro no servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Encerrando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Erro ao encerrar servidor HTTP")
	}
	log.Info("Servidor encerrado")
}

// handlePixReceived registra os PIX confirmados pelo webhook
func handlePixReceived(ctx context.Context, pix ports.PixPayment) error {
	logger.NewModuleLogger("pix").WithFields(logrus.Fields{
		"txid":       pix.TxID,
		"endToEndId": pix.EndToEndID,
		"valor":      pix.Amount,
		"horario":    pix.PaidAt,
	}).Info("Pagamento recebido")

	// TODO: conciliar com as cobranças persistidas quando houver repositório
	return nil
}

// routerMode retorna o modo do gin: debug só em desenvolvimento
func routerMode(cfg *config.Config) string {
	if cfg.IsDevelopment() {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
