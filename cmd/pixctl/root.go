package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/magnani/pagseguro-pix/internal/adapters/pagseguro"
	"github.com/magnani/pagseguro-pix/internal/config"
	"github.com/magnani/pagseguro-pix/internal/logger"
)

var (
	scopesFlag string
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pixctl",
	Short: "Cliente de linha de comando da API PIX PagSeguro",
	Long: "Opera cobranças, devoluções, PIX recebidos e webhooks da API PIX PagSeguro.\n" +
		"As credenciais são lidas das variáveis PAGSEGURO_* (ou do arquivo .env).",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		if err := logger.Setup(level, false); err != nil {
			return err
		}
		logger.SetOutput(os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&scopesFlag, "scopes", "", "Escopos OAuth2 separados por vírgula (padrão: PAGSEGURO_SCOPES)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Tempo máximo do comando, incluindo a autenticação")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Logs detalhados em stderr")
}

// Execute roda o comando raiz
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session carrega a configuração e autentica um cliente para o comando
func session(cmd *cobra.Command) (*pagseguro.Client, context.Context, context.CancelFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	scopes := cfg.PagSeguro.Scopes
	if scopesFlag != "" {
		if scopes, err = config.ParseScopes(scopesFlag); err != nil {
			return nil, nil, nil, err
		}
	}

	clientCfg, err := cfg.PagSeguro.ClientConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	client, err := pagseguro.NewClient(clientCfg).Authenticate(ctx, scopes...)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	logger.NewModuleLogger("pixctl").WithFields(logrus.Fields{
		"base_url": client.BaseURL(),
		"sandbox":  client.Sandbox(),
	}).Debug("Cliente autenticado")

	return client, ctx, cancel, nil
}

// withClient autentica e executa fn, liberando o contexto ao final
func withClient(fn func(ctx context.Context, c *pagseguro.Client, out io.Writer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		client, ctx, cancel, err := session(cmd)
		if err != nil {
			return err
		}
		defer cancel()
		return fn(ctx, client, cmd.OutOrStdout())
	}
}

// printJSON escreve v indentado
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseDate aceita RFC 3339 ou AAAA-MM-DD (meia-noite UTC)
func parseDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return pagseguro.FormatTime(t), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return pagseguro.FormatTime(t), nil
	}
	return "", fmt.Errorf("data inválida %q: use RFC 3339 ou AAAA-MM-DD", value)
}

// periodFlags resolve --from/--to; sem valores, usa as últimas 24 horas
func periodFlags(from, to string, now time.Time) (string, string, error) {
	if from == "" {
		from = pagseguro.FormatTime(now.Add(-24 * time.Hour))
	} else {
		var err error
		if from, err = parseDate(from); err != nil {
			return "", "", err
		}
	}
	if to == "" {
		to = pagseguro.FormatTime(now)
	} else {
		var err error
		if to, err = parseDate(to); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}
