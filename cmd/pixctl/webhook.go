package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/magnani/pagseguro-pix/internal/adapters/pagseguro"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Webhooks de notificação por chave PIX",
}

var webhookSetCmd = &cobra.Command{
	Use:   "set <chave> <url>",
	Short: "Configura a URL de notificação de uma chave",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			if err := c.ConfigureWebhook(ctx, args[0], args[1]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "webhook configurado para %s\n", args[0])
			return err
		})(cmd, args)
	},
}

var webhookGetCmd = &cobra.Command{
	Use:   "get <chave>",
	Short: "Consulta o webhook de uma chave",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			webhook, err := c.GetWebhook(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(out, webhook)
		})(cmd, args)
	},
}

var webhookDeleteCmd = &cobra.Command{
	Use:   "delete <chave>",
	Short: "Remove o webhook de uma chave",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			if err := c.CancelWebhook(ctx, args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "webhook removido de %s\n", args[0])
			return err
		})(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(webhookCmd)
	webhookCmd.AddCommand(webhookSetCmd, webhookGetCmd, webhookDeleteCmd)
}
