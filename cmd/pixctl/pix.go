package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/magnani/pagseguro-pix/internal/adapters/pagseguro"
)

var (
	pixFrom    string
	pixTo      string
	pixTxID    string
	pixCPF     string
	pixCNPJ    string
	pixPage    int
	pixPerPage int

	refundAmount string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Autentica e mostra os dados da sessão (sem o token)",
	Args:  cobra.NoArgs,
	RunE: withClient(func(_ context.Context, c *pagseguro.Client, out io.Writer) error {
		s, _ := c.Session()
		return printJSON(out, map[string]interface{}{
			"base_url":   c.BaseURL(),
			"sandbox":    c.Sandbox(),
			"token_type": s.TokenType,
			"scope":      s.Scope,
			"expires_at": s.ExpiresAt().Format(time.RFC3339),
		})
	}),
}

var pixCmd = &cobra.Command{
	Use:   "pix",
	Short: "PIX recebidos",
}

var pixGetCmd = &cobra.Command{
	Use:   "get <endToEndId>",
	Short: "Consulta um PIX recebido",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			pix, err := c.GetReceivedPix(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(out, pix)
		})(cmd, args)
	},
}

var pixListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista PIX recebidos por período",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := periodFlags(pixFrom, pixTo, time.Now())
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			list, err := c.GetReceivedPixList(ctx, pagseguro.ReceivedPixListQuery{
				Inicio:         from,
				Fim:            to,
				TxID:           pixTxID,
				CPF:            pixCPF,
				CNPJ:           pixCNPJ,
				PaginaAtual:    pixPage,
				ItensPorPagina: pixPerPage,
			})
			if err != nil {
				return err
			}
			return printJSON(out, list)
		})(cmd, args)
	},
}

var pixPayCmd = &cobra.Command{
	Use:   "pay <txid>",
	Short: "Simula o pagamento de uma cobrança (somente sandbox)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			if err := c.PayPix(ctx, args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "cobrança %s paga\n", args[0])
			return err
		})(cmd, args)
	},
}

var refundCmd = &cobra.Command{
	Use:   "refund",
	Short: "Devoluções de PIX recebidos",
}

var refundRequestCmd = &cobra.Command{
	Use:   "request <endToEndId> <id>",
	Short: "Solicita uma devolução",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			refund, err := c.RequestRefundCharge(ctx, pagseguro.RefundRequest{
				EndToEndID: args[0],
				ID:         args[1],
				Valor:      refundAmount,
			})
			if err != nil {
				return err
			}
			return printJSON(out, refund)
		})(cmd, args)
	},
}

var refundGetCmd = &cobra.Command{
	Use:   "get <endToEndId> <id>",
	Short: "Consulta uma devolução",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			refund, err := c.ConsultChargeRefund(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(out, refund)
		})(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(authCmd, pixCmd, refundCmd)
	pixCmd.AddCommand(pixGetCmd, pixListCmd, pixPayCmd)
	refundCmd.AddCommand(refundRequestCmd, refundGetCmd)

	list := pixListCmd.Flags()
	list.StringVar(&pixFrom, "from", "", "Início do período (RFC 3339 ou AAAA-MM-DD; padrão: 24h atrás)")
	list.StringVar(&pixTo, "to", "", "Fim do período (padrão: agora)")
	list.StringVar(&pixTxID, "txid", "", "Filtra por txid")
	list.StringVar(&pixCPF, "cpf", "", "Filtra por CPF do pagador")
	list.StringVar(&pixCNPJ, "cnpj", "", "Filtra por CNPJ do pagador")
	list.IntVar(&pixPage, "page", 0, "Página (começa em 0)")
	list.IntVar(&pixPerPage, "per-page", 0, "Itens por página")

	refundRequestCmd.Flags().StringVar(&refundAmount, "amount", "", "Valor a devolver no formato 123.45")
	_ = refundRequestCmd.MarkFlagRequired("amount")
}
