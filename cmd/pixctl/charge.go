package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/magnani/pagseguro-pix/internal/adapters/pagseguro"
)

var chargeCmd = &cobra.Command{
	Use:   "charge",
	Short: "Cobranças imediatas (cob)",
}

var (
	chargeTxID        string
	chargeAmount      string
	chargeKey         string
	chargeExpires     int
	chargeDescription string
	chargeName        string
	chargeCPF         string
	chargeCNPJ        string
	chargeRevision    int
	chargeFrom        string
	chargeTo          string
	chargeStatus      string
)

var chargeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Cria uma cobrança imediata",
	Args:  cobra.NoArgs,
	RunE: withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
		txid := chargeTxID
		if txid == "" {
			txid = pagseguro.NewTxID()
		}
		if !pagseguro.ValidTxID(txid) {
			return fmt.Errorf("txid inválido %q: 26 a 35 caracteres alfanuméricos", txid)
		}

		req := pagseguro.CreateChargeRequest{
			Calendario:         &pagseguro.Calendar{Expiracao: chargeExpires},
			Valor:              pagseguro.Amount{Original: chargeAmount},
			Chave:              chargeKey,
			SolicitacaoPagador: chargeDescription,
		}
		if chargeCPF != "" || chargeCNPJ != "" {
			req.Devedor = &pagseguro.Debtor{CPF: chargeCPF, CNPJ: chargeCNPJ, Nome: chargeName}
		}

		charge, err := c.CreateCharge(ctx, txid, req)
		if err != nil {
			return err
		}
		return printJSON(out, charge)
	}),
}

var chargeGetCmd = &cobra.Command{
	Use:   "get <txid>",
	Short: "Consulta uma cobrança",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			var rev *int
			if cmd.Flags().Changed("revision") {
				rev = &chargeRevision
			}
			charge, err := c.GetCharge(ctx, args[0], rev)
			if err != nil {
				return err
			}
			return printJSON(out, charge)
		})(cmd, args)
	},
}

var chargeListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista cobranças por período",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := periodFlags(chargeFrom, chargeTo, time.Now())
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			charges, err := c.GetChargeList(ctx, pagseguro.ChargeListQuery{
				Inicio: from,
				Fim:    to,
				TxID:   chargeTxID,
				Status: pagseguro.ChargeStatus(chargeStatus),
				CPF:    chargeCPF,
				CNPJ:   chargeCNPJ,
			})
			if err != nil {
				return err
			}
			return printJSON(out, charges)
		})(cmd, args)
	},
}

var chargeReviseCmd = &cobra.Command{
	Use:   "revise <txid>",
	Short: "Revisa valor ou descrição de uma cobrança",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var update pagseguro.ReviseChargeRequest
		if cmd.Flags().Changed("amount") {
			update.Valor = &pagseguro.Amount{Original: chargeAmount}
		}
		if cmd.Flags().Changed("description") {
			update.SolicitacaoPagador = &chargeDescription
		}
		if update.Valor == nil && update.SolicitacaoPagador == nil {
			return fmt.Errorf("informe --amount e/ou --description")
		}

		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			charge, err := c.ReviseCharge(ctx, args[0], update)
			if err != nil {
				return err
			}
			return printJSON(out, charge)
		})(cmd, args)
	},
}

var chargeCancelCmd = &cobra.Command{
	Use:   "cancel <txid>",
	Short: "Remove uma cobrança ativa",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			charge, err := c.CancelCharge(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(out, charge)
		})(cmd, args)
	},
}

var chargeRecoverCmd = &cobra.Command{
	Use:   "recover <location>",
	Short: "Recupera o payload JWS de uma cobrança a partir do location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *pagseguro.Client, out io.Writer) error {
			payload, err := c.RecoveryCharge(ctx, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, payload)
			return err
		})(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(chargeCmd)
	chargeCmd.AddCommand(chargeCreateCmd, chargeGetCmd, chargeListCmd, chargeReviseCmd, chargeCancelCmd, chargeRecoverCmd)

	create := chargeCreateCmd.Flags()
	create.StringVar(&chargeTxID, "txid", "", "txid da cobrança (gerado se vazio)")
	create.StringVar(&chargeAmount, "amount", "", "Valor no formato 123.45")
	create.StringVar(&chargeKey, "key", "", "Chave PIX do recebedor")
	create.IntVar(&chargeExpires, "expires", 3600, "Expiração em segundos")
	create.StringVar(&chargeDescription, "description", "", "Texto apresentado ao pagador")
	create.StringVar(&chargeName, "name", "", "Nome do devedor")
	create.StringVar(&chargeCPF, "cpf", "", "CPF do devedor")
	create.StringVar(&chargeCNPJ, "cnpj", "", "CNPJ do devedor")
	_ = chargeCreateCmd.MarkFlagRequired("amount")
	_ = chargeCreateCmd.MarkFlagRequired("key")

	chargeGetCmd.Flags().IntVar(&chargeRevision, "revision", 0, "Revisão a consultar (padrão: última conhecida)")

	list := chargeListCmd.Flags()
	list.StringVar(&chargeFrom, "from", "", "Início do período (RFC 3339 ou AAAA-MM-DD; padrão: 24h atrás)")
	list.StringVar(&chargeTo, "to", "", "Fim do período (padrão: agora)")
	list.StringVar(&chargeTxID, "txid", "", "Filtra por txid")
	list.StringVar(&chargeStatus, "status", "", "Filtra por status (ATIVA, CONCLUIDA, ...)")
	list.StringVar(&chargeCPF, "cpf", "", "Filtra por CPF do devedor")
	list.StringVar(&chargeCNPJ, "cnpj", "", "Filtra por CNPJ do devedor")

	revise := chargeReviseCmd.Flags()
	revise.StringVar(&chargeAmount, "amount", "", "Novo valor")
	revise.StringVar(&chargeDescription, "description", "", "Nova solicitação ao pagador")
}
