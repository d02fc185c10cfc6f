package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pribehari/forms-api/internal/config"
	"github.com/pribehari/forms-api/internal/payment"
	"github.com/pribehari/forms-api/internal/qr"
	"github.com/pribehari/forms-api/internal/validation"
)

// orderFlags are shared by payload and qr.
type orderFlags struct {
	books    int
	extra    string
	vs       string
	account  string
	currency string
	message  string
}

func (f *orderFlags) register(cmd *cobra.Command, cfg config.Config) {
	cmd.Flags().IntVarP(&f.books, "books", "b", cfg.MinBookCount, "Number of books")
	cmd.Flags().StringVarP(&f.extra, "extra", "e", "0", "Voluntary extra amount")
	cmd.Flags().StringVar(&f.vs, "vs", "", "Variable symbol (generated when empty)")
	cmd.Flags().StringVar(&f.account, "account", cfg.AccountIBAN, "Receiving IBAN")
	cmd.Flags().StringVar(&f.currency, "currency", cfg.Currency, "Currency code")
	cmd.Flags().StringVarP(&f.message, "message", "m", cfg.PaymentMessage, "Payment message")
}

func (f *orderFlags) payload(cfg config.Config) (payment.Payload, payment.Quote) {
	calc := payment.Calculator{
		UnitPrice:   cfg.BookPrice,
		FixedFee:    cfg.ShippingFee,
		MinQuantity: cfg.MinBookCount,
	}
	quote := calc.Quote(f.books, validation.NumberOf(f.extra).DecimalPrefix())

	vs := f.vs
	if vs == "" {
		vs = payment.NewSymbolGenerator(cfg.Location).Next()
	}
	return payment.Payload{
		Account:        f.account,
		Amount:         quote.Total,
		Currency:       f.currency,
		VariableSymbol: vs,
		Message:        f.message,
	}, quote
}

func payloadCmd(cfg config.Config) *cobra.Command {
	var f orderFlags
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Print the SPAYD string for an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := f.payload(cfg)
			fmt.Fprintln(cmd.OutOrStdout(), p.Encode())
			return nil
		},
	}
	f.register(cmd, cfg)
	return cmd
}

func qrCmd(cfg config.Config) *cobra.Command {
	var (
		f     orderFlags
		out   string
		scale int
	)
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Write the payment QR code for an order as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, quote := f.payload(cfg)

			opts := qr.DefaultOptions
			opts.Scale = scale
			png, err := qr.NewRenderer(opts).PNG(p.Encode())
			if err != nil {
				return fmt.Errorf("render qr: %w", err)
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Amount:   %s %s\n", quote.Total.StringFixed(2), p.Currency)
			fmt.Fprintf(w, "VS:       %s\n", p.VariableSymbol)
			fmt.Fprintf(w, "Written:  %s (%d bytes)\n", out, len(png))
			return nil
		},
	}
	f.register(cmd, cfg)
	cmd.Flags().StringVarP(&out, "out", "o", "payment.png", "Output file")
	cmd.Flags().IntVar(&scale, "scale", qr.DefaultOptions.Scale, "Pixels per module")
	return cmd
}

func vsCmd(cfg config.Config) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "vs",
		Short: "Print freshly generated variable symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := payment.NewSymbolGenerator(cfg.Location)
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), gen.Next())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "How many symbols to print")
	return cmd
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [payload]",
		Short: "Parse a SPAYD string and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := payment.ParsePayload(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Account:  %s\n", p.Account)
			fmt.Fprintf(w, "Amount:   %s\n", p.Amount.StringFixed(2))
			fmt.Fprintf(w, "Currency: %s\n", p.Currency)
			fmt.Fprintf(w, "VS:       %s\n", valueOrNone(p.VariableSymbol))
			fmt.Fprintf(w, "Message:  %s\n", valueOrNone(p.Message))
			return nil
		},
	}
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
