package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pribehari/forms-api/internal/config"
)

var Version = "dev"

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "paycli",
		Short:         "Payment QR tools for the pre-order and donation forms",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(payloadCmd(cfg))
	rootCmd.AddCommand(qrCmd(cfg))
	rootCmd.AddCommand(vsCmd(cfg))
	rootCmd.AddCommand(decodeCmd())

	return rootCmd
}
