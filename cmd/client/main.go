// Command mycard - CLI клиент gRPC API визиток: create, get, watch.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultAddress = "localhost:50051"

var (
	serverAddress string
	outputFormat  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// Адрес сервера из переменной окружения или значение по умолчанию
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}

	rootCmd := &cobra.Command{
		Use:           "mycard",
		Short:         "Client for the MyCard business card service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch outputFormat {
			case formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (use %s or %s)", outputFormat, formatJSON, formatYAML)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&serverAddress, "addr", address, "gRPC server address (env SERVER_ADDRESS)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatJSON, "output format: json or yaml")

	rootCmd.AddCommand(newCreateCmd(), newGetCmd(), newWatchCmd())

	return rootCmd
}
