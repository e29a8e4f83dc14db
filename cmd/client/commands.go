package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	grpcapi "mycard-service/internal/api/grpc"
	"mycard-service/internal/converter"
	"mycard-service/internal/model"
)

const requestTimeout = 10 * time.Second

// flagNames соответствие флагов CLI полям формы
var flagNames = map[string]string{
	"name":      model.FieldFullName,
	"job-title": model.FieldJobTitle,
	"bio":       model.FieldBio,
	"email":     model.FieldEmail,
	"phone":     model.FieldPhone,
	"linkedin":  model.FieldLinkedIn,
	"github":    model.FieldGitHub,
	"theme":     model.FieldTheme,
}

func newCreateCmd() *cobra.Command {
	values := make(map[string]*string, len(flagNames))

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a business card",
		Long: `Create a business card from the given fields.

Validation happens on the server; every invalid field is reported at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := make(map[string]string, len(values))
			for flag, v := range values {
				fields[flagNames[flag]] = *v
			}

			return withClient(cmd, func(ctx context.Context, client *grpcapi.Client) error {
				card, err := client.CreateCard(ctx, fields)
				if err != nil {
					return describeError(err)
				}
				return printCard(cmd.OutOrStdout(), outputFormat, card)
			})
		},
	}

	for flag := range flagNames {
		values[flag] = cmd.Flags().String(flag, "", "card "+flag)
	}
	cmd.Flags().Lookup("theme").Usage = "card theme: modern, professional or creative"

	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a business card by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client *grpcapi.Client) error {
				card, err := client.GetCard(ctx, args[0])
				if err != nil {
					return describeError(err)
				}
				return printCard(cmd.OutOrStdout(), outputFormat, card)
			})
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print business cards as they are created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := grpcapi.NewClient(serverAddress)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer client.Close()

			// Стрим работает до Ctrl+C
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = client.WatchCards(ctx, func(card *converter.CardDTO) error {
				return printCard(cmd.OutOrStdout(), outputFormat, card)
			})
			if err != nil && ctx.Err() == nil {
				return describeError(err)
			}
			return nil
		},
	}
}

// withClient создает клиента и выполняет fn с таймаутом запроса
func withClient(cmd *cobra.Command, fn func(ctx context.Context, client *grpcapi.Client) error) error {
	client, err := grpcapi.NewClient(serverAddress)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	return fn(ctx, client)
}
