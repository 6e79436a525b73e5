// Package main provides the rcrt CLI, a thin command-per-endpoint wrapper
// around the client for poking a breadcrumb server by hand.
package main

import (
	"fmt"
	"os"

	"github.com/rcrt-labs/rcrt-go/internal/config"
	"github.com/rcrt-labs/rcrt-go/rcrt"
	"github.com/spf13/cobra"
)

var (
	// flagServer and flagToken override the env-derived defaults.
	flagServer string
	flagToken  string

	// client is the global client instance, initialized on startup.
	client *rcrt.Client
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "rcrt",
	Short:             "rcrt is a client for the breadcrumb service",
	PersistentPreRunE: initClient,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "server base URL (default: RCRT_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token (default: RCRT_TOKEN)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(getFullCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(registerAgentCmd)
	rootCmd.AddCommand(setSecretCmd)
	rootCmd.AddCommand(registerWebhookCmd)
	rootCmd.AddCommand(createSelectorCmd)
}

// initClient loads env config and builds the shared client.
func initClient(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	baseURL := flagServer
	if baseURL == "" {
		baseURL = config.BaseURL()
	}
	token := flagToken
	if token == "" {
		token = config.Token()
	}

	opts := []rcrt.Option{rcrt.WithTimeout(config.Timeout())}
	if token != "" {
		opts = append(opts, rcrt.WithToken(token))
	}
	client = rcrt.New(baseURL, opts...)
	return nil
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := client.Health(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}
