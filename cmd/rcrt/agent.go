package main

import (
	"github.com/spf13/cobra"
)

var flagRoles []string

func init() {
	registerAgentCmd.Flags().StringSliceVar(&flagRoles, "role", nil, "role to grant (repeatable)")
}

var registerAgentCmd = &cobra.Command{
	Use:   "register-agent <agent-id>",
	Short: "Register an agent with a set of roles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := client.RegisterAgent(cmd.Context(), args[0], flagRoles)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var setSecretCmd = &cobra.Command{
	Use:   "set-secret <agent-id> <secret>",
	Short: "Set the agent's webhook signing secret",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := client.SetAgentSecret(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var registerWebhookCmd = &cobra.Command{
	Use:   "register-webhook <agent-id> <url>",
	Short: "Add a webhook delivery URL to an agent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := client.RegisterWebhook(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}
