package main

import (
	"github.com/spf13/cobra"
)

var (
	flagIdempotencyKey string
	flagTag            string
	flagExpectVersion  int
)

func init() {
	createCmd.Flags().StringVar(&flagIdempotencyKey, "idempotency-key", "", "dedupe key for retried creates")
	listCmd.Flags().StringVar(&flagTag, "tag", "", "filter by tag")
	updateCmd.Flags().IntVar(&flagExpectVersion, "expect-version", -1, "fail unless the breadcrumb is at this version")
}

var createCmd = &cobra.Command{
	Use:   "create <json|->",
	Short: "Create a breadcrumb from a JSON body ('-' reads stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readObject(args[0])
		if err != nil {
			return err
		}
		created, err := client.CreateBreadcrumb(cmd.Context(), body, flagIdempotencyKey)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a breadcrumb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bc, err := client.GetBreadcrumb(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(bc)
	},
}

var getFullCmd = &cobra.Command{
	Use:   "get-full <id>",
	Short: "Fetch the expanded view of a breadcrumb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bc, err := client.GetBreadcrumbFull(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(bc)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List breadcrumbs, optionally filtered by tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bcs, err := client.ListBreadcrumbs(cmd.Context(), flagTag)
		if err != nil {
			return err
		}
		return printJSON(bcs)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <json|->",
	Short: "Patch a breadcrumb, optionally conditional on a version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		update, err := readObject(args[1])
		if err != nil {
			return err
		}
		var expected *int
		if flagExpectVersion >= 0 {
			expected = &flagExpectVersion
		}
		updated, err := client.UpdateBreadcrumb(cmd.Context(), args[0], update, expected)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a breadcrumb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := client.DeleteBreadcrumb(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}
