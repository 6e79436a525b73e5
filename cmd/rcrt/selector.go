package main

import (
	"github.com/spf13/cobra"
)

var (
	flagAnyTags    []string
	flagAllTags    []string
	flagSchemaName string
)

func init() {
	createSelectorCmd.Flags().StringSliceVar(&flagAnyTags, "any", nil, "match breadcrumbs with any of these tags")
	createSelectorCmd.Flags().StringSliceVar(&flagAllTags, "all", nil, "match breadcrumbs with all of these tags")
	createSelectorCmd.Flags().StringVar(&flagSchemaName, "schema", "", "match breadcrumbs with this schema name")
}

var createSelectorCmd = &cobra.Command{
	Use:   "create-selector",
	Short: "Create a subscription selector",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := client.CreateSelector(cmd.Context(), flagAnyTags, flagAllTags, flagSchemaName)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}
