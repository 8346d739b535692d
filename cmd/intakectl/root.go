package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "intakectl",
		Short:         "Operator tools for the university intake assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newChatCmd(), newRouteCmd(), newSheetsAuthCmd())
	return root
}
