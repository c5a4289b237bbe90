package main

import (
	"github.com/m-zajac/portfoliobuilder/internal/extension/popup"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the backend server is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := popup.NewState()
		ctrl := popup.NewController(
			&state,
			newBackendClient(),
			&terminalNotifier{out: cmd.OutOrStdout(), tr: tr},
			tr,
			l.WithField("component", "popup"),
		)
		return ctrl.CheckServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
