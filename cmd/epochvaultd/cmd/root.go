package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the epochvaultd root command. Grounded on
// cmd/inferenced/main.go's svrcmd.Execute(rootCmd, ...) shape, trimmed
// down to a plain cobra root: this tree has no app.go/depinject wiring
// for a full node binary (see x/epochvault/module/module.go's doc
// comment), so epochvaultd is a message-construction and local-query
// tool rather than a `start`-able validator node.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "epochvaultd",
		Short: "epochvaultd builds and inspects epochvault instructions",
	}

	rootCmd.AddCommand(
		TxCmd(),
		QueryCmd(),
	)

	return rootCmd
}
