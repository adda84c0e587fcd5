package cmd

import (
	"github.com/spf13/cobra"
)

// QueryCmd groups read-only lookups. There is no generated QueryClient
// to dial a node with (see DESIGN.md, "Query accessors"),
// so these subcommands are placeholders documenting which accessor a
// future RPC-backed client would call, rather than working queries.
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "epochvault read-only lookups",
		SuggestionsMinimumDistance: 2,
	}
	cmd.AddCommand(
		stubQueryCmd("latest-epoch", "keeper.GetLatestEpoch"),
		stubQueryCmd("epoch <index>", "keeper.GetEpoch"),
		stubQueryCmd("stake <owner>", "keeper.GetStake"),
		stubQueryCmd("winners-meta <epoch-index>", "keeper.GetEpochWinnersMeta"),
		stubQueryCmd("winners-page <epoch-index> <page>", "keeper.GetEpochWinnersPage"),
	)
	return cmd
}

func stubQueryCmd(use, accessor string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "not wired: no gRPC QueryServer to dial (would call " + accessor + ")",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("epochvaultd has no RPC client in this tree; read state through " + accessor + " directly against a synced node's store.")
			return nil
		},
	}
}
