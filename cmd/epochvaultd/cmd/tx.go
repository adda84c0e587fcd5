package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/prizevault/chain/x/epochvault/fixedpoint"
	"github.com/prizevault/chain/x/epochvault/types"
	"github.com/prizevault/chain/x/epochvault/yieldsplit"
)

// TxCmd groups the message-construction subcommands, one per operator
// action spec.md §6 exposes. Grounded on
// x/inference/module/commands.go's GrantMLOpsPermissionsCmd shape
// (client.GetClientTxContext/tx.NewFactoryCLI/flags.AddTxFlagsToCmd),
// but stopping short of an actual broadcast: the teacher's Msg types are
// proto.Message and ride Cosmos SDK's generated tx-signing pipeline;
// this tree's MsgX structs are hand-decoded plain Go structs (see
// x/epochvault/types/msgs.go's package doc comment) with no protoc step
// to produce the proto.Message plumbing BroadcastTx needs. Each
// subcommand here builds and validates its message and prints it;
// wiring that into an actual signed broadcast is future work once a
// protoc step exists for this module.
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "epochvault transaction subcommands",
		SuggestionsMinimumDistance: 2,
	}
	cmd.AddCommand(
		createEpochCmd(),
		requestStakeUpdateCmd(),
		approveStakeUpdateCmd(),
		completeStakeUpdateCmd(),
		yieldWithdrawCmd(),
		yieldDepositCmd(),
		fundJackpotCmd(),
		publishWinnersCmd(),
		claimWinningCmd(),
		withdrawVaultCmd(),
		rotateKeyCmd(),
	)
	return cmd
}

func mustAddr(s string) (sdk.AccAddress, error) {
	return sdk.AccAddressFromBech32(s)
}

func createEpochCmd() *cobra.Command {
	var jackpot, premium, probability, treasuryRatio string
	var tier2Share, tier3Share uint32
	var expectedEndAt int64

	cmd := &cobra.Command{
		Use:   "create-epoch <admin-address>",
		Short: "Build a CreateEpoch instruction (spec §4.4)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid admin address: %w", err)
			}
			j, err := fixedpoint.ParseUSDC(jackpot)
			if err != nil {
				return fmt.Errorf("invalid jackpot: %w", err)
			}
			p, err := fixedpoint.ParseInternal(premium)
			if err != nil {
				return fmt.Errorf("invalid premium: %w", err)
			}
			prob, err := fixedpoint.ParseInternal(probability)
			if err != nil {
				return fmt.Errorf("invalid probability: %w", err)
			}
			tr, err := fixedpoint.ParseInternal(treasuryRatio)
			if err != nil {
				return fmt.Errorf("invalid treasury-ratio: %w", err)
			}
			msg := &types.MsgCreateEpoch{
				Admin: admin,
				YieldSplitCfg: yieldsplit.Config{
					Jackpot:       j,
					Premium:       p,
					Probability:   prob,
					TreasuryRatio: tr,
					Tier2Share:    tier2Share,
					Tier3Share:    tier3Share,
				},
				ExpectedEndAt: expectedEndAt,
			}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&jackpot, "jackpot", "0", "frozen jackpot amount (USDC)")
	cmd.Flags().StringVar(&premium, "premium", "0", "yield-split premium")
	cmd.Flags().StringVar(&probability, "probability", "0", "jackpot draw probability")
	cmd.Flags().StringVar(&treasuryRatio, "treasury-ratio", "0", "treasury share of surplus yield")
	cmd.Flags().Uint32Var(&tier2Share, "tier2-share", 0, "tier 2 weight; tier 2 gets tier2/(tier2+tier3) of the prize pool (shares sum to at most 255)")
	cmd.Flags().Uint32Var(&tier3Share, "tier3-share", 0, "tier 3 weight; tier 3 gets the rest of the prize pool")
	cmd.Flags().Int64Var(&expectedEndAt, "expected-end-at", 0, "unix timestamp the epoch is expected to end by")
	return cmd
}

func requestStakeUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request-stake-update <owner-address> <signed-amount>",
		Short: "Build a RequestStakeUpdate instruction (spec §4.3); positive deposits, negative withdraws",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid owner address: %w", err)
			}
			amount, err := fixedpoint.ParseSigned(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			msg := &types.MsgRequestStakeUpdate{Owner: owner, Amount: amount}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
}

func approveStakeUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve-stake-update <admin-address> <owner-address>",
		Short: "Build an ApproveStakeUpdate instruction (spec §4.3)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid admin address: %w", err)
			}
			owner, err := mustAddr(args[1])
			if err != nil {
				return fmt.Errorf("invalid owner address: %w", err)
			}
			msg := &types.MsgApproveStakeUpdate{Admin: admin, Owner: owner}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
}

func completeStakeUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete-stake-update <payer-address> <owner-address>",
		Short: "Build a CompleteStakeUpdate instruction (spec §4.3)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payer, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid payer address: %w", err)
			}
			owner, err := mustAddr(args[1])
			if err != nil {
				return fmt.Errorf("invalid owner address: %w", err)
			}
			msg := &types.MsgCompleteStakeUpdate{Payer: payer, Owner: owner}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
}

func yieldWithdrawCmd() *cobra.Command {
	var numTickets uint64
	var ticketUnit string
	cmd := &cobra.Command{
		Use:   "yield-withdraw <investor-address>",
		Short: "Build a YieldWithdrawByInvestor instruction (spec §4.7)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			investor, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid investor address: %w", err)
			}
			unit, err := fixedpoint.ParseUSDC(ticketUnit)
			if err != nil {
				return fmt.Errorf("invalid ticket-unit: %w", err)
			}
			msg := &types.MsgYieldWithdrawByInvestor{
				Investor:    investor,
				TicketsInfo: types.TicketsInfo{NumTickets: numTickets, TicketUnit: unit},
			}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&numTickets, "num-tickets", 0, "outstanding ticket count this drain is sized against")
	cmd.Flags().StringVar(&ticketUnit, "ticket-unit", "0", "USDC value of one ticket")
	return cmd
}

func yieldDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yield-deposit <investor-address> <return-amount>",
		Short: "Build a YieldDepositByInvestor instruction (spec §4.7)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			investor, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid investor address: %w", err)
			}
			ret, err := fixedpoint.ParseUSDC(args[1])
			if err != nil {
				return fmt.Errorf("invalid return amount: %w", err)
			}
			msg := &types.MsgYieldDepositByInvestor{Investor: investor, ReturnAmount: ret}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
}

func fundJackpotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund-jackpot <funder-address> <epoch-index>",
		Short: "Build a FundJackpot instruction (spec §4.8); any funder may call it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			funder, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid funder address: %w", err)
			}
			var epochIndex uint64
			if _, err := fmt.Sscanf(args[1], "%d", &epochIndex); err != nil {
				return fmt.Errorf("invalid epoch index: %w", err)
			}
			msg := &types.MsgFundJackpot{Funder: funder, EpochIndex: epochIndex}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
}

// publishWinnersCmd reads a page of winners from a JSON file: the
// per-tier tallying PublishWinners carries is an off-chain indexer
// computation (spec §9), not something epochvaultd itself derives.
func publishWinnersCmd() *cobra.Command {
	var winnersFile string
	cmd := &cobra.Command{
		Use:   "publish-winners <admin-address> <epoch-index> <page>",
		Short: "Build a PublishWinners instruction from a JSON winners file (spec §4.6)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid admin address: %w", err)
			}
			var epochIndex uint64
			var page uint32
			if _, err := fmt.Sscanf(args[1], "%d", &epochIndex); err != nil {
				return fmt.Errorf("invalid epoch index: %w", err)
			}
			if _, err := fmt.Sscanf(args[2], "%d", &page); err != nil {
				return fmt.Errorf("invalid page: %w", err)
			}
			bz, err := os.ReadFile(winnersFile)
			if err != nil {
				return fmt.Errorf("reading winners file: %w", err)
			}
			var winners []types.Winner
			if err := json.Unmarshal(bz, &winners); err != nil {
				return fmt.Errorf("decoding winners file: %w", err)
			}
			msg := &types.MsgPublishWinners{Signer: admin, EpochIndex: epochIndex, Page: page, Winners: winners}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&winnersFile, "winners-file", "", "path to a JSON array of Winner entries for this page")
	return cmd
}

func claimWinningCmd() *cobra.Command {
	var tier uint8
	cmd := &cobra.Command{
		Use:   "claim-winning <owner-address> <epoch-index> <page> <winner-index>",
		Short: "Build a ClaimWinning instruction (spec §4.9)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid owner address: %w", err)
			}
			var epochIndex uint64
			var page, winnerIndex uint32
			if _, err := fmt.Sscanf(args[1], "%d", &epochIndex); err != nil {
				return fmt.Errorf("invalid epoch index: %w", err)
			}
			if _, err := fmt.Sscanf(args[2], "%d", &page); err != nil {
				return fmt.Errorf("invalid page: %w", err)
			}
			if _, err := fmt.Sscanf(args[3], "%d", &winnerIndex); err != nil {
				return fmt.Errorf("invalid winner index: %w", err)
			}
			msg := &types.MsgClaimWinning{
				Owner:       owner,
				EpochIndex:  epochIndex,
				Page:        page,
				WinnerIndex: winnerIndex,
				Tier:        types.Tier(tier),
			}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
	cmd.Flags().Uint8Var(&tier, "tier", uint8(types.TierOne), "winning tier (1, 2 or 3)")
	return cmd
}

func withdrawVaultCmd() *cobra.Command {
	var vaultName string
	cmd := &cobra.Command{
		Use:   "withdraw-vault <admin-address> <amount>",
		Short: "Build a WithdrawVault instruction (spec §4.8); vault is treasury or insurance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid admin address: %w", err)
			}
			amount, err := fixedpoint.ParseUSDC(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			var vault types.VaultRole
			switch vaultName {
			case "treasury":
				vault = types.WithdrawableVaultTreasury
			case "insurance":
				vault = types.WithdrawableVaultInsurance
			default:
				return fmt.Errorf("unknown vault %q, want treasury or insurance", vaultName)
			}
			msg := &types.MsgWithdrawVault{Admin: admin, Vault: vault, Amount: amount}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&vaultName, "vault", "treasury", "treasury or insurance")
	return cmd
}

func rotateKeyCmd() *cobra.Command {
	var targetName string
	cmd := &cobra.Command{
		Use:   "rotate-key <super-admin-address> <new-key-address>",
		Short: "Build a RotateKey instruction (spec §4.8)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			superAdmin, err := mustAddr(args[0])
			if err != nil {
				return fmt.Errorf("invalid super-admin address: %w", err)
			}
			newKey, err := mustAddr(args[1])
			if err != nil {
				return fmt.Errorf("invalid new key address: %w", err)
			}
			var target types.Role
			switch targetName {
			case "super-admin":
				target = types.RoleSuperAdmin
			case "admin":
				target = types.RoleAdmin
			case "investor":
				target = types.RoleInvestor
			default:
				return fmt.Errorf("unknown target %q, want super-admin, admin or investor", targetName)
			}
			msg := &types.MsgRotateKey{SuperAdmin: superAdmin, Target: target, NewKey: newKey}
			cmd.Printf("%+v\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&targetName, "target", "admin", "super-admin, admin or investor")
	return cmd
}
