package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/bookkeeper/types"
)

// Keeper wraps a bank keeper with a double-entry audit log. Every vault
// movement in x/epochvault goes through here instead of calling the bank
// keeper directly, so the movement between vault sub-accounts (deposit,
// pending-deposit, treasury, insurance, the three prize tiers) leaves a
// reviewable trail distinct from the underlying on-chain token transfer.
type Keeper struct {
	logger log.Logger

	bankKeeper types.BankKeeper
	logConfig  LogConfig
}

// LogConfig controls which audit trail(s) logTransaction writes.
type LogConfig struct {
	DoubleEntry bool   `json:"double_entry"`
	SimpleEntry bool   `json:"simple_entry"`
	LogLevel    string `json:"log_level"`
}

// DefaultLogConfig enables the double-entry trail at info level, with the
// simple-entry trail off. CheckInvariant does not read these logs; it
// compares live bank balances.
func DefaultLogConfig() LogConfig {
	return LogConfig{DoubleEntry: true, LogLevel: "info"}
}

func NewKeeper(logger log.Logger, bankKeeper types.BankKeeper, logConfig LogConfig) Keeper {
	return Keeper{
		logger:     logger,
		bankKeeper: bankKeeper,
		logConfig:  logConfig,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, addr, denom)
}

func (k Keeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoins(ctx, fromAddr, toAddr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, toAddr.String(), fromAddr.String(), coin, memo, "")
	}
	return nil
}

func (k Keeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, senderModule, recipientAddr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipientAddr.String(), senderModule, coin, memo, "")
	}
	return nil
}

func (k Keeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, recipientModule, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipientModule, senderAddr.String(), coin, memo, "")
	}
	return nil
}

func (k Keeper) SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins, memo string) error {
	if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, senderModule, recipientModule, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipientModule, senderModule, coin, memo, "")
	}
	return nil
}

func (k Keeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		return nil
	}
	if err := k.bankKeeper.MintCoins(ctx, moduleName, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, moduleName, "supply", coin, memo, "")
	}
	return nil
}

func (k Keeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		return nil
	}
	if err := k.bankKeeper.BurnCoins(ctx, moduleName, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, "supply", moduleName, coin, memo, "")
	}
	return nil
}

// LogSubAccountTransaction records a movement between two vault
// sub-accounts under their sub-account labels. It moves no coins itself;
// x/epochvault calls it after the SendCoins between the two vaults'
// derived addresses, so the trail names, say, the prize-tier-2 vault
// paying treasury rather than two raw addresses.
func (k Keeper) LogSubAccountTransaction(ctx context.Context, recipient, sender, subAccount string, amt sdk.Coin, memo string) {
	k.logTransaction(ctx, recipient+"_"+subAccount, sender+"_"+subAccount, amt, memo, subAccount)
}

func (k Keeper) logTransaction(ctx context.Context, to, from string, coin sdk.Coin, memo, subAccount string) {
	if coin.Amount.IsZero() {
		return
	}
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	logFunc := k.getLogFunction(k.logConfig.LogLevel)
	amount := coin.Amount.Int64()
	if k.logConfig.DoubleEntry {
		logFunc("TransactionAudit", "type", "debit", "account", to, "counteraccount", from, "amount", amount, "denom", coin.Denom, "memo", memo, "signedAmount", amount, "height", height)
		logFunc("TransactionAudit", "type", "credit", "account", from, "counteraccount", to, "amount", amount, "denom", coin.Denom, "memo", memo, "signedAmount", -amount, "height", height)
	}
	if k.logConfig.SimpleEntry {
		amountString := fmt.Sprintf("%d", amount)
		heightString := fmt.Sprintf("%d", height)
		if subAccount != "" {
			logFunc(fmt.Sprintf("SubAccountEntry  to=%s from=%s amount=%20s %-10s height=%8s memo=%s subaccount=%s", fixedSize(to, 64), fixedSize(from, 64), amountString, coin.Denom, heightString, memo, subAccount))
		} else {
			logFunc(fmt.Sprintf("TransactionEntry to=%s from=%s amount=%20s %-10s height=%8s memo=%s", fixedSize(to, 64), fixedSize(from, 64), amountString, coin.Denom, heightString, memo))
		}
	}
}

func (k Keeper) getLogFunction(level string) func(msg string, keyvals ...interface{}) {
	switch strings.ToLower(level) {
	case "info":
		return k.Logger().Info
	case "debug":
		return k.Logger().Debug
	case "error":
		return k.Logger().Error
	case "warn":
		return k.Logger().Warn
	default:
		return k.Logger().Info
	}
}

func fixedSize(to string, size int) string {
	if len(to) > size {
		return to[:size]
	}
	return to + strings.Repeat(" ", size-len(to))
}
