package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BookkeepingBankKeeper is the bank interface the epochvault keeper uses
// for every vault movement. It is satisfied by x/bookkeeper's Keeper,
// which layers a double-entry audit log over the real bank keeper.
type BookkeepingBankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins, memo string) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	LogSubAccountTransaction(ctx context.Context, recipient, sender, subAccount string, amt sdk.Coin, memo string)
}
