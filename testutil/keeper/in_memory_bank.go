package keeper

import (
	"context"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// InMemoryBankKeeper is a minimal bank keeper stand-in, tracking balances
// by address-or-module-name so module keeper tests can exercise vault
// transfers without a real bank module wired up.
type InMemoryBankKeeper struct {
	mu       sync.Mutex
	balances map[string]sdk.Coins
}

func NewInMemoryBankKeeper() *InMemoryBankKeeper {
	return &InMemoryBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits amt to addrOrModule directly, bypassing transfer
// checks, for test setup.
func (b *InMemoryBankKeeper) FundAccount(addrOrModule string, amt sdk.Coins) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[addrOrModule] = b.balances[addrOrModule].Add(amt...)
}

func (b *InMemoryBankKeeper) add(key string, amt sdk.Coins) {
	b.balances[key] = b.balances[key].Add(amt...)
}

func (b *InMemoryBankKeeper) sub(key string, amt sdk.Coins) error {
	newBal, negative := b.balances[key].SafeSub(amt...)
	if negative {
		return sdkerrors.ErrInsufficientFunds
	}
	b.balances[key] = newBal
	return nil
}

func (b *InMemoryBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[addr.String()]
}

func (b *InMemoryBankKeeper) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.sub(from.String(), amt); err != nil {
		return err
	}
	b.add(to.String(), amt)
	return nil
}

func (b *InMemoryBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipient sdk.AccAddress, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.sub(senderModule, amt); err != nil {
		return err
	}
	b.add(recipient.String(), amt)
	return nil
}

func (b *InMemoryBankKeeper) SendCoinsFromAccountToModule(_ context.Context, sender sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.sub(sender.String(), amt); err != nil {
		return err
	}
	b.add(recipientModule, amt)
	return nil
}

func (b *InMemoryBankKeeper) SendCoinsFromModuleToModule(_ context.Context, senderModule, recipientModule string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.sub(senderModule, amt); err != nil {
		return err
	}
	b.add(recipientModule, amt)
	return nil
}

func (b *InMemoryBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.add(moduleName, amt)
	return nil
}

func (b *InMemoryBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sub(moduleName, amt)
}

func (b *InMemoryBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	b.mu.Lock()
	defer b.mu.Unlock()
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *InMemoryBankKeeper) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	return banktypes.Metadata{}, false
}

// RawBalance looks a balance up by its literal key (an address's bech32
// string, or a bare module name), bypassing AccAddress re-encoding. Tests
// that mint to a module name use this instead of GetBalance, since an
// sdk.AccAddress built from that same string would bech32-encode to a
// different key.
func (b *InMemoryBankKeeper) RawBalance(key, denom string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[key].AmountOf(denom).Int64()
}
