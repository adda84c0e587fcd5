package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/prizevault/chain/x/bookkeeper/keeper"
	"github.com/prizevault/chain/x/bookkeeper/types"
)

// BookkeeperKeeper builds a bookkeeper Keeper over an in-memory bank
// keeper fake, for tests that exercise vault movements without standing
// up a full bank module.
func BookkeeperKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := BookkeeperKeeperWithBank(t)
	return k, ctx
}

// BookkeeperKeeperWithBank is BookkeeperKeeper but also hands back the
// underlying fake bank keeper, for tests that need to fund accounts or
// inspect module balances directly.
func BookkeeperKeeperWithBank(t testing.TB) (keeper.Keeper, sdk.Context, *InMemoryBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	_ = authtypes.NewModuleAddress(govtypes.ModuleName)

	bank := NewInMemoryBankKeeper()
	k := keeper.NewKeeper(log.NewNopLogger(), bank, keeper.DefaultLogConfig())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	return k, ctx, bank
}
