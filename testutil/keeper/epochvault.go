package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	bookkeeper "github.com/prizevault/chain/x/bookkeeper/keeper"
	"github.com/prizevault/chain/x/epochvault/investor"
	"github.com/prizevault/chain/x/epochvault/keeper"
	"github.com/prizevault/chain/x/epochvault/types"
	"github.com/prizevault/chain/x/epochvault/vrf"
)

// FakeVRFSource is an in-memory vrf.Source a test can populate directly,
// standing in for the oracle the real chain would depend on.
type FakeVRFSource struct {
	requests map[uint64]vrf.Request
}

func NewFakeVRFSource() *FakeVRFSource {
	return &FakeVRFSource{requests: make(map[uint64]vrf.Request)}
}

func (f *FakeVRFSource) Set(req vrf.Request) {
	f.requests[req.EpochIndex] = req
}

func (f *FakeVRFSource) RequestForEpoch(epochIndex uint64) (vrf.Request, bool) {
	r, ok := f.requests[epochIndex]
	return r, ok
}

// EpochVaultFixture bundles the keeper with the fakes a test needs to
// reach into, since the keeper itself only exposes the narrow interfaces.
type EpochVaultFixture struct {
	Keeper   keeper.Keeper
	Ctx      sdk.Context
	Bank     *InMemoryBankKeeper
	VRF      *FakeVRFSource
	Investor *investor.ManualGateway
}

// EpochVaultKeeper builds an epochvault Keeper wired to in-memory fakes
// for the bank, the VRF oracle and the investor gateway.
func EpochVaultKeeper(t testing.TB) EpochVaultFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	bank := NewInMemoryBankKeeper()
	bkKeeper := bookkeeper.NewKeeper(log.NewNopLogger(), bank, bookkeeper.DefaultLogConfig())
	vrfSource := NewFakeVRFSource()
	investorGateway := investor.NewManualGateway()

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		bkKeeper,
		vrfSource,
		investorGateway,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	if err := k.Params.Set(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return EpochVaultFixture{
		Keeper:   k,
		Ctx:      ctx,
		Bank:     bank,
		VRF:      vrfSource,
		Investor: investorGateway,
	}
}
