package epochvault

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/prizevault/chain/x/epochvault/investor"
	"github.com/prizevault/chain/x/epochvault/keeper"
	"github.com/prizevault/chain/x/epochvault/types"
	"github.com/prizevault/chain/x/epochvault/vrf"
)

var (
	_ module.AppModuleBasic      = AppModuleBasic{}
	_ module.HasGenesis          = AppModule{}
	_ module.HasConsensusVersion = AppModule{}

	_ appmodule.AppModule = AppModule{}
)

// AppModuleBasic implements the codec-independent half of the module
// interface. Grounded on x/inference/module/module.go's AppModuleBasic,
// trimmed for a tree with no protoc/codegen step: there are no generated
// proto messages to register as interface implementations and no gRPC
// gateway to mount, so RegisterInterfaces and RegisterGRPCGatewayRoutes
// are no-ops rather than omitted, keeping the same method set the
// teacher's modules expose.
type AppModuleBasic struct {
	cdc codec.BinaryCodec
}

func NewAppModuleBasic(cdc codec.BinaryCodec) AppModuleBasic {
	return AppModuleBasic{cdc: cdc}
}

func (AppModuleBasic) Name() string { return types.ModuleName }

func (AppModuleBasic) RegisterLegacyAminoCodec(_ *codec.LegacyAmino) {}

func (AppModuleBasic) RegisterInterfaces(_ cdctypes.InterfaceRegistry) {}

// DefaultGenesis returns an uninitialized GenesisState marshalled to JSON.
func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	bz, err := json.Marshal(types.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis checks a raw genesis payload for basic consistency.
func (AppModuleBasic) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	var genState types.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return genState.Validate()
}

// RegisterGRPCGatewayRoutes is a no-op: this module has no generated
// gRPC-gateway stubs to mount (see AppModuleBasic's doc comment).
func (AppModuleBasic) RegisterGRPCGatewayRoutes(_ client.Context, _ *runtime.ServeMux) {}

// AppModule ties the keeper to the module-manager lifecycle: genesis
// im-/export and message dispatch. Grounded on the shape of
// x/inference/module/module.go's AppModule, trimmed to what this
// protoc-less tree can actually implement: message dispatch goes through
// keeper.NewMsgServerImpl's exported Go methods directly (see
// x/epochvault/keeper/msg_server.go) rather than through
// module.Configurator's generated-service RegisterServices, and there is
// no BeginBlock/EndBlock hook since the epoch state machine advances only
// on explicit instructions (spec §4), never on a block-height schedule.
type AppModule struct {
	AppModuleBasic

	keeper keeper.Keeper
}

func NewAppModule(cdc codec.BinaryCodec, k keeper.Keeper) AppModule {
	return AppModule{
		AppModuleBasic: NewAppModuleBasic(cdc),
		keeper:         k,
	}
}

// InitGenesis performs the module's genesis initialization. The codec
// argument is accepted only to match module.HasGenesis; genesis payloads
// here are plain JSON, not proto, so unmarshalling goes through
// encoding/json directly rather than through the codec.
func (am AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, gs json.RawMessage) {
	var genState types.GenesisState
	if err := json.Unmarshal(gs, &genState); err != nil {
		panic(err)
	}
	InitGenesis(ctx, am.keeper, genState)
}

// ExportGenesis returns the module's exported genesis state as raw JSON bytes.
func (am AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	genState := ExportGenesis(ctx, am.keeper)
	bz, err := json.Marshal(genState)
	if err != nil {
		panic(err)
	}
	return bz
}

// ConsensusVersion is a sequence number for state-breaking changes.
func (AppModule) ConsensusVersion() uint64 { return 1 }

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (AppModule) IsOnePerModuleType() {}

// IsAppModule implements the appmodule.AppModule interface.
func (AppModule) IsAppModule() {}

// NewKeeperDeps bundles the external collaborators a running chain must
// supply when wiring this module in, mirroring the teacher's ModuleInputs
// shape (x/inference/module/module.go) without the depinject machinery:
// that relies on a modulev1.Module proto descriptor this protoc-less
// tree has no codegen to produce.
type NewKeeperDeps struct {
	StoreService store.KVStoreService
	Logger       log.Logger
	Authority    string
	BankKeeper   types.BookkeepingBankKeeper
	VRFSource    vrf.Source
	Investor     investor.Gateway
}

// ProvideModule constructs the keeper and AppModule from a dependency
// bundle, the explicit stand-in for depinject's ProvideModule hook.
func ProvideModule(cdc codec.BinaryCodec, deps NewKeeperDeps) (keeper.Keeper, AppModule) {
	k := keeper.NewKeeper(
		deps.StoreService,
		deps.Logger,
		deps.Authority,
		deps.BankKeeper,
		deps.VRFSource,
		deps.Investor,
	)
	return k, NewAppModule(cdc, k)
}
