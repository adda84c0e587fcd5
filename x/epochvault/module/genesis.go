package epochvault

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/keeper"
	"github.com/prizevault/chain/x/epochvault/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	k.InitGenesis(ctx, genState)
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	return k.ExportGenesis(ctx)
}
