package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/prizevault/chain/x/epochvault/types"
)

// msgServer wires incoming instructions to the keeper, same split as the
// teacher's msg_server_*.go files: signer/authority checks live here, the
// keeper methods themselves trust their arguments once called.
type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the handler set for x/epochvault's instructions.
func NewMsgServerImpl(k Keeper) msgServer {
	return msgServer{Keeper: k}
}

func requireSigner(got, want sdk.AccAddress) error {
	if got.Empty() || want.Empty() || !got.Equals(want) {
		return sdkerrors.Wrapf(types.ErrMissingSignature, "expected signer %s", want.String())
	}
	return nil
}
