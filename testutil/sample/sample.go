package sample

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccAddress returns a random account address, useful whenever a test
// just needs "some" address and doesn't care whose.
func AccAddress() sdk.AccAddress {
	pk := ed25519.GenPrivKey().PubKey()
	return sdk.AccAddress(pk.Address())
}

// AccAddressString is AccAddress rendered as bech32, for call sites that
// take the string form (e.g. genesis JSON).
func AccAddressString() string {
	return AccAddress().String()
}
