package types

import "fmt"

// GenesisState defines the module's genesis state. A chain may start
// with the module already initialized (LatestEpoch present) or
// uninitialized, in which case the first Init instruction bootstraps it.
type GenesisState struct {
	Params               Params
	LatestEpoch          *LatestEpoch
	Epochs               []Epoch
	Stakes               []Stake
	StakeUpdateRequests  []StakeUpdateRequest
	EpochWinnersMeta     []EpochWinnersMeta
	EpochWinnersPages    []EpochWinnersPage
}

// DefaultGenesis returns an uninitialized genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis consistency checks.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seenOwners := make(map[string]bool, len(gs.Stakes))
	for _, s := range gs.Stakes {
		key := s.Owner.String()
		if seenOwners[key] {
			return fmt.Errorf("duplicate stake for owner %s", key)
		}
		seenOwners[key] = true
	}
	seenRequests := make(map[string]bool, len(gs.StakeUpdateRequests))
	for _, r := range gs.StakeUpdateRequests {
		key := r.Owner.String()
		if seenRequests[key] {
			return fmt.Errorf("duplicate stake update request for owner %s", key)
		}
		seenRequests[key] = true
	}
	return nil
}
