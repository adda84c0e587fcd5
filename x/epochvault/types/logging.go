package types

// SubSystem tags a log line with the part of the engine that emitted it,
// so operators can filter without parsing message text.
type SubSystem uint8

const (
	SubSystemEpoch SubSystem = iota
	SubSystemStake
	SubSystemYieldSplit
	SubSystemWinners
	SubSystemInvestor
	SubSystemAdmin
	SubSystemVaults
	SubSystemGenesis
	SubSystemTesting SubSystem = 255
)

func (s SubSystem) String() string {
	switch s {
	case SubSystemEpoch:
		return "epoch"
	case SubSystemStake:
		return "stake"
	case SubSystemYieldSplit:
		return "yield_split"
	case SubSystemWinners:
		return "winners"
	case SubSystemInvestor:
		return "investor"
	case SubSystemAdmin:
		return "admin"
	case SubSystemVaults:
		return "vaults"
	case SubSystemGenesis:
		return "genesis"
	case SubSystemTesting:
		return "testing"
	default:
		return "unknown"
	}
}
