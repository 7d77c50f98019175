package rollup

import "math"

// ProposalStatus mirrors the contract-side phase enum.
type ProposalStatus uint8

const (
	Unchallenged ProposalStatus = iota
	Challenged
	UnchallengedAndValidProofProvided
	ChallengedAndValidProofProvided
	Resolved
)

func (s ProposalStatus) String() string {
	switch s {
	case Unchallenged:
		return "Unchallenged"
	case Challenged:
		return "Challenged"
	case UnchallengedAndValidProofProvided:
		return "UnchallengedAndValidProofProvided"
	case ChallengedAndValidProofProvided:
		return "ChallengedAndValidProofProvided"
	case Resolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// ResolutionStatus mirrors the contract-side terminal outcome enum.
type ResolutionStatus uint8

const (
	InProgress ResolutionStatus = iota
	DefenderWins
	ChallengerWins
)

func (s ResolutionStatus) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case DefenderWins:
		return "DEFENDER_WINS"
	case ChallengerWins:
		return "CHALLENGER_WINS"
	default:
		return "Unknown"
	}
}

// ParentIndexSentinel marks a proposal without a parent. Root proposals carry
// this value in their parentIndex field.
const ParentIndexSentinel = uint32(math.MaxUint32)

// Role identifies which agent is driving a resolution.
type Role int

const (
	RoleProposer Role = iota
	RoleChallenger
)

func (r Role) String() string {
	if r == RoleChallenger {
		return "challenger"
	}
	return "proposer"
}

// Action reports whether a phase step submitted a transaction or had nothing
// to do.
type Action int

const (
	ActionSkipped Action = iota
	ActionPerformed
)
