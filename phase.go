package electorate

// Phase represent the current period of the election.
// The phase can only be Null, Announcing, Voting, Revealing
type Phase uint32

const (
	// Null phase means no election is in progress.
	// It's both the initial and the terminal phase
	Null Phase = iota

	// Announcing phase is the period during which members
	// can announce or withdraw their candidacy with a stake deposit
	Announcing

	// Voting phase is the period during which members
	// submit hidden vote commitments on the frozen candidate pool
	Voting

	// Revealing phase is the period during which voters
	// open their commitments. Commitments never opened before
	// the deadline are excluded from the tally and refunded
	Revealing
)

// String return a human readable phase of the election
func (p Phase) String() string {
	switch p {
	case Announcing:
		return "announcing"
	case Voting:
		return "voting"
	case Revealing:
		return "revealing"
	}
	return "null"
}
