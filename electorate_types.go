package electorate

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const (
	// announcePeriod is the default announce period length in blocks
	announcePeriod uint32 = 100

	// votePeriod is the default voting period length in blocks
	votePeriod uint32 = 100

	// revealPeriod is the default revealing period length in blocks
	revealPeriod uint32 = 50

	// councilSize is the default number of seats of the council
	councilSize uint32 = 5

	// minimumStake is the default minimum candidacy stake
	minimumStake uint32 = 100

	// candidacyLimit is the default capacity of the candidate pool
	candidacyLimit uint32 = 20
)

// Commitment is the 256 bits digest binding a hidden candidate
// choice, salt and round. It's the unique id of a ballot
type Commitment [32]byte

// SecretVote is the hidden choice behind a commitment.
// It stays private until reveal and its canonical encoding is
// the digest preimage. Embedding the round prevents replaying
// a stale commitment into a later round
type SecretVote struct {
	// Candidate is the candidate this ballot supports
	Candidate Address `json:"candidate"`

	// Salt is 32 random bytes making equal choices distinct
	Salt [32]byte `json:"salt"`

	// ElectionRound is the round this ballot was built for
	ElectionRound uint32 `json:"electionRound"`
}

// Vote is one ballot of the commit reveal protocol, keyed by
// its commitment digest. A voter may hold several ballots
type Vote struct {
	// Voter is the member that submitted the commitment
	Voter Address `json:"voter"`

	// Commitment is the digest locking the hidden choice
	Commitment Commitment `json:"commitment"`

	// Stake hold the funds locked behind this ballot
	Stake Stake `json:"stake"`

	// Revealed hold the opened secret vote, nil until reveal
	Revealed *SecretVote `json:"revealed,omitempty"`
}

// SuccessPolicy hold the election success criteria supplied by
// governance configuration. A zero valued policy only requires
// enough qualifying candidates to fill the council
type SuccessPolicy struct {
	// MinSeatStake is the minimum revealed backing stake a
	// candidate needs to qualify for a seat
	MinSeatStake uint64

	// MinTotalStake is the minimum aggregate revealed stake
	// for the round to reach quorum
	MinTotalStake uint64

	// MinCandidates is the minimum number of qualifying
	// candidates for the round to succeed
	MinCandidates uint32
}

// Options holds config that will be modified by users
type Options struct {
	// Logger expose zerolog so it can be override
	Logger *zerolog.Logger

	// AnnouncePeriod is the announce period length in blocks
	AnnouncePeriod uint32

	// VotePeriod is the voting period length in blocks
	VotePeriod uint32

	// RevealPeriod is the revealing period length in blocks
	RevealPeriod uint32

	// CouncilSize is the number of seats of the council
	CouncilSize uint32

	// MinimumStake is the minimum total candidacy stake an
	// applicant must reach to stay in the applicant pool
	MinimumStake uint32

	// CandidacyLimit is the capacity of the candidate pool.
	// It will be raised to CouncilSize when set below it
	CandidacyLimit uint32

	// Policy hold the election success criteria
	Policy SuccessPolicy

	// PersistDataOnDisk statuates if the election state must be
	// persisted on disk after every accepted request
	PersistDataOnDisk bool

	// DataDir is the data directory that will be used to store
	// the election state on disk. Required when PersistDataOnDisk
	DataDir string

	// MetricsNamespace is the prometheus namespace of all metrics
	MetricsNamespace string

	// MetricsRegisterer is the prometheus registerer that will receive
	// all metrics. When nil metrics are created but not registered
	MetricsRegisterer prometheus.Registerer
}

// Electorate is the election aggregate. It owns the phase machine,
// the candidacy ledger, the ballot engine and the tally, and talks
// to the external ledger, membership and council collaborators
type Electorate struct {
	// mu protects the whole aggregate. Requests are applied one at
	// a time to completion, in canonical order
	mu sync.Mutex

	// id is the lifecycle id of the current election, regenerated
	// at every election start
	id string

	// options hold the immutable runtime configuration
	options Options

	// Logger expose zerolog so it can be override
	Logger *zerolog.Logger

	// ledger is the external spendable balance ledger
	ledger BalanceLedger

	// registry is the external membership registry
	registry MembershipRegistry

	// councils hold the active council
	councils CouncilRegistry

	// store persists the aggregate between restarts, nil when
	// persistence is disabled
	store *BoltStore

	// metrics hold prometheus metrics
	metrics *metrics

	// phase is the current period of the election
	phase Phase

	// round counts the announce/vote/reveal attempts of the
	// current lifecycle, starting at 0
	round uint32

	// deadline is the block height at which the current period ends
	deadline uint32

	// applicants map every applicant to its candidacy stake.
	// It persists accross retried rounds within one lifecycle
	applicants map[Address]Stake

	// candidates is the ordered candidate pool of the current
	// round, frozen through voting and revealing
	candidates []Address

	// votes hold all ballots of the current round keyed by commitment
	votes map[Commitment]*Vote

	// availableCouncilStakes map members to the portion of their
	// outgoing seat stake not yet reused for a candidacy
	availableCouncilStakes map[Address]uint32

	// availableBackingStakes map members to the portion of their
	// outgoing backing stake not yet reused for a ballot
	availableBackingStakes map[Address]uint32
}
