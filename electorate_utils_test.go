package electorate

import (
	"testing"
)

const (
	testAnnouncePeriod uint32 = 10
	testVotePeriod     uint32 = 10
	testRevealPeriod   uint32 = 5
)

// testHarness bundles the electorate with its in memory collaborators
type testHarness struct {
	electorate *Electorate
	ledger     *MemoryLedger
	registry   *MemoryRegistry
	councils   *MemoryCouncilRegistry
}

// newTestHarness build an electorate wired to in memory collaborators.
// Members are registered and funded with 1000 each
func newTestHarness(t *testing.T, options Options, council Council, members ...Address) *testHarness {
	t.Helper()

	if options.AnnouncePeriod == 0 {
		options.AnnouncePeriod = testAnnouncePeriod
	}
	if options.VotePeriod == 0 {
		options.VotePeriod = testVotePeriod
	}
	if options.RevealPeriod == 0 {
		options.RevealPeriod = testRevealPeriod
	}

	ledger := NewMemoryLedger()
	registry := NewMemoryRegistry(members...)
	for _, member := range members {
		ledger.Fund(member, 1000)
	}
	councils := NewMemoryCouncilRegistry(council)

	electorate, err := NewElectorate(ledger, registry, councils, options)
	if err != nil {
		t.Fatalf("Fail to build electorate: %v", err)
	}
	return &testHarness{
		electorate: electorate,
		ledger:     ledger,
		registry:   registry,
		councils:   councils,
	}
}

// holdings return everything the system holds for addr: spendable
// balance plus every stake amount locked anywhere. The active council
// only counts outside an election, its locked value is re-expressed
// as the availability snapshots while one is in progress
func (h *testHarness) holdings(addr Address) uint64 {
	e := h.electorate
	total := h.ledger.Balance(addr)
	if stake, ok := e.applicants[addr]; ok {
		total += uint64(stake.Total())
	}
	for _, vote := range e.votes {
		if vote.Voter == addr {
			total += uint64(vote.Stake.Total())
		}
	}
	total += uint64(e.availableCouncilStakes[addr])
	total += uint64(e.availableBackingStakes[addr])
	if e.phase == Null {
		council := h.councils.Current()
		total += uint64(council.seatStakes()[addr])
		for _, seat := range council.Seats {
			for _, backer := range seat.Backers {
				if backer.Member == addr {
					total += uint64(backer.Stake)
				}
			}
		}
	}
	return total
}

// mustCommit build a secret vote for candidate, submits its commitment
// and return the secret for the later reveal
func (h *testHarness) mustCommit(t *testing.T, voter, candidate Address, amount uint32) SecretVote {
	t.Helper()
	secret, err := NewSecretVote(candidate, h.electorate.Round())
	if err != nil {
		t.Fatalf("Fail to build secret vote: %v", err)
	}
	if err := h.electorate.SubmitVoteCommitment(voter, CommitmentOf(secret), amount); err != nil {
		t.Fatalf("Fail to submit vote commitment: %v", err)
	}
	return secret
}
