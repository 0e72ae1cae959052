package electorate

import (
	"cmp"
	"slices"
)

// revealPeriodEnded closes the revealing phase and runs the tally.
// Revealed vote stakes are summed per candidate and the injected
// success policy decides between council formation and a round restart
func (e *Electorate) revealPeriodEnded(height uint32) error {
	tallies := make(map[Address]uint64)
	var totalRevealed uint64
	for _, vote := range e.votes {
		if vote.Revealed != nil {
			tallies[vote.Revealed.Candidate] += uint64(vote.Stake.Total())
			totalRevealed += uint64(vote.Stake.Total())
		}
	}

	winners, ok := e.pickWinners(tallies, totalRevealed)
	if !ok {
		e.failRound(height)
		e.Logger.Info().Msgf("Election %s round %d failed its success criteria, announcing restarts as round %d", e.id, e.round-1, e.round)
		return e.persist()
	}

	council := e.formCouncil(winners)
	if e.store != nil {
		if err := e.store.SaveCouncil(e.id, council); err != nil {
			e.Logger.Error().Err(err).Msgf("Fail to archive council of election %s", e.id)
		}
	}
	e.Logger.Info().Msgf("Election %s completed at height %d with a council of %d seats", e.id, height, len(winners))
	e.teardown()
	return e.persist()
}

// pickWinners applies the success criteria and return the winning
// candidates, one per seat, ordered by revealed tally descending with
// ties broken by candidate pool rank. The round fails when quorum is
// not reached or too few candidates qualify
func (e *Electorate) pickWinners(tallies map[Address]uint64, totalRevealed uint64) ([]Address, bool) {
	if totalRevealed < e.options.Policy.MinTotalStake {
		return nil, false
	}

	// candidate pool order is itself deterministic, making the
	// qualifying list and its tie-break stable accross replays
	var qualifying []Address
	for _, candidate := range e.candidates {
		tally := tallies[candidate]
		if tally == 0 || tally < e.options.Policy.MinSeatStake {
			continue
		}
		qualifying = append(qualifying, candidate)
	}

	required := max(e.options.CouncilSize, e.options.Policy.MinCandidates)
	if uint32(len(qualifying)) < required {
		return nil, false
	}

	rank := make(map[Address]int, len(e.candidates))
	for i, candidate := range e.candidates {
		rank[candidate] = i
	}
	slices.SortFunc(qualifying, func(a, b Address) int {
		if n := cmp.Compare(tallies[b], tallies[a]); n != 0 {
			return n
		}
		return cmp.Compare(rank[a], rank[b])
	})
	return qualifying[:e.options.CouncilSize], true
}

// formCouncil locks the winners' candidacy stakes into seats and the
// winning voters' ballot stakes into backers, refunds everything else
// per the refundable/transferred split, unlocks both availability
// snapshots and replaces the active council
func (e *Electorate) formCouncil(winners []Address) Council {
	winning := make(map[Address]bool, len(winners))
	for _, winner := range winners {
		winning[winner] = true
	}

	// backer stakes merge per voter, a backer is unique per seat.
	// SubmitVoteCommitment bounds each voter's round total so the
	// merged sums cannot wrap
	backerStakes := make(map[Address]map[Address]uint32, len(winners))
	for _, winner := range winners {
		backerStakes[winner] = make(map[Address]uint32)
	}
	for _, vote := range e.votes {
		if vote.Revealed != nil && winning[vote.Revealed.Candidate] {
			backerStakes[vote.Revealed.Candidate][vote.Voter] += vote.Stake.Total()
			continue
		}
		e.refundVote(vote)
	}

	for applicant, stake := range e.applicants {
		if winning[applicant] {
			continue
		}
		if stake.Refundable > 0 {
			e.ledger.Credit(applicant, stake.Refundable)
		}
		e.availableCouncilStakes[applicant] += stake.Transferred
		e.metrics.refundedStake.Add(float64(stake.Total()))
	}

	// the outgoing council dissolves with the replacement, whatever
	// is left in the snapshots unlocks back to spendable balance
	for member, amount := range e.availableCouncilStakes {
		if amount > 0 {
			e.ledger.Credit(member, amount)
		}
	}
	for member, amount := range e.availableBackingStakes {
		if amount > 0 {
			e.ledger.Credit(member, amount)
		}
	}

	seats := make([]Seat, 0, len(winners))
	for _, winner := range winners {
		backers := make([]Backer, 0, len(backerStakes[winner]))
		for member, amount := range backerStakes[winner] {
			backers = append(backers, Backer{Member: member, Stake: amount})
		}
		slices.SortFunc(backers, func(a, b Backer) int {
			return cmp.Compare(a.Member, b.Member)
		})
		seats = append(seats, Seat{
			Member:  winner,
			Stake:   e.applicants[winner].Total(),
			Backers: backers,
		})
	}
	council := Council{Seats: seats}
	e.councils.Replace(council)
	e.metrics.completed.Inc()
	return council
}

// failRound refunds every ballot per the split rule, clears the votes
// and the candidate pool and restarts announcing. The applicant pool
// and both availability snapshots carry over into the retry
func (e *Electorate) failRound(height uint32) {
	for _, vote := range e.votes {
		e.refundVote(vote)
	}
	e.votes = make(map[Commitment]*Vote)
	e.candidates = nil
	e.metrics.failedRounds.Inc()
	e.restartAnnouncing(height)
}

// refundVote returns a ballot's refundable portion to spendable balance
// and its transferred portion to the available backing stakes
func (e *Electorate) refundVote(vote *Vote) {
	if vote.Stake.Refundable > 0 {
		e.ledger.Credit(vote.Voter, vote.Stake.Refundable)
	}
	e.availableBackingStakes[vote.Voter] += vote.Stake.Transferred
	e.metrics.refundedStake.Add(float64(vote.Stake.Total()))
}

// teardown clears all election scoped state once a lifecycle completes
func (e *Electorate) teardown() {
	e.id = ""
	e.round = 0
	e.applicants = make(map[Address]Stake)
	e.candidates = nil
	e.votes = make(map[Commitment]*Vote)
	e.availableCouncilStakes = make(map[Address]uint32)
	e.availableBackingStakes = make(map[Address]uint32)
	e.enterPhase(Null, 0)
}
