package electorate

import "crypto/subtle"

// SubmitVoteCommitment locks a hidden ballot during the voting phase.
// The commitment digest is the ballot's unique id, one voter may submit
// several distinct ballots. Funding mirrors candidacy announcements:
// the voter's available backing stake is consumed first, the remainder
// is drawn from spendable balance, and the split is recorded per vote.
// Signature checking happens upstream, voter is the request signer
func (e *Electorate) SubmitVoteCommitment(voter Address, commitment Commitment, amount uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Voting {
		return ErrWrongPhase
	}
	if !e.registry.IsMember(voter) {
		return ErrNotMember
	}
	if amount == 0 {
		return ErrZeroStake
	}
	if _, ok := e.votes[commitment]; ok {
		return ErrCommitmentExists
	}

	// a voter's ballots merge into a single backer stake at council
	// formation, so the round total per voter must stay within bounds
	// or the merge could wrap. Reject here, before any mutation
	committed := amount
	for _, vote := range e.votes {
		if vote.Voter == voter {
			var err error
			if committed, err = addUint32(committed, vote.Stake.Total()); err != nil {
				return err
			}
		}
	}

	fromBacking := min(e.availableBackingStakes[voter], amount)
	fromBalance := amount - fromBacking
	if e.ledger.Balance(voter) < uint64(fromBalance) {
		return ErrInsufficientFunds
	}

	if fromBalance > 0 {
		if err := e.ledger.Debit(voter, fromBalance); err != nil {
			return err
		}
	}
	e.availableBackingStakes[voter] -= fromBacking
	e.votes[commitment] = &Vote{
		Voter:      voter,
		Commitment: commitment,
		Stake:      Stake{Refundable: fromBalance, Transferred: fromBacking},
	}
	e.metrics.commitments.Inc()

	e.Logger.Debug().Msgf("Voter %s committed %x staking %d refundable and %d transferred", voter, commitment, fromBalance, fromBacking)
	return e.persist()
}

// SubmitReveal opens a previously committed ballot during the revealing
// phase. The caller must be the original voter, the digest of the
// secret vote must match the commitment exactly and the chosen
// candidate must be in the frozen candidate pool. Commitments never
// revealed before the deadline are excluded from the tally and refunded
func (e *Electorate) SubmitReveal(voter Address, commitment Commitment, secret SecretVote) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Revealing {
		return ErrWrongPhase
	}
	vote, ok := e.votes[commitment]
	if !ok {
		return ErrCommitmentNotFound
	}
	if vote.Voter != voter {
		return ErrNotVoter
	}
	if vote.Revealed != nil {
		return ErrAlreadyRevealed
	}
	if secret.ElectionRound != e.round {
		return ErrWrongRound
	}
	digest := CommitmentOf(secret)
	if subtle.ConstantTimeCompare(digest[:], commitment[:]) != 1 {
		return ErrDigestMismatch
	}
	if !e.isCandidate(secret.Candidate) {
		return ErrNotCandidate
	}

	vote.Revealed = &secret
	e.metrics.reveals.Inc()

	e.Logger.Debug().Msgf("Voter %s revealed %x backing %s with %d", voter, commitment, secret.Candidate, vote.Stake.Total())
	return e.persist()
}
