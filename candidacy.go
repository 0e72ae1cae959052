package electorate

// AnnounceCandidacy deposits a candidacy stake for applicant during the
// announcing phase. Funding consumes the applicant's available council
// stake first, already locked funds reusable without moving balance, and
// draws the remainder from spendable balance. The applicant's total
// stake must reach the minimum candidacy stake or the whole request is
// rejected with no mutation. Repeatable to top up an existing candidacy.
// Signature checking happens upstream, applicant is the request signer
func (e *Electorate) AnnounceCandidacy(applicant Address, amount uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Announcing {
		return ErrWrongPhase
	}
	if !e.registry.IsMember(applicant) {
		return ErrNotMember
	}
	if amount == 0 {
		return ErrZeroStake
	}

	fromCouncil := min(e.availableCouncilStakes[applicant], amount)
	fromBalance := amount - fromCouncil
	if e.ledger.Balance(applicant) < uint64(fromBalance) {
		return ErrInsufficientFunds
	}

	stake, err := addStake(e.applicants[applicant], fromBalance, fromCouncil)
	if err != nil {
		return err
	}
	if stake.Total() < e.options.MinimumStake {
		return ErrStakeTooLow
	}

	if fromBalance > 0 {
		if err := e.ledger.Debit(applicant, fromBalance); err != nil {
			return err
		}
	}
	e.availableCouncilStakes[applicant] -= fromCouncil
	e.applicants[applicant] = stake
	e.metrics.applicants.Inc()

	e.Logger.Debug().Msgf("Candidacy of %s now stakes %d refundable and %d transferred", applicant, stake.Refundable, stake.Transferred)
	return e.persist()
}

// WithdrawCandidacy removes candidate from the applicant pool during the
// announcing phase. The refundable portion is credited back to spendable
// balance while the transferred portion returns to the available council
// stakes, preserving its provenance. Withdrawing twice rejects
func (e *Electorate) WithdrawCandidacy(candidate Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Announcing {
		return ErrWrongPhase
	}
	stake, ok := e.applicants[candidate]
	if !ok {
		return ErrApplicantNotFound
	}

	if stake.Refundable > 0 {
		e.ledger.Credit(candidate, stake.Refundable)
	}
	e.availableCouncilStakes[candidate] += stake.Transferred
	delete(e.applicants, candidate)
	e.metrics.withdrawals.Inc()
	e.metrics.refundedStake.Add(float64(stake.Total()))

	e.Logger.Debug().Msgf("Candidacy of %s withdrawn, %d refunded to balance and %d returned to council stake", candidate, stake.Refundable, stake.Transferred)
	return e.persist()
}
