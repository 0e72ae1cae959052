package electorate

// announcePeriodEnded closes the announcing phase. When the applicant
// pool cannot fill the council the round restarts with the same pool,
// indefinitely if needed. Otherwise the candidate pool is ranked,
// frozen and the voting phase begins
func (e *Electorate) announcePeriodEnded(height uint32) error {
	if uint32(len(e.applicants)) < e.options.CouncilSize {
		e.restartAnnouncing(height)
		e.Logger.Info().Msgf("Election %s has %d applicants for %d seats, announcing restarts as round %d until height %d", e.id, len(e.applicants), e.options.CouncilSize, e.round, e.deadline)
		return e.persist()
	}

	candidates := e.selectCandidates()
	if uint32(len(candidates)) < e.options.CouncilSize {
		e.restartAnnouncing(height)
		e.Logger.Info().Msgf("Election %s ranked only %d candidates for %d seats, announcing restarts as round %d", e.id, len(candidates), e.options.CouncilSize, e.round)
		return e.persist()
	}

	e.candidates = candidates
	e.enterPhase(Voting, height+e.options.VotePeriod)
	e.Logger.Info().Msgf("Election %s round %d enters voting with %d candidates, period ends at %d", e.id, e.round, len(candidates), e.deadline)
	return e.persist()
}

// votingPeriodEnded unconditionally moves the machine to revealing
func (e *Electorate) votingPeriodEnded(height uint32) error {
	e.enterPhase(Revealing, height+e.options.RevealPeriod)
	e.Logger.Info().Msgf("Election %s round %d enters revealing with %d commitments, period ends at %d", e.id, e.round, len(e.votes), e.deadline)
	return e.persist()
}

// restartAnnouncing begins a new announcing round keeping the
// applicant pool and both availability snapshots
func (e *Electorate) restartAnnouncing(height uint32) {
	e.round++
	e.enterPhase(Announcing, height+e.options.AnnouncePeriod)
}
