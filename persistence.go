package electorate

// persist stores the whole aggregate after an accepted mutation.
// It's a no-op when persistence is disabled
func (e *Electorate) persist() error {
	if e.store == nil {
		return nil
	}
	state := &persistState{
		Id:                     e.id,
		Phase:                  e.phase,
		Round:                  e.round,
		Deadline:               e.deadline,
		Applicants:             e.applicants,
		Candidates:             e.candidates,
		Votes:                  make([]*Vote, 0, len(e.votes)),
		AvailableCouncilStakes: e.availableCouncilStakes,
		AvailableBackingStakes: e.availableBackingStakes,
	}
	for _, vote := range e.votes {
		state.Votes = append(state.Votes, vote)
	}
	return e.store.SaveState(state)
}

// restore reloads a previously stored aggregate so the machine
// resumes mid election after a restart
func (e *Electorate) restore() error {
	state, err := e.store.LoadState()
	if err != nil {
		return err
	}
	if state == nil {
		return nil
	}

	e.id = state.Id
	e.phase = state.Phase
	e.round = state.Round
	e.deadline = state.Deadline
	if state.Applicants != nil {
		e.applicants = state.Applicants
	}
	e.candidates = state.Candidates
	if state.AvailableCouncilStakes != nil {
		e.availableCouncilStakes = state.AvailableCouncilStakes
	}
	if state.AvailableBackingStakes != nil {
		e.availableBackingStakes = state.AvailableBackingStakes
	}
	e.votes = make(map[Commitment]*Vote, len(state.Votes))
	for _, vote := range state.Votes {
		e.votes[vote.Commitment] = vote
	}

	e.metrics.round.Set(float64(e.round))
	e.Logger.Info().Msgf("Restored election %s in phase %s round %d with %d applicants and %d votes", e.id, e.phase.String(), e.round, len(e.applicants), len(e.votes))
	return nil
}
