package electorate

import (
	"slices"

	"github.com/Lord-Y/electorate/logger"
	"github.com/google/uuid"
)

// NewElectorate instantiate the election aggregate with the provided
// collaborators and options. When persistence is enabled, a previously
// stored election is restored so the machine resumes mid election
func NewElectorate(ledger BalanceLedger, registry MembershipRegistry, councils CouncilRegistry, options Options) (*Electorate, error) {
	if options.Logger == nil {
		options.Logger = logger.NewLogger()
	}
	if options.AnnouncePeriod == 0 {
		options.AnnouncePeriod = announcePeriod
	}
	if options.VotePeriod == 0 {
		options.VotePeriod = votePeriod
	}
	if options.RevealPeriod == 0 {
		options.RevealPeriod = revealPeriod
	}
	if options.CouncilSize == 0 {
		options.CouncilSize = councilSize
	}
	if options.MinimumStake == 0 {
		options.MinimumStake = minimumStake
	}
	if options.CandidacyLimit == 0 {
		options.CandidacyLimit = candidacyLimit
	}
	// a candidate pool smaller than the council could never elect one
	if options.CandidacyLimit < options.CouncilSize {
		options.CandidacyLimit = options.CouncilSize
	}

	e := &Electorate{
		options:                options,
		Logger:                 options.Logger,
		ledger:                 ledger,
		registry:               registry,
		councils:               councils,
		metrics:                newMetrics(options.MetricsNamespace, options.MetricsRegisterer),
		phase:                  Null,
		applicants:             make(map[Address]Stake),
		votes:                  make(map[Commitment]*Vote),
		availableCouncilStakes: make(map[Address]uint32),
		availableBackingStakes: make(map[Address]uint32),
	}

	if options.PersistDataOnDisk {
		store, err := NewBoltStorage(BoltOptions{DataDir: options.DataDir})
		if err != nil {
			return nil, err
		}
		e.store = store
		if err := e.restore(); err != nil {
			return nil, err
		}
	}
	e.metrics.setPhaseGauge(e.phase)
	return e, nil
}

// Close will close the underlying store if any
func (e *Electorate) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// ID return the lifecycle id of the current election.
// It's empty while no election is in progress
func (e *Electorate) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// Phase return the current period of the election
func (e *Electorate) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// Round return the round of the current election lifecycle
func (e *Electorate) Round() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.round
}

// Deadline return the block height ending the current period
func (e *Electorate) Deadline() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.deadline
}

// Applicants return the current applicant pool
func (e *Electorate) Applicants() map[Address]Stake {
	e.mu.Lock()
	defer e.mu.Unlock()
	applicants := make(map[Address]Stake, len(e.applicants))
	for applicant, stake := range e.applicants {
		applicants[applicant] = stake
	}
	return applicants
}

// Candidates return the frozen candidate pool of the current round
func (e *Electorate) Candidates() []Address {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.candidates)
}

// ElectionStarted starts a new election lifecycle at the provided
// block height. It snapshots both availability maps from the active
// council and enters the announcing phase. Calling it while an
// election is already in progress is a driving system defect and
// will be rejected
func (e *Electorate) ElectionStarted(height uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Null {
		e.Logger.Error().Msgf("Election start requested at height %d while phase is %s", height, e.phase.String())
		return ErrElectionInProgress
	}

	current := e.councils.Current()
	backing, err := current.backerStakes()
	if err != nil {
		e.Logger.Error().Err(err).Msgf("Fail to snapshot backing stakes of the active council at height %d", height)
		return err
	}
	e.id = uuid.NewString()
	e.round = 0
	e.availableCouncilStakes = current.seatStakes()
	e.availableBackingStakes = backing
	e.enterPhase(Announcing, height+e.options.AnnouncePeriod)

	e.Logger.Info().Msgf("Election %s started at height %d, announce period ends at %d", e.id, height, e.deadline)
	return e.persist()
}

// Tick drives the phase machine with the current block height.
// It's a no-op unless height matches the stored deadline, so it's
// safe to call repeatedly and at arbitrary heights
func (e *Electorate) Tick(height uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == Null || height != e.deadline {
		return nil
	}

	switch e.phase {
	case Announcing:
		return e.announcePeriodEnded(height)
	case Voting:
		return e.votingPeriodEnded(height)
	case Revealing:
		return e.revealPeriodEnded(height)
	}
	return nil
}

// enterPhase moves the machine to the provided phase and deadline
func (e *Electorate) enterPhase(phase Phase, deadline uint32) {
	e.phase = phase
	e.deadline = deadline
	e.metrics.setPhaseGauge(phase)
	e.metrics.round.Set(float64(e.round))
}
