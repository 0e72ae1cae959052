package electorate

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds Prometheus metrics for monitoring the election
type metrics struct {
	// null is a gauge that indicates the current election phase
	null prometheus.Gauge

	// announcing is a gauge that indicates the current election phase
	announcing prometheus.Gauge

	// voting is a gauge that indicates the current election phase
	voting prometheus.Gauge

	// revealing is a gauge that indicates the current election phase
	revealing prometheus.Gauge

	// round is a gauge holding the round of the current lifecycle
	round prometheus.Gauge

	// applicants is a counter of accepted candidacy announcements
	applicants prometheus.Counter

	// withdrawals is a counter of accepted candidacy withdrawals
	withdrawals prometheus.Counter

	// commitments is a counter of accepted vote commitments
	commitments prometheus.Counter

	// reveals is a counter of accepted reveals
	reveals prometheus.Counter

	// completed is a counter of successfully completed elections
	completed prometheus.Counter

	// failedRounds is a counter of rounds restarted after a failed tally
	failedRounds prometheus.Counter

	// refundedStake is a counter of all stake amounts refunded
	refundedStake prometheus.Counter
}

// newMetrics initialize Prometheus metrics for monitoring the election.
// When registerer is nil metrics are created but stay unregistered
func newMetrics(namespace string, registerer prometheus.Registerer) *metrics {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "electorate",
			Name:      name,
			Help:      help,
		})
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "electorate",
			Name:      name,
			Help:      help,
		})
	}

	z := &metrics{
		null:          gauge("phase_null", "Indicates current election phase"),
		announcing:    gauge("phase_announcing", "Indicates current election phase"),
		voting:        gauge("phase_voting", "Indicates current election phase"),
		revealing:     gauge("phase_revealing", "Indicates current election phase"),
		round:         gauge("round", "Round of the current election lifecycle"),
		applicants:    counter("candidacy_announcements_total", "Accepted candidacy announcements"),
		withdrawals:   counter("candidacy_withdrawals_total", "Accepted candidacy withdrawals"),
		commitments:   counter("vote_commitments_total", "Accepted vote commitments"),
		reveals:       counter("vote_reveals_total", "Accepted vote reveals"),
		completed:     counter("elections_completed_total", "Successfully completed elections"),
		failedRounds:  counter("rounds_failed_total", "Rounds restarted after a failed tally"),
		refundedStake: counter("refunded_stake_total", "Total stake refunded"),
	}

	// Make sure to register them all, otherwise, no metrics will be found
	if registerer != nil {
		registerer.MustRegister(z.null, z.announcing, z.voting, z.revealing, z.round)
		registerer.MustRegister(z.applicants, z.withdrawals, z.commitments, z.reveals)
		registerer.MustRegister(z.completed, z.failedRounds, z.refundedStake)
	}
	return z
}

// setPhaseGauge will set the current phase gauge with the provided value
func (m *metrics) setPhaseGauge(phase Phase) {
	// Always reset the default values
	m.null.Set(0)
	m.announcing.Set(0)
	m.voting.Set(0)
	m.revealing.Set(0)

	switch phase {
	case Announcing:
		m.announcing.Set(1)

	case Voting:
		m.voting.Set(1)

	case Revealing:
		m.revealing.Set(1)

	default:
		m.null.Set(1)
	}
}
