package electorate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnounceCandidacy(t *testing.T) {
	assert := assert.New(t)

	t.Run("wrong_phase", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.ErrorIs(h.electorate.AnnounceCandidacy("alice", 150), ErrWrongPhase)
	})

	t.Run("not_a_member", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.ErrorIs(h.electorate.AnnounceCandidacy("mallory", 150), ErrNotMember)
	})

	t.Run("zero_amount", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.ErrorIs(h.electorate.AnnounceCandidacy("alice", 0), ErrZeroStake)
	})

	t.Run("below_minimum_stake", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.ErrorIs(h.electorate.AnnounceCandidacy("alice", 90), ErrStakeTooLow)

		// a rejected request leaves state unchanged
		assert.Empty(h.electorate.Applicants())
		assert.Equal(uint64(1000), h.ledger.Balance("alice"))
	})

	t.Run("insufficient_funds", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.ErrorIs(h.electorate.AnnounceCandidacy("alice", 1500), ErrInsufficientFunds)
		assert.Empty(h.electorate.Applicants())
	})

	t.Run("from_balance", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.Nil(h.electorate.AnnounceCandidacy("alice", 150))
		assert.Equal(Stake{Refundable: 150, Transferred: 0}, h.electorate.Applicants()["alice"])
		assert.Equal(uint64(850), h.ledger.Balance("alice"))
	})

	t.Run("council_stake_consumed_first", func(t *testing.T) {
		council := Council{Seats: []Seat{{Member: "alice", Stake: 60}}}
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, council, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.Nil(h.electorate.AnnounceCandidacy("alice", 100))
		assert.Equal(Stake{Refundable: 40, Transferred: 60}, h.electorate.Applicants()["alice"])
		assert.Equal(uint32(0), h.electorate.availableCouncilStakes["alice"])
		assert.Equal(uint64(960), h.ledger.Balance("alice"))
	})

	t.Run("repeatable_to_top_up", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.Nil(h.electorate.AnnounceCandidacy("alice", 100))
		assert.Nil(h.electorate.AnnounceCandidacy("alice", 50))
		assert.Equal(Stake{Refundable: 150, Transferred: 0}, h.electorate.Applicants()["alice"])
		assert.Equal(uint64(850), h.ledger.Balance("alice"))
	})

	t.Run("conservation", func(t *testing.T) {
		council := Council{Seats: []Seat{{Member: "alice", Stake: 60}}}
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, council, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		before := h.holdings("alice")
		assert.Nil(h.electorate.AnnounceCandidacy("alice", 100))
		assert.Equal(before, h.holdings("alice"))
	})
}

func TestWithdrawCandidacy(t *testing.T) {
	assert := assert.New(t)

	t.Run("wrong_phase", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.ErrorIs(h.electorate.WithdrawCandidacy("alice"), ErrWrongPhase)
	})

	t.Run("unknown_applicant", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.ErrorIs(h.electorate.WithdrawCandidacy("alice"), ErrApplicantNotFound)
	})

	t.Run("split_preserves_provenance", func(t *testing.T) {
		council := Council{Seats: []Seat{{Member: "alice", Stake: 60}}}
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, council, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.Nil(h.electorate.AnnounceCandidacy("alice", 100))
		assert.Nil(h.electorate.WithdrawCandidacy("alice"))

		// refundable returns to balance, transferred returns to the
		// council stake snapshot, never to spendable balance
		assert.Empty(h.electorate.Applicants())
		assert.Equal(uint64(1000), h.ledger.Balance("alice"))
		assert.Equal(uint32(60), h.electorate.availableCouncilStakes["alice"])
	})

	t.Run("double_withdrawal_rejected", func(t *testing.T) {
		h := newTestHarness(t, Options{CouncilSize: 3, MinimumStake: 100}, Council{}, "alice")

		assert.Nil(h.electorate.ElectionStarted(0))
		assert.Nil(h.electorate.AnnounceCandidacy("alice", 150))
		assert.Nil(h.electorate.WithdrawCandidacy("alice"))
		assert.ErrorIs(h.electorate.WithdrawCandidacy("alice"), ErrApplicantNotFound)
		assert.Equal(uint64(1000), h.ledger.Balance("alice"))
	})
}
