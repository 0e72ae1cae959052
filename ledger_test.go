package electorate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLedger(t *testing.T) {
	assert := assert.New(t)

	ledger := NewMemoryLedger()
	assert.Equal(uint64(0), ledger.Balance("alice"))

	ledger.Fund("alice", 100)
	assert.Equal(uint64(100), ledger.Balance("alice"))

	assert.ErrorIs(ledger.Debit("alice", 150), ErrInsufficientFunds)
	assert.Equal(uint64(100), ledger.Balance("alice"))

	assert.Nil(ledger.Debit("alice", 60))
	assert.Equal(uint64(40), ledger.Balance("alice"))

	ledger.Credit("alice", 2)
	assert.Equal(uint64(42), ledger.Balance("alice"))
}

func TestMemoryRegistry(t *testing.T) {
	assert := assert.New(t)

	registry := NewMemoryRegistry("alice")
	assert.True(registry.IsMember("alice"))
	assert.False(registry.IsMember("bob"))

	registry.Register("bob")
	assert.True(registry.IsMember("bob"))
}

func TestMemoryCouncilRegistry(t *testing.T) {
	assert := assert.New(t)

	first := Council{Seats: []Seat{{Member: "alice", Stake: 100}}}
	registry := NewMemoryCouncilRegistry(first)
	assert.Equal(first, registry.Current())

	second := Council{Seats: []Seat{{Member: "bob", Stake: 120}}}
	registry.Replace(second)
	assert.Equal(second, registry.Current())
}

func TestCouncilSnapshots(t *testing.T) {
	assert := assert.New(t)

	t.Run("snapshots", func(t *testing.T) {
		council := Council{Seats: []Seat{
			{Member: "alice", Stake: 60, Backers: []Backer{{Member: "bob", Stake: 40}, {Member: "carol", Stake: 10}}},
			{Member: "dave", Stake: 80, Backers: []Backer{{Member: "bob", Stake: 5}}},
		}}

		assert.Equal(2, council.Size())
		assert.Equal(map[Address]uint32{"alice": 60, "dave": 80}, council.seatStakes())
		backing, err := council.backerStakes()
		assert.Nil(err)
		assert.Equal(map[Address]uint32{"bob": 45, "carol": 10}, backing)
	})

	t.Run("backing_sum_overflow", func(t *testing.T) {
		// one member backing several seats must not wrap the snapshot
		council := Council{Seats: []Seat{
			{Member: "alice", Stake: 60, Backers: []Backer{{Member: "bob", Stake: math.MaxUint32}}},
			{Member: "dave", Stake: 80, Backers: []Backer{{Member: "bob", Stake: 1}}},
		}}

		_, err := council.backerStakes()
		assert.ErrorIs(err, ErrStakeOverflow)
	})

	t.Run("election_start_rejects_overflowing_council", func(t *testing.T) {
		council := Council{Seats: []Seat{
			{Member: "alice", Stake: 60, Backers: []Backer{{Member: "bob", Stake: math.MaxUint32}}},
			{Member: "dave", Stake: 80, Backers: []Backer{{Member: "bob", Stake: 1}}},
		}}
		h := newTestHarness(t, Options{CouncilSize: 2, MinimumStake: 100}, council, "alice", "bob", "dave")

		assert.ErrorIs(h.electorate.ElectionStarted(0), ErrStakeOverflow)
		assert.Equal(Null, h.electorate.Phase())
	})
}
