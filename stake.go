package electorate

import "math"

// Address identifies a network participant
type Address string

// Stake hold the funds locked behind a candidacy or a vote.
// Refundable is the portion drawn from spendable balance and
// Transferred is the portion reused from already locked council
// or backing stake. On refund each portion goes back where it
// came from
type Stake struct {
	// Refundable is the portion sourced from spendable balance
	Refundable uint32 `json:"refundable"`

	// Transferred is the portion sourced from already locked stake
	Transferred uint32 `json:"transferred"`
}

// Total return the full amount locked by this stake
func (s Stake) Total() uint32 {
	// both portions are guarded by addStake so the sum cannot wrap
	return s.Refundable + s.Transferred
}

// addUint32 adds two amounts and reject the operation
// when the result would wrap around
func addUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, ErrStakeOverflow
	}
	return a + b, nil
}

// subUint32 substracts b from a and reject the operation
// when the result would go below zero
func subUint32(a, b uint32) (uint32, error) {
	if b > a {
		return 0, ErrStakeUnderflow
	}
	return a - b, nil
}

// addStake return s increased by refundable and transferred.
// An error will be returned if any portion or the total would wrap
func addStake(s Stake, refundable, transferred uint32) (Stake, error) {
	var err error
	if s.Refundable, err = addUint32(s.Refundable, refundable); err != nil {
		return Stake{}, err
	}
	if s.Transferred, err = addUint32(s.Transferred, transferred); err != nil {
		return Stake{}, err
	}
	if _, err = addUint32(s.Refundable, s.Transferred); err != nil {
		return Stake{}, err
	}
	return s, nil
}
