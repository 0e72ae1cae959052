package electorate

// Backer is a member staking in support of a seat without occupying it
type Backer struct {
	// Member is the address of the backing member
	Member Address `json:"member"`

	// Stake is the amount locked behind the seat by this backer
	Stake uint32 `json:"stake"`
}

// Seat is one elected position of the council
type Seat struct {
	// Member is the address occupying the seat
	Member Address `json:"member"`

	// Stake is the amount the member locked behind its own seat
	Stake uint32 `json:"stake"`

	// Backers hold the members backing this seat, unique per member
	Backers []Backer `json:"backers"`
}

// Council is the governing body of the network.
// A member occupies at most one seat and the seat count
// equals the configured council size once active
type Council struct {
	// Seats hold all seats of the council
	Seats []Seat `json:"seats"`
}

// Size return the number of seats of the council
func (c Council) Size() int {
	return len(c.Seats)
}

// seatStakes return the seat stake held by each seat member
func (c Council) seatStakes() map[Address]uint32 {
	stakes := make(map[Address]uint32)
	for _, seat := range c.Seats {
		stakes[seat.Member] = seat.Stake
	}
	return stakes
}

// backerStakes return the backing stake held by each backer
// accross all seats of the council. A member may back several
// seats, an error will be returned if its sum would wrap
func (c Council) backerStakes() (map[Address]uint32, error) {
	stakes := make(map[Address]uint32)
	for _, seat := range c.Seats {
		for _, backer := range seat.Backers {
			sum, err := addUint32(stakes[backer.Member], backer.Stake)
			if err != nil {
				return nil, err
			}
			stakes[backer.Member] = sum
		}
	}
	return stakes, nil
}
