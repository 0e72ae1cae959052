package electorate

import "errors"

var (
	ErrElectionInProgress = errors.New("election already in progress")
	ErrWrongPhase         = errors.New("request not allowed in current phase")
	ErrNotMember          = errors.New("address is not a recognized member")
	ErrZeroStake          = errors.New("stake amount must be greater than zero")
	ErrStakeTooLow        = errors.New("stake below minimum candidacy stake")
	ErrStakeOverflow      = errors.New("stake arithmetic overflow")
	ErrStakeUnderflow     = errors.New("stake arithmetic underflow")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrApplicantNotFound  = errors.New("applicant not found")
	ErrCommitmentExists   = errors.New("commitment already exists")
	ErrCommitmentNotFound = errors.New("commitment not found")
	ErrNotVoter           = errors.New("caller is not the original voter")
	ErrAlreadyRevealed    = errors.New("commitment already revealed")
	ErrDigestMismatch     = errors.New("secret vote does not match commitment")
	ErrWrongRound         = errors.New("secret vote targets another election round")
	ErrNotCandidate       = errors.New("vote target is not in the candidate pool")
	ErrDataDirRequired    = errors.New("data directory is required")
)
