package electorate

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
)

// EncodeSecretVote writes the canonical binary encoding of the secret
// vote, the digest preimage of its commitment. The candidate address is
// length prefixed so distinct votes can never share an encoding
func EncodeSecretVote(vote SecretVote, w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(vote.Candidate))); err != nil {
		return err
	}
	if _, err := w.Write([]byte(vote.Candidate)); err != nil {
		return err
	}
	if _, err := w.Write(vote.Salt[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, vote.ElectionRound)
}

// CommitmentOf return the digest locking the provided secret vote
func CommitmentOf(vote SecretVote) Commitment {
	buffer := new(bytes.Buffer)
	// writing to a bytes.Buffer cannot fail
	_ = EncodeSecretVote(vote, buffer)
	return sha256.Sum256(buffer.Bytes())
}

// NewSecretVote build a secret vote for the provided candidate and
// round with a fresh random salt
func NewSecretVote(candidate Address, electionRound uint32) (SecretVote, error) {
	vote := SecretVote{
		Candidate:     candidate,
		ElectionRound: electionRound,
	}
	if _, err := rand.Read(vote.Salt[:]); err != nil {
		return SecretVote{}, err
	}
	return vote, nil
}
