package models

import (
	"encoding/binary"

	"github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/crypto/hash"
)

type VoteType string

const (
	VoteTypeDirect    VoteType = "DIRECT"
	VoteTypeDelegated VoteType = "DELEGATED"
	VoteTypeMixed     VoteType = "MIXED"
	VoteTypeZKProof   VoteType = "ZK_PROOF"
)

type Voter struct {
	Address       string //wallet address, EIP-55 checksummed
	Name          string
	Verified      bool
	RegisteredAt  int64
	VotingHistory []*VoteRecord
}

// VoteRecord binds one election to exactly one candidate for a voter. A voter
// holds at most one record per election id.
type VoteRecord struct {
	VoterAddress      string
	ElectionId        string
	CandidateId       string
	VoteType          VoteType
	LedgerTxHash      string
	LedgerBlockNumber uint64
	VoteHash          []byte
	CastAt            int64
}

func (record *VoteRecord) GetHash() []byte {
	castAt := make([]byte, 8)
	binary.BigEndian.PutUint64(castAt, uint64(record.CastAt))

	return hash.HashParts(
		[]byte(record.VoterAddress),
		[]byte(record.ElectionId),
		[]byte(record.CandidateId),
		[]byte(record.VoteType),
		castAt,
	)
}

func (record *VoteRecord) SetVoteHash() {
	record.VoteHash = record.GetHash()
}
