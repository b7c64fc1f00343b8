package db_models

// The composite primary key over (voter_address, election_id) is the
// storage-enforced guard against double voting. Inserts for a pair that
// already exists fail at the database, not in application code.
type VoteRecordDB struct {
	VoterAddress      string `gorm:"primaryKey;column:voter_address"`
	ElectionId        string `gorm:"primaryKey;column:election_id"`
	CandidateId       string `gorm:"column:candidate_id;not null"`
	VoteType          string `gorm:"column:vote_type;not null"`
	LedgerTxHash      string `gorm:"column:ledger_tx_hash;not null"`
	LedgerBlockNumber uint64 `gorm:"column:ledger_block_number;not null"`
	VoteHash          []byte `gorm:"column:vote_hash;not null"`
	CastAt            int64  `gorm:"column:cast_at;not null"`
}

func (VoteRecordDB) TableName() string {
	return "vote_records"
}
