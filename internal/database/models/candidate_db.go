package db_models

type CandidateDB struct {
	Id                 string  `gorm:"primaryKey;column:id"`
	Name               string  `gorm:"column:name;not null"`
	Party              string  `gorm:"column:party"`
	Description        string  `gorm:"column:description"`
	ElectionId         string  `gorm:"column:election_id;not null;index"`
	Status             string  `gorm:"column:status;not null;index"`
	VoteCount          int64   `gorm:"column:vote_count;not null;default:0"`
	DelegatedVoteCount int64   `gorm:"column:delegated_vote_count;not null;default:0"`
	LedgerIndex        uint64  `gorm:"column:ledger_index;not null;default:0"`
	Position           int     `gorm:"column:position;not null;default:0"`
	ApprovedBy         *string `gorm:"column:approved_by"`
	ApprovedAt         *int64  `gorm:"column:approved_at"`
	RejectedBy         *string `gorm:"column:rejected_by"`
	RejectedAt         *int64  `gorm:"column:rejected_at"`
	CreatedAt          int64   `gorm:"column:created_at;not null"`
}

func (CandidateDB) TableName() string {
	return "candidates"
}
