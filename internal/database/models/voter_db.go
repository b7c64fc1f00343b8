package db_models

type VoterDB struct {
	Address      string `gorm:"primaryKey;column:address"`
	Name         string `gorm:"column:name"`
	Verified     bool   `gorm:"column:verified;not null;default:false"`
	RegisteredAt int64  `gorm:"column:registered_at;not null"`

	VoteRecords []VoteRecordDB `gorm:"foreignKey:VoterAddress;references:Address;constraint:OnDelete:RESTRICT,OnUpdate:RESTRICT"`
}

func (VoterDB) TableName() string {
	return "voters"
}
