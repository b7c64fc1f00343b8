package db_models

type ElectionDB struct {
	Id              string `gorm:"primaryKey;column:id"`
	Title           string `gorm:"column:title;not null"`
	Description     string `gorm:"column:description"`
	StartTime       int64  `gorm:"column:start_time;not null"`
	EndTime         int64  `gorm:"column:end_time;not null"`
	ActualStartTime *int64 `gorm:"column:actual_start_time"`
	ActualEndTime   *int64 `gorm:"column:actual_end_time"`
	VotingMode      string `gorm:"column:voting_mode;not null"`
	Status          string `gorm:"column:status;not null;index"`
	VoteCount       int64  `gorm:"column:vote_count;not null;default:0"`
	CreatedBy       string `gorm:"column:created_by;not null"`
	UpdatedBy       string `gorm:"column:updated_by"`
	CreatedAt       int64  `gorm:"column:created_at;not null"`

	Candidates []CandidateDB `gorm:"foreignKey:ElectionId;references:Id;constraint:OnDelete:RESTRICT,OnUpdate:RESTRICT"`
}

func (ElectionDB) TableName() string {
	return "elections"
}
