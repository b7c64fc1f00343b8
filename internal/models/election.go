package models

type ElectionStatus string

const (
	ElectionStatusDraft     ElectionStatus = "draft"
	ElectionStatusActive    ElectionStatus = "active"
	ElectionStatusPaused    ElectionStatus = "paused"
	ElectionStatusCompleted ElectionStatus = "completed"
	ElectionStatusCancelled ElectionStatus = "cancelled"
)

type VotingMode string

const (
	VotingModeSimpleMajority  VotingMode = "SIMPLE_MAJORITY"
	VotingModeRankedChoice    VotingMode = "RANKED_CHOICE"
	VotingModeLiquidDemocracy VotingMode = "LIQUID_DEMOCRACY"
	VotingModeMixedAnonymous  VotingMode = "MIXED_ANONYMOUS"
)

type Election struct {
	Id              string
	Title           string
	Description     string
	StartTime       int64 //unix timestamp, scheduled start of voting window
	EndTime         int64 //unix timestamp, scheduled end of voting window
	ActualStartTime *int64
	ActualEndTime   *int64
	VotingMode      VotingMode
	Status          ElectionStatus
	VoteCount       int64
	Candidates      []*Candidate //ordered by position
	CreatedBy       string
	UpdatedBy       string
	CreatedAt       int64
}

// IsAcceptingVotes gates vote acceptance. Administrative status alone is not
// enough, the current time must also fall inside the scheduled window.
func (election *Election) IsAcceptingVotes(now int64) bool {
	if election.Status != ElectionStatusActive {
		return false
	}

	return now >= election.StartTime && now <= election.EndTime
}

func IsValidVotingMode(mode VotingMode) bool {
	switch mode {
	case VotingModeSimpleMajority, VotingModeRankedChoice, VotingModeLiquidDemocracy, VotingModeMixedAnonymous:
		return true
	}

	return false
}
