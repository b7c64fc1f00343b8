package models

type CandidateStatus string

const (
	CandidateStatusPending   CandidateStatus = "pending"
	CandidateStatusActive    CandidateStatus = "active"
	CandidateStatusRejected  CandidateStatus = "rejected"
	CandidateStatusWithdrawn CandidateStatus = "withdrawn"
)

type Candidate struct {
	Id                 string
	Name               string
	Party              string
	Description        string
	ElectionId         string
	Status             CandidateStatus
	VoteCount          int64
	DelegatedVoteCount int64
	LedgerIndex        uint64 //index in the on-chain candidate registry, assigned at approval
	Position           int
	ApprovedBy         *string
	ApprovedAt         *int64
	RejectedBy         *string
	RejectedAt         *int64
	CreatedAt          int64
}

func (candidate *Candidate) IsEligible() bool {
	return candidate.Status == CandidateStatusActive
}
