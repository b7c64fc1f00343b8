package ledger

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

// Vote is what the chain records, the registry index of the candidate and the
// voter identity. Local candidate ids never leave the service.
type Vote struct {
	CandidateIndex uint64
	VoterAddress   common.Address
	VoteType       models.VoteType
}

type SubmitResult struct {
	TxHash      string
	BlockNumber uint64
	Confirmed   bool
}

// Client submits a vote to the chain of record and reports the mined result.
// Submissions are never retried automatically, a failed submission surfaces to
// the caller who may re-authorize and retry the whole operation.
type Client interface {
	SubmitVote(ctx context.Context, vote *Vote) (*SubmitResult, error)
}
