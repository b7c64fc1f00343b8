package service

import (
	"context"
	"log"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"

	signature "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/crypto/signature"
	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	ledger "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/ledger"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type VoteService struct {
	db                  *gorm.DB
	voterRepository     repositories.VoterRepository
	candidateRepository repositories.CandidateRepository
	electionRepository  repositories.ElectionRepository
	auditRepository     repositories.AuditRepository
	ledgerClient        ledger.Client
	Now                 func() time.Time
}

func NewVoteService(db *gorm.DB, voterRepository repositories.VoterRepository, candidateRepository repositories.CandidateRepository, electionRepository repositories.ElectionRepository, auditRepository repositories.AuditRepository, ledgerClient ledger.Client) *VoteService {
	return &VoteService{
		db:                  db,
		voterRepository:     voterRepository,
		candidateRepository: candidateRepository,
		electionRepository:  electionRepository,
		auditRepository:     auditRepository,
		ledgerClient:        ledgerClient,
		Now:                 time.Now,
	}
}

type CastVoteRequest struct {
	ElectionId   string
	CandidateId  string
	VoterAddress string
	Signature    []byte
	Message      []byte
}

type CastVoteResult struct {
	LedgerTxHash      string
	LedgerBlockNumber uint64
	Candidate         *models.Candidate
}

type votePayload struct {
	ElectionId   string `json:"election_id"`
	CandidateId  string `json:"candidate_id"`
	LedgerTxHash string `json:"ledger_tx_hash,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// CastVote runs the full vote-casting protocol: authenticate, authorize,
// submit to the ledger, then commit the local record and tallies as one
// transaction. For any (voter, election) pair at most one call ever commits,
// every other call fails with ALREADY_VOTED before reaching the ledger or is
// flagged for reconciliation if it loses the race afterwards.
func (voteService *VoteService) CastVote(ctx context.Context, request *CastVoteRequest) (*CastVoteResult, error) {
	voterAddress, err := NormalizeAddress(request.VoterAddress)
	if err != nil {
		return nil, err
	}

	if err := signature.Verify(request.Message, request.Signature, voterAddress); err != nil {
		return nil, err
	}

	candidate, err := voteService.candidateRepository.GetCandidate(request.CandidateId)
	if err != nil {
		return nil, err
	}

	if request.ElectionId != "" && request.ElectionId != candidate.ElectionId {
		return nil, app_errors.Newf(app_errors.CodeInvalidInput, "candidate %s does not belong to election %s", candidate.Id, request.ElectionId)
	}

	election, err := voteService.electionRepository.GetElection(candidate.ElectionId)
	if err != nil {
		return nil, err
	}

	now := voteService.Now().Unix()

	if !election.IsAcceptingVotes(now) {
		return nil, app_errors.Newf(app_errors.CodeElectionNotActive, "election %s is not accepting votes", election.Id)
	}

	if !candidate.IsEligible() {
		return nil, app_errors.Newf(app_errors.CodeCandidateNotEligible, "candidate %s is not active", candidate.Id)
	}

	if _, err := voteService.voterRepository.GetVoter(voterAddress); err != nil {
		return nil, err
	}

	//advisory only, the authoritative check is the conditional insert below
	hasVoted, err := voteService.voterRepository.HasVoted(voterAddress, election.Id)
	if err != nil {
		return nil, err
	}

	if hasVoted {
		return nil, app_errors.Newf(app_errors.CodeAlreadyVoted, "wallet %s already voted in election %s", voterAddress, election.Id)
	}

	voteType := voteTypeForMode(election.VotingMode)

	submission := &ledger.Vote{
		CandidateIndex: candidate.LedgerIndex,
		VoterAddress:   common.HexToAddress(voterAddress),
		VoteType:       voteType,
	}

	result, err := voteService.ledgerClient.SubmitVote(ctx, submission)
	if err != nil {
		voteService.recordVoteFailure(voterAddress, election.Id, candidate.Id, "", err.Error(), now)
		return nil, app_errors.Wrap(app_errors.CodeLedgerSubmissionFailed, "ledger submission failed", err)
	}

	if !result.Confirmed {
		voteService.recordVoteFailure(voterAddress, election.Id, candidate.Id, result.TxHash, "ledger transaction reverted", now)
		return nil, app_errors.Newf(app_errors.CodeLedgerSubmissionFailed, "ledger transaction %s reverted", result.TxHash)
	}

	record := &models.VoteRecord{
		VoterAddress:      voterAddress,
		ElectionId:        election.Id,
		CandidateId:       candidate.Id,
		VoteType:          voteType,
		LedgerTxHash:      result.TxHash,
		LedgerBlockNumber: result.BlockNumber,
		CastAt:            now,
	}
	record.SetVoteHash()

	castEntry, err := buildAuditEntry(models.ActionVoteCast, voterAddress, votePayload{
		ElectionId:   election.Id,
		CandidateId:  candidate.Id,
		LedgerTxHash: result.TxHash,
	}, now, result.TxHash, result.BlockNumber)
	if err != nil {
		return nil, err
	}

	//the vote record, both tally increments and the VOTE_CAST entry commit or
	//roll back as one unit
	err = voteService.db.Transaction(func(tx *gorm.DB) error {
		if err := voteService.voterRepository.RecordVote(tx, record); err != nil {
			return err
		}

		if err := voteService.candidateRepository.IncrementVoteCount(tx, candidate.Id, voteType); err != nil {
			return err
		}

		if err := voteService.electionRepository.IncrementVoteCount(tx, election.Id); err != nil {
			return err
		}

		return voteService.auditRepository.AppendIfNotExistsTransactional(castEntry, tx)
	})

	if err != nil {
		if app_errors.HasCode(err, app_errors.CodeAlreadyVoted) {
			//the ledger already holds a committed vote for this request, this
			//cannot be rolled back from here and needs operator reconciliation
			log.Printf("|VoteService| Duplicate vote for %s in election %s after ledger confirmation, tx %s", voterAddress, election.Id, result.TxHash)
			voteService.recordVoteFailure(voterAddress, election.Id, candidate.Id, result.TxHash, "duplicate vote after ledger confirmation", now)
			return nil, app_errors.Wrap(app_errors.CodeDuplicateVotePostLedger, "vote confirmed on ledger but already recorded locally", err)
		}

		return nil, err
	}

	snapshot, err := voteService.candidateRepository.GetCandidate(candidate.Id)
	if err != nil {
		snapshot = candidate
	}

	return &CastVoteResult{
		LedgerTxHash:      result.TxHash,
		LedgerBlockNumber: result.BlockNumber,
		Candidate:         snapshot,
	}, nil
}

func voteTypeForMode(mode models.VotingMode) models.VoteType {
	switch mode {
	case models.VotingModeLiquidDemocracy:
		return models.VoteTypeDelegated
	case models.VotingModeMixedAnonymous:
		return models.VoteTypeMixed
	}

	return models.VoteTypeDirect
}

func (voteService *VoteService) recordVoteFailure(actor string, electionId string, candidateId string, txHash string, reason string, now int64) {
	payload := votePayload{
		ElectionId:   electionId,
		CandidateId:  candidateId,
		LedgerTxHash: txHash,
		Reason:       reason,
	}

	if err := appendAudit(voteService.auditRepository, models.ActionVoteFailed, actor, payload, now); err != nil {
		log.Printf("|VoteService| Failed to record vote failure: %v", err)
	}
}
