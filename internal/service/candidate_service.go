package service

import (
	"time"

	"github.com/google/uuid"

	config "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/config"
	signature "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/crypto/signature"
	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type CandidateService struct {
	candidateRepository repositories.CandidateRepository
	electionRepository  repositories.ElectionRepository
	auditRepository     repositories.AuditRepository
	adminConfig         *config.AdminConfig
	Now                 func() time.Time
}

func NewCandidateService(candidateRepository repositories.CandidateRepository, electionRepository repositories.ElectionRepository, auditRepository repositories.AuditRepository, adminConfig *config.AdminConfig) *CandidateService {
	return &CandidateService{
		candidateRepository: candidateRepository,
		electionRepository:  electionRepository,
		auditRepository:     auditRepository,
		adminConfig:         adminConfig,
		Now:                 time.Now,
	}
}

type RegisterCandidateRequest struct {
	Name        string
	Party       string
	Description string
	ElectionId  string
	Actor       string
	Message     []byte
	Signature   []byte
}

type candidatePayload struct {
	CandidateId string `json:"candidate_id"`
	ElectionId  string `json:"election_id"`
	Name        string `json:"name,omitempty"`
}

// RegisterCandidate creates a pending candidate. Registration closes once the
// election leaves draft, approved candidates must exist on the ledger before
// voting opens.
func (candidateService *CandidateService) RegisterCandidate(request *RegisterCandidateRequest) (*models.Candidate, error) {
	actor, err := NormalizeAddress(request.Actor)
	if err != nil {
		return nil, err
	}

	if err := signature.Verify(request.Message, request.Signature, actor); err != nil {
		return nil, err
	}

	if request.Name == "" {
		return nil, app_errors.New(app_errors.CodeInvalidInput, "candidate name is required")
	}

	election, err := candidateService.electionRepository.GetElection(request.ElectionId)
	if err != nil {
		return nil, err
	}

	if election.Status != models.ElectionStatusDraft {
		return nil, app_errors.Newf(app_errors.CodeInvalidTransition, "election %s no longer accepts candidate registrations", election.Id)
	}

	now := candidateService.Now().Unix()

	candidate := &models.Candidate{
		Id:          uuid.NewString(),
		Name:        request.Name,
		Party:       request.Party,
		Description: request.Description,
		ElectionId:  election.Id,
		Status:      models.CandidateStatusPending,
		Position:    len(election.Candidates),
		CreatedAt:   now,
	}

	if err := candidateService.candidateRepository.Create(candidate); err != nil {
		return nil, err
	}

	payload := candidatePayload{CandidateId: candidate.Id, ElectionId: election.Id, Name: candidate.Name}
	if err := appendAudit(candidateService.auditRepository, models.ActionCandidateRegistered, actor, payload, now); err != nil {
		return nil, err
	}

	return candidate, nil
}

func (candidateService *CandidateService) ApproveCandidate(candidateId string, admin AdminRequest) (*models.Candidate, error) {
	actor, err := authorizeAdmin(candidateService.adminConfig, admin)
	if err != nil {
		return nil, err
	}

	now := candidateService.Now().Unix()

	candidate, err := candidateService.candidateRepository.Approve(candidateId, actor, now)
	if err != nil {
		return nil, err
	}

	payload := candidatePayload{CandidateId: candidate.Id, ElectionId: candidate.ElectionId}
	if err := appendAudit(candidateService.auditRepository, models.ActionCandidateApproved, actor, payload, now); err != nil {
		return nil, err
	}

	return candidate, nil
}

func (candidateService *CandidateService) RejectCandidate(candidateId string, admin AdminRequest) (*models.Candidate, error) {
	actor, err := authorizeAdmin(candidateService.adminConfig, admin)
	if err != nil {
		return nil, err
	}

	now := candidateService.Now().Unix()

	candidate, err := candidateService.candidateRepository.Reject(candidateId, actor, now)
	if err != nil {
		return nil, err
	}

	payload := candidatePayload{CandidateId: candidate.Id, ElectionId: candidate.ElectionId}
	if err := appendAudit(candidateService.auditRepository, models.ActionCandidateRejected, actor, payload, now); err != nil {
		return nil, err
	}

	return candidate, nil
}
