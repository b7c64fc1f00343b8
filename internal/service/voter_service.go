package service

import (
	"time"

	signature "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/crypto/signature"
	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type VoterService struct {
	voterRepository repositories.VoterRepository
	auditRepository repositories.AuditRepository
	Now             func() time.Time
}

func NewVoterService(voterRepository repositories.VoterRepository, auditRepository repositories.AuditRepository) *VoterService {
	return &VoterService{
		voterRepository: voterRepository,
		auditRepository: auditRepository,
		Now:             time.Now,
	}
}

type RegisterVoterRequest struct {
	Address   string
	Name      string
	Message   []byte
	Signature []byte
}

type voterPayload struct {
	Address string `json:"address"`
}

// Register creates the voter with an empty voting history. The signature
// proves control of the wallet, so the voter starts out verified.
func (voterService *VoterService) Register(request *RegisterVoterRequest) (*models.Voter, error) {
	address, err := NormalizeAddress(request.Address)
	if err != nil {
		return nil, err
	}

	if err := signature.Verify(request.Message, request.Signature, address); err != nil {
		return nil, err
	}

	now := voterService.Now().Unix()

	voter := &models.Voter{
		Address:      address,
		Name:         request.Name,
		Verified:     true,
		RegisteredAt: now,
	}

	if err := voterService.voterRepository.Register(voter); err != nil {
		return nil, err
	}

	payload := voterPayload{Address: address}
	if err := appendAudit(voterService.auditRepository, models.ActionVoterRegistered, address, payload, now); err != nil {
		return nil, err
	}

	return voter, nil
}

type VoterStatus struct {
	Registered          bool
	Verified            bool
	HasVotedPerElection map[string]bool
}

func (voterService *VoterService) GetVoterStatus(address string) (*VoterStatus, error) {
	normalized, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	voter, err := voterService.voterRepository.GetVoter(normalized)
	if err != nil {
		if app_errors.HasCode(err, app_errors.CodeVoterNotRegistered) {
			return &VoterStatus{Registered: false, HasVotedPerElection: map[string]bool{}}, nil
		}

		return nil, err
	}

	voted, err := voterService.voterRepository.VotedElections(normalized)
	if err != nil {
		return nil, err
	}

	return &VoterStatus{
		Registered:          true,
		Verified:            voter.Verified,
		HasVotedPerElection: voted,
	}, nil
}
