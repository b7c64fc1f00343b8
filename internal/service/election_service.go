package service

import (
	"time"

	"github.com/google/uuid"

	config "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/config"
	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type ElectionService struct {
	electionRepository  repositories.ElectionRepository
	candidateRepository repositories.CandidateRepository
	auditRepository     repositories.AuditRepository
	adminConfig         *config.AdminConfig
	Now                 func() time.Time
}

func NewElectionService(electionRepository repositories.ElectionRepository, candidateRepository repositories.CandidateRepository, auditRepository repositories.AuditRepository, adminConfig *config.AdminConfig) *ElectionService {
	return &ElectionService{
		electionRepository:  electionRepository,
		candidateRepository: candidateRepository,
		auditRepository:     auditRepository,
		adminConfig:         adminConfig,
		Now:                 time.Now,
	}
}

type CreateElectionRequest struct {
	Title       string
	Description string
	StartTime   int64
	EndTime     int64
	VotingMode  models.VotingMode
	Admin       AdminRequest
}

type electionPayload struct {
	ElectionId string `json:"election_id"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (electionService *ElectionService) CreateElection(request *CreateElectionRequest) (*models.Election, error) {
	actor, err := authorizeAdmin(electionService.adminConfig, request.Admin)
	if err != nil {
		return nil, err
	}

	if request.Title == "" {
		return nil, app_errors.New(app_errors.CodeInvalidInput, "election title is required")
	}

	if request.StartTime >= request.EndTime {
		return nil, app_errors.New(app_errors.CodeInvalidInput, "election start must precede its end")
	}

	if !models.IsValidVotingMode(request.VotingMode) {
		return nil, app_errors.Newf(app_errors.CodeInvalidInput, "unknown voting mode %s", request.VotingMode)
	}

	now := electionService.Now().Unix()

	election := &models.Election{
		Id:          uuid.NewString(),
		Title:       request.Title,
		Description: request.Description,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		VotingMode:  request.VotingMode,
		Status:      models.ElectionStatusDraft,
		CreatedBy:   actor,
		UpdatedBy:   actor,
		CreatedAt:   now,
	}

	if err := electionService.electionRepository.Create(election); err != nil {
		return nil, err
	}

	payload := electionPayload{ElectionId: election.Id, Title: election.Title}
	if err := appendAudit(electionService.auditRepository, models.ActionElectionCreated, actor, payload, now); err != nil {
		return nil, err
	}

	return election, nil
}

func (electionService *ElectionService) StartElection(electionId string, admin AdminRequest) (*models.Election, error) {
	actor, err := authorizeAdmin(electionService.adminConfig, admin)
	if err != nil {
		return nil, err
	}

	now := electionService.Now().Unix()

	election, err := electionService.electionRepository.Start(electionId, actor, now)
	if err != nil {
		return nil, err
	}

	payload := electionPayload{ElectionId: election.Id, Status: string(election.Status)}
	if err := appendAudit(electionService.auditRepository, models.ActionElectionStarted, actor, payload, now); err != nil {
		return nil, err
	}

	return election, nil
}

func (electionService *ElectionService) StopElection(electionId string, admin AdminRequest) (*models.Election, error) {
	actor, err := authorizeAdmin(electionService.adminConfig, admin)
	if err != nil {
		return nil, err
	}

	now := electionService.Now().Unix()

	election, err := electionService.electionRepository.Stop(electionId, actor, now)
	if err != nil {
		return nil, err
	}

	payload := electionPayload{ElectionId: election.Id, Status: string(election.Status)}
	if err := appendAudit(electionService.auditRepository, models.ActionElectionStopped, actor, payload, now); err != nil {
		return nil, err
	}

	return election, nil
}

func (electionService *ElectionService) PauseElection(electionId string, admin AdminRequest) (*models.Election, error) {
	return electionService.update(electionId, admin, electionService.electionRepository.Pause)
}

func (electionService *ElectionService) ResumeElection(electionId string, admin AdminRequest) (*models.Election, error) {
	return electionService.update(electionId, admin, electionService.electionRepository.Resume)
}

func (electionService *ElectionService) CancelElection(electionId string, admin AdminRequest) (*models.Election, error) {
	return electionService.update(electionId, admin, electionService.electionRepository.Cancel)
}

func (electionService *ElectionService) update(electionId string, admin AdminRequest, transition func(string, string) (*models.Election, error)) (*models.Election, error) {
	actor, err := authorizeAdmin(electionService.adminConfig, admin)
	if err != nil {
		return nil, err
	}

	election, err := transition(electionId, actor)
	if err != nil {
		return nil, err
	}

	now := electionService.Now().Unix()

	payload := electionPayload{ElectionId: election.Id, Status: string(election.Status)}
	if err := appendAudit(electionService.auditRepository, models.ActionElectionUpdated, actor, payload, now); err != nil {
		return nil, err
	}

	return election, nil
}

func (electionService *ElectionService) GetElection(electionId string) (*models.Election, error) {
	return electionService.electionRepository.GetElection(electionId)
}

func (electionService *ElectionService) Results(electionId string) ([]*models.Candidate, error) {
	if _, err := electionService.electionRepository.GetElection(electionId); err != nil {
		return nil, err
	}

	return electionService.candidateRepository.GetResults(electionId)
}
