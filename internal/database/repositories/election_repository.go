package repositories

import (
	"errors"

	"gorm.io/gorm"

	db_models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/models"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	mapping "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/mapping"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type ElectionRepository interface {
	Create(election *models.Election) error
	GetElection(id string) (*models.Election, error)
	Start(id string, actor string, now int64) (*models.Election, error)
	Stop(id string, actor string, now int64) (*models.Election, error)
	Pause(id string, actor string) (*models.Election, error)
	Resume(id string, actor string) (*models.Election, error)
	Cancel(id string, actor string) (*models.Election, error)
	IncrementVoteCount(tx *gorm.DB, electionId string) error
}

type ElectionRepositoryImpl struct {
	db *gorm.DB
}

func NewElectionRepositoryImpl(db *gorm.DB) *ElectionRepositoryImpl {
	return &ElectionRepositoryImpl{db: db}
}

func (repo *ElectionRepositoryImpl) Create(election *models.Election) error {
	return repo.db.Create(mapping.ElectionToElectionDB(election)).Error
}

func (repo *ElectionRepositoryImpl) GetElection(id string) (*models.Election, error) {
	var electionDB db_models.ElectionDB
	result := repo.db.
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("candidates.position ASC")
		}).
		Where("id = ?", id).
		First(&electionDB)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, app_errors.Newf(app_errors.CodeElectionNotFound, "election %s not found", id)
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return mapping.ElectionDBToElection(&electionDB), nil
}

func (repo *ElectionRepositoryImpl) Start(id string, actor string, now int64) (*models.Election, error) {
	updates := map[string]any{"actual_start_time": now}
	return repo.transition(id, actor, []models.ElectionStatus{models.ElectionStatusDraft}, models.ElectionStatusActive, updates)
}

func (repo *ElectionRepositoryImpl) Stop(id string, actor string, now int64) (*models.Election, error) {
	updates := map[string]any{"actual_end_time": now}
	return repo.transition(id, actor, []models.ElectionStatus{models.ElectionStatusActive}, models.ElectionStatusCompleted, updates)
}

func (repo *ElectionRepositoryImpl) Pause(id string, actor string) (*models.Election, error) {
	return repo.transition(id, actor, []models.ElectionStatus{models.ElectionStatusActive}, models.ElectionStatusPaused, nil)
}

func (repo *ElectionRepositoryImpl) Resume(id string, actor string) (*models.Election, error) {
	return repo.transition(id, actor, []models.ElectionStatus{models.ElectionStatusPaused}, models.ElectionStatusActive, nil)
}

func (repo *ElectionRepositoryImpl) Cancel(id string, actor string) (*models.Election, error) {
	fromStatuses := []models.ElectionStatus{models.ElectionStatusDraft, models.ElectionStatusActive}
	return repo.transition(id, actor, fromStatuses, models.ElectionStatusCancelled, nil)
}

// transition is a conditional update, the WHERE clause on the current status
// makes the state change atomic. Zero affected rows means the election either
// does not exist or is not in an allowed source state.
func (repo *ElectionRepositoryImpl) transition(id string, actor string, from []models.ElectionStatus, to models.ElectionStatus, extra map[string]any) (*models.Election, error) {
	fromStatuses := make([]string, len(from))
	for idx, status := range from {
		fromStatuses[idx] = string(status)
	}

	updates := map[string]any{
		"status":     string(to),
		"updated_by": actor,
	}
	for column, value := range extra {
		updates[column] = value
	}

	result := repo.db.Model(&db_models.ElectionDB{}).
		Where("id = ? AND status IN ?", id, fromStatuses).
		Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		election, err := repo.GetElection(id)
		if err != nil {
			return nil, err
		}

		return nil, app_errors.Newf(app_errors.CodeInvalidTransition, "election %s cannot move from %s to %s", id, election.Status, to)
	}

	return repo.GetElection(id)
}

func (repo *ElectionRepositoryImpl) IncrementVoteCount(tx *gorm.DB, electionId string) error {
	result := tx.Model(&db_models.ElectionDB{}).
		Where("id = ?", electionId).
		UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return app_errors.Newf(app_errors.CodeElectionNotFound, "election %s not found", electionId)
	}

	return nil
}
