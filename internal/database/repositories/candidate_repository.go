package repositories

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"

	db_models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/models"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	mapping "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/mapping"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	GetCandidate(id string) (*models.Candidate, error)
	GetByElection(electionId string) ([]*models.Candidate, error)
	GetResults(electionId string) ([]*models.Candidate, error)
	Approve(id string, actor string, now int64) (*models.Candidate, error)
	Reject(id string, actor string, now int64) (*models.Candidate, error)
	IncrementVoteCount(tx *gorm.DB, candidateId string, voteType models.VoteType) error
}

type CandidateRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateRepositoryImpl(db *gorm.DB) *CandidateRepositoryImpl {
	return &CandidateRepositoryImpl{db: db}
}

func (repo *CandidateRepositoryImpl) Create(candidate *models.Candidate) error {
	return repo.db.Create(mapping.CandidateToCandidateDB(candidate)).Error
}

func (repo *CandidateRepositoryImpl) GetCandidate(id string) (*models.Candidate, error) {
	var candidateDB db_models.CandidateDB
	result := repo.db.Where("id = ?", id).First(&candidateDB)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, app_errors.Newf(app_errors.CodeCandidateNotFound, "candidate %s not found", id)
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return mapping.CandidateDBToCandidate(&candidateDB), nil
}

func (repo *CandidateRepositoryImpl) GetByElection(electionId string) ([]*models.Candidate, error) {
	return repo.findCandidates("election_id = ?", []any{electionId}, "position ASC")
}

// GetResults orders by committed tally, the local fast-read view of the count.
func (repo *CandidateRepositoryImpl) GetResults(electionId string) ([]*models.Candidate, error) {
	return repo.findCandidates("election_id = ?", []any{electionId}, "vote_count DESC, position ASC")
}

func (repo *CandidateRepositoryImpl) findCandidates(condition string, args []any, order string) ([]*models.Candidate, error) {
	var candidatesDB []db_models.CandidateDB
	result := repo.db.Where(condition, args...).Order(order).Find(&candidatesDB)

	if result.Error != nil {
		return nil, result.Error
	}

	candidates := make([]*models.Candidate, len(candidatesDB))
	for idx, candidateDB := range candidatesDB {
		candidates[idx] = mapping.CandidateDBToCandidate(&candidateDB)
	}

	return candidates, nil
}

// Approve moves a pending candidate to active and assigns the next free slot
// in the election's on-chain candidate registry. The status condition on the
// final update keeps concurrent approvals of the same candidate to one winner.
func (repo *CandidateRepositoryImpl) Approve(id string, actor string, now int64) (*models.Candidate, error) {
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var candidateDB db_models.CandidateDB
		result := tx.Where("id = ?", id).First(&candidateDB)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return app_errors.Newf(app_errors.CodeCandidateNotFound, "candidate %s not found", id)
		}

		if result.Error != nil {
			return result.Error
		}

		var maxIndex sql.NullInt64
		err := tx.Model(&db_models.CandidateDB{}).
			Where("election_id = ?", candidateDB.ElectionId).
			Select("MAX(ledger_index)").
			Row().Scan(&maxIndex)

		if err != nil {
			return err
		}

		updates := map[string]any{
			"status":       string(models.CandidateStatusActive),
			"ledger_index": maxIndex.Int64 + 1,
			"approved_by":  actor,
			"approved_at":  now,
		}

		update := tx.Model(&db_models.CandidateDB{}).
			Where("id = ? AND status = ?", id, string(models.CandidateStatusPending)).
			Updates(updates)

		if update.Error != nil {
			return update.Error
		}

		if update.RowsAffected == 0 {
			return app_errors.Newf(app_errors.CodeInvalidTransition, "candidate %s is not pending", id)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return repo.GetCandidate(id)
}

func (repo *CandidateRepositoryImpl) Reject(id string, actor string, now int64) (*models.Candidate, error) {
	updates := map[string]any{
		"status":      string(models.CandidateStatusRejected),
		"rejected_by": actor,
		"rejected_at": now,
	}

	result := repo.db.Model(&db_models.CandidateDB{}).
		Where("id = ? AND status = ?", id, string(models.CandidateStatusPending)).
		Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := repo.GetCandidate(id); err != nil {
			return nil, err
		}

		return nil, app_errors.Newf(app_errors.CodeInvalidTransition, "candidate %s is not pending", id)
	}

	return repo.GetCandidate(id)
}

// IncrementVoteCount applies the tally as a SQL increment expression, never a
// read-modify-write, so concurrent votes for different voters stay correct.
func (repo *CandidateRepositoryImpl) IncrementVoteCount(tx *gorm.DB, candidateId string, voteType models.VoteType) error {
	updates := map[string]any{
		"vote_count": gorm.Expr("vote_count + ?", 1),
	}

	if voteType == models.VoteTypeDelegated {
		updates["delegated_vote_count"] = gorm.Expr("delegated_vote_count + ?", 1)
	}

	result := tx.Model(&db_models.CandidateDB{}).
		Where("id = ?", candidateId).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return app_errors.Newf(app_errors.CodeCandidateNotFound, "candidate %s not found", candidateId)
	}

	return nil
}
