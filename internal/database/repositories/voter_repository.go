package repositories

import (
	"errors"

	"gorm.io/gorm"

	db_models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/models"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	mapping "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/mapping"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type VoterRepository interface {
	Register(voter *models.Voter) error
	GetVoter(address string) (*models.Voter, error)
	HasVoted(address string, electionId string) (bool, error)
	RecordVote(tx *gorm.DB, record *models.VoteRecord) error
	VotedElections(address string) (map[string]bool, error)
}

type VoterRepositoryImpl struct {
	db *gorm.DB
}

func NewVoterRepositoryImpl(db *gorm.DB) *VoterRepositoryImpl {
	return &VoterRepositoryImpl{db: db}
}

func (repo *VoterRepositoryImpl) Register(voter *models.Voter) error {
	err := repo.db.Create(mapping.VoterToVoterDB(voter)).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return app_errors.Newf(app_errors.CodeAlreadyRegistered, "wallet %s is already registered", voter.Address)
	}

	return err
}

func (repo *VoterRepositoryImpl) GetVoter(address string) (*models.Voter, error) {
	var voterDB db_models.VoterDB
	result := repo.db.
		Preload("VoteRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("vote_records.cast_at ASC")
		}).
		Where("address = ?", address).
		First(&voterDB)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, app_errors.Newf(app_errors.CodeVoterNotRegistered, "wallet %s is not registered", address)
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return mapping.VoterDBToVoter(&voterDB), nil
}

func (repo *VoterRepositoryImpl) HasVoted(address string, electionId string) (bool, error) {
	var count int64
	result := repo.db.Model(&db_models.VoteRecordDB{}).
		Where("voter_address = ? AND election_id = ?", address, electionId).
		Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// RecordVote is the authoritative double-vote check. The insert either takes
// the (voter, election) slot or fails on the primary key, there is no separate
// read. It runs on the caller's transaction so the tally increments commit or
// roll back together with it.
func (repo *VoterRepositoryImpl) RecordVote(tx *gorm.DB, record *models.VoteRecord) error {
	err := tx.Create(mapping.VoteRecordToVoteRecordDB(record)).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return app_errors.Newf(app_errors.CodeAlreadyVoted, "wallet %s already voted in election %s", record.VoterAddress, record.ElectionId)
	}

	return err
}

func (repo *VoterRepositoryImpl) VotedElections(address string) (map[string]bool, error) {
	var electionIds []string
	result := repo.db.Model(&db_models.VoteRecordDB{}).
		Where("voter_address = ?", address).
		Pluck("election_id", &electionIds)

	if result.Error != nil {
		return nil, result.Error
	}

	voted := make(map[string]bool, len(electionIds))
	for _, electionId := range electionIds {
		voted[electionId] = true
	}

	return voted, nil
}
