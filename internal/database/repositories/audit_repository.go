package repositories

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	db_models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/models"
	mapping "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/mapping"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type AuditFilter struct {
	Action *models.ActionKind
	Actor  *string
	From   *int64
	To     *int64
}

type AuditRepository interface {
	AppendIfNotExists(entry *models.AuditEntry) error
	AppendIfNotExistsTransactional(entry *models.AuditEntry, tx *gorm.DB) error
	QueryPaged(filter *AuditFilter, offset int, limit int) ([]*models.AuditEntry, int, error)
	Export(filter *AuditFilter) ([]byte, error)
}

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepositoryImpl(db *gorm.DB) *AuditRepositoryImpl {
	return &AuditRepositoryImpl{db: db}
}

// AppendIfNotExists inserts the entry unless its content id is already
// present. Two byte-identical actions within the same second carry the same
// id, that is a benign duplicate and not an error. Entries are never updated
// or deleted.
func (repo *AuditRepositoryImpl) AppendIfNotExists(entry *models.AuditEntry) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return repo.AppendIfNotExistsTransactional(entry, tx)
	})
}

func (repo *AuditRepositoryImpl) AppendIfNotExistsTransactional(entry *models.AuditEntry, tx *gorm.DB) error {
	existingEntry := &db_models.AuditEntryDB{}
	result := tx.Where("id = ?", entry.Id).Find(existingEntry)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		err := tx.Create(mapping.AuditEntryToAuditEntryDB(entry)).Error

		//a concurrent append of the identical entry won the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}

		return err
	}

	return nil
}

func (repo *AuditRepositoryImpl) QueryPaged(filter *AuditFilter, offset int, limit int) ([]*models.AuditEntry, int, error) {
	var total int64
	err := repo.applyFilter(repo.db.Model(&db_models.AuditEntryDB{}), filter).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var entriesDB []db_models.AuditEntryDB
	err = repo.applyFilter(repo.db.Model(&db_models.AuditEntryDB{}), filter).
		Order("timestamp DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&entriesDB).Error

	if err != nil {
		return nil, 0, err
	}

	entries := make([]*models.AuditEntry, len(entriesDB))
	for idx, entryDB := range entriesDB {
		entries[idx] = mapping.AuditEntryDBToAuditEntry(&entryDB)
	}

	return entries, int(total), nil
}

type auditExportEntry struct {
	Id                string `json:"id"`
	Action            string `json:"action"`
	Actor             string `json:"actor"`
	Payload           string `json:"payload"`
	Timestamp         int64  `json:"timestamp"`
	LedgerTxHash      string `json:"ledger_tx_hash,omitempty"`
	LedgerBlockNumber uint64 `json:"ledger_block_number,omitempty"`
}

// Export serializes the full matched set newest-first as JSON.
func (repo *AuditRepositoryImpl) Export(filter *AuditFilter) ([]byte, error) {
	var entriesDB []db_models.AuditEntryDB
	err := repo.applyFilter(repo.db.Model(&db_models.AuditEntryDB{}), filter).
		Order("timestamp DESC, id ASC").
		Find(&entriesDB).Error

	if err != nil {
		return nil, err
	}

	exportEntries := make([]auditExportEntry, len(entriesDB))
	for idx, entryDB := range entriesDB {
		entry := mapping.AuditEntryDBToAuditEntry(&entryDB)
		exportEntries[idx] = auditExportEntry{
			Id:                hexId(entry.Id),
			Action:            string(entry.Action),
			Actor:             entry.Actor,
			Payload:           entry.Payload,
			Timestamp:         entry.Timestamp,
			LedgerTxHash:      entry.LedgerTxHash,
			LedgerBlockNumber: entry.LedgerBlockNumber,
		}
	}

	return json.MarshalIndent(exportEntries, "", "  ")
}

func (repo *AuditRepositoryImpl) applyFilter(query *gorm.DB, filter *AuditFilter) *gorm.DB {
	if filter == nil {
		return query
	}

	if filter.Action != nil {
		query = query.Where("action = ?", string(*filter.Action))
	}

	if filter.Actor != nil {
		query = query.Where("actor = ?", *filter.Actor)
	}

	if filter.From != nil {
		query = query.Where("timestamp >= ?", *filter.From)
	}

	if filter.To != nil {
		query = query.Where("timestamp <= ?", *filter.To)
	}

	return query
}
