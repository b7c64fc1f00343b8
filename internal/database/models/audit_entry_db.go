package db_models

type AuditEntryDB struct {
	Id                []byte `gorm:"primaryKey;column:id"`
	Action            string `gorm:"column:action;not null;index"`
	Actor             string `gorm:"column:actor;not null;index"`
	Payload           string `gorm:"column:payload;not null"`
	Timestamp         int64  `gorm:"column:timestamp;not null;index"`
	LedgerTxHash      string `gorm:"column:ledger_tx_hash"`
	LedgerBlockNumber uint64 `gorm:"column:ledger_block_number;not null;default:0"`
}

func (AuditEntryDB) TableName() string {
	return "audit_log"
}
