package repositories

import (
	"encoding/hex"

	"gorm.io/gorm"
)

var GlobalElectionRepository ElectionRepository = nil
var GlobalCandidateRepository CandidateRepository = nil
var GlobalVoterRepository VoterRepository = nil
var GlobalAuditRepository AuditRepository = nil

func InitializeGlobalRepositories(db *gorm.DB) error {
	GlobalElectionRepository = NewElectionRepositoryImpl(db)
	GlobalCandidateRepository = NewCandidateRepositoryImpl(db)
	GlobalVoterRepository = NewVoterRepositoryImpl(db)
	GlobalAuditRepository = NewAuditRepositoryImpl(db)

	return nil
}

func hexId(id []byte) string {
	return hex.EncodeToString(id)
}
