package mapping

import (
	"slices"

	db_models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/models"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

func ElectionToElectionDB(election *models.Election) *db_models.ElectionDB {
	return &db_models.ElectionDB{
		Id:              election.Id,
		Title:           election.Title,
		Description:     election.Description,
		StartTime:       election.StartTime,
		EndTime:         election.EndTime,
		ActualStartTime: election.ActualStartTime,
		ActualEndTime:   election.ActualEndTime,
		VotingMode:      string(election.VotingMode),
		Status:          string(election.Status),
		VoteCount:       election.VoteCount,
		CreatedBy:       election.CreatedBy,
		UpdatedBy:       election.UpdatedBy,
		CreatedAt:       election.CreatedAt,
	}
}

func ElectionDBToElection(electionDB *db_models.ElectionDB) *models.Election {
	candidates := make([]*models.Candidate, len(electionDB.Candidates))
	for idx, candidateDB := range electionDB.Candidates {
		candidates[idx] = CandidateDBToCandidate(&candidateDB)
	}

	return &models.Election{
		Id:              electionDB.Id,
		Title:           electionDB.Title,
		Description:     electionDB.Description,
		StartTime:       electionDB.StartTime,
		EndTime:         electionDB.EndTime,
		ActualStartTime: electionDB.ActualStartTime,
		ActualEndTime:   electionDB.ActualEndTime,
		VotingMode:      models.VotingMode(electionDB.VotingMode),
		Status:          models.ElectionStatus(electionDB.Status),
		VoteCount:       electionDB.VoteCount,
		Candidates:      candidates,
		CreatedBy:       electionDB.CreatedBy,
		UpdatedBy:       electionDB.UpdatedBy,
		CreatedAt:       electionDB.CreatedAt,
	}
}

func CandidateToCandidateDB(candidate *models.Candidate) *db_models.CandidateDB {
	return &db_models.CandidateDB{
		Id:                 candidate.Id,
		Name:               candidate.Name,
		Party:              candidate.Party,
		Description:        candidate.Description,
		ElectionId:         candidate.ElectionId,
		Status:             string(candidate.Status),
		VoteCount:          candidate.VoteCount,
		DelegatedVoteCount: candidate.DelegatedVoteCount,
		LedgerIndex:        candidate.LedgerIndex,
		Position:           candidate.Position,
		ApprovedBy:         candidate.ApprovedBy,
		ApprovedAt:         candidate.ApprovedAt,
		RejectedBy:         candidate.RejectedBy,
		RejectedAt:         candidate.RejectedAt,
		CreatedAt:          candidate.CreatedAt,
	}
}

func CandidateDBToCandidate(candidateDB *db_models.CandidateDB) *models.Candidate {
	return &models.Candidate{
		Id:                 candidateDB.Id,
		Name:               candidateDB.Name,
		Party:              candidateDB.Party,
		Description:        candidateDB.Description,
		ElectionId:         candidateDB.ElectionId,
		Status:             models.CandidateStatus(candidateDB.Status),
		VoteCount:          candidateDB.VoteCount,
		DelegatedVoteCount: candidateDB.DelegatedVoteCount,
		LedgerIndex:        candidateDB.LedgerIndex,
		Position:           candidateDB.Position,
		ApprovedBy:         candidateDB.ApprovedBy,
		ApprovedAt:         candidateDB.ApprovedAt,
		RejectedBy:         candidateDB.RejectedBy,
		RejectedAt:         candidateDB.RejectedAt,
		CreatedAt:          candidateDB.CreatedAt,
	}
}

func VoterToVoterDB(voter *models.Voter) *db_models.VoterDB {
	return &db_models.VoterDB{
		Address:      voter.Address,
		Name:         voter.Name,
		Verified:     voter.Verified,
		RegisteredAt: voter.RegisteredAt,
	}
}

func VoterDBToVoter(voterDB *db_models.VoterDB) *models.Voter {
	history := make([]*models.VoteRecord, len(voterDB.VoteRecords))
	for idx, recordDB := range voterDB.VoteRecords {
		history[idx] = VoteRecordDBToVoteRecord(&recordDB)
	}

	return &models.Voter{
		Address:       voterDB.Address,
		Name:          voterDB.Name,
		Verified:      voterDB.Verified,
		RegisteredAt:  voterDB.RegisteredAt,
		VotingHistory: history,
	}
}

func VoteRecordToVoteRecordDB(record *models.VoteRecord) *db_models.VoteRecordDB {
	return &db_models.VoteRecordDB{
		VoterAddress:      record.VoterAddress,
		ElectionId:        record.ElectionId,
		CandidateId:       record.CandidateId,
		VoteType:          string(record.VoteType),
		LedgerTxHash:      record.LedgerTxHash,
		LedgerBlockNumber: record.LedgerBlockNumber,
		VoteHash:          slices.Clone(record.VoteHash),
		CastAt:            record.CastAt,
	}
}

func VoteRecordDBToVoteRecord(recordDB *db_models.VoteRecordDB) *models.VoteRecord {
	return &models.VoteRecord{
		VoterAddress:      recordDB.VoterAddress,
		ElectionId:        recordDB.ElectionId,
		CandidateId:       recordDB.CandidateId,
		VoteType:          models.VoteType(recordDB.VoteType),
		LedgerTxHash:      recordDB.LedgerTxHash,
		LedgerBlockNumber: recordDB.LedgerBlockNumber,
		VoteHash:          slices.Clone(recordDB.VoteHash),
		CastAt:            recordDB.CastAt,
	}
}

func AuditEntryToAuditEntryDB(entry *models.AuditEntry) *db_models.AuditEntryDB {
	return &db_models.AuditEntryDB{
		Id:                slices.Clone(entry.Id),
		Action:            string(entry.Action),
		Actor:             entry.Actor,
		Payload:           entry.Payload,
		Timestamp:         entry.Timestamp,
		LedgerTxHash:      entry.LedgerTxHash,
		LedgerBlockNumber: entry.LedgerBlockNumber,
	}
}

func AuditEntryDBToAuditEntry(entryDB *db_models.AuditEntryDB) *models.AuditEntry {
	return &models.AuditEntry{
		Id:                slices.Clone(entryDB.Id),
		Action:            models.ActionKind(entryDB.Action),
		Actor:             entryDB.Actor,
		Payload:           entryDB.Payload,
		Timestamp:         entryDB.Timestamp,
		LedgerTxHash:      entryDB.LedgerTxHash,
		LedgerBlockNumber: entryDB.LedgerBlockNumber,
	}
}
