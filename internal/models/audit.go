package models

import (
	"encoding/binary"

	"github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/crypto/hash"
)

type ActionKind string

const (
	ActionCandidateRegistered ActionKind = "CANDIDATE_REGISTERED"
	ActionCandidateApproved   ActionKind = "CANDIDATE_APPROVED"
	ActionCandidateRejected   ActionKind = "CANDIDATE_REJECTED"
	ActionCandidateUpdated    ActionKind = "CANDIDATE_UPDATED"
	ActionCandidateDeleted    ActionKind = "CANDIDATE_DELETED"
	ActionElectionCreated     ActionKind = "ELECTION_CREATED"
	ActionElectionUpdated     ActionKind = "ELECTION_UPDATED"
	ActionElectionDeleted     ActionKind = "ELECTION_DELETED"
	ActionElectionStarted     ActionKind = "ELECTION_STARTED"
	ActionElectionStopped     ActionKind = "ELECTION_STOPPED"
	ActionVoteCast            ActionKind = "VOTE_CAST"
	ActionVoteFailed          ActionKind = "VOTE_FAILED"
	ActionVoterRegistered     ActionKind = "VOTER_REGISTERED"
	ActionSettingsUpdated     ActionKind = "SETTINGS_UPDATED"
)

func IsValidActionKind(kind ActionKind) bool {
	switch kind {
	case ActionCandidateRegistered, ActionCandidateApproved, ActionCandidateRejected,
		ActionCandidateUpdated, ActionCandidateDeleted, ActionElectionCreated,
		ActionElectionUpdated, ActionElectionDeleted, ActionElectionStarted,
		ActionElectionStopped, ActionVoteCast, ActionVoteFailed,
		ActionVoterRegistered, ActionSettingsUpdated:
		return true
	}

	return false
}

// AuditEntry is an immutable record of one state-changing action. Its id is
// derived from the entry content only, two byte-identical actions within the
// same second collapse into one benign duplicate.
type AuditEntry struct {
	Id                []byte //hash of (Action, Actor, Payload, Timestamp), 32 bytes
	Action            ActionKind
	Actor             string
	Payload           string //opaque JSON
	Timestamp         int64
	LedgerTxHash      string
	LedgerBlockNumber uint64
}

func (entry *AuditEntry) GetHash() []byte {
	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, uint64(entry.Timestamp))

	return hash.HashParts(
		[]byte(entry.Action),
		[]byte(entry.Actor),
		[]byte(entry.Payload),
		timestamp,
	)
}

func (entry *AuditEntry) SetId() {
	entry.Id = entry.GetHash()
}
