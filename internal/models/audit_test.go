package models_test

import (
	"bytes"
	"testing"

	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

func TestAuditEntryHash_Deterministic(t *testing.T) {
	first := &models.AuditEntry{
		Action:    models.ActionVoteCast,
		Actor:     "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Payload:   `{"election_id":"e1"}`,
		Timestamp: 1700000000,
	}
	first.SetId()

	second := &models.AuditEntry{
		Action:    models.ActionVoteCast,
		Actor:     "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Payload:   `{"election_id":"e1"}`,
		Timestamp: 1700000000,
	}
	second.SetId()

	if !bytes.Equal(first.Id, second.Id) {
		t.Fatalf("identical entries hashed to different ids")
	}
}

func TestAuditEntryHash_DependsOnContent(t *testing.T) {
	base := &models.AuditEntry{
		Action:    models.ActionVoteCast,
		Actor:     "actor",
		Payload:   "payload",
		Timestamp: 1700000000,
	}
	base.SetId()

	variants := []*models.AuditEntry{
		{Action: models.ActionVoteFailed, Actor: "actor", Payload: "payload", Timestamp: 1700000000},
		{Action: models.ActionVoteCast, Actor: "other", Payload: "payload", Timestamp: 1700000000},
		{Action: models.ActionVoteCast, Actor: "actor", Payload: "other", Timestamp: 1700000000},
		{Action: models.ActionVoteCast, Actor: "actor", Payload: "payload", Timestamp: 1700000001},
	}

	for idx, variant := range variants {
		variant.SetId()
		if bytes.Equal(base.Id, variant.Id) {
			t.Fatalf("variant %d hashed to the same id as the base entry", idx)
		}
	}
}

func TestIsValidActionKind(t *testing.T) {
	if !models.IsValidActionKind(models.ActionSettingsUpdated) {
		t.Fatalf("SETTINGS_UPDATED rejected")
	}

	if models.IsValidActionKind(models.ActionKind("NOT_AN_ACTION")) {
		t.Fatalf("unknown action kind accepted")
	}
}
