package repositories_test

import (
	"encoding/json"
	"testing"

	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

func testAuditEntry(action models.ActionKind, actor string, payload string, timestamp int64) *models.AuditEntry {
	entry := &models.AuditEntry{
		Action:    action,
		Actor:     actor,
		Payload:   payload,
		Timestamp: timestamp,
	}
	entry.SetId()

	return entry
}

func TestAppendAndQuery(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAuditRepositoryImpl(db)

	entry := testAuditEntry(models.ActionElectionCreated, testAdminAddress, `{"election_id":"e1"}`, 1000)

	if err := repo.AppendIfNotExists(entry); err != nil {
		t.Fatalf("failed to append entry: %v", err)
	}

	entries, total, err := repo.QueryPaged(nil, 0, 10)
	if err != nil {
		t.Fatalf("failed to query entries: %v", err)
	}

	if total != 1 || len(entries) != 1 {
		t.Fatalf("expected 1 entry, got total=%d len=%d", total, len(entries))
	}

	if entries[0].Action != models.ActionElectionCreated {
		t.Fatalf("stored wrong action: %s", entries[0].Action)
	}
}

func TestAppend_BenignDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAuditRepositoryImpl(db)

	entry := testAuditEntry(models.ActionVoteCast, testVoterAddress, `{"election_id":"e1"}`, 1000)

	if err := repo.AppendIfNotExists(entry); err != nil {
		t.Fatalf("failed to append entry: %v", err)
	}

	duplicate := testAuditEntry(models.ActionVoteCast, testVoterAddress, `{"election_id":"e1"}`, 1000)

	if err := repo.AppendIfNotExists(duplicate); err != nil {
		t.Fatalf("benign duplicate rejected: %v", err)
	}

	_, total, err := repo.QueryPaged(nil, 0, 10)
	if err != nil {
		t.Fatalf("failed to query entries: %v", err)
	}

	if total != 1 {
		t.Fatalf("duplicate append changed the log, total=%d", total)
	}
}

func TestQuery_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAuditRepositoryImpl(db)

	seed := []*models.AuditEntry{
		testAuditEntry(models.ActionElectionCreated, testAdminAddress, "{}", 1000),
		testAuditEntry(models.ActionElectionStarted, testAdminAddress, "{}", 1100),
		testAuditEntry(models.ActionVoteCast, testVoterAddress, "{}", 1200),
		testAuditEntry(models.ActionVoteCast, testVoterAddress, "{}", 1300),
	}

	for _, entry := range seed {
		if err := repo.AppendIfNotExists(entry); err != nil {
			t.Fatalf("failed to append entry: %v", err)
		}
	}

	voteCast := models.ActionVoteCast
	entries, total, err := repo.QueryPaged(&repositories.AuditFilter{Action: &voteCast}, 0, 10)
	if err != nil {
		t.Fatalf("failed to query by action: %v", err)
	}

	if total != 2 || len(entries) != 2 {
		t.Fatalf("action filter returned total=%d len=%d", total, len(entries))
	}

	admin := testAdminAddress
	entries, total, err = repo.QueryPaged(&repositories.AuditFilter{Actor: &admin}, 0, 10)
	if err != nil {
		t.Fatalf("failed to query by actor: %v", err)
	}

	if total != 2 {
		t.Fatalf("actor filter returned total=%d", total)
	}

	from := int64(1100)
	to := int64(1200)
	entries, total, err = repo.QueryPaged(&repositories.AuditFilter{From: &from, To: &to}, 0, 10)
	if err != nil {
		t.Fatalf("failed to query by time range: %v", err)
	}

	if total != 2 {
		t.Fatalf("time filter returned total=%d", total)
	}

	for _, entry := range entries {
		if entry.Timestamp < from || entry.Timestamp > to {
			t.Fatalf("entry outside the requested window: %d", entry.Timestamp)
		}
	}
}

func TestQuery_NewestFirstPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAuditRepositoryImpl(db)

	for idx := int64(0); idx < 5; idx++ {
		entry := testAuditEntry(models.ActionVoteCast, testVoterAddress, "{}", 1000+idx)
		if err := repo.AppendIfNotExists(entry); err != nil {
			t.Fatalf("failed to append entry: %v", err)
		}
	}

	firstPage, total, err := repo.QueryPaged(nil, 0, 2)
	if err != nil {
		t.Fatalf("failed to query first page: %v", err)
	}

	if total != 5 || len(firstPage) != 2 {
		t.Fatalf("first page returned total=%d len=%d", total, len(firstPage))
	}

	if firstPage[0].Timestamp != 1004 || firstPage[1].Timestamp != 1003 {
		t.Fatalf("entries not ordered newest-first: %d, %d", firstPage[0].Timestamp, firstPage[1].Timestamp)
	}

	secondPage, _, err := repo.QueryPaged(nil, 2, 2)
	if err != nil {
		t.Fatalf("failed to query second page: %v", err)
	}

	if secondPage[0].Timestamp != 1002 || secondPage[1].Timestamp != 1001 {
		t.Fatalf("pagination not restartable: %d, %d", secondPage[0].Timestamp, secondPage[1].Timestamp)
	}
}

func TestExport(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAuditRepositoryImpl(db)

	for idx := int64(0); idx < 3; idx++ {
		entry := testAuditEntry(models.ActionVoteCast, testVoterAddress, "{}", 1000+idx)
		if err := repo.AppendIfNotExists(entry); err != nil {
			t.Fatalf("failed to append entry: %v", err)
		}
	}

	data, err := repo.Export(nil)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	var exported []struct {
		Id        string `json:"id"`
		Action    string `json:"action"`
		Timestamp int64  `json:"timestamp"`
	}

	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}

	if len(exported) != 3 {
		t.Fatalf("expected 3 exported entries, got %d", len(exported))
	}

	if exported[0].Timestamp != 1002 {
		t.Fatalf("export not ordered newest-first")
	}

	for _, entry := range exported {
		if entry.Id == "" || entry.Action == "" {
			t.Fatalf("export entry missing fields: %+v", entry)
		}
	}
}
