package repositories_test

import (
	"testing"

	"gorm.io/gorm"

	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

const testAdminAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func TestStartElection(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewElectionRepositoryImpl(db)

	election := createTestElection(t, repo, models.ElectionStatusDraft, 1000, 2000)

	started, err := repo.Start(election.Id, testAdminAddress, 1100)
	if err != nil {
		t.Fatalf("failed to start election: %v", err)
	}

	if started.Status != models.ElectionStatusActive {
		t.Fatalf("expected active status, got %s", started.Status)
	}

	if started.ActualStartTime == nil || *started.ActualStartTime != 1100 {
		t.Fatalf("actual start time not recorded")
	}
}

func TestStartElection_Twice(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewElectionRepositoryImpl(db)

	election := createTestElection(t, repo, models.ElectionStatusDraft, 1000, 2000)

	if _, err := repo.Start(election.Id, testAdminAddress, 1100); err != nil {
		t.Fatalf("failed to start election: %v", err)
	}

	_, err := repo.Start(election.Id, testAdminAddress, 1200)

	if err == nil {
		t.Fatalf("second start succeeded")
	}

	if !app_errors.HasCode(err, app_errors.CodeInvalidTransition) {
		t.Fatalf("expected INVALID_TRANSITION, got %v", err)
	}

	current, err := repo.GetElection(election.Id)
	if err != nil {
		t.Fatalf("failed to fetch election: %v", err)
	}

	if current.Status != models.ElectionStatusActive {
		t.Fatalf("election left active state after failed start, status %s", current.Status)
	}
}

func TestStopElection(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewElectionRepositoryImpl(db)

	election := createTestElection(t, repo, models.ElectionStatusActive, 1000, 2000)

	stopped, err := repo.Stop(election.Id, testAdminAddress, 1900)
	if err != nil {
		t.Fatalf("failed to stop election: %v", err)
	}

	if stopped.Status != models.ElectionStatusCompleted {
		t.Fatalf("expected completed status, got %s", stopped.Status)
	}

	if stopped.ActualEndTime == nil || *stopped.ActualEndTime != 1900 {
		t.Fatalf("actual end time not recorded")
	}
}

func TestStopElection_FromDraft(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewElectionRepositoryImpl(db)

	election := createTestElection(t, repo, models.ElectionStatusDraft, 1000, 2000)

	_, err := repo.Stop(election.Id, testAdminAddress, 1900)

	if err == nil {
		t.Fatalf("stopping a draft election succeeded")
	}

	if !app_errors.HasCode(err, app_errors.CodeInvalidTransition) {
		t.Fatalf("expected INVALID_TRANSITION, got %v", err)
	}
}

func TestPauseAndResumeElection(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewElectionRepositoryImpl(db)

	election := createTestElection(t, repo, models.ElectionStatusActive, 1000, 2000)

	paused, err := repo.Pause(election.Id, testAdminAddress)
	if err != nil {
		t.Fatalf("failed to pause election: %v", err)
	}

	if paused.Status != models.ElectionStatusPaused {
		t.Fatalf("expected paused status, got %s", paused.Status)
	}

	resumed, err := repo.Resume(election.Id, testAdminAddress)
	if err != nil {
		t.Fatalf("failed to resume election: %v", err)
	}

	if resumed.Status != models.ElectionStatusActive {
		t.Fatalf("expected active status, got %s", resumed.Status)
	}
}

func TestCancelElection_Completed(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewElectionRepositoryImpl(db)

	election := createTestElection(t, repo, models.ElectionStatusCompleted, 1000, 2000)

	_, err := repo.Cancel(election.Id, testAdminAddress)

	if err == nil {
		t.Fatalf("cancelled a completed election")
	}

	if !app_errors.HasCode(err, app_errors.CodeInvalidTransition) {
		t.Fatalf("expected INVALID_TRANSITION, got %v", err)
	}
}

func TestStartElection_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewElectionRepositoryImpl(db)

	_, err := repo.Start("missing-election", testAdminAddress, 1100)

	if err == nil {
		t.Fatalf("starting an unknown election succeeded")
	}

	if !app_errors.HasCode(err, app_errors.CodeElectionNotFound) {
		t.Fatalf("expected ELECTION_NOT_FOUND, got %v", err)
	}
}

func TestIncrementVoteCount(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewElectionRepositoryImpl(db)

	election := createTestElection(t, repo, models.ElectionStatusActive, 1000, 2000)

	for idx := 0; idx < 3; idx++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			return repo.IncrementVoteCount(tx, election.Id)
		})
		if err != nil {
			t.Fatalf("failed to increment vote count: %v", err)
		}
	}

	current, err := repo.GetElection(election.Id)
	if err != nil {
		t.Fatalf("failed to fetch election: %v", err)
	}

	if current.VoteCount != 3 {
		t.Fatalf("expected vote count 3, got %d", current.VoteCount)
	}
}
