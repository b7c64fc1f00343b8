package repositories_test

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	db_connection "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/connection"
	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := db_connection.GetDatabaseConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db_connection.CloseDatabaseConnection(db); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}

func createTestElection(t *testing.T, repo repositories.ElectionRepository, status models.ElectionStatus, startTime int64, endTime int64) *models.Election {
	t.Helper()

	election := &models.Election{
		Id:         uuid.NewString(),
		Title:      "Student Council 2026",
		StartTime:  startTime,
		EndTime:    endTime,
		VotingMode: models.VotingModeSimpleMajority,
		Status:     status,
		CreatedBy:  "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		CreatedAt:  startTime,
	}

	if err := repo.Create(election); err != nil {
		t.Fatalf("failed to create test election: %v", err)
	}

	return election
}

func createTestCandidate(t *testing.T, repo repositories.CandidateRepository, electionId string, status models.CandidateStatus) *models.Candidate {
	t.Helper()

	candidate := &models.Candidate{
		Id:         uuid.NewString(),
		Name:       "Test Candidate",
		ElectionId: electionId,
		Status:     status,
		CreatedAt:  1000,
	}

	if err := repo.Create(candidate); err != nil {
		t.Fatalf("failed to create test candidate: %v", err)
	}

	return candidate
}

func createTestVoter(t *testing.T, repo repositories.VoterRepository, address string) *models.Voter {
	t.Helper()

	voter := &models.Voter{
		Address:      address,
		Name:         "Test Voter",
		Verified:     true,
		RegisteredAt: 1000,
	}

	if err := repo.Register(voter); err != nil {
		t.Fatalf("failed to register test voter: %v", err)
	}

	return voter
}
