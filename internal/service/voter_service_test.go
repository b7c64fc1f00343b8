package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	signature "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/crypto/signature"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
	service "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/service"
)

func setupVoterService(t *testing.T, fixture *voteFixture) *service.VoterService {
	t.Helper()

	voterService := service.NewVoterService(fixture.voterRepo, fixture.auditRepo)
	voterService.Now = func() time.Time { return time.Unix(1500, 0) }

	return voterService
}

func voterRegisterRequest(t *testing.T) *service.RegisterVoterRequest {
	t.Helper()

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	message := []byte("register voter")
	sig, err := crypto.Sign(signature.PersonalDigest(message), key)
	if err != nil {
		t.Fatalf("failed to sign message: %v", err)
	}

	return &service.RegisterVoterRequest{
		Address:   crypto.PubkeyToAddress(key.PublicKey).Hex(),
		Name:      "Test Voter",
		Message:   message,
		Signature: sig,
	}
}

func TestRegisterVoter(t *testing.T) {
	fixture := setupVoteFixture(t)
	voterService := setupVoterService(t, fixture)

	request := voterRegisterRequest(t)

	voter, err := voterService.Register(request)
	if err != nil {
		t.Fatalf("failed to register voter: %v", err)
	}

	if !voter.Verified {
		t.Fatalf("signature-registered voter should be verified")
	}

	if fixture.countAuditEntries(t, models.ActionVoterRegistered) != 1 {
		t.Fatalf("expected one VOTER_REGISTERED entry")
	}

	_, err = voterService.Register(request)

	if !app_errors.HasCode(err, app_errors.CodeAlreadyRegistered) {
		t.Fatalf("expected ALREADY_REGISTERED, got %v", err)
	}
}

func TestRegisterVoter_BadSignature(t *testing.T) {
	fixture := setupVoteFixture(t)
	voterService := setupVoterService(t, fixture)

	request := voterRegisterRequest(t)
	request.Message = []byte("something else")

	_, err := voterService.Register(request)

	if !app_errors.HasCode(err, app_errors.CodeInvalidSignature) {
		t.Fatalf("expected INVALID_SIGNATURE, got %v", err)
	}
}

func TestRegisterVoter_InvalidAddress(t *testing.T) {
	fixture := setupVoteFixture(t)
	voterService := setupVoterService(t, fixture)

	request := voterRegisterRequest(t)
	request.Address = "not-a-wallet"

	_, err := voterService.Register(request)

	if !app_errors.HasCode(err, app_errors.CodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}

func TestGetVoterStatus(t *testing.T) {
	fixture := setupVoteFixture(t)
	voterService := setupVoterService(t, fixture)
	election := fixture.createElection(t, models.ElectionStatusActive)
	candidate := fixture.createCandidate(t, election.Id, "Alice", 1)
	address, key := fixture.registerVoter(t)

	status, err := voterService.GetVoterStatus(address)
	if err != nil {
		t.Fatalf("failed to get voter status: %v", err)
	}

	if !status.Registered || !status.Verified {
		t.Fatalf("registered voter reported as %+v", status)
	}

	if len(status.HasVotedPerElection) != 0 {
		t.Fatalf("fresh voter has voting history: %+v", status.HasVotedPerElection)
	}

	if _, err := fixture.voteService.CastVote(context.Background(), signedRequest(t, election.Id, candidate.Id, address, key)); err != nil {
		t.Fatalf("failed to cast vote: %v", err)
	}

	status, err = voterService.GetVoterStatus(address)
	if err != nil {
		t.Fatalf("failed to get voter status: %v", err)
	}

	if !status.HasVotedPerElection[election.Id] {
		t.Fatalf("cast vote missing from status: %+v", status.HasVotedPerElection)
	}
}

func TestGetVoterStatus_Unregistered(t *testing.T) {
	fixture := setupVoteFixture(t)
	voterService := setupVoterService(t, fixture)

	status, err := voterService.GetVoterStatus("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	if err != nil {
		t.Fatalf("unexpected error for unknown voter: %v", err)
	}

	if status.Registered {
		t.Fatalf("unknown voter reported as registered")
	}
}
