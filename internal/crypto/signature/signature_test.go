package signature_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	signature "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/crypto/signature"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
)

func signMessage(t *testing.T, message []byte) (string, []byte) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	sig, err := crypto.Sign(signature.PersonalDigest(message), key)
	if err != nil {
		t.Fatalf("failed to sign message: %v", err)
	}

	return crypto.PubkeyToAddress(key.PublicKey).Hex(), sig
}

func TestVerify_ValidSignature(t *testing.T) {
	message := []byte("blocpol login")
	address, sig := signMessage(t, message)

	if err := signature.Verify(message, sig, address); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
}

func TestVerify_CaseInsensitiveAddress(t *testing.T) {
	message := []byte("blocpol login")
	address, sig := signMessage(t, message)

	if err := signature.Verify(message, sig, "0x"+address[2:]); err != nil {
		t.Fatalf("checksummed address rejected: %v", err)
	}

	lower := "0x"
	for _, r := range address[2:] {
		if r >= 'A' && r <= 'F' {
			r += 'a' - 'A'
		}
		lower += string(r)
	}

	if err := signature.Verify(message, sig, lower); err != nil {
		t.Fatalf("lowercase address rejected: %v", err)
	}
}

func TestVerify_LegacyRecoveryId(t *testing.T) {
	message := []byte("blocpol login")
	address, sig := signMessage(t, message)

	//wallets commonly emit V as 27/28 rather than 0/1
	legacy := make([]byte, len(sig))
	copy(legacy, sig)
	legacy[64] += 27

	if err := signature.Verify(message, legacy, address); err != nil {
		t.Fatalf("legacy recovery id rejected: %v", err)
	}
}

func TestVerify_MutatedMessage(t *testing.T) {
	message := []byte("blocpol login")
	address, sig := signMessage(t, message)

	err := signature.Verify([]byte("blocpol login!"), sig, address)

	if err == nil {
		t.Fatalf("mutated message was accepted")
	}

	if !app_errors.HasCode(err, app_errors.CodeInvalidSignature) {
		t.Fatalf("expected INVALID_SIGNATURE, got %v", err)
	}
}

func TestVerify_MutatedSignature(t *testing.T) {
	message := []byte("blocpol login")
	address, sig := signMessage(t, message)

	mutated := make([]byte, len(sig))
	copy(mutated, sig)
	mutated[3] ^= 0xff

	err := signature.Verify(message, mutated, address)

	if err == nil {
		t.Fatalf("mutated signature was accepted")
	}

	if !app_errors.HasCode(err, app_errors.CodeInvalidSignature) {
		t.Fatalf("expected INVALID_SIGNATURE, got %v", err)
	}
}

func TestVerify_WrongClaimedAddress(t *testing.T) {
	message := []byte("blocpol login")
	_, sig := signMessage(t, message)
	otherAddress, _ := signMessage(t, message)

	err := signature.Verify(message, sig, otherAddress)

	if err == nil {
		t.Fatalf("signature accepted for the wrong address")
	}

	if !app_errors.HasCode(err, app_errors.CodeInvalidSignature) {
		t.Fatalf("expected INVALID_SIGNATURE, got %v", err)
	}
}

func TestVerify_TruncatedSignature(t *testing.T) {
	message := []byte("blocpol login")
	address, sig := signMessage(t, message)

	err := signature.Verify(message, sig[:64], address)

	if err == nil {
		t.Fatalf("truncated signature was accepted")
	}
}
