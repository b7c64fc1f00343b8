package signature

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
)

const signatureLength = 65

// PersonalDigest returns the Ethereum personal-sign digest of message, the
// hash wallets actually sign when asked to sign plain text.
func PersonalDigest(message []byte) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// RecoverAddress recovers the signer address of a personal-sign signature
// over message. It accepts recovery ids of 0/1 and 27/28.
func RecoverAddress(message []byte, sig []byte) (common.Address, error) {
	if len(sig) != signatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", signatureLength, len(sig))
	}

	normalized := make([]byte, signatureLength)
	copy(normalized, sig)

	if normalized[64] >= 27 {
		normalized[64] -= 27
	}

	if normalized[64] != 0 && normalized[64] != 1 {
		return common.Address{}, fmt.Errorf("invalid recovery id %d", sig[64])
	}

	publicKey, err := crypto.SigToPub(PersonalDigest(message), normalized)
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(*publicKey), nil
}

// Verify accepts the signature only if the recovered signer equals the
// claimed address under case-insensitive comparison.
func Verify(message []byte, sig []byte, claimedAddress string) error {
	recovered, err := RecoverAddress(message, sig)
	if err != nil {
		return app_errors.Wrap(app_errors.CodeInvalidSignature, "signature recovery failed", err)
	}

	if !strings.EqualFold(recovered.Hex(), claimedAddress) {
		return app_errors.New(app_errors.CodeInvalidSignature, "signature does not match claimed address")
	}

	return nil
}
