package service

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"

	config "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/config"
	signature "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/crypto/signature"
	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

// AdminRequest carries the identity proof for an administrative action. Every
// admin path verifies the signature and checks the allow-list, there is no
// unconditional bypass.
type AdminRequest struct {
	Actor     string
	Message   []byte
	Signature []byte
}

func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", app_errors.Newf(app_errors.CodeInvalidInput, "invalid wallet address %s", address)
	}

	return common.HexToAddress(address).Hex(), nil
}

func authorizeAdmin(adminConfig *config.AdminConfig, request AdminRequest) (string, error) {
	actor, err := NormalizeAddress(request.Actor)
	if err != nil {
		return "", err
	}

	if err := signature.Verify(request.Message, request.Signature, actor); err != nil {
		return "", err
	}

	if !adminConfig.IsAdmin(actor) {
		return "", app_errors.Newf(app_errors.CodeNotAuthorized, "address %s is not an administrator", actor)
	}

	return actor, nil
}

func appendAudit(auditRepository repositories.AuditRepository, action models.ActionKind, actor string, payload any, timestamp int64) error {
	entry, err := buildAuditEntry(action, actor, payload, timestamp, "", 0)
	if err != nil {
		return err
	}

	return auditRepository.AppendIfNotExists(entry)
}

func buildAuditEntry(action models.ActionKind, actor string, payload any, timestamp int64, txHash string, blockNumber uint64) (*models.AuditEntry, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	entry := &models.AuditEntry{
		Action:            action,
		Actor:             actor,
		Payload:           string(payloadJSON),
		Timestamp:         timestamp,
		LedgerTxHash:      txHash,
		LedgerBlockNumber: blockNumber,
	}
	entry.SetId()

	return entry, nil
}
