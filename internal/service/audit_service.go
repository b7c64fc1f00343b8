package service

import (
	"time"

	config "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/config"
	repositories "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/database/repositories"
	app_errors "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/errors"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

type AuditService struct {
	auditRepository repositories.AuditRepository
	adminConfig     *config.AdminConfig
	Now             func() time.Time
}

func NewAuditService(auditRepository repositories.AuditRepository, adminConfig *config.AdminConfig) *AuditService {
	return &AuditService{
		auditRepository: auditRepository,
		adminConfig:     adminConfig,
		Now:             time.Now,
	}
}

// Append records an administrative action such as SETTINGS_UPDATED that no
// other service path covers. The action kind must be one of the supported
// values, the log is a closed enumeration.
func (auditService *AuditService) Append(action models.ActionKind, admin AdminRequest, payload string) (*models.AuditEntry, error) {
	actor, err := authorizeAdmin(auditService.adminConfig, admin)
	if err != nil {
		return nil, err
	}

	if !models.IsValidActionKind(action) {
		return nil, app_errors.Newf(app_errors.CodeInvalidInput, "unknown action kind %s", action)
	}

	entry := &models.AuditEntry{
		Action:    action,
		Actor:     actor,
		Payload:   payload,
		Timestamp: auditService.Now().Unix(),
	}
	entry.SetId()

	if err := auditService.auditRepository.AppendIfNotExists(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (auditService *AuditService) Query(filter *repositories.AuditFilter, offset int, limit int) ([]*models.AuditEntry, int, error) {
	if filter != nil && filter.Action != nil && !models.IsValidActionKind(*filter.Action) {
		return nil, 0, app_errors.Newf(app_errors.CodeInvalidInput, "unknown action kind %s", *filter.Action)
	}

	return auditService.auditRepository.QueryPaged(filter, offset, limit)
}

func (auditService *AuditService) Export(filter *repositories.AuditFilter) ([]byte, error) {
	return auditService.auditRepository.Export(filter)
}
