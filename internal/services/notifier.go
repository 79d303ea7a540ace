package services

import (
	"context"

	"recruit_backend/internal/models"
)

// Notifier ставит в очередь письма администратору. Реализация не должна блокировать.
type Notifier interface {
	NotifyNewApplicant(ctx context.Context, a *models.Applicant) bool
	NotifyNewInquiry(ctx context.Context, i *models.Inquiry) bool
}
