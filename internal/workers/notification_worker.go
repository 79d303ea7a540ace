package workers

import (
	"context"

	"recruit_backend/internal/email"
	"recruit_backend/internal/logger"
	"recruit_backend/internal/models"
)

const defaultQueueSize = 64

type notification struct {
	requestID string
	subject   string
	template  string
	data      email.TemplateData
}

// NotificationWorker отправляет администратору письма о новых анкетах и
// обращениях. Очередь ограничена: если она заполнена, уведомление теряется.
type NotificationWorker struct {
	provider   email.Provider
	adminEmail string
	queue      chan notification
	done       chan struct{}
}

func NewNotificationWorker(provider email.Provider, adminEmail string, queueSize int) *NotificationWorker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &NotificationWorker{
		provider:   provider,
		adminEmail: adminEmail,
		queue:      make(chan notification, queueSize),
		done:       make(chan struct{}),
	}
}

// Start запускает обработку очереди до отмены ctx
func (w *NotificationWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

// Done закрывается, когда воркер остановился.
func (w *NotificationWorker) Done() <-chan struct{} {
	return w.done
}

func (w *NotificationWorker) NotifyNewApplicant(ctx context.Context, a *models.Applicant) bool {
	return w.enqueue(ctx, notification{
		subject:  "Новая анкета: " + a.Name,
		template: email.TemplateNewApplicant,
		data: email.TemplateData{
			"Name":       a.Name,
			"Age":        a.Age,
			"Gender":     a.Gender,
			"Phone":      a.PhoneNumber,
			"Address":    a.Address,
			"ResumeFile": a.ResumeFile,
		},
	})
}

func (w *NotificationWorker) NotifyNewInquiry(ctx context.Context, i *models.Inquiry) bool {
	return w.enqueue(ctx, notification{
		subject:  "Новое обращение: " + i.Name,
		template: email.TemplateNewInquiry,
		data: email.TemplateData{
			"Name":    i.Name,
			"Email":   i.Email,
			"Message": i.Message,
		},
	})
}

func (w *NotificationWorker) enqueue(ctx context.Context, n notification) bool {
	n.requestID = logger.GetRequestID(ctx)
	select {
	case w.queue <- n:
		return true
	default:
		logger.CtxWarn(ctx, "Notification queue is full, dropping notification", "subject", n.subject)
		return false
	}
}

func (w *NotificationWorker) run(ctx context.Context) {
	defer close(w.done)
	logger.Info("Notification worker started", "admin_email", w.adminEmail)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped", "pending", len(w.queue))
			return
		case n := <-w.queue:
			w.send(n)
		}
	}
}

func (w *NotificationWorker) send(n notification) {
	ctx := logger.WithRequestID(context.Background(), n.requestID)
	if err := w.provider.SendTemplate([]string{w.adminEmail}, n.subject, n.template, n.data); err != nil {
		logger.CtxWithError(ctx, "Failed to send admin notification", err, "subject", n.subject)
		return
	}
	logger.CtxDebug(ctx, "Admin notification sent", "subject", n.subject)
}
