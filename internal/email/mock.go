package email

import "sync"

// MockProvider используется для тестов и локальной разработки: письма не
// отправляются, а складываются в Sent.
type MockProvider struct {
	mu   sync.Mutex
	Sent []*Email
	Err  error
}

func (m *MockProvider) Send(email *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, email)
	return nil
}

func (m *MockProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	return m.Send(&Email{To: to, Subject: subject, Body: templateName})
}

func (m *MockProvider) Validate() error { return nil }
func (m *MockProvider) Close() error    { return nil }

// Messages возвращает копию отправленных писем.
func (m *MockProvider) Messages() []*Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Email, len(m.Sent))
	copy(out, m.Sent)
	return out
}
