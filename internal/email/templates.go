package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const (
	TemplateNewApplicant = "new_applicant"
	TemplateNewInquiry   = "new_inquiry"
)

var defaultTemplates = map[string]string{
	TemplateNewApplicant: `<h2>Новая анкета</h2>
<ul>
  <li>Имя: {{.Name}}</li>
  <li>Возраст: {{.Age}}</li>
  <li>Пол: {{.Gender}}</li>
  <li>Телефон: {{.Phone}}</li>
  <li>Адрес: {{.Address}}</li>
  <li>Резюме: {{.ResumeFile}}</li>
</ul>`,
	TemplateNewInquiry: `<h2>Новое обращение</h2>
<p>От: {{.Name}} &lt;{{.Email}}&gt;</p>
<p>{{.Message}}</p>`,
}

// TemplateManager реализует TemplateRenderer
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает новый менеджер шаблонов
func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

// NewDefaultTemplateManager - менеджер со встроенными шаблонами уведомлений.
func NewDefaultTemplateManager() (*TemplateManager, error) {
	tm := NewTemplateManager()
	for name, body := range defaultTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
