package dto

// SubmissionRequest - поля формы /submit. Значения не валидируются.
type SubmissionRequest struct {
	Name    string `form:"name"`
	Age     string `form:"age"`
	Gender  string `form:"gender"`
	Phone   string `form:"phone"`
	Address string `form:"address"`
}

// ContactRequest - поля формы /contact.
type ContactRequest struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// ImagePayload - декодированное изображение резюме.
type ImagePayload struct {
	ContentType string
	Data        []byte
}
