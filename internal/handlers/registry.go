package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	NoticeHandler     *NoticeHandler
	AdminHandler      *AdminHandler
	SubmissionHandler *SubmissionHandler
	ImageHandler      *ImageHandler
	SystemHandler     *SystemHandler
	StaticHandler     *StaticHandler
}
