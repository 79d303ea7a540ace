package dto

// CreateNoticeRequest принимается как JSON или как форма.
// Пустые заголовок и текст допустимы.
type CreateNoticeRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

// RecentNoticeResponse - элемент ленты последних объявлений,
// дата в формате YYYY-MM-DD.
type RecentNoticeResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}
