package dto

// NoteRequest содержит данные для создания или обновления заметки.
// owner_id в теле не передается: он берется из проверенного токена.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
