package models

import "time"

// DisplayDateLayout - формат, в котором дата поста отдается клиентам в списках.
const DisplayDateLayout = "02/01/2006"

// Image - необязательная иллюстрация поста. Оба поля могут быть пустыми.
type Image struct {
	Src string `json:"src,omitempty"` // URL изображения
	Alt string `json:"alt,omitempty"` // Альтернативный текст
}

// Post представляет пост блога в том виде, в котором он хранится.
// AuthorUID - слабая ссылка на автора: удаление пользователя не удаляет его посты.
type Post struct {
	ID        string    `json:"id"`        // Уникальный идентификатор поста
	Title     string    `json:"title"`     // Заголовок (уникальный)
	AuthorUID string    `json:"authorUid"` // Идентификатор автора
	Content   string    `json:"content"`   // Текст поста
	Image     Image     `json:"image"`     // Иллюстрация
	Date      time.Time `json:"date"`      // Дата публикации
	CreatedAt time.Time `json:"createdAt"` // Управляется хранилищем
	UpdatedAt time.Time `json:"updatedAt"` // Управляется хранилищем
}

// PostView - пост, подготовленный для публичной выдачи: ссылка на автора
// развернута в полную запись пользователя, дата отформатирована для отображения.
type PostView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    *User     `json:"author"`
	Content   string    `json:"content"`
	Image     Image     `json:"image"`
	Date      string    `json:"date"` // В формате DD/MM/YYYY
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// View разворачивает автора и форматирует дату для отображения.
// Автор может быть nil, если запись пользователя уже удалена.
func (p *Post) View(author *User) *PostView {
	return &PostView{
		ID:        p.ID,
		Title:     p.Title,
		Author:    author,
		Content:   p.Content,
		Image:     p.Image,
		Date:      p.Date.Format(DisplayDateLayout),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
