// Package health реализует обработчик проверки живости сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"
)

// Handler отвечает на запрос к корню сервиса.
type Handler struct{}

// New создает новый Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP возвращает приветственную строку. Используется как проверка живости.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "Hello World!")
}
