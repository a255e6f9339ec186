// Package control реализует HTTP-обработчик контрольного списка постов.
//
// Администратор видит все посты, обычный пользователь - только собственные.
// Роль определяется по записи вызывающего в хранилище, а не по токену.
package control

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ggmj92/backend-blog/internal/http/middlewarectx"
	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
	"github.com/ggmj92/backend-blog/internal/models"
)

// Response — ответ контрольного списка: посты и запись вызывающего.
type Response struct {
	OK   bool           `json:"ok"`
	Msg  string         `json:"msg"`
	Data []*models.Post `json:"data"`
	User *models.User   `json:"user"`
}

// Handler обрабатывает запросы на контрольный список постов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики контрольного списка.
type Service interface {
	ListControl(ctx context.Context, callerUID string) ([]*models.Post, *models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Контрольный список постов
// @Description Возвращает посты для панели управления: администратору все, остальным только собственные.
// @Tags Posts
// @Produce json
// @Success 200 {object} Response "Посты вызывающего"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /posts/control [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.control"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Not authorized"))
		return
	}

	posts, caller, err := h.service.ListControl(r.Context(), uid)
	if err != nil {
		log.Error("failed to list control posts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error 500. Please contact the administrator."))
		return
	}

	log.Info("listed control posts", slog.Int("count", len(posts)), slog.Bool("admin", caller.IsAdmin))
	render.JSON(w, r, Response{
		OK:   true,
		Msg:  "Showing all blog posts",
		Data: posts,
		User: caller,
	})
}
