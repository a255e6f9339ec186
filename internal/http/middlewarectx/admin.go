package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
	"github.com/ggmj92/backend-blog/internal/models"
)

// UserProvider определяет интерфейс чтения записи пользователя для проверки роли.
type UserProvider interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

// RequireAdmin возвращает middleware, который пропускает только администраторов.
// Должен стоять после RequireAuth. Любая невозможность подтвердить роль -
// отсутствие идентичности, ошибка хранилища, обычный пользователь -
// завершает запрос ответом 401.
func RequireAdmin(users UserProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireAdmin"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			uid, ok := r.Context().Value(UserUID).(string)
			if !ok || uid == "" {
				log.Error("user identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Not authorized"))
				return
			}

			user, err := users.GetUser(r.Context(), uid)
			if err != nil {
				log.Error("failed to resolve caller", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Not authorized"))
				return
			}

			if !user.IsAdmin {
				log.Error("caller is not an admin", slog.String("uid", uid))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Not authorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
