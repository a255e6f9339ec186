// Package middlewarectx содержит HTTP middleware цепочки аутентификации.
//
// RequireAuth проверяет наличие и валидность токена в заголовке authorization
// и при успехе добавляет в контекст uid и имя пользователя; при ошибке
// возвращает HTTP 401. OptionalAuth добавляет идентичность, если валидный
// токен есть, и пропускает запрос анонимно в остальных случаях.
// RequireAdmin после RequireAuth проверяет по хранилищу роль вызывающего.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/jwt"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserUID — ключ для идентификатора пользователя в контексте
	UserUID Key = "uid"
	// UserName — ключ для имени пользователя в контексте
	UserName Key = "name"
)

// TokenParser описывает интерфейс разбора токена идентичности.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// tokenFromHeader извлекает токен из заголовка authorization.
// Клиент присылает сырой токен; префикс "Bearer " допускается и отрезается.
func tokenFromHeader(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// RequireAuth возвращает HTTP middleware, который требует валидный токен
// в заголовке authorization.
//
// Если токен валиден, добавляет uid и имя пользователя в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func RequireAuth(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireAuth"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := tokenFromHeader(r)
			if tokenStr == "" {
				log.Error("missing authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Not authorized"))
				return
			}

			claims, err := parser.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Not authorized"))
				return
			}
			ctx := context.WithValue(r.Context(), UserUID, claims.UID)
			ctx = context.WithValue(ctx, UserName, claims.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth возвращает HTTP middleware, который добавляет идентичность
// вызывающего в контекст, если валидный токен присутствует.
//
// Контракт: отсутствие токена и невалидный токен равнозначны - запрос
// продолжается анонимно, без идентичности в контексте. Публичные выдачи
// не должны ломаться от протухшего токена в браузере клиента.
func OptionalAuth(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.OptionalAuth"

			tokenStr := tokenFromHeader(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := parser.ParseToken(tokenStr)
			if err != nil {
				log.With(
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				).Info("ignoring invalid token, continuing anonymously", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), UserUID, claims.UID)
			ctx = context.WithValue(ctx, UserName, claims.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
