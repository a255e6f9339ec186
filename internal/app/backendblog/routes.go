// Package backendblog собирает HTTP-приложение блога: маршруты, middleware
// и жизненный цикл сервера.
package backendblog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ggmj92/backend-blog/internal/http/handlers/health"
	postcontrol "github.com/ggmj92/backend-blog/internal/http/handlers/post/control"
	postcreate "github.com/ggmj92/backend-blog/internal/http/handlers/post/create"
	postlist "github.com/ggmj92/backend-blog/internal/http/handlers/post/list"
	postread "github.com/ggmj92/backend-blog/internal/http/handlers/post/read"
	postremove "github.com/ggmj92/backend-blog/internal/http/handlers/post/remove"
	postsearch "github.com/ggmj92/backend-blog/internal/http/handlers/post/search"
	postupdate "github.com/ggmj92/backend-blog/internal/http/handlers/post/update"
	userlist "github.com/ggmj92/backend-blog/internal/http/handlers/user/list"
	userlogin "github.com/ggmj92/backend-blog/internal/http/handlers/user/login"
	userregister "github.com/ggmj92/backend-blog/internal/http/handlers/user/register"
	"github.com/ggmj92/backend-blog/internal/http/middlewarectx"
	"github.com/ggmj92/backend-blog/internal/lib/jwt"
	authservice "github.com/ggmj92/backend-blog/internal/services/auth"
	postservice "github.com/ggmj92/backend-blog/internal/services/post"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, postService *postservice.PostService, jwtMaker jwt.Maker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	requireAuth := middlewarectx.RequireAuth(jwtMaker, logger)

	r.Get("/", health.New().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.With(requireAuth, middlewarectx.RequireAdmin(authService, logger)).
				Get("/", userlist.New(logger, authService).ServeHTTP)
			r.Post("/register", userregister.New(logger, authService).ServeHTTP)
			r.Post("/login", userlogin.New(logger, authService).ServeHTTP)
		})

		r.Route("/posts", func(r chi.Router) {
			// Открытые конечные точки чтения
			r.With(middlewarectx.OptionalAuth(jwtMaker, logger)).
				Get("/", postlist.New(logger, postService).ServeHTTP)
			r.With(requireAuth).Get("/control", postcontrol.New(logger, postService).ServeHTTP)
			r.Get("/search/{title}", postsearch.New(logger, postService).ServeHTTP)
			r.Get("/{id}", postread.New(logger, postService).ServeHTTP)

			// Группа изменяющих запросов с JWT аутентификацией
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Use(middlewarectx.RateLimitMiddleware(logger))
				r.Post("/", postcreate.New(logger, postService).ServeHTTP)
				r.Put("/{id}", postupdate.New(logger, postService).ServeHTTP)
			})

			// Привязка аутентификации к удалению задается политикой:
			// "open" оставляет маршрут публичным.
			removeHandler := postremove.New(logger, postService)
			if postService.Policy() == postservice.MutationOwnerOrAdmin {
				r.With(requireAuth).Delete("/{id}", removeHandler.ServeHTTP)
			} else {
				r.Delete("/{id}", removeHandler.ServeHTTP)
			}
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
