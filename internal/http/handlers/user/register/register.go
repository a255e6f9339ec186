// Package register реализует HTTP-обработчик регистрации пользователей.
//
// Запрос валидируется по объявленным правилам (все нарушения перечисляются
// в ответе), после чего бизнес-логика хэширует пароль, сохраняет пользователя
// и выпускает токен. Токен возвращается в теле ответа и дублируется
// в cookie "token" для браузерных клиентов.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ggmj92/backend-blog/internal/http/response"
	"github.com/ggmj92/backend-blog/internal/lib/sl"
	"github.com/ggmj92/backend-blog/internal/models"
	"github.com/ggmj92/backend-blog/internal/storage/repository"
)

// Request — входные данные для регистрации.
//
// Пароль: минимум 8 символов, только буквы и цифры, хотя бы одна заглавная
// буква и одна цифра (правило "password").
type Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Response — ответ успешной регистрации: созданный пользователь и токен.
type Response struct {
	OK    bool         `json:"ok"`
	Data  *models.User `json:"data"`
	Msg   string       `json:"msg"`
	Token string       `json:"token"`
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики регистрации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, name, email, rawPassword string, isAdmin bool) (*models.User, string, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	v := validator.New()
	_ = v.RegisterValidation("password", validPassword)
	return &Handler{
		log:      log,
		service:  service,
		validate: v,
	}
}

// validPassword проверяет состав пароля: только буквы и цифры,
// хотя бы одна заглавная буква и одна цифра.
func validPassword(fl validator.FieldLevel) bool {
	var hasUpper, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			return false
		}
	}
	return hasUpper && hasDigit
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создает нового пользователя. Возвращает созданную запись и токен, дублируя токен в cookie.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body Request true "Данные нового пользователя"
// @Success 201 {object} Response "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или дубликат email"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	user, token, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			log.Error("duplicate email", slog.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("This user already exists"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Server error : Something went wrong"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:  "token",
		Value: token,
		Path:  "/",
	})

	log.Info("user registered", slog.String("uid", user.UID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, Response{
		OK:    true,
		Data:  user,
		Msg:   "New user created",
		Token: token,
	})
}
