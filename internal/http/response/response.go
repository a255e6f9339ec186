// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков. Пакет упрощает возврат
// успешных ответов, ошибок и сообщений валидации в едином формате
// {ok, msg, data}. Обработчики с нестандартной формой ответа (login,
// create post) объявляют собственные типизированные структуры.
package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON-ответа сервера.
// Поле OK - признак успеха запроса. Поле Msg - человекочитаемое сообщение.
// Поле Data - данные ответа (опционально, при успехе). Поле Errors -
// список нарушенных правил валидации (опционально, при неуспехе).
type Response struct {
	OK     bool     `json:"ok"`
	Msg    string   `json:"msg,omitempty"`
	Data   any      `json:"data,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	OK  bool   `json:"ok" example:"false"`
	Msg string `json:"msg" example:"invalid request body"`
}

// OKWithData возвращает успешный Response с сообщением и данными.
func OKWithData(msg string, data any) Response {
	return Response{
		OK:   true,
		Msg:  msg,
		Data: data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		OK:  false,
		Msg: msg,
	}
}

// ValidationError формирует Response на основе ошибок валидации.
// В списке Errors перечисляется каждое нарушенное правило, а не только первое.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must have at least %s characters", err.Field(), err.Param()))
		case "password":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must contain at least one capital letter and one number", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return Response{
		OK:     false,
		Msg:    "validation failed",
		Errors: errsMsgs,
	}
}
