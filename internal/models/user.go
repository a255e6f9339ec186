// Package models содержит доменные структуры блога: пользователей и посты.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя блога.
// Поле PasswordHash никогда не сериализуется в ответы клиентам.
type User struct {
	UID          string    `json:"uid"`          // Уникальный идентификатор пользователя
	Name         string    `json:"name"`         // Имя пользователя
	Email        string    `json:"email"`        // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`            // bcrypt-хэш пароля
	RegisteredAt time.Time `json:"registeredAt"` // Дата регистрации
	IsAdmin      bool      `json:"isAdmin"`      // Признак администратора
}
