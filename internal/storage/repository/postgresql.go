// Package repository реализует хранилище данных блога на основе PostgreSQL.
// Предоставляет методы создания, чтения, обновления и удаления пользователей
// и постов. Уникальность email пользователя и заголовка поста обеспечивается
// уникальными индексами: нарушение ограничения при вставке и есть сигнал
// конфликта, отдельной проверки перед вставкой нет.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"database/sql"
)

// Ошибки уровня хранилища. Обработчики по ним различают конфликт,
// отсутствие записи и внутреннюю ошибку.
var (
	// ErrUserExists - пользователь с таким email уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound - пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostExists - пост с таким заголовком уже существует.
	ErrPostExists = errors.New("post already exists")
	// ErrPostNotFound - пост не найден.
	ErrPostNotFound = errors.New("post not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и постами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "repository.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// isUniqueViolation сообщает, вызвана ли ошибка нарушением уникального индекса.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
