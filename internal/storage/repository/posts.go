package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ggmj92/backend-blog/internal/models"
)

const postColumns = `id, title, author_uid, content, image_src, image_alt, date, created_at, updated_at`

func scanPost(row interface {
	Scan(dest ...any) error
}) (*models.Post, error) {
	p := &models.Post{}
	if err := row.Scan(&p.ID, &p.Title, &p.AuthorUID, &p.Content,
		&p.Image.Src, &p.Image.Alt, &p.Date, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePost сохраняет новый пост и возвращает его в том виде, в котором он
// записан (с датами, выставленными хранилищем). Дубликат заголовка
// определяется по нарушению уникального индекса и возвращается как ErrPostExists.
func (s *Storage) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	const op = "repository.CreatePost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO posts (id, title, author_uid, content, image_src, image_alt)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + postColumns
	row := s.DB.QueryRowContext(ctx, query,
		post.ID, post.Title, post.AuthorUID, post.Content, post.Image.Src, post.Image.Alt)
	stored, err := scanPost(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrPostExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stored, nil
}

// ListPosts возвращает все посты в порядке публикации.
func (s *Storage) ListPosts(ctx context.Context) ([]*models.Post, error) {
	const op = "repository.ListPosts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + postColumns + ` FROM posts ORDER BY date`
	return s.queryPosts(ctx, op, query)
}

// ListPostsByAuthor возвращает посты, принадлежащие автору с данным uid.
func (s *Storage) ListPostsByAuthor(ctx context.Context, authorUID string) ([]*models.Post, error) {
	const op = "repository.ListPostsByAuthor"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE author_uid = $1 ORDER BY date`
	return s.queryPosts(ctx, op, query, authorUID)
}

func (s *Storage) queryPosts(ctx context.Context, op, query string, args ...any) ([]*models.Post, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPost возвращает пост по id или ErrPostNotFound.
func (s *Storage) GetPost(ctx context.Context, id string) (*models.Post, error) {
	const op = "repository.GetPost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	p, err := scanPost(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// GetPostByTitle возвращает первый пост с точно совпадающим заголовком
// или ErrPostNotFound. Поиск не является подстрочным или полнотекстовым.
func (s *Storage) GetPostByTitle(ctx context.Context, title string) (*models.Post, error) {
	const op = "repository.GetPostByTitle"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE title = $1 ORDER BY created_at LIMIT 1`
	p, err := scanPost(s.DB.QueryRowContext(ctx, query, title))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// UpdatePost заменяет поля title, content и image поста с данным id
// и возвращает обновленную запись. Автор и дата публикации не меняются.
func (s *Storage) UpdatePost(ctx context.Context, id string, post models.Post) (*models.Post, error) {
	const op = "repository.UpdatePost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE posts
			  SET title = $1, content = $2, image_src = $3, image_alt = $4, updated_at = now()
			  WHERE id = $5
			  RETURNING ` + postColumns
	row := s.DB.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Image.Src, post.Image.Alt, id)
	updated, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrPostExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// DeletePost удаляет пост по id и возвращает удаленную запись
// или ErrPostNotFound, если поста не было.
func (s *Storage) DeletePost(ctx context.Context, id string) (*models.Post, error) {
	const op = "repository.DeletePost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM posts WHERE id = $1 RETURNING ` + postColumns
	deleted, err := scanPost(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return deleted, nil
}
