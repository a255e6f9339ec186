// Package services содержит бизнес-логику работы с постами блога,
// включая кеширование чтения и политику доступа к изменению постов.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ggmj92/backend-blog/internal/models"
)

// ErrNotAllowed - действующая политика запрещает вызывающему изменять пост.
var ErrNotAllowed = errors.New("mutation not allowed")

// MutationPolicy определяет, кто может обновлять и удалять посты.
type MutationPolicy string

const (
	// MutationOpen - историческое поведение: обновить пост может любой
	// аутентифицированный клиент, удалить - вообще любой.
	MutationOpen MutationPolicy = "open"
	// MutationOwnerOrAdmin - изменять пост может только его автор или администратор.
	MutationOwnerOrAdmin MutationPolicy = "owner-or-admin"
)

// PostRepository определяет методы для работы с постами в хранилище.
type PostRepository interface {
	// CreatePost сохраняет новый пост и возвращает записанную версию.
	CreatePost(ctx context.Context, post models.Post) (*models.Post, error)
	// ListPosts возвращает все посты.
	ListPosts(ctx context.Context) ([]*models.Post, error)
	// ListPostsByAuthor возвращает посты автора с данным uid.
	ListPostsByAuthor(ctx context.Context, authorUID string) ([]*models.Post, error)
	// GetPost возвращает пост по id.
	GetPost(ctx context.Context, id string) (*models.Post, error)
	// GetPostByTitle возвращает первый пост с точно совпадающим заголовком.
	GetPostByTitle(ctx context.Context, title string) (*models.Post, error)
	// UpdatePost заменяет поля поста и возвращает обновленную запись.
	UpdatePost(ctx context.Context, id string, post models.Post) (*models.Post, error)
	// DeletePost удаляет пост и возвращает удаленную запись.
	DeletePost(ctx context.Context, id string) (*models.Post, error)
}

// UserProvider описывает методы чтения пользователей, нужные для
// разворачивания авторов и проверки роли.
type UserProvider interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// PostService реализует бизнес-логику работы с постами, включая кеширование.
type PostService struct {
	repo   PostRepository
	users  UserProvider
	cache  Cache
	policy MutationPolicy
	log    *slog.Logger
}

// NewPostService создает новый экземпляр PostService.
func NewPostService(repo PostRepository, users UserProvider, cache Cache, policy MutationPolicy, log *slog.Logger) *PostService {
	return &PostService{
		repo:   repo,
		users:  users,
		cache:  cache,
		policy: policy,
		log:    log,
	}
}

// Policy возвращает действующую политику изменения постов.
// Маршрутизация по ней решает, закрывать ли удаление аутентификацией.
func (s *PostService) Policy() MutationPolicy {
	return s.policy
}

func cacheKey(id string) string {
	return fmt.Sprintf("post:%s", id)
}

// List возвращает все посты с развернутыми авторами и датой в формате отображения.
func (s *PostService) List(ctx context.Context) ([]*models.PostView, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	byUID := make(map[string]*models.User, len(users))
	for _, u := range users {
		byUID[u.UID] = u
	}

	views := make([]*models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.View(byUID[p.AuthorUID]))
	}
	return views, nil
}

// ListControl возвращает посты для панели управления вместе с записью
// вызывающего: администратору - все посты, остальным - только собственные.
func (s *PostService) ListControl(ctx context.Context, callerUID string) ([]*models.Post, *models.User, error) {
	caller, err := s.users.GetUser(ctx, callerUID)
	if err != nil {
		return nil, nil, err
	}

	var posts []*models.Post
	if caller.IsAdmin {
		posts, err = s.repo.ListPosts(ctx)
	} else {
		posts, err = s.repo.ListPostsByAuthor(ctx, caller.UID)
	}
	if err != nil {
		return nil, nil, err
	}
	return posts, caller, nil
}

// Read возвращает пост по id с развернутым автором, используя кеш или хранилище.
func (s *PostService) Read(ctx context.Context, id string) (*models.PostView, error) {
	var cached models.PostView
	found, err := s.cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		s.log.Warn("failed to read post from cache", slog.String("key", cacheKey(id)), slog.Any("err", err))
	}
	if found {
		return &cached, nil
	}

	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	author, err := s.users.GetUser(ctx, post.AuthorUID)
	if err != nil {
		// Автор мог быть удален, пост при этом остается читаемым.
		author = nil
	}
	view := post.View(author)

	if err := s.cache.Set(ctx, cacheKey(id), view, time.Hour); err != nil {
		s.log.Warn("failed to cache post", slog.String("key", cacheKey(id)), slog.Any("err", err))
	}
	return view, nil
}

// Search возвращает первый пост с точно совпадающим заголовком.
func (s *PostService) Search(ctx context.Context, title string) (*models.Post, error) {
	return s.repo.GetPostByTitle(ctx, title)
}

// Create сохраняет новый пост от имени вызывающего. Дубликат заголовка
// приходит из хранилища как repository.ErrPostExists: конфликт определяет
// уникальный индекс, а не предварительная проверка.
func (s *PostService) Create(ctx context.Context, callerUID, title, content string, image models.Image) (*models.Post, error) {
	post := models.Post{
		ID:        uuid.NewString(),
		Title:     title,
		AuthorUID: callerUID,
		Content:   content,
		Image:     image,
	}
	stored, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new post", slog.String("id", stored.ID))
	return stored, nil
}

// Update заменяет поля поста с данным id и возвращает обновленную запись.
// Перед изменением проверяется политика доступа.
func (s *PostService) Update(ctx context.Context, callerUID, id, title, content string, image models.Image) (*models.Post, error) {
	existing, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canMutate(ctx, callerUID, existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdatePost(ctx, id, models.Post{
		Title:   title,
		Content: content,
		Image:   image,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate post cache", slog.String("key", cacheKey(id)), slog.Any("err", err))
	}
	return updated, nil
}

// Delete удаляет пост по id и возвращает удаленную запись.
// Перед удалением проверяется политика доступа.
func (s *PostService) Delete(ctx context.Context, callerUID, id string) (*models.Post, error) {
	existing, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canMutate(ctx, callerUID, existing); err != nil {
		return nil, err
	}

	deleted, err := s.repo.DeletePost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		s.log.Warn("failed to invalidate post cache", slog.String("key", cacheKey(id)), slog.Any("err", err))
	}
	return deleted, nil
}

// canMutate применяет политику изменения постов к вызывающему.
// При MutationOpen разрешено всё, включая анонимные вызовы.
func (s *PostService) canMutate(ctx context.Context, callerUID string, post *models.Post) error {
	if s.policy != MutationOwnerOrAdmin {
		return nil
	}
	if callerUID == "" {
		return ErrNotAllowed
	}
	if callerUID == post.AuthorUID {
		return nil
	}
	caller, err := s.users.GetUser(ctx, callerUID)
	if err != nil {
		return ErrNotAllowed
	}
	if !caller.IsAdmin {
		return ErrNotAllowed
	}
	return nil
}
