package application

import (
	"context"
	"fmt"
	"time"

	"github.com/dfryer1193/blogposts/blog/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PostUpdate carries the client-supplied fields of a replace request.
// ID is optional; when set it must match the ID being replaced.
type PostUpdate struct {
	ID      string
	Title   string
	Content string
	Author  string
}

type PostService struct {
	repo  domain.PostRepository
	now   func() time.Time
	newID func() string
}

// Option customises a PostService
type Option func(*PostService)

// WithClock overrides the clock used to stamp PublishDate
func WithClock(now func() time.Time) Option {
	return func(s *PostService) {
		s.now = now
	}
}

// WithIDGenerator overrides how new post IDs are minted
func WithIDGenerator(newID func() string) Option {
	return func(s *PostService) {
		s.newID = newID
	}
}

func NewPostService(repo domain.PostRepository, opts ...Option) *PostService {
	s := &PostService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// List returns every post in insertion order
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Get returns a single post
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the candidate, assigns ID and PublishDate, and stores it
func (s *PostService) Create(ctx context.Context, title, content, author string) (*domain.Post, error) {
	post := &domain.Post{
		Title:   title,
		Content: content,
		Author:  author,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	post.ID = s.newID()
	post.PublishDate = s.now().UTC()

	if err := s.repo.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Debug().Str("postID", post.ID).Str("author", post.Author).Msg("Created post")

	return post, nil
}

// Replace overwrites title, content and author of the post stored under id
func (s *PostService) Replace(ctx context.Context, id string, update PostUpdate) error {
	if update.ID != "" && update.ID != id {
		return fmt.Errorf("%w: request path id (%s) and request body id (%s) must match", domain.ErrValidation, id, update.ID)
	}

	post := &domain.Post{
		ID:      id,
		Title:   update.Title,
		Content: update.Content,
		Author:  update.Author,
	}

	if err := post.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return err
	}

	log.Debug().Str("postID", id).Msg("Replaced post")

	return nil
}

// Delete removes the post stored under id
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Debug().Str("postID", id).Msg("Deleted post")

	return nil
}
