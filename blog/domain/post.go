package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrValidation is returned when a post is missing a required field
	// or carries identifiers that don't agree with each other.
	ErrValidation = errors.New("invalid post")

	// ErrNotFound is returned when no post exists for the requested ID.
	ErrNotFound = errors.New("post not found")
)

// Post represents a blog post
// ID and PublishDate are assigned by the service when the post is created
// and never change afterwards.
type Post struct {
	ID          string
	Title       string
	Content     string
	Author      string
	PublishDate time.Time
}

// Validate checks that every client-supplied field is present.
func (p *Post) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: post cannot be nil", ErrValidation)
	}

	switch {
	case p.Title == "":
		return fmt.Errorf("%w: missing field title", ErrValidation)
	case p.Content == "":
		return fmt.Errorf("%w: missing field content", ErrValidation)
	case p.Author == "":
		return fmt.Errorf("%w: missing field author", ErrValidation)
	}

	return nil
}

// PostRepository stores posts in insertion order.
type PostRepository interface {
	List(ctx context.Context) ([]*Post, error)
	Get(ctx context.Context, id string) (*Post, error)
	Insert(ctx context.Context, p *Post) error

	// Update overwrites title, content and author of an existing post.
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id string) error
}
