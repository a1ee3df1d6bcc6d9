package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/dfryer1193/blogposts/blog/domain"
)

var _ domain.PostRepository = (*MemoryPostRepository)(nil)

// MemoryPostRepository implements domain.PostRepository in process memory.
// Posts live for the lifetime of the repository and are returned in the
// order they were inserted.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts []*domain.Post
	index map[string]int
}

// NewMemoryPostRepository creates an empty MemoryPostRepository
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts: make([]*domain.Post, 0),
		index: make(map[string]int),
	}
}

// List returns copies of all posts in insertion order
func (r *MemoryPostRepository) List(_ context.Context) ([]*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		cp := *p
		posts = append(posts, &cp)
	}

	return posts, nil
}

// Get retrieves a single post by ID
func (r *MemoryPostRepository) Get(_ context.Context, id string) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	cp := *r.posts[i]
	return &cp, nil
}

// Insert appends a new post. The post's ID must not already be stored.
func (r *MemoryPostRepository) Insert(_ context.Context, p *domain.Post) error {
	if p == nil {
		return fmt.Errorf("post cannot be nil")
	}

	if p.ID == "" {
		return fmt.Errorf("post ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[p.ID]; exists {
		return fmt.Errorf("post already exists: %s", p.ID)
	}

	cp := *p
	r.posts = append(r.posts, &cp)
	r.index[p.ID] = len(r.posts) - 1

	return nil
}

// Update overwrites the mutable fields of a stored post in place
func (r *MemoryPostRepository) Update(_ context.Context, p *domain.Post) error {
	if p == nil {
		return fmt.Errorf("post cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[p.ID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, p.ID)
	}

	stored := r.posts[i]
	stored.Title = p.Title
	stored.Content = p.Content
	stored.Author = p.Author

	return nil
}

// Delete removes a post and shifts later posts down to keep insertion order
func (r *MemoryPostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.posts); j++ {
		r.index[r.posts[j].ID] = j
	}

	return nil
}
