package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dfryer1193/blogposts/blog/domain"
	"github.com/dfryer1193/blogposts/shared/db"
)

var _ domain.PostRepository = (*SQLitePostRepository)(nil)

// SQLitePostRepository implements domain.PostRepository using SQL database (SQLite)
type SQLitePostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLitePostRepository from a standard sql.DB
func NewPostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{
		db: db,
	}
}

const listPostsQuery = `
	SELECT id, title, content, author, publish_date
	FROM posts
	ORDER BY seq ASC
`

// List retrieves all posts in insertion order
func (r *SQLitePostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	rows, err := db.GetExecutor(ctx, r.db).QueryContext(ctx, listPostsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var row postRow
		err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Content,
			&row.Author,
			&row.PublishDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, row.toDomain())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

const getPostQuery = `
		SELECT id, title, content, author, publish_date
		FROM posts
		WHERE id = ?
`

// Get retrieves a single post by ID
func (r *SQLitePostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: post ID cannot be empty", domain.ErrNotFound)
	}

	var row postRow
	err := db.GetExecutor(ctx, r.db).QueryRowContext(ctx, getPostQuery, id).Scan(
		&row.ID,
		&row.Title,
		&row.Content,
		&row.Author,
		&row.PublishDate,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return row.toDomain(), nil
}

const insertPostQuery = `
	INSERT INTO posts (id, title, content, author, publish_date)
	VALUES (?, ?, ?, ?, ?)
`

// Insert appends a new post
func (r *SQLitePostRepository) Insert(ctx context.Context, p *domain.Post) error {
	if p == nil {
		return fmt.Errorf("post cannot be nil")
	}

	if p.ID == "" {
		return fmt.Errorf("post ID cannot be empty")
	}

	_, err := db.GetExecutor(ctx, r.db).ExecContext(ctx, insertPostQuery,
		p.ID,
		p.Title,
		p.Content,
		p.Author,
		p.PublishDate.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

const updatePostQuery = `
		UPDATE posts
		SET title = ?, content = ?, author = ?
		WHERE id = ?
`

// Update overwrites title, content and author; id and publish_date are never touched
func (r *SQLitePostRepository) Update(ctx context.Context, p *domain.Post) error {
	if p == nil {
		return fmt.Errorf("post cannot be nil")
	}

	return db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		res, err := db.GetExecutor(txCtx, r.db).ExecContext(txCtx, updatePostQuery,
			p.Title,
			p.Content,
			p.Author,
			p.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		return requireAffected(res, p.ID)
	})
}

const deletePostQuery = `DELETE FROM posts WHERE id = ?`

// Delete removes a post by ID
func (r *SQLitePostRepository) Delete(ctx context.Context, id string) error {
	return db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		res, err := db.GetExecutor(txCtx, r.db).ExecContext(txCtx, deletePostQuery, id)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		return requireAffected(res, id)
	})
}

// requireAffected turns a statement that matched no rows into domain.ErrNotFound
func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	return nil
}

// postRow is a private struct used to scan database rows
// and provides a method to convert to the domain.Post model
type postRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Author      string    `db:"author"`
	PublishDate time.Time `db:"publish_date"`
}

func (pr *postRow) toDomain() *domain.Post {
	return &domain.Post{
		ID:          pr.ID,
		Title:       pr.Title,
		Content:     pr.Content,
		Author:      pr.Author,
		PublishDate: pr.PublishDate.UTC(),
	}
}
