package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/adsite-service/internal/domain"
)

// NewsRepository provides read access to published news.
type NewsRepository interface {
	List(ctx context.Context, limit int) ([]domain.News, error)
	GetByID(ctx context.Context, id string) (*domain.News, error)
	Search(ctx context.Context, query string) ([]domain.News, error)
}

type newsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository builds repository.
func NewNewsRepository(pool *pgxpool.Pool) NewsRepository {
	return &newsRepository{pool: pool}
}

// List returns news ordered most recent first.
func (r *newsRepository) List(ctx context.Context, limit int) ([]domain.News, error) {
	query := `
        SELECT id, title, content, image_path, published_at
        FROM news ORDER BY published_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.News
	for rows.Next() {
		var item domain.News
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.ImagePath, &item.PublishedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *newsRepository) GetByID(ctx context.Context, id string) (*domain.News, error) {
	const query = `
        SELECT id, title, content, image_path, published_at
        FROM news WHERE id=$1`

	var item domain.News
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Content,
		&item.ImagePath,
		&item.PublishedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

// Search matches the query as a case-insensitive substring of title or content.
func (r *newsRepository) Search(ctx context.Context, query string) ([]domain.News, error) {
	const sql = `
        SELECT id, title, content, image_path, published_at
        FROM news
        WHERE title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%'
        ORDER BY published_at DESC`

	rows, err := r.pool.Query(ctx, sql, escapeLike(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.News
	for rows.Next() {
		var item domain.News
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.ImagePath, &item.PublishedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
