package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/adsite-service/internal/domain"
)

// ServiceRepository provides read access to the service catalog.
type ServiceRepository interface {
	List(ctx context.Context, limit int) ([]domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Search(ctx context.Context, query string) ([]domain.Service, error)
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository builds repository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

func (r *serviceRepository) List(ctx context.Context, limit int) ([]domain.Service, error) {
	query := `
        SELECT id, title, description, image_path, created_at
        FROM services ORDER BY created_at ASC`
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

	var result []domain.Service
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.ImagePath, &svc.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, svc)
	}
	return result, rows.Err()
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	const query = `
        SELECT id, title, description, image_path, created_at
        FROM services WHERE id=$1`

	var svc domain.Service
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&svc.ID,
		&svc.Title,
		&svc.Description,
		&svc.ImagePath,
		&svc.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Search matches the query as a case-insensitive substring of title or description.
func (r *serviceRepository) Search(ctx context.Context, query string) ([]domain.Service, error) {
	const sql = `
        SELECT id, title, description, image_path, created_at
        FROM services
        WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, sql, escapeLike(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Service
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.ImagePath, &svc.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, svc)
	}
	return result, rows.Err()
}
