package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/adsite-service/internal/domain"
)

// ServiceOrderRepository manages customer orders for catalog services.
type ServiceOrderRepository interface {
	Create(ctx context.Context, order *domain.ServiceOrder) error
	GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ServiceOrder, error)
	ListAll(ctx context.Context) ([]domain.ServiceOrder, error)
}

type serviceOrderRepository struct {
	pool *pgxpool.Pool
}

// NewServiceOrderRepository builds repository.
func NewServiceOrderRepository(pool *pgxpool.Pool) ServiceOrderRepository {
	return &serviceOrderRepository{pool: pool}
}

func (r *serviceOrderRepository) Create(ctx context.Context, order *domain.ServiceOrder) error {
	const query = `
        INSERT INTO service_orders (user_id, service_id, description, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		order.UserID,
		order.ServiceID,
		order.Description,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *serviceOrderRepository) GetByID(ctx context.Context, id string) (*domain.ServiceOrder, error) {
	const query = `
        SELECT id, user_id, service_id, description, status, created_at
        FROM service_orders WHERE id=$1`

	var order domain.ServiceOrder
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.ServiceID,
		&order.Description,
		&order.Status,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *serviceOrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.ServiceOrder, error) {
	const query = `
        SELECT id, user_id, service_id, description, status, created_at
        FROM service_orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, userID)
}

func (r *serviceOrderRepository) ListAll(ctx context.Context) ([]domain.ServiceOrder, error) {
	const query = `
        SELECT id, user_id, service_id, description, status, created_at
        FROM service_orders ORDER BY created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *serviceOrderRepository) listOrders(ctx context.Context, query string, args ...any) ([]domain.ServiceOrder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ServiceOrder
	for rows.Next() {
		var order domain.ServiceOrder
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.ServiceID,
			&order.Description,
			&order.Status,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}
