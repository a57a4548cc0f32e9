package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/adsite-service/internal/domain"
)

// ContactRepository provides read access to the contacts page entries.
type ContactRepository interface {
	List(ctx context.Context) ([]domain.Contact, error)
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository builds repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	const query = `SELECT id, name, phone, email, address FROM contacts ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Contact
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Email, &contact.Address); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}
	return result, rows.Err()
}
