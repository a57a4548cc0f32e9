package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/adsite-service/internal/domain"
)

// ThreadHead is the newest message of one owner's thread, used to build the
// staff roster.
type ThreadHead struct {
	OwnerUserID   string
	LastBody      string
	LastCreatedAt time.Time
}

// SupportMessageRepository manages the append-only support chat log.
type SupportMessageRepository interface {
	Create(ctx context.Context, msg *domain.SupportMessage) error
	ListByOwner(ctx context.Context, ownerUserID string) ([]domain.SupportMessage, error)
	ListThreadHeads(ctx context.Context) ([]ThreadHead, error)
	CountUnread(ctx context.Context) (int, error)
	MarkAllRead(ctx context.Context) error
	MarkThreadRead(ctx context.Context, ownerUserID string) error
}

type supportMessageRepository struct {
	pool *pgxpool.Pool
}

// NewSupportMessageRepository builds repository.
func NewSupportMessageRepository(pool *pgxpool.Pool) SupportMessageRepository {
	return &supportMessageRepository{pool: pool}
}

func (r *supportMessageRepository) Create(ctx context.Context, msg *domain.SupportMessage) error {
	const query = `
        INSERT INTO support_messages (owner_user_id, sender_user_id, body, is_from_staff, is_read)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		msg.OwnerUserID,
		msg.SenderUserID,
		msg.Body,
		msg.IsFromStaff,
		msg.IsRead,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *supportMessageRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]domain.SupportMessage, error) {
	const query = `
        SELECT id, owner_user_id, sender_user_id, body, is_from_staff, is_read, created_at
        FROM support_messages WHERE owner_user_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SupportMessage
	for rows.Next() {
		var msg domain.SupportMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.OwnerUserID,
			&msg.SenderUserID,
			&msg.Body,
			&msg.IsFromStaff,
			&msg.IsRead,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}

// ListThreadHeads returns one row per owner holding the thread's newest
// message, ordered by most recently active thread first.
func (r *supportMessageRepository) ListThreadHeads(ctx context.Context) ([]ThreadHead, error) {
	const query = `
        SELECT owner_user_id, body, created_at FROM (
            SELECT DISTINCT ON (owner_user_id) owner_user_id, body, created_at
            FROM support_messages
            ORDER BY owner_user_id, created_at DESC
        ) heads
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ThreadHead
	for rows.Next() {
		var head ThreadHead
		if err := rows.Scan(&head.OwnerUserID, &head.LastBody, &head.LastCreatedAt); err != nil {
			return nil, err
		}
		result = append(result, head)
	}
	return result, rows.Err()
}

func (r *supportMessageRepository) CountUnread(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM support_messages WHERE is_read=FALSE`
	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAllRead flips every unread message across every thread. The read
// transition is monotonic; rows already read are untouched.
func (r *supportMessageRepository) MarkAllRead(ctx context.Context) error {
	const query = `UPDATE support_messages SET is_read=TRUE WHERE is_read=FALSE`
	_, err := r.pool.Exec(ctx, query)
	return err
}

// MarkThreadRead flips unread messages of a single thread. Not called by the
// staff thread view today; see the mark-all-read note in DESIGN.md.
func (r *supportMessageRepository) MarkThreadRead(ctx context.Context, ownerUserID string) error {
	const query = `UPDATE support_messages SET is_read=TRUE WHERE is_read=FALSE AND owner_user_id=$1`
	_, err := r.pool.Exec(ctx, query, ownerUserID)
	return err
}
