package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/adsite-service/internal/domain"
	"github.com/spec-kit/adsite-service/internal/events"
	"github.com/spec-kit/adsite-service/internal/repository"
	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// snippetLength bounds message previews in the staff roster.
const snippetLength = 50

const (
	unreadCountCacheKey = "support:unread_count"
	unreadCountCacheTTL = 15 * time.Second
)

// SupportService implements the support chat: one append-only thread per
// customer, staff roster with unread tracking, and posting rules for both
// sides.
type SupportService struct {
	messages   repository.SupportMessageRepository
	users      repository.UserRepository
	cache      *redis.Client
	dispatcher events.Dispatcher
}

// SupportDependencies bundles requirements for the support service.
type SupportDependencies struct {
	MessageRepo repository.SupportMessageRepository
	UserRepo    repository.UserRepository
	Cache       *redis.Client
	Dispatcher  events.Dispatcher
}

// NewSupportService constructs the service.
func NewSupportService(deps SupportDependencies) *SupportService {
	return &SupportService{
		messages:   deps.MessageRepo,
		users:      deps.UserRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// ListThreadsForStaff returns the roster of customer threads, most recently
// active first, each with a bounded preview of its newest message.
func (s *SupportService) ListThreadsForStaff(ctx context.Context, caller *domain.User) ([]domain.ThreadSummary, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}

	heads, err := s.messages.ListThreadHeads(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ThreadSummary, 0, len(heads))
	for _, head := range heads {
		owner, err := s.users.GetByID(ctx, head.OwnerUserID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.ThreadSummary{
			Owner:              owner,
			LastMessageSnippet: Snippet(head.LastBody, snippetLength),
			LastMessageAt:      head.LastCreatedAt,
		})
	}
	return summaries, nil
}

// UnreadCount returns the number of unread messages across all threads,
// served from the Redis badge cache when warm.
func (s *SupportService) UnreadCount(ctx context.Context, caller *domain.User) (int, error) {
	if err := requireStaff(caller); err != nil {
		return 0, err
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, unreadCountCacheKey).Result(); err == nil {
			if count, convErr := strconv.Atoi(cached); convErr == nil {
				return count, nil
			}
		}
	}

	count, err := s.messages.CountUnread(ctx)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, unreadCountCacheKey, strconv.Itoa(count), unreadCountCacheTTL).Err()
	}
	return count, nil
}

// ViewThreadForStaff returns one customer's thread oldest-first. Reading any
// thread marks every unread message system-wide as read, matching the
// long-standing behavior of the admin chat screen.
func (s *SupportService) ViewThreadForStaff(ctx context.Context, caller *domain.User, ownerID string) (*domain.User, []domain.SupportMessage, error) {
	if err := requireStaff(caller); err != nil {
		return nil, nil, err
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewNotFound("user", map[string]any{"user_id": ownerID})
		}
		return nil, nil, err
	}

	msgs, err := s.messages.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.messages.MarkAllRead(ctx); err != nil {
		return nil, nil, err
	}
	s.invalidateUnreadCache(ctx)

	return owner, msgs, nil
}

// ViewOwnThread returns the caller's own thread. The owner id comes from the
// session principal only; customers cannot address another thread.
func (s *SupportService) ViewOwnThread(ctx context.Context, caller *domain.User) ([]domain.SupportMessage, error) {
	if caller == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.messages.ListByOwner(ctx, caller.ID)
}

// PostMessage appends a message to a thread. Whitespace-only bodies are
// silently dropped: the returned message is nil and no error is raised.
// Customers always post into their own thread; staff may post anywhere.
// Staff replies are stored already read, and replying marks all pending
// messages read just as viewing the thread does.
func (s *SupportService) PostMessage(ctx context.Context, caller *domain.User, ownerID, body string) (*domain.SupportMessage, error) {
	if caller == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	if !caller.IsStaff {
		if ownerID != "" && ownerID != caller.ID {
			return nil, apperrors.NewForbidden("cannot post to another user's thread")
		}
		ownerID = caller.ID
	} else if ownerID != caller.ID {
		if _, err := s.users.GetByID(ctx, ownerID); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("user", map[string]any{"user_id": ownerID})
			}
			return nil, err
		}
	}

	// Staff replying has the thread open, which reads everything pending.
	// Same global sweep as ViewThreadForStaff, even when the body is blank.
	if caller.IsStaff {
		if err := s.messages.MarkAllRead(ctx); err != nil {
			return nil, err
		}
		s.invalidateUnreadCache(ctx)
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	msg := &domain.SupportMessage{
		OwnerUserID:  ownerID,
		SenderUserID: caller.ID,
		Body:         body,
		IsFromStaff:  caller.IsStaff,
		IsRead:       caller.IsStaff,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	s.invalidateUnreadCache(ctx)

	s.publishEvent(ctx, events.Event{
		Type:    events.EventSupportMessagePosted,
		ActorID: caller.ID,
		Payload: events.SupportMessagePostedPayload{
			MessageID:   msg.ID,
			OwnerUserID: msg.OwnerUserID,
			IsFromStaff: msg.IsFromStaff,
			BodyPreview: Snippet(msg.Body, snippetLength),
		},
	})
	return msg, nil
}

func (s *SupportService) invalidateUnreadCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, unreadCountCacheKey).Err()
}

func (s *SupportService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// Snippet bounds a message body to max characters for roster listings,
// appending an ellipsis when truncation happened. Counts runes, not bytes,
// so multi-byte text is never cut mid-character.
func Snippet(body string, max int) string {
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	return string(runes[:max]) + "..."
}

func requireStaff(caller *domain.User) error {
	if caller == nil || !caller.IsStaff {
		return apperrors.NewForbidden("staff role required")
	}
	return nil
}
