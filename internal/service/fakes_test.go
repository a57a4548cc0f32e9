package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/adsite-service/internal/domain"
	"github.com/spec-kit/adsite-service/internal/repository"
)

// fakeClock hands out strictly increasing timestamps so ordering assertions
// are deterministic.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) next() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeUserRepo struct {
	seq      int
	users    map[string]*domain.User
	profiles map[string]*domain.UserProfile
	clock    *fakeClock
}

func newFakeUserRepo(clock *fakeClock) *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[string]*domain.User),
		profiles: make(map[string]*domain.UserProfile),
		clock:    clock,
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = r.clock.next()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByHandle(_ context.Context, handle string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Handle == handle {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeUserRepo) CreateProfile(_ context.Context, profile *domain.UserProfile) error {
	r.seq++
	profile.ID = fmt.Sprintf("profile-%d", r.seq)
	profile.CreatedAt = r.clock.next()
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *fakeUserRepo) GetProfileByUserID(_ context.Context, userID string) (*domain.UserProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

// addUser seeds an account directly, bypassing registration.
func (r *fakeUserRepo) addUser(handle string, isStaff bool) *domain.User {
	user := &domain.User{
		Handle:  handle,
		Email:   handle + "@example.com",
		IsStaff: isStaff,
		Status:  domain.UserStatusActive,
	}
	_ = r.Create(context.Background(), user)
	return user
}

type fakeSupportMessageRepo struct {
	seq      int
	messages []domain.SupportMessage
	clock    *fakeClock
}

func newFakeSupportMessageRepo(clock *fakeClock) *fakeSupportMessageRepo {
	return &fakeSupportMessageRepo{clock: clock}
}

func (r *fakeSupportMessageRepo) Create(_ context.Context, msg *domain.SupportMessage) error {
	r.seq++
	msg.ID = fmt.Sprintf("msg-%d", r.seq)
	msg.CreatedAt = r.clock.next()
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeSupportMessageRepo) ListByOwner(_ context.Context, ownerUserID string) ([]domain.SupportMessage, error) {
	var result []domain.SupportMessage
	for _, msg := range r.messages {
		if msg.OwnerUserID == ownerUserID {
			result = append(result, msg)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeSupportMessageRepo) ListThreadHeads(_ context.Context) ([]repository.ThreadHead, error) {
	latest := make(map[string]domain.SupportMessage)
	for _, msg := range r.messages {
		if head, ok := latest[msg.OwnerUserID]; !ok || msg.CreatedAt.After(head.CreatedAt) {
			latest[msg.OwnerUserID] = msg
		}
	}
	result := make([]repository.ThreadHead, 0, len(latest))
	for _, msg := range latest {
		result = append(result, repository.ThreadHead{
			OwnerUserID:   msg.OwnerUserID,
			LastBody:      msg.Body,
			LastCreatedAt: msg.CreatedAt,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastCreatedAt.After(result[j].LastCreatedAt)
	})
	return result, nil
}

func (r *fakeSupportMessageRepo) CountUnread(_ context.Context) (int, error) {
	count := 0
	for _, msg := range r.messages {
		if !msg.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeSupportMessageRepo) MarkAllRead(_ context.Context) error {
	for i := range r.messages {
		r.messages[i].IsRead = true
	}
	return nil
}

func (r *fakeSupportMessageRepo) MarkThreadRead(_ context.Context, ownerUserID string) error {
	for i := range r.messages {
		if r.messages[i].OwnerUserID == ownerUserID {
			r.messages[i].IsRead = true
		}
	}
	return nil
}

type fakeServiceRepo struct {
	services []domain.Service
}

func (r *fakeServiceRepo) List(_ context.Context, limit int) ([]domain.Service, error) {
	result := append([]domain.Service{}, r.services...)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			copied := r.services[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeServiceRepo) Search(_ context.Context, query string) ([]domain.Service, error) {
	needle := strings.ToLower(query)
	var result []domain.Service
	for _, svc := range r.services {
		if strings.Contains(strings.ToLower(svc.Title), needle) ||
			strings.Contains(strings.ToLower(svc.Description), needle) {
			result = append(result, svc)
		}
	}
	return result, nil
}

type fakeNewsRepo struct {
	news []domain.News
}

func (r *fakeNewsRepo) List(_ context.Context, limit int) ([]domain.News, error) {
	result := append([]domain.News{}, r.news...)
	sort.Slice(result, func(i, j int) bool {
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeNewsRepo) GetByID(_ context.Context, id string) (*domain.News, error) {
	for i := range r.news {
		if r.news[i].ID == id {
			copied := r.news[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeNewsRepo) Search(_ context.Context, query string) ([]domain.News, error) {
	needle := strings.ToLower(query)
	var result []domain.News
	for _, item := range r.news {
		if strings.Contains(strings.ToLower(item.Title), needle) ||
			strings.Contains(strings.ToLower(item.Content), needle) {
			result = append(result, item)
		}
	}
	return result, nil
}

type fakeContactRepo struct {
	contacts []domain.Contact
}

func (r *fakeContactRepo) List(_ context.Context) ([]domain.Contact, error) {
	return append([]domain.Contact{}, r.contacts...), nil
}

type fakeSettingsRepo struct {
	settings *domain.SiteSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.SiteSettings, error) {
	if r.settings == nil {
		return &domain.SiteSettings{SiteName: "Advertising Resource"}, nil
	}
	copied := *r.settings
	return &copied, nil
}

type fakeServiceOrderRepo struct {
	seq    int
	orders []domain.ServiceOrder
	clock  *fakeClock
}

func newFakeServiceOrderRepo(clock *fakeClock) *fakeServiceOrderRepo {
	return &fakeServiceOrderRepo{clock: clock}
}

func (r *fakeServiceOrderRepo) Create(_ context.Context, order *domain.ServiceOrder) error {
	r.seq++
	order.ID = fmt.Sprintf("order-%d", r.seq)
	order.CreatedAt = r.clock.next()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeServiceOrderRepo) GetByID(_ context.Context, id string) (*domain.ServiceOrder, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			copied := r.orders[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeServiceOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.ServiceOrder, error) {
	var result []domain.ServiceOrder
	for _, order := range r.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeServiceOrderRepo) ListAll(_ context.Context) ([]domain.ServiceOrder, error) {
	result := append([]domain.ServiceOrder{}, r.orders...)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
