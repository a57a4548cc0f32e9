package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/adsite-service/internal/domain"
	"github.com/spec-kit/adsite-service/internal/repository"
	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// AdminService backs the staff user-directory screens.
type AdminService struct {
	users  repository.UserRepository
	orders repository.ServiceOrderRepository
}

// UserDetail is one account with its profile and order history.
type UserDetail struct {
	User    *domain.User
	Profile *domain.UserProfile
	Orders  []domain.ServiceOrder
}

// NewAdminService constructs the service.
func NewAdminService(users repository.UserRepository, orders repository.ServiceOrderRepository) *AdminService {
	return &AdminService{users: users, orders: orders}
}

// ListUsers returns all accounts ordered by registration date.
func (s *AdminService) ListUsers(ctx context.Context, caller *domain.User) ([]domain.User, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// GetUserDetail returns one account with profile and orders.
func (s *AdminService) GetUserDetail(ctx context.Context, caller *domain.User, userID string) (*UserDetail, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, err
	}

	detail := &UserDetail{User: user}

	profile, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}
	detail.Profile = profile

	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	detail.Orders = orders

	return detail, nil
}
