package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/adsite-service/internal/auth"
	"github.com/spec-kit/adsite-service/internal/config"
	"github.com/spec-kit/adsite-service/internal/domain"
	"github.com/spec-kit/adsite-service/internal/events"
	"github.com/spec-kit/adsite-service/internal/repository"
	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// DeriveHandle produces the login handle from an email's local part, the
// substring before the first '@'. Two addresses with the same local part
// collide; that derivation is an accepted constraint of the site.
func DeriveHandle(email string) string {
	email = strings.TrimSpace(email)
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// Register creates an account with a profile record and opens a session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email and password required", nil)
	}
	if input.Password != input.ConfirmPassword {
		return nil, "", time.Time{}, apperrors.NewValidationError("passwords do not match", nil)
	}

	handle := DeriveHandle(input.Email)
	if handle == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("invalid email", nil)
	}

	if _, err := s.users.GetByHandle(ctx, handle); err == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("user with this email already exists", map[string]any{"handle": handle})
	} else if err != pgx.ErrNoRows {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Handle:       handle,
		Email:        strings.TrimSpace(input.Email),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: hash,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	profile := &domain.UserProfile{UserID: user.ID, Phone: strings.TrimSpace(input.Phone)}
	if err := s.users.CreateProfile(ctx, profile); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Handle, user.IsStaff)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventUserRegistered,
		ActorID: user.ID,
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Handle: user.Handle,
			Email:  user.Email,
		},
	})
	return user, token, exp, nil
}

// Login authenticates by the handle derived from the submitted email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	handle := DeriveHandle(email)
	user, err := s.users.GetByHandle(ctx, handle)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Handle, user.IsStaff)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout currently no-ops for stateless session tokens.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, caller *domain.User, currentPassword, newPassword string) error {
	if caller == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if newPassword == "" {
		return apperrors.NewValidationError("new password required", nil)
	}
	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// Profile returns the caller's profile record.
func (s *AuthService) Profile(ctx context.Context, caller *domain.User) (*domain.UserProfile, error) {
	if caller == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	profile, err := s.users.GetProfileByUserID(ctx, caller.ID)
	if err == pgx.ErrNoRows {
		return &domain.UserProfile{UserID: caller.ID}, nil
	}
	return profile, err
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
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
