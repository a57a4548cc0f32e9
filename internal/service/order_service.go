package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/adsite-service/internal/domain"
	"github.com/spec-kit/adsite-service/internal/events"
	"github.com/spec-kit/adsite-service/internal/repository"
	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// OrderService coordinates customer service-order workflows. Order status is
// mutated only through the admin collaborator, never here.
type OrderService struct {
	orders     repository.ServiceOrderRepository
	services   repository.ServiceRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// OrderDependencies bundles repositories for the order service.
type OrderDependencies struct {
	OrderRepo   repository.ServiceOrderRepository
	ServiceRepo repository.ServiceRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// OrderDetail pairs an order with its catalog service, and with the
// requesting customer on staff screens.
type OrderDetail struct {
	Order     *domain.ServiceOrder
	Service   *domain.Service
	Requester *domain.User
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		services:   deps.ServiceRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateOrder records a new service order for the caller with status "New".
func (s *OrderService) CreateOrder(ctx context.Context, caller *domain.User, serviceID, description string) (*domain.ServiceOrder, error) {
	if caller == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if serviceID == "" {
		return nil, apperrors.NewValidationError("service_id required", nil)
	}
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service", map[string]any{"service_id": serviceID})
		}
		return nil, err
	}

	order := &domain.ServiceOrder{
		UserID:      caller.ID,
		ServiceID:   serviceID,
		Description: strings.TrimSpace(description),
		Status:      domain.OrderStatusNew,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventServiceOrderCreated,
		ActorID: caller.ID,
		Payload: events.ServiceOrderCreatedPayload{
			OrderID:   order.ID,
			ServiceID: order.ServiceID,
			UserID:    order.UserID,
		},
	})
	return order, nil
}

// ListOrders returns orders newest first: all of them for staff, the
// caller's own otherwise.
func (s *OrderService) ListOrders(ctx context.Context, caller *domain.User) ([]domain.ServiceOrder, error) {
	if caller == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if caller.IsStaff {
		return s.orders.ListAll(ctx)
	}
	return s.orders.ListByUser(ctx, caller.ID)
}

// GetOrderForUser fetches one of the caller's own orders. Orders belonging
// to anyone else are reported as missing, not as forbidden.
func (s *OrderService) GetOrderForUser(ctx context.Context, caller *domain.User, orderID string) (*OrderDetail, error) {
	if caller == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != caller.ID {
		return nil, apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
	}
	return s.buildDetail(ctx, order, false)
}

// GetOrderForStaff fetches any order together with requester info.
func (s *OrderService) GetOrderForStaff(ctx context.Context, caller *domain.User, orderID string) (*OrderDetail, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, order, true)
}

func (s *OrderService) getOrder(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) buildDetail(ctx context.Context, order *domain.ServiceOrder, withRequester bool) (*OrderDetail, error) {
	svc, err := s.services.GetByID(ctx, order.ServiceID)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}
	detail := &OrderDetail{Order: order, Service: svc}
	if withRequester {
		requester, err := s.users.GetByID(ctx, order.UserID)
		if err != nil {
			return nil, err
		}
		detail.Requester = requester
	}
	return detail, nil
}

func (s *OrderService) publishEvent(ctx context.Context, event events.Event) {
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
