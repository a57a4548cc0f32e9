package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/adsite-service/internal/domain"
)

func newOrderFixture(t *testing.T) (*OrderService, *fakeUserRepo) {
	t.Helper()
	clock := newFakeClock()
	users := newFakeUserRepo(clock)
	orders := newFakeServiceOrderRepo(clock)
	services := &fakeServiceRepo{services: []domain.Service{
		{ID: "svc-1", Title: "Banner design"},
	}}
	svc := NewOrderService(OrderDependencies{
		OrderRepo:   orders,
		ServiceRepo: services,
		UserRepo:    users,
	})
	return svc, users
}

func TestCreateOrder(t *testing.T) {
	svc, users := newOrderFixture(t)
	customer := users.addUser("alice", false)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, customer, "svc-1", "  two banners please  ")
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusNew, order.Status)
	require.Equal(t, customer.ID, order.UserID)
	require.Equal(t, "two banners please", order.Description)

	_, err = svc.CreateOrder(ctx, customer, "svc-404", "whatever")
	requireDomainErrorCode(t, err, "NOT_FOUND")

	_, err = svc.CreateOrder(ctx, customer, "", "whatever")
	requireDomainErrorCode(t, err, "VALIDATION_FAILED")
}

func TestListOrdersScoping(t *testing.T) {
	svc, users := newOrderFixture(t)
	alice := users.addUser("alice", false)
	bob := users.addUser("bob", false)
	staff := users.addUser("admin", true)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, alice, "svc-1", "first")
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, bob, "svc-1", "second")
	require.NoError(t, err)

	own, err := svc.ListOrders(ctx, alice)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, alice.ID, own[0].UserID)

	all, err := svc.ListOrders(ctx, staff)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first.
	require.Equal(t, bob.ID, all[0].UserID)
	require.Equal(t, alice.ID, all[1].UserID)
}

func TestOrderDetailAccess(t *testing.T) {
	svc, users := newOrderFixture(t)
	alice := users.addUser("alice", false)
	bob := users.addUser("bob", false)
	staff := users.addUser("admin", true)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, alice, "svc-1", "banners")
	require.NoError(t, err)

	detail, err := svc.GetOrderForUser(ctx, alice, order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID, detail.Order.ID)
	require.NotNil(t, detail.Service)
	require.Equal(t, "Banner design", detail.Service.Title)
	require.Nil(t, detail.Requester)

	// Another customer's order reads as missing, not forbidden.
	_, err = svc.GetOrderForUser(ctx, bob, order.ID)
	requireDomainErrorCode(t, err, "NOT_FOUND")

	staffDetail, err := svc.GetOrderForStaff(ctx, staff, order.ID)
	require.NoError(t, err)
	require.NotNil(t, staffDetail.Requester)
	require.Equal(t, alice.ID, staffDetail.Requester.ID)

	_, err = svc.GetOrderForStaff(ctx, alice, order.ID)
	requireDomainErrorCode(t, err, "FORBIDDEN")
}
