package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdminListUsers(t *testing.T) {
	clock := newFakeClock()
	users := newFakeUserRepo(clock)
	orders := newFakeServiceOrderRepo(clock)
	svc := NewAdminService(users, orders)
	ctx := context.Background()

	alice := users.addUser("alice", false)
	bob := users.addUser("bob", false)
	staff := users.addUser("admin", true)

	_, err := svc.ListUsers(ctx, alice)
	requireDomainErrorCode(t, err, "FORBIDDEN")

	listed, err := svc.ListUsers(ctx, staff)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	// Oldest registration first.
	require.Equal(t, alice.ID, listed[0].ID)
	require.Equal(t, bob.ID, listed[1].ID)
}

func TestAdminGetUserDetail(t *testing.T) {
	clock := newFakeClock()
	users := newFakeUserRepo(clock)
	orders := newFakeServiceOrderRepo(clock)
	svc := NewAdminService(users, orders)
	ctx := context.Background()

	alice := users.addUser("alice", false)
	staff := users.addUser("admin", true)

	detail, err := svc.GetUserDetail(ctx, staff, alice.ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, detail.User.ID)
	require.Empty(t, detail.Orders)

	_, err = svc.GetUserDetail(ctx, staff, "user-404")
	requireDomainErrorCode(t, err, "NOT_FOUND")
}
