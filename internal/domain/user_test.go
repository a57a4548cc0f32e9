package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		name string
		user User
		want string
	}{
		{name: "both parts", user: User{FirstName: "Jane", LastName: "Doe"}, want: "Jane Doe"},
		{name: "first only", user: User{FirstName: "Jane"}, want: "Jane"},
		{name: "last only", user: User{LastName: "Doe"}, want: "Doe"},
		{name: "neither", user: User{}, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.user.FullName())
		})
	}
}
