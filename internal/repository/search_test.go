package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{name: "plain text untouched", query: "banner design", want: "banner design"},
		{name: "percent escaped", query: "100% cotton", want: `100\% cotton`},
		{name: "underscore escaped", query: "ad_campaign", want: `ad\_campaign`},
		{name: "backslash escaped first", query: `C:\media`, want: `C:\\media`},
		{name: "mixed metacharacters", query: `50%_off\`, want: `50\%\_off\\`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, escapeLike(tc.query))
		})
	}
}
