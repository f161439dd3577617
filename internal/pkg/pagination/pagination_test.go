package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRequest_Defaults(t *testing.T) {
	req := FromRequest("", "")
	require.Equal(t, 1, req.Page)
	require.Equal(t, 50, req.Limit)
}

func TestFromRequest_ClampsInvalidValues(t *testing.T) {
	cases := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"0", "0", 1, 50},
		{"-3", "-1", 1, 50},
		{"abc", "xyz", 1, 50},
		{"2", "25", 2, 25},
	}

	for _, tc := range cases {
		req := FromRequest(tc.page, tc.limit)
		require.Equal(t, tc.wantPage, req.Page, "page=%q", tc.page)
		require.Equal(t, tc.wantLimit, req.Limit, "limit=%q", tc.limit)
	}
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, Request{Page: 1, Limit: 50}.Offset())
	require.Equal(t, 20, Request{Page: 3, Limit: 10}.Offset())
}
