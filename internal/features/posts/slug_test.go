package posts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"My App 2.0", "my-app-20"},
		{"already-a-slug", "already-a-slug"},
		{"--Leading--And--Trailing--", "leading-and-trailing"},
		{"CamelCase Title", "camelcase-title"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"100% Go", "100-go"},
		{"!!!", "untitled"},
		{"", "untitled"},
		{"日本語", "untitled"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeSlug(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeSlug_Idempotent(t *testing.T) {
	inputs := []string{"Hello, World!", "  Multiple   Spaces  ", "My App 2.0", "!!!", "a - b - c"}
	for _, in := range inputs {
		once := NormalizeSlug(in)
		require.Equal(t, once, NormalizeSlug(once), "input %q", in)
	}
}

func TestGenerateUniqueSlug_NoCollision(t *testing.T) {
	slug, err := GenerateUniqueSlug("My Post", func(string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, "my-post", slug)
}

func TestGenerateUniqueSlug_ResolvesCollisions(t *testing.T) {
	taken := map[string]bool{"my-post": true, "my-post-1": true}
	var probed []string

	slug, err := GenerateUniqueSlug("My Post", func(candidate string) (bool, error) {
		probed = append(probed, candidate)
		return taken[candidate], nil
	})
	require.NoError(t, err)
	require.Equal(t, "my-post-2", slug)
	require.Equal(t, []string{"my-post", "my-post-1", "my-post-2"}, probed)
}

func TestGenerateUniqueSlug_PropagatesLookupError(t *testing.T) {
	wantErr := assertError{}
	_, err := GenerateUniqueSlug("My Post", func(string) (bool, error) {
		return false, wantErr
	})
	require.ErrorIs(t, err, wantErr)
}

func TestGenerateUniqueSlug_Exhaustion(t *testing.T) {
	_, err := GenerateUniqueSlug("My Post", func(string) (bool, error) {
		return true, nil
	})
	require.ErrorIs(t, err, ErrSlugExhausted)
}

type assertError struct{}

func (assertError) Error() string { return "lookup failed" }
