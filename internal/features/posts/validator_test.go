package posts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreatePostRequest(t *testing.T) {
	valid := CreatePostRequest{Title: "Why Go", Excerpt: "Short", Content: "Body"}
	require.NoError(t, ValidateCreatePostRequest(&valid))

	cases := []struct {
		name   string
		mutate func(*CreatePostRequest)
	}{
		{"empty title", func(r *CreatePostRequest) { r.Title = "   " }},
		{"long title", func(r *CreatePostRequest) { r.Title = strings.Repeat("a", 201) }},
		{"empty excerpt", func(r *CreatePostRequest) { r.Excerpt = "" }},
		{"long excerpt", func(r *CreatePostRequest) { r.Excerpt = strings.Repeat("a", 301) }},
		{"empty content", func(r *CreatePostRequest) { r.Content = " " }},
		{"bad image url", func(r *CreatePostRequest) { r.FeaturedImage = "not-a-url" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			assert.Error(t, ValidateCreatePostRequest(&req))
		})
	}
}

func TestValidateFeaturedImage_OptionalAndChecked(t *testing.T) {
	assert.NoError(t, ValidateFeaturedImage(""))
	assert.NoError(t, ValidateFeaturedImage("https://example.com/cover.png"))
	assert.Error(t, ValidateFeaturedImage("ftp://example.com/cover.png"))
	assert.Error(t, ValidateFeaturedImage("https://"))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"go", "backend"}, SplitTags("go, backend"))
	assert.Equal(t, []string{"one"}, SplitTags(" one ,, "))
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{}, SplitTags(" , ,"))
}
