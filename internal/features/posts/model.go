// ================== internal/features/posts/model.go ==================
package posts

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a blog post
// @Description Blog post with a unique URL slug
type Post struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	AuthorID      string             `bson:"author" json:"author" example:"507f1f77bcf86cd799439011"`
	Title         string             `bson:"title" json:"title" example:"Why Go"`
	Excerpt       string             `bson:"excerpt" json:"excerpt" example:"A short summary"`
	Content       string             `bson:"content" json:"content"`
	Slug          string             `bson:"slug" json:"slug" example:"why-go"`
	Category      string             `bson:"category,omitempty" json:"category,omitempty" example:"engineering"`
	Tags          []string           `bson:"tags" json:"tags" example:"go,backend"`
	FeaturedImage string             `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Published     bool               `bson:"published" json:"published" example:"false"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreatePostRequest represents post creation data. Tags arrive as a single
// comma-separated string, matching the editor form.
type CreatePostRequest struct {
	Title         string `json:"title" binding:"required" example:"Why Go"`
	Excerpt       string `json:"excerpt" binding:"required" example:"A short summary"`
	Content       string `json:"content" binding:"required"`
	Category      string `json:"category" example:"engineering"`
	Tags          string `json:"tags" example:"go, backend"`
	FeaturedImage string `json:"featuredImage" example:"https://example.com/cover.png"`
	Published     bool   `json:"published" example:"false"`
}

// UpdatePostRequest represents post update data; nil fields are left untouched
type UpdatePostRequest struct {
	Title         *string `json:"title"`
	Excerpt       *string `json:"excerpt"`
	Content       *string `json:"content"`
	Category      *string `json:"category"`
	Tags          *string `json:"tags"`
	FeaturedImage *string `json:"featuredImage"`
	Published     *bool   `json:"published"`
}
