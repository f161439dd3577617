// ================== internal/features/posts/handler.go ==================
package posts

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rverma-dev/inkwell/internal/pkg/response"
	apperrors "github.com/rverma-dev/inkwell/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List published posts
// @Description Get all published posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /posts [get]
func (h *Handler) List(c *gin.Context) {
	posts, err := h.repo.ListPublished(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to get posts")
		return
	}

	response.Success(c, posts)
}

// ListByUser godoc
// @Summary List a user's posts
// @Description Get all posts (drafts included) belonging to a user
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /posts/user/{userId} [get]
func (h *Handler) ListByUser(c *gin.Context) {
	posts, err := h.repo.ListByAuthor(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.DatabaseError(c, "Failed to get posts")
		return
	}

	response.Success(c, posts)
}

// GetBySlug godoc
// @Summary Get a post by slug
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{slug} [get]
func (h *Handler) GetBySlug(c *gin.Context) {
	post, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.DatabaseError(c, "Failed to get post")
		return
	}

	if post == nil {
		response.NotFound(c, "Post not found")
		return
	}

	response.Success(c, post)
}

// Create godoc
// @Summary Create a new post
// @Description Create a post with a unique slug derived from its title
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post creation data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /posts [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreatePostRequest(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	slug, err := GenerateUniqueSlug(req.Title, func(candidate string) (bool, error) {
		return h.repo.SlugExists(c.Request.Context(), candidate, primitive.NilObjectID)
	})
	if err != nil {
		response.InternalServerError(c, "Failed to generate slug")
		return
	}

	post := &Post{
		AuthorID:      userID,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Slug:          slug,
		Category:      req.Category,
		Tags:          SplitTags(req.Tags),
		FeaturedImage: req.FeaturedImage,
		Published:     req.Published,
	}

	if err := h.repo.Create(c.Request.Context(), post); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race between the uniqueness check and the insert
			response.Conflict(c, "A post with this slug already exists")
			return
		}
		response.DatabaseError(c, "Failed to create post")
		return
	}

	response.Created(c, post)
}

// Update godoc
// @Summary Update a post
// @Description Update an owned post; the slug is recomputed only when the title changes
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body UpdatePostRequest true "Post update data"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdatePostRequest(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	post, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid post ID")
			return
		}
		response.DatabaseError(c, "Failed to get post")
		return
	}
	if post == nil {
		response.NotFound(c, "Post not found")
		return
	}

	if post.AuthorID != userID {
		response.Forbidden(c, "Not authorized to update this post")
		return
	}

	update := bson.M{}

	// A changed title gets a fresh unique slug; the post's own slug is
	// excluded from the collision check.
	if req.Title != nil && *req.Title != post.Title {
		slug, err := GenerateUniqueSlug(*req.Title, func(candidate string) (bool, error) {
			return h.repo.SlugExists(c.Request.Context(), candidate, post.ID)
		})
		if err != nil {
			response.InternalServerError(c, "Failed to generate slug")
			return
		}
		update["slug"] = slug
	}

	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Excerpt != nil {
		update["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		update["content"] = *req.Content
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Tags != nil {
		update["tags"] = SplitTags(*req.Tags)
	}
	if req.FeaturedImage != nil {
		update["featuredImage"] = *req.FeaturedImage
	}
	if req.Published != nil {
		update["published"] = *req.Published
	}

	if len(update) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), post.ID, update); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.DatabaseError(c, "Failed to update post")
		return
	}

	updated, err := h.repo.GetByID(c.Request.Context(), post.ID.Hex())
	if err != nil || updated == nil {
		response.InternalServerError(c, "Failed to retrieve updated post")
		return
	}

	response.Success(c, updated)
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	post, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			response.BadRequest(c, "Invalid post ID")
			return
		}
		response.DatabaseError(c, "Failed to get post")
		return
	}
	if post == nil {
		response.NotFound(c, "Post not found")
		return
	}

	if post.AuthorID != userID {
		response.Forbidden(c, "Not authorized to delete this post")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), post.ID); err != nil {
		response.DatabaseError(c, "Failed to delete post")
		return
	}

	response.Success(c, map[string]string{"message": "Post deleted successfully"})
}
