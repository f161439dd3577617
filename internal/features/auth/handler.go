// ================== internal/features/auth/handler.go ==================
package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rverma-dev/inkwell/internal/config"
	"github.com/rverma-dev/inkwell/internal/pkg/response"
	"github.com/rverma-dev/inkwell/internal/pkg/token"
	apperrors "github.com/rverma-dev/inkwell/pkg/errors"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{repo: repo, cfg: cfg}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegisterRequest(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		response.InternalServerError(c, "Failed to create account")
		return
	}

	user := &User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "An account with this email already exists")
			return
		}
		response.DatabaseError(c, "Failed to create account")
		return
	}

	tok, err := token.GenerateToken(user.ID.Hex(), user.Email, h.cfg.JWTSecret, h.cfg.JWTExpireHours)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.Created(c, AuthResponse{User: user, Token: tok})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.DatabaseError(c, "Failed to look up account")
		return
	}

	if user == nil || !VerifyPassword(req.Password, user.PasswordHash) {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	tok, err := token.GenerateToken(user.ID.Hex(), user.Email, h.cfg.JWTSecret, h.cfg.JWTExpireHours)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.Success(c, AuthResponse{User: user, Token: tok})
}

// GetMe godoc
// @Summary Get the authenticated account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.DatabaseError(c, "Failed to look up account")
		return
	}
	if user == nil {
		response.NotFound(c, "Account not found")
		return
	}

	response.Success(c, user)
}

// UpdateProfile godoc
// @Summary Update the authenticated account's profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /auth/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateProfileRequest(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Bio != "" {
		update["bio"] = req.Bio
	}
	if req.AvatarURL != "" {
		update["avatarUrl"] = req.AvatarURL
	}

	if len(update) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.UpdateProfile(c.Request.Context(), userID, update); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Account not found")
			return
		}
		response.DatabaseError(c, "Failed to update profile")
		return
	}

	user, err := h.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		response.InternalServerError(c, "Failed to retrieve updated profile")
		return
	}

	response.Success(c, user)
}
