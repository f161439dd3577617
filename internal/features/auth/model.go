// ================== internal/features/auth/model.go ==================
package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account
// @Description Registered user account
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Name         string             `bson:"name" json:"name" example:"Jane Doe"`
	Email        string             `bson:"email" json:"email" example:"jane@example.com"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Bio          string             `bson:"bio" json:"bio,omitempty"`
	AvatarURL    string             `bson:"avatarUrl" json:"avatarUrl,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest represents the payload for account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"hunter22"`
}

// LoginRequest represents the payload for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"hunter22"`
}

// UpdateProfileRequest represents the payload for updating the profile
type UpdateProfileRequest struct {
	Name      string `json:"name" example:"Jane D."`
	Bio       string `json:"bio" example:"Writes about Go"`
	AvatarURL string `json:"avatarUrl" example:"https://example.com/a.png"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
