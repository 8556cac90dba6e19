package users

import (
	"errors"
	"time"
)

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// UserReply represents a single user in service replies. It never carries
// the password hash.
type UserReply struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginReply represents a successful login with an issued access token.
type LoginReply struct {
	AccessToken string `json:"access_token"`
}

// ValidateTokenRequest represents a token validation request.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// Token validation failure reasons carried in ValidateTokenReply.Error.
// Both sides of the container boundary must agree on these strings.
const (
	TokenErrorExpired = "token expired"
	TokenErrorInvalid = "invalid token"
)

// ValidateTokenReply represents a token validation result. Validation
// failures are carried in the reply, not as transport errors, so callers
// can tell an expired token from an invalid one.
type ValidateTokenReply struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// tokenErrorReason encodes a token validation error as a reply reason.
func tokenErrorReason(err error) string {
	if errors.Is(err, ErrExpiredToken) {
		return TokenErrorExpired
	}
	return TokenErrorInvalid
}

// tokenValidationError decodes a reply reason back into its sentinel error.
func tokenValidationError(reason string) error {
	if reason == TokenErrorExpired {
		return ErrExpiredToken
	}
	return ErrInvalidToken
}

// GetUserRequest represents a get user request.
type GetUserRequest struct {
	UserID string `json:"user_id"`
}

// ListUsersRequest represents a paginated list request.
type ListUsersRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// ListUsersReply represents one page of users.
type ListUsersReply struct {
	Users   []UserReply `json:"users"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// UpdateUserRequest represents an update to a user's name fields.
type UpdateUserRequest struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DeleteUserRequest represents a delete user request.
type DeleteUserRequest struct {
	UserID string `json:"user_id"`
}

// DeleteUserReply represents a delete user result.
type DeleteUserReply struct {
	Deleted bool `json:"deleted"`
}
