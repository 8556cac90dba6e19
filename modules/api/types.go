package api

import "time"

// RegisterRequest represents a user registration request body.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest represents a user login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest represents an update request body. Only the name fields
// are accepted; email and password cannot be changed through this path.
type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserJSON is the wire representation of a user. It never includes the
// password hash.
type UserJSON struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageResponse is the bare response envelope.
type MessageResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// UserResponse is the envelope carrying a single user.
type UserResponse struct {
	Status  bool     `json:"status"`
	Message string   `json:"message"`
	User    UserJSON `json:"user"`
}

// LoginResponse is the envelope carrying an issued access token.
type LoginResponse struct {
	Status      bool   `json:"status"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// UserListResponse is the envelope carrying one page of users with
// navigation links.
type UserListResponse struct {
	Status   bool       `json:"status"`
	Message  string     `json:"message"`
	Users    []UserJSON `json:"users"`
	Page     int        `json:"page"`
	PerPage  int        `json:"per_page"`
	NextPage *string    `json:"next_page"`
	PrevPage *string    `json:"prev_page"`
}
