package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	domain "github.com/example/user-account-service/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// UsersPort defines the interface for user operations other modules use.
// The API module serves every endpoint through it and the request gate
// uses ValidateToken and GetUser to resolve identities.
type UsersPort interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserReply, error)
	Login(ctx context.Context, req LoginRequest) (LoginReply, error)
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, req ListUsersRequest) (ListUsersReply, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserReply, error)
	DeleteUser(ctx context.Context, req DeleteUserRequest) (DeleteUserReply, error)
}

// UsersAdapter implements UsersPort using the service container.
type UsersAdapter struct {
	container mono.ServiceContainer
}

// NewUsersAdapter creates a new UsersAdapter.
func NewUsersAdapter(container mono.ServiceContainer) *UsersAdapter {
	return &UsersAdapter{
		container: container,
	}
}

// CreateUser registers a new user account.
func (a *UsersAdapter) CreateUser(ctx context.Context, req CreateUserRequest) (UserReply, error) {
	var resp UserReply
	if err := call(ctx, a, "create-user", &req, &resp); err != nil {
		return UserReply{}, err
	}
	return resp, nil
}

// Login authenticates a user and returns an access token.
func (a *UsersAdapter) Login(ctx context.Context, req LoginRequest) (LoginReply, error) {
	var resp LoginReply
	if err := call(ctx, a, "login", &req, &resp); err != nil {
		return LoginReply{}, err
	}
	return resp, nil
}

// ValidateToken validates an access token and returns the asserted identity.
// An expired token is reported as ErrExpiredToken, anything else that fails
// validation as ErrInvalidToken.
func (a *UsersAdapter) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	req := ValidateTokenRequest{Token: token}
	var resp ValidateTokenReply

	if err := call(ctx, a, "validate-token", &req, &resp); err != nil {
		return nil, err
	}

	if !resp.Valid {
		return nil, tokenValidationError(resp.Error)
	}

	return &domain.Claims{
		UserID: resp.UserID,
	}, nil
}

// GetUser retrieves a user by ID. A missing user is reported as
// ErrUserNotFound.
func (a *UsersAdapter) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	req := GetUserRequest{UserID: userID}
	var resp UserReply

	if err := call(ctx, a, "get-user", &req, &resp); err != nil {
		// The container boundary erases error types, so match the message.
		if strings.Contains(err.Error(), ErrUserNotFound.Error()) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &domain.User{
		ID:        resp.ID,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}, nil
}

// ListUsers returns one page of users.
func (a *UsersAdapter) ListUsers(ctx context.Context, req ListUsersRequest) (ListUsersReply, error) {
	var resp ListUsersReply
	if err := call(ctx, a, "list-users", &req, &resp); err != nil {
		return ListUsersReply{}, err
	}
	return resp, nil
}

// UpdateUser updates a user's name fields.
func (a *UsersAdapter) UpdateUser(ctx context.Context, req UpdateUserRequest) (UserReply, error) {
	var resp UserReply
	if err := call(ctx, a, "update-user", &req, &resp); err != nil {
		return UserReply{}, err
	}
	return resp, nil
}

// DeleteUser removes a user by ID.
func (a *UsersAdapter) DeleteUser(ctx context.Context, req DeleteUserRequest) (DeleteUserReply, error) {
	var resp DeleteUserReply
	if err := call(ctx, a, "delete-user", &req, &resp); err != nil {
		return DeleteUserReply{}, err
	}
	return resp, nil
}

// call performs a JSON request-reply round trip through the container.
func call[T1 any, T2 any](ctx context.Context, a *UsersAdapter, service string, req T1, resp *T2) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	); err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	return nil
}
