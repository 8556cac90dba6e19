package api

import (
	"fmt"
	"log"
	"strings"

	"github.com/example/user-account-service/modules/users"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	usersPort users.UsersPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(usersPort users.UsersPort) *Handlers {
	return &Handlers{
		usersPort: usersPort,
	}
}

// Register handles user registration.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "Invalid request body",
		})
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "First name, last name, email and password are required",
		})
	}

	resp, err := h.usersPort.CreateUser(c.UserContext(), users.CreateUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		Status:  true,
		Message: "User created successfully",
		User:    toUserJSON(resp),
	})
}

// Login handles user login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "Email and password are required",
		})
	}

	resp, err := h.usersPort.Login(c.UserContext(), users.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		Status:      true,
		Message:     "Login successful",
		AccessToken: resp.AccessToken,
	})
}

// ListUsers handles paginated user listing. Missing or out-of-range query
// parameters fall back to page=1 and per_page=10.
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := c.QueryInt("per_page", 10)
	if perPage < 1 {
		perPage = 10
	}

	resp, err := h.usersPort.ListUsers(c.UserContext(), users.ListUsersRequest{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	userList := make([]UserJSON, 0, len(resp.Users))
	for _, u := range resp.Users {
		userList = append(userList, toUserJSON(u))
	}

	baseURL := c.BaseURL() + c.Path()
	var nextPage, prevPage *string
	if int64(page)*int64(perPage) < resp.Total {
		link := fmt.Sprintf("%s?page=%d&per_page=%d", baseURL, page+1, perPage)
		nextPage = &link
	}
	if page > 1 {
		link := fmt.Sprintf("%s?page=%d&per_page=%d", baseURL, page-1, perPage)
		prevPage = &link
	}

	return c.Status(fiber.StatusOK).JSON(UserListResponse{
		Status:   true,
		Message:  "Users retrieved successfully",
		Users:    userList,
		Page:     page,
		PerPage:  perPage,
		NextPage: nextPage,
		PrevPage: prevPage,
	})
}

// GetUser handles getting a single user by ID.
func (h *Handlers) GetUser(c *fiber.Ctx) error {
	user, err := h.usersPort.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(UserResponse{
		Status:  true,
		Message: "User fetched successfully",
		User: UserJSON{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	})
}

// UpdateUser handles updating a user's name fields. Fields absent from the
// body keep their current values.
func (h *Handlers) UpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "Invalid request body",
		})
	}

	resp, err := h.usersPort.UpdateUser(c.UserContext(), users.UpdateUserRequest{
		UserID:    c.Params("id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(UserResponse{
		Status:  true,
		Message: "User updated successfully",
		User:    toUserJSON(resp),
	})
}

// DeleteUser handles deleting a user by ID.
func (h *Handlers) DeleteUser(c *fiber.Ctx) error {
	if _, err := h.usersPort.DeleteUser(c.UserContext(), users.DeleteUserRequest{
		UserID: c.Params("id"),
	}); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Status:  true,
		Message: "User deleted successfully",
	})
}

// handleServiceError maps users-service errors to HTTP responses. The
// service container boundary erases error types, so known outcomes are
// matched by message; anything unrecognized becomes a generic 500.
func (h *Handlers) handleServiceError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "invalid email or password"):
		return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
			Status:  false,
			Message: "Invalid email or password",
		})
	case strings.Contains(errStr, "user with this email already exists"):
		return c.Status(fiber.StatusConflict).JSON(MessageResponse{
			Status:  false,
			Message: "Email already exists",
		})
	case strings.Contains(errStr, "user not found"):
		return c.Status(fiber.StatusNotFound).JSON(MessageResponse{
			Status:  false,
			Message: "User not found",
		})
	case strings.Contains(errStr, "invalid email format"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "Invalid email format",
		})
	case strings.Contains(errStr, "password must be at least"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "Password must be at least 5 characters",
		})
	case strings.Contains(errStr, "password must be at most"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "Password must be at most 72 characters",
		})
	case strings.Contains(errStr, "first name and last name are required"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "First name and last name are required",
		})
	case strings.Contains(errStr, "name must be at most"):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Status:  false,
			Message: "Name must be at most 80 characters",
		})
	default:
		// Log the actual error but don't expose it to the client
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse{
			Status:  false,
			Message: "An internal error occurred",
		})
	}
}

func toUserJSON(u users.UserReply) UserJSON {
	return UserJSON{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
