package users

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/user-account-service/config"
	domain "github.com/example/user-account-service/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// UsersModule provides the user-account services: registration, login,
// token validation and user CRUD.
type UsersModule struct {
	cfg     config.Config
	db      *gorm.DB
	service *UserService
}

// Compile-time interface checks.
var _ mono.Module = (*UsersModule)(nil)
var _ mono.ServiceProviderModule = (*UsersModule)(nil)
var _ mono.HealthCheckableModule = (*UsersModule)(nil)

// NewModule creates a new UsersModule with the given configuration.
func NewModule(cfg config.Config) *UsersModule {
	return &UsersModule{
		cfg: cfg,
	}
}

// Name returns the module name.
func (m *UsersModule) Name() string {
	return "users"
}

// Start initializes the users module.
func (m *UsersModule) Start(_ context.Context) error {
	// Initialize SQLite database with GORM. TranslateError maps the
	// driver's unique-constraint violations to gorm.ErrDuplicatedKey.
	db, err := gorm.Open(sqlite.Open(m.cfg.DBPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	// Auto-migrate the User schema
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := NewUserRepository(db)
	hasher := NewPasswordHasher()
	jwtManager := NewJWTManager(JWTConfig{
		SecretKey:     m.cfg.JWTSecret,
		TokenDuration: m.cfg.AccessTokenTTL,
		Issuer:        m.cfg.JWTIssuer,
	})

	m.service = NewUserService(repo, hasher, jwtManager)

	log.Printf("[users] Module started (database: %s)", m.cfg.DBPath)
	return nil
}

// Stop shuts down the module.
func (m *UsersModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[users] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *UsersModule) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.cfg.DBPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *UsersModule) RegisterServices(container mono.ServiceContainer) error {
	services := []struct {
		name     string
		register func() error
	}{
		{"create-user", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "create-user", json.Unmarshal, json.Marshal, m.handleCreateUser)
		}},
		{"login", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "login", json.Unmarshal, json.Marshal, m.handleLogin)
		}},
		{"validate-token", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "validate-token", json.Unmarshal, json.Marshal, m.handleValidateToken)
		}},
		{"get-user", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "get-user", json.Unmarshal, json.Marshal, m.handleGetUser)
		}},
		{"list-users", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "list-users", json.Unmarshal, json.Marshal, m.handleListUsers)
		}},
		{"update-user", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "update-user", json.Unmarshal, json.Marshal, m.handleUpdateUser)
		}},
		{"delete-user", func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "delete-user", json.Unmarshal, json.Marshal, m.handleDeleteUser)
		}},
	}

	for _, s := range services {
		if err := s.register(); err != nil {
			return fmt.Errorf("failed to register %s service: %w", s.name, err)
		}
	}

	log.Printf("[users] Registered services: create-user, login, validate-token, get-user, list-users, update-user, delete-user")
	return nil
}

// handleCreateUser handles user registration.
func (m *UsersModule) handleCreateUser(ctx context.Context, req CreateUserRequest, _ *mono.Msg) (UserReply, error) {
	user, err := m.service.Register(ctx, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return UserReply{}, err
	}
	return toUserReply(user), nil
}

// handleLogin handles user login.
func (m *UsersModule) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (LoginReply, error) {
	token, err := m.service.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return LoginReply{}, err
	}
	return LoginReply{AccessToken: token}, nil
}

// handleValidateToken handles token validation.
func (m *UsersModule) handleValidateToken(ctx context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenReply, error) {
	claims, err := m.service.ValidateToken(ctx, req.Token)
	if err != nil {
		return ValidateTokenReply{
			Valid: false,
			Error: tokenErrorReason(err),
		}, nil // Return reply, not error, for validation failures
	}

	return ValidateTokenReply{
		Valid:  true,
		UserID: claims.UserID,
	}, nil
}

// handleGetUser handles get user requests.
func (m *UsersModule) handleGetUser(ctx context.Context, req GetUserRequest, _ *mono.Msg) (UserReply, error) {
	user, err := m.service.Get(ctx, req.UserID)
	if err != nil {
		return UserReply{}, err
	}
	return toUserReply(user), nil
}

// handleListUsers handles paginated list requests.
func (m *UsersModule) handleListUsers(ctx context.Context, req ListUsersRequest, _ *mono.Msg) (ListUsersReply, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 {
		perPage = 10
	}

	users, total, err := m.service.List(ctx, page, perPage)
	if err != nil {
		return ListUsersReply{}, err
	}

	replies := make([]UserReply, 0, len(users))
	for i := range users {
		replies = append(replies, toUserReply(&users[i]))
	}

	return ListUsersReply{
		Users:   replies,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// handleUpdateUser handles name updates.
func (m *UsersModule) handleUpdateUser(ctx context.Context, req UpdateUserRequest, _ *mono.Msg) (UserReply, error) {
	user, err := m.service.Update(ctx, req.UserID, req.FirstName, req.LastName)
	if err != nil {
		return UserReply{}, err
	}
	return toUserReply(user), nil
}

// handleDeleteUser handles delete requests.
func (m *UsersModule) handleDeleteUser(ctx context.Context, req DeleteUserRequest, _ *mono.Msg) (DeleteUserReply, error) {
	if err := m.service.Delete(ctx, req.UserID); err != nil {
		return DeleteUserReply{}, err
	}
	return DeleteUserReply{Deleted: true}, nil
}

func toUserReply(user *domain.User) UserReply {
	return UserReply{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
