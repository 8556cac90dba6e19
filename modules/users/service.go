package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	domain "github.com/example/user-account-service/domain/user"
	"github.com/google/uuid"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 5
	// MaxPasswordLength is bcrypt's input limit.
	MaxPasswordLength = 72
	// MaxNameLength bounds the first and last name fields.
	MaxNameLength = 80
)

var (
	// ErrInvalidCredentials is returned when login credentials are invalid.
	// The same error covers an unknown email and a wrong password so the
	// login path cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidEmail is returned when email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned when the password is too short.
	ErrWeakPassword = errors.New("password must be at least 5 characters")
	// ErrPasswordTooLong is returned when password exceeds bcrypt's 72-byte limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
	// ErrMissingName is returned when a name field is empty.
	ErrMissingName = errors.New("first name and last name are required")
	// ErrNameTooLong is returned when a name field exceeds the length limit.
	ErrNameTooLong = errors.New("name must be at most 80 characters")
)

// UserService handles user-account business logic.
type UserService struct {
	repo   *UserRepository
	hasher *PasswordHasher
	jwt    *JWTManager
}

// NewUserService creates a new UserService.
func NewUserService(repo *UserRepository, hasher *PasswordHasher, jwt *JWTManager) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user account. The plaintext password is hashed
// before anything is persisted and is never stored or returned.
func (s *UserService) Register(_ context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	if err := validateName(firstName); err != nil {
		return nil, err
	}
	if err := validateName(lastName); err != nil {
		return nil, err
	}

	// Validate email using standard library
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	// Validate password length (bcrypt has 72-byte limit)
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if len(password) > MaxPasswordLength {
		return nil, ErrPasswordTooLong
	}

	// Check if user already exists
	exists, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// Hash password
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the credentials and returns a signed access token.
func (s *UserService) Authenticate(_ context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

// ValidateToken validates an access token and returns the asserted identity.
func (s *UserService) ValidateToken(_ context.Context, token string) (*domain.Claims, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return nil, err
	}

	return &domain.Claims{
		UserID: claims.UserID,
	}, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(_ context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(userID)
}

// List returns one page of users and the total user count. Out-of-range
// parameters fall back to page 1 and a page size of 10.
func (s *UserService) List(_ context.Context, page, perPage int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.repo.List(page, perPage)
}

// Update changes the name fields of an existing user and refreshes the
// update timestamp. Only provided (non-empty) fields are applied; an absent
// field keeps its current value. Email and password are immutable through
// this path.
func (s *UserService) Update(_ context.Context, userID, firstName, lastName string) (*domain.User, error) {
	if firstName != "" {
		if err := validateName(firstName); err != nil {
			return nil, err
		}
	}
	if lastName != "" {
		if err := validateName(lastName); err != nil {
			return nil, err
		}
	}

	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user by ID.
func (s *UserService) Delete(_ context.Context, userID string) error {
	return s.repo.Delete(userID)
}

func validateName(name string) error {
	if name == "" {
		return ErrMissingName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
