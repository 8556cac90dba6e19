package users

import (
	"errors"
	"fmt"
	"testing"
	"time"

	domain "github.com/example/user-account-service/domain/user"
	"github.com/google/uuid"
)

func seedUser(t *testing.T, repo *UserRepository, email string, createdAt time.Time) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "$2a$12$fakehashfakehashfakehash",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create(%s) error = %v", email, err)
	}
	return user
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	now := time.Now()
	seedUser(t, repo, "john@example.com", now)

	dup := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    "Other",
		LastName:     "User",
		Email:        "john@example.com",
		PasswordHash: "$2a$12$otherhashotherhashother",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(dup); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Create() with duplicate email error = %v, want ErrEmailTaken", err)
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	seeded := seedUser(t, repo, "john@example.com", time.Now())

	found, err := repo.FindByEmail("john@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if found.ID != seeded.ID {
		t.Errorf("FindByEmail() ID = %v, want %v", found.ID, seeded.ID)
	}

	if _, err := repo.FindByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("FindByEmail() for unknown email error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_List_NewestFirst(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedUser(t, repo, fmt.Sprintf("user%d@example.com", i), base.Add(time.Duration(i)*time.Minute))
	}

	listed, total, err := repo.List(1, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 5 {
		t.Errorf("List() total = %d, want 5", total)
	}
	if len(listed) != 5 {
		t.Fatalf("List() returned %d users, want 5", len(listed))
	}

	for i := 1; i < len(listed); i++ {
		if listed[i].CreatedAt.After(listed[i-1].CreatedAt) {
			t.Errorf("List() not ordered newest first at index %d", i)
		}
	}
	if listed[0].Email != "user4@example.com" {
		t.Errorf("List() first user = %s, want user4@example.com", listed[0].Email)
	}
}

func TestUserRepository_List_Pages(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		seedUser(t, repo, fmt.Sprintf("user%d@example.com", i), base.Add(time.Duration(i)*time.Minute))
	}

	page1, total, err := repo.List(1, 3)
	if err != nil {
		t.Fatalf("List(1, 3) error = %v", err)
	}
	if total != 7 {
		t.Errorf("total = %d, want 7", total)
	}
	if len(page1) != 3 {
		t.Errorf("page 1 has %d users, want 3", len(page1))
	}

	page3, _, err := repo.List(3, 3)
	if err != nil {
		t.Fatalf("List(3, 3) error = %v", err)
	}
	if len(page3) != 1 {
		t.Errorf("page 3 has %d users, want 1", len(page3))
	}

	beyond, _, err := repo.List(4, 3)
	if err != nil {
		t.Fatalf("List(4, 3) error = %v", err)
	}
	if len(beyond) != 0 {
		t.Errorf("page beyond the end has %d users, want 0", len(beyond))
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	seeded := seedUser(t, repo, "john@example.com", time.Now())

	if err := repo.Delete(seeded.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(seeded.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrUserNotFound", err)
	}

	if err := repo.Delete("no-such-id"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Delete() of unknown id error = %v, want ErrUserNotFound", err)
	}
}
