package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/corporation/identity-api/internal/core/domain"
	"github.com/corporation/identity-api/internal/core/ports"
)

func newTestUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, zerolog.Nop())
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:       "new@corporation.com",
		FirstName:   "New",
		LastName:    "Hire",
		Role:        domain.RoleSimpleMortal,
		IsActive:    true,
		RawPassword: "S3cret!pass",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "S3cret!pass" || user.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", user.PasswordHash)
	}
	if !CheckPassword("S3cret!pass", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.LastLogin != nil {
		t.Fatalf("fresh user must have no last login")
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	input := ports.CreateUserInput{
		Email:       "a@b.com",
		FirstName:   "First",
		LastName:    "User",
		Role:        domain.RoleDeveloper,
		IsActive:    true,
		RawPassword: "S3cret!pass",
	}
	first, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input.FirstName = "Second"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// The first record is untouched.
	stored, err := repo.FindByEmail(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.FirstName != first.FirstName {
		t.Fatalf("original record mutated by failed insert: %+v", stored)
	}
}

func TestUserService_Update_MergesFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	user := seedUser(t, repo, "old@corporation.com", "S3cret!pass", domain.RoleSimpleMortal, true)
	originalHash := user.PasswordHash

	firstName := "Renamed"
	role := domain.RoleDeveloper
	updated, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{
		FirstName: &firstName,
		Role:      &role,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FirstName != "Renamed" || updated.Role != domain.RoleDeveloper {
		t.Fatalf("fields not merged: %+v", updated)
	}
	if updated.Email != "old@corporation.com" || !updated.IsActive {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	stored, err := repo.FindByEmail(context.Background(), "old@corporation.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.PasswordHash != originalHash {
		t.Fatalf("password hash changed by generic update")
	}
}

func TestUserService_Update_EmptyIsNoOp(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	user := seedUser(t, repo, "old@corporation.com", "S3cret!pass", domain.RoleSimpleMortal, true)

	updated, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{})
	if err != nil {
		t.Fatalf("empty update failed: %v", err)
	}
	if updated.Email != user.Email {
		t.Fatalf("unexpected record: %+v", updated)
	}
}

func TestUserService_Update_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	name := "x"
	if _, err := svc.Update(context.Background(), "missing", ports.UserUpdate{FirstName: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_ReturnsRecord(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	user := seedUser(t, repo, "bye@corporation.com", "S3cret!pass", domain.RoleSimpleMortal, true)

	deleted, err := svc.Delete(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.Email != "bye@corporation.com" {
		t.Fatalf("unexpected record returned: %+v", deleted)
	}

	if _, err := repo.FindByEmail(context.Background(), "bye@corporation.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("record still present after delete")
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	seedUser(t, repo, "one@corporation.com", "S3cret!pass", domain.RoleAdmin, true)
	seedUser(t, repo, "two@corporation.com", "S3cret!pass", domain.RoleDeveloper, true)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
