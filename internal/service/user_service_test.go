package service

import (
	"context"
	"errors"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/kvstore"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"strings"
	"testing"
)

func newUserService() (*UserService, *repository.UserRepository) {
	store := kvstore.NewMemory()
	users := repository.NewUserRepository(store)
	sessions := repository.NewSessionRepository(store)
	blocklist := NewBlocklistService(repository.NewBlocklistRepository(store), config.BlocklistConfig{})
	return NewUserService(users, sessions, blocklist, "/login.html"), users
}

func registration() *model.User {
	return &model.User{
		Name:     "Jo Lee",
		Email:    "jo@example.com",
		Password: "Abcdef1!",
		Role:     model.Student,
	}
}

func TestRegisterAssignsDefaults(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Register(context.Background(), registration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("no ID assigned")
	}
	if user.Wishlist == nil || len(user.Wishlist) != 0 {
		t.Fatalf("wishlist default: %#v", user.Wishlist)
	}
	if user.EnrolledCourses == nil || len(user.EnrolledCourses) != 0 {
		t.Fatalf("enrolledCourses default: %#v", user.EnrolledCourses)
	}
	if user.Password != "Abcdef1!" {
		t.Fatalf("password must be stored verbatim, got %q", user.Password)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, registration()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// same email, different case and padding
	dup := registration()
	dup.Name = "Jo Two"
	dup.Email = " JO@Example.com "
	_, err := svc.Register(ctx, dup)
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("want ErrEmailRegistered, got %v", err)
	}
	if len(users.All(ctx)) != 1 {
		t.Fatalf("duplicate must not be stored")
	}
}

func TestRegisterInvalidInput(t *testing.T) {
	svc, _ := newUserService()
	bad := registration()
	bad.Password = "weak"
	_, err := svc.Register(context.Background(), bad)
	if !util.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestRegisterBlockedDomain(t *testing.T) {
	svc, _ := newUserService()
	blocked := registration()
	blocked.Email = "jo@mailinator.com"
	_, err := svc.Register(context.Background(), blocked)
	if !util.IsValidation(err) || !strings.Contains(err.Error(), "@mailinator.com") {
		t.Fatalf("want blocked-domain validation error, got %v", err)
	}
}

func TestLoginErrors(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Login(ctx, "jo@example.com", "Abcdef1!"); !errors.Is(err, util.ErrNoAccount) {
		t.Fatalf("want ErrNoAccount, got %v", err)
	}

	if _, err := svc.Register(ctx, registration()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, "jo@example.com", "wrong"); !errors.Is(err, util.ErrIncorrectPassword) {
		t.Fatalf("want ErrIncorrectPassword, got %v", err)
	}
}

func TestLoginSetsSessionAndGetLoggedInTracksEdits(t *testing.T) {
	svc, users := newUserService()
	ctx := context.Background()

	created, err := svc.Register(ctx, registration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := svc.Login(ctx, " JO@example.com ", "Abcdef1!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("login returned wrong user")
	}

	// edit the record behind the session's back
	all := users.All(ctx)
	all[0].Name = "Josephine Lee"
	if err := users.SaveAll(ctx, all); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	live, ok := svc.GetLoggedIn(ctx)
	if !ok {
		t.Fatalf("GetLoggedIn: no user")
	}
	if live.Name != "Josephine Lee" {
		t.Fatalf("session must resolve the live record, got %q", live.Name)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, registration()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, "jo@example.com", "Abcdef1!"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	redirect, err := svc.Logout(ctx)
	if err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if redirect != "/login.html" {
		t.Fatalf("redirect: %q", redirect)
	}
	if _, ok := svc.GetLoggedIn(ctx); ok {
		t.Fatalf("session survived logout")
	}
}
