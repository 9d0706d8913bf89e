package service

import (
	"context"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/internal/validator"
	"learnhub_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

type UserService struct {
	users     *repository.UserRepository
	sessions  *repository.SessionRepository
	blocklist *BlocklistService
	loginPath string
}

func NewUserService(users *repository.UserRepository, sessions *repository.SessionRepository, blocklist *BlocklistService, loginPath string) *UserService {
	return &UserService{
		users:     users,
		sessions:  sessions,
		blocklist: blocklist,
		loginPath: loginPath,
	}
}

// Register validates the candidate (normalizing name and email), rejects
// duplicate emails, fills the empty wishlist/enrollment defaults and
// persists the new user.
func (s *UserService) Register(ctx context.Context, input *model.User) (*model.User, error) {
	if msg := validator.User(input, func(domain string) bool {
		return s.blocklist.IsBlocked(ctx, domain)
	}); msg != "" {
		return nil, util.Invalid(msg)
	}

	if _, exists := s.users.FindByEmail(ctx, input.Email); exists {
		return nil, util.ErrEmailRegistered
	}

	input.ID = 0
	input.Wishlist = []int64{}
	input.EnrolledCourses = []model.Enrollment{}

	user, err := s.users.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("user registered", zap.Int64("id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// Login matches email (normalized) and verbatim password, distinguishing
// an unknown account from a wrong password. A match becomes the current
// session.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, ok := s.users.FindByEmail(ctx, email)
	if !ok {
		return nil, util.ErrNoAccount
	}
	if user.Password != password {
		return nil, util.ErrIncorrectPassword
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetLoggedIn re-resolves the session pointer against the users table so
// edits made since login are reflected. A dangling pointer yields no
// user.
func (s *UserService) GetLoggedIn(ctx context.Context) (*model.User, bool) {
	session, ok := s.sessions.Get(ctx)
	if !ok {
		return nil, false
	}
	return s.users.FindByID(ctx, session.ID)
}

// Logout clears the session pointer and returns the login entry point;
// navigation is the caller's concern.
func (s *UserService) Logout(ctx context.Context) (string, error) {
	if err := s.sessions.Clear(ctx); err != nil {
		return "", err
	}
	return s.loginPath, nil
}
