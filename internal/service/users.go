package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/auth"
	"github.com/emilythestrangee/videotube/backend/internal/models"
	"github.com/emilythestrangee/videotube/backend/internal/store"
)

type UserService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewUserService(users UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens}
}

var errInvalidCredentials = apperror.New(apperror.ErrUnauthorized, "invalid credentials")

// Register creates an account and signs the user in.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to hash password", err)
	}

	user := &models.User{
		Username:   strings.ToLower(strings.TrimSpace(req.Username)),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:   strings.TrimSpace(req.FullName),
		Password:   hashed,
		Avatar:     req.Avatar,
		CoverImage: req.CoverImage,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperror.New(apperror.ErrConflict, "user with this username or email already exists")
		}
		return nil, storeError(err, "user")
	}
	return s.signIn(user)
}

// Login checks a username or email and password pair.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, storeError(err, "user")
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, errInvalidCredentials
	}
	return s.signIn(user)
}

func (s *UserService) signIn(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to generate token", err)
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *UserService) Me(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "user")
	}
	return user, nil
}

// ChannelProfile returns a channel's public profile as seen by viewer.
func (s *UserService) ChannelProfile(ctx context.Context, username string, viewer uuid.UUID) (*models.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperror.MissingField("username")
	}
	channel, err := s.users.ChannelProfile(ctx, username, viewer)
	if err != nil {
		return nil, storeError(err, "channel")
	}
	return channel, nil
}
