package services

import (
	"context"

	"github.com/blognest/backend/auth"
	"github.com/blognest/backend/database"
	"github.com/blognest/backend/errs"
	"github.com/blognest/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SignupInput carries the fields for registering a new account.
type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	PasswordConfirm string
}

// UserService handles account registration and credential checks.
type UserService struct {
	users  database.UserStore
	logger zerolog.Logger
}

func NewUserService(users database.UserStore) *UserService {
	return &UserService{
		users:  users,
		logger: log.With().Str("service", "user").Logger(),
	}
}

// Signup registers a new user. The password is hashed before it is stored
// and the plaintext is discarded.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	if len(input.Password) < 8 {
		return nil, errs.NewInvalidFieldError("password", "should contain at least 8 characters")
	}
	if input.Password != input.PasswordConfirm {
		return nil, errs.NewInvalidFieldError("passwordConfirm", "passwords are not the same")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, errs.NewInvalidFieldError("password", err.Error())
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hash,
	}

	if err := user.Validate(); err != nil {
		return nil, errs.NewValidationError("user", err)
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("user")
	}

	if err := s.users.Add(ctx, user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}

	s.logger.Info().Str("userID", user.ID.String()).Msg("user signed up")
	return user, nil
}

// Login checks the given credentials and returns the matching user.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewUnauthorizedError("incorrect email or password")
	}

	if err := auth.CheckPassword(user.Password, password); err != nil {
		return nil, errs.NewUnauthorizedError("incorrect email or password")
	}
	return user, nil
}

// GetByID returns one user.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewNotFoundError("no user found with that ID")
	}
	return user, nil
}
