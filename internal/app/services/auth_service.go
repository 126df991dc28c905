package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	"github.com/yigit/registro-academico/internal/app/repositories"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
	"github.com/yigit/registro-academico/internal/pkg/auth"
)

// invalidCredentialsMessage does not tell an unknown email from a wrong password
const invalidCredentialsMessage = "Correo o contraseña incorrectos"

// UserStore is the account persistence the auth flows need
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateWithProfile(ctx context.Context, user *models.User, teacher *models.Teacher, student *models.Student) error
}

// ProfileFinder looks up the teacher or student rows linked to an account
type ProfileFinder[T any] interface {
	Search(ctx context.Context, f repositories.Filter) ([]*T, error)
}

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) (bool, error)
}

// TokenIssuer signs and checks access tokens
type TokenIssuer interface {
	GenerateAccessToken(subject auth.TokenSubject) (string, int, error)
	ValidateToken(token string) (*auth.Claims, error)
}

// AuthService handles registration, login and token checks
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Profile(ctx context.Context, userID int64) (*dto.RegisterResult, error)
}

type authServiceImpl struct {
	users    UserStore
	teachers ProfileFinder[models.Teacher]
	students ProfileFinder[models.Student]
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   zerolog.Logger

	// dummyHash is verified against for unknown emails so both login
	// failures cost one hash verification.
	dummyHash string
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users UserStore,
	teachers ProfileFinder[models.Teacher],
	students ProfileFinder[models.Student],
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger zerolog.Logger,
) AuthService {
	dummy, err := hasher.Hash("registro-academico-sin-cuenta")
	if err != nil {
		logger.Error().Err(err).Msg("Could not prepare dummy password hash")
	}
	return &authServiceImpl{
		users:     users,
		teachers:  teachers,
		students:  students,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
		dummyHash: dummy,
	}
}

// Register creates the account and its optional profile. The request has
// already passed the registrar rules, so the email is free and the role is
// not administrador.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResult, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user := &models.User{Email: email, Password: hash, RoleID: req.RoleID}

	var (
		teacher *models.Teacher
		student *models.Student
	)
	switch req.Profile {
	case dto.ProfileTeacher:
		teacher = &models.Teacher{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Cedula:    strings.TrimSpace(req.Cedula),
			Email:     email,
			Phone:     strings.TrimSpace(req.Phone),
			Title:     strings.TrimSpace(req.Title),
		}
	case dto.ProfileStudent:
		student = &models.Student{
			CareerID:  req.CareerID,
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Cedula:    strings.TrimSpace(req.Cedula),
			Email:     email,
			Phone:     strings.TrimSpace(req.Phone),
		}
	}

	if err := s.users.CreateWithProfile(ctx, user, teacher, student); err != nil {
		return nil, mapStoreError(err, "el usuario", 0)
	}

	created, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload registered user: %w", err)
	}

	s.logger.Info().Int64("userID", created.ID).Str("role", created.RoleName).Msg("User registered")
	return &dto.RegisterResult{User: created, Teacher: teacher, Student: student}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_, _ = s.hasher.Verify(s.dummyHash, req.Password)
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, invalidCredentialsMessage)
		}
		return nil, fmt.Errorf("failed to load user for login: %w", err)
	}

	ok, err := s.hasher.Verify(user.Password, req.Password)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Stored password hash could not be verified")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, invalidCredentialsMessage)
	}
	if !ok {
		s.logger.Warn().Int64("userID", user.ID).Msg("Login failed: wrong password")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, invalidCredentialsMessage)
	}

	token, expiresIn, err := s.tokens.GenerateAccessToken(auth.TokenSubject{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.RoleName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}

// Authenticate validates a bearer token and loads the account it was issued
// for. A token of a deleted account is rejected.
func (s *authServiceImpl) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.NewCustomError(apperrors.ErrTokenExpired, "El token ha expirado")
		}
		return nil, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "Token inválido")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "Token inválido")
		}
		return nil, fmt.Errorf("failed to load token user: %w", err)
	}
	return user, nil
}

// Profile returns the account of userID together with its linked profile
func (s *authServiceImpl) Profile(ctx context.Context, userID int64) (*dto.RegisterResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err, "el usuario", userID)
	}

	byUser := repositories.Filter{Equals: map[string]any{"usuario_id": userID}}
	result := &dto.RegisterResult{User: user}

	switch user.RoleName {
	case models.RoleTeacher:
		teachers, err := s.teachers.Search(ctx, byUser)
		if err != nil {
			return nil, fmt.Errorf("failed to load teacher profile: %w", err)
		}
		if len(teachers) > 0 {
			result.Teacher = teachers[0]
		}
	case models.RoleStudent:
		students, err := s.students.Search(ctx, byUser)
		if err != nil {
			return nil, fmt.Errorf("failed to load student profile: %w", err)
		}
		if len(students) > 0 {
			result.Student = students[0]
		}
	}

	return result, nil
}
