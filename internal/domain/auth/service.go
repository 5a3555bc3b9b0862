package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"minipos/internal/core/apperror"
	"minipos/internal/core/id"
	"minipos/internal/core/tx"
	"minipos/pkg/logger"
)

// Service provides authentication operations.
type Service struct {
	repo      Repository
	jwt       *JWTService
	txManager tx.Manager
}

// NewService creates a new auth service.
func NewService(repo Repository, jwtService *JWTService, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		jwt:       jwtService,
		txManager: txManager,
	}
}

// Login authenticates credentials and issues an access token.
// The same error is returned for an unknown email and a wrong password
// so the endpoint does not leak which emails exist.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, apperror.NewValidation("email and password are required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	user.RecordLogin()
	if err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, user)
	}); err != nil {
		// The login itself succeeded; a failed last-login stamp is not
		// worth failing the request over.
		logger.Warn(ctx, "record login failed", "user_id", user.ID, "error", err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID, "role", user.Role)

	return &Session{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
		User:        user,
	}, nil
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *Service) CreateUser(ctx context.Context, email, password, name string, role Role, pointID id.ID) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 6 {
		return nil, apperror.NewValidation("password must be at least 6 characters").
			WithDetail("field", "password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	user := NewUser(email, string(hash), name, role, pointID)
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.NewDuplicate("user", "email", email)
	}

	if err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, user)
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "user created", "user_id", user.ID, "role", role)
	return user, nil
}

// GetByID retrieves a user by ID.
func (s *Service) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// ValidateToken exposes token validation for the HTTP middleware.
func (s *Service) ValidateToken(token string) (*User, error) {
	userCtx, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token")
	}

	userID, err := id.Parse(userCtx.UserID)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid token subject")
	}

	pointID := id.Nil()
	if userCtx.PointID != "" {
		if parsed, err := id.Parse(userCtx.PointID); err == nil {
			pointID = parsed
		}
	}

	return &User{
		ID:      userID,
		PointID: pointID,
		Email:   userCtx.Email,
		Name:    userCtx.Name,
		Role:    Role(userCtx.Role),
	}, nil
}
