package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	Generate(s models.Session) (string, error)
}

type AuthService interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	users      UserRepository
	tokens     TokenIssuer
	logger     *logrus.Logger
	bcryptCost int
}

func NewAuthService(users UserRepository, tokens TokenIssuer, logger *logrus.Logger) AuthService {
	return &authService{
		users:      users,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func SessionFor(u *models.User) models.Session {
	return models.Session{UserID: u.ID.Hex(), Email: u.Email, Name: u.Name, Role: u.Role}
}

// Register creates a regular user and signs a session for it
func (s *authService) Register(ctx context.Context, in models.RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Registering user")

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn("Email already registered")
		return nil, "", fmt.Errorf("%w: user already exists", models.ErrConflict)
	case !errors.Is(err, models.ErrNotFound):
		log.WithError(err).Error("Failed to look up user")
		return nil, "", fmt.Errorf("service: could not register user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Phone:        in.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, "", fmt.Errorf("service: could not register user: %w", err)
	}

	token, err := s.tokens.Generate(SessionFor(user))
	if err != nil {
		return nil, "", fmt.Errorf("service: could not issue session: %w", err)
	}
	log.WithField("user_id", user.ID.Hex()).Info("User registered successfully")
	return user, token, nil
}

// Login checks the credentials; unknown email and wrong password look the same to the caller
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login for unknown email")
			return nil, "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
		}
		log.WithError(err).Error("Failed to look up user")
		return nil, "", fmt.Errorf("service: could not log in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login with wrong password")
		return nil, "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(SessionFor(user))
	if err != nil {
		return nil, "", fmt.Errorf("service: could not issue session: %w", err)
	}
	log.WithField("user_id", user.ID.Hex()).Info("User logged in")
	return user, token, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed session subject", models.ErrUnauthorized)
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: session user no longer exists", models.ErrUnauthorized)
		}
		return nil, fmt.Errorf("service: could not load user: %w", err)
	}
	return user, nil
}
