package service

import (
	"context"
	"strings"

	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/repository/specification"
	"noteboard-be/internal/repository/unitofwork"
	"noteboard-be/pkg/events"
)

type IAuthService interface {
	// Authenticate verifies the credentials and returns a signed access token.
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	hasher         security.PasswordHasher
	issuer         security.TokenIssuer
	publisher      IPublisherService
	logger         logger.ILogger
	legacyFallback bool
}

// NewAuthService builds the login flow. legacyFallback enables the one-time
// acceptance of passwords that were stored unhashed by older releases.
func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	hasher security.PasswordHasher,
	issuer security.TokenIssuer,
	publisher IPublisherService,
	logger logger.ILogger,
	legacyFallback bool,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		hasher:         hasher,
		issuer:         issuer,
		publisher:      publisher,
		logger:         logger,
		legacyFallback: legacyFallback,
	}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if username == "" {
		return "", apperror.InvalidInput("Username is required.")
	}
	if trimmedPassword == "" {
		return "", apperror.InvalidInput("Password is required.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return "", err
	}
	if user == nil {
		s.logger.Warn("AuthService", "Login failed", map[string]interface{}{"username": username, "reason": "unknown user"})
		return "", apperror.InvalidCredentials()
	}

	switch {
	case s.hasher.Verify(trimmedPassword, user.PasswordHash):
	case s.legacyFallback && security.MatchesLegacyPlaintext(password, user.PasswordHash):
		hash, err := hashPassword(s.hasher, trimmedPassword)
		if err != nil {
			return "", err
		}
		user.PasswordHash = hash
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return "", err
		}

		s.logger.Info("AuthService", "Upgraded legacy plaintext password", map[string]interface{}{"user_id": user.Id.String()})
		s.publisher.Publish(ctx, events.New(events.LegacyPasswordUpgraded, map[string]interface{}{
			"user_id":  user.Id.String(),
			"username": user.Username,
		}))
	default:
		s.logger.Warn("AuthService", "Login failed", map[string]interface{}{"username": username, "reason": "password mismatch"})
		return "", apperror.InvalidCredentials()
	}

	token, err := s.issuer.Issue(user.Username, security.DefaultRole(user.Role))
	if err != nil {
		return "", apperror.Internal(err)
	}

	s.logger.Info("AuthService", "Login succeeded", map[string]interface{}{"user_id": user.Id.String()})
	return token, nil
}
