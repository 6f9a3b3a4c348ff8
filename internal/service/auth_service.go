package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/cache"
	"github.com/ilyahahaha/vneshtata-new/internal/ids"
	"github.com/ilyahahaha/vneshtata-new/internal/models"
	"github.com/ilyahahaha/vneshtata-new/internal/repository"
	"github.com/ilyahahaha/vneshtata-new/internal/security"
)

// Unknown email and wrong password must be indistinguishable to the
// caller.
const loginFailedMessage = "Invalid email or password"

type authUserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type AuthService struct {
	users    authUserStore
	idsCache *cache.BusiedIDs
	log      zerolog.Logger
}

func NewAuthService(users authUserStore, idsCache *cache.BusiedIDs, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		idsCache: idsCache,
		log:      log,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates the user together with an empty profile and returns
// the identity to seal into the session cookie.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.SessionUser, error) {
	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return models.EmptySession, Internal(err)
	}

	user := models.User{
		ID:           ids.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: passwordHash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.EmptySession, Conflict("A user with this email is already registered")
		}
		return models.EmptySession, Internal(err)
	}

	if err := s.idsCache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("invalidate busied ids cache failed")
	}

	return models.SessionFromUser(user), nil
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (models.SessionUser, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.EmptySession, Unauthenticated(loginFailedMessage)
		}
		return models.EmptySession, Internal(err)
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return models.EmptySession, Unauthenticated(loginFailedMessage)
	}

	return models.SessionFromUser(user), nil
}
